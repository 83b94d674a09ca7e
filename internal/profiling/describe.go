package profiling

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"tabprof/domain/core"
	"tabprof/domain/profile"
	"tabprof/domain/table"
)

// DescribeNumeric computes the descriptive and quantile bundles for the
// given numeric columns with skip-NA semantics. An empty column list
// yields empty bundles, not an error.
func DescribeNumeric(t *table.Table, cols []string) (profile.DescriptiveBundle, profile.QuantileBundle, error) {
	descriptive := make(profile.DescriptiveBundle, len(cols))
	quantile := make(profile.QuantileBundle, len(cols))

	for _, name := range cols {
		col, ok := t.Column(name)
		if !ok {
			return nil, nil, core.NewColumnNotFoundError("describe_numeric", name)
		}
		if col.Type() != table.DTypeNumeric {
			return nil, nil, fmt.Errorf("describe_numeric: column %s is %s, not numeric", name, col.Type())
		}
		values := col.FloatValues()
		if len(values) == 0 {
			continue
		}

		sorted := append([]float64(nil), values...)
		sort.Float64s(sorted)

		min := sorted[0]
		max := sorted[len(sorted)-1]
		mean, _ := stats.Mean(values)
		p5 := percentile(sorted, 0.05)
		p25 := percentile(sorted, 0.25)
		median := percentile(sorted, 0.50)
		p75 := percentile(sorted, 0.75)
		p95 := percentile(sorted, 0.95)

		descriptive[name] = profile.DescriptiveStats{
			Min:    min,
			Max:    max,
			Range:  max - min,
			P5:     p5,
			P25:    p25,
			Median: median,
			P75:    p75,
			P95:    p95,
			IQR:    p75 - p25,
			Mean:   mean,
		}

		sum, _ := stats.Sum(values)
		quantile[name] = profile.QuantileStats{
			StdDev:     sampleStdDev(values),
			MeanAbsDev: meanAbsDeviation(values, mean),
			Skewness:   stat.Skew(values, nil),
			Sum:        sum,
			Variance:   sampleVariance(values),
		}
	}
	return descriptive, quantile, nil
}

// percentile computes the q-th quantile (q in [0,1]) of sorted data by
// linear interpolation between order statistics: rank = q*(n-1).
func percentile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	rank := q * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// sampleStdDev is the n-1 standard deviation; NaN below 2 observations
func sampleStdDev(values []float64) float64 {
	sd, err := stats.StandardDeviationSample(values)
	if err != nil || len(values) < 2 {
		return math.NaN()
	}
	return sd
}

// sampleVariance is the n-1 variance; NaN below 2 observations
func sampleVariance(values []float64) float64 {
	v, err := stats.SampleVariance(values)
	if err != nil || len(values) < 2 {
		return math.NaN()
	}
	return v
}

// meanAbsDeviation is the mean absolute deviation about the mean
func meanAbsDeviation(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	total := 0.0
	for _, v := range values {
		total += math.Abs(v - mean)
	}
	return total / float64(len(values))
}

// DescribeCategorical computes value counts, percentage distribution
// and the truncated top-5 for each categorical column. Percentages are
// relative to the full row count, so nulls dilute the distribution.
func DescribeCategorical(t *table.Table, cols []string) (profile.CategoricalBundle, error) {
	bundle := make(profile.CategoricalBundle, len(cols))
	rows := t.RowCount()

	for _, name := range cols {
		col, ok := t.Column(name)
		if !ok {
			return nil, core.NewColumnNotFoundError("describe_categorical", name)
		}
		counts := CountLabels(col)
		pct := make(map[string]float64, len(counts))
		if rows > 0 {
			for _, vc := range counts {
				pct[vc.Value] = float64(vc.Count) * 100 / float64(rows)
			}
		}
		bundle[name] = profile.CategoricalStats{
			ValueCounts:     counts,
			DistributionPct: pct,
			Top5:            TopValues(counts, TopN),
			MemoryBytes:     col.MemoryBytes(),
		}
	}
	return bundle, nil
}

// DescribeDatetime computes min, max, range and the value distribution
// for each datetime column. A column with a single distinct date yields
// a zero range; an all-null column yields empty stats.
func DescribeDatetime(t *table.Table, cols []string) ([]profile.DateStats, error) {
	out := make([]profile.DateStats, 0, len(cols))

	for _, name := range cols {
		col, ok := t.Column(name)
		if !ok {
			return nil, core.NewColumnNotFoundError("describe_datetime", name)
		}
		ds := profile.DateStats{Column: name}
		var min, max time.Time
		seen := false
		for i := 0; i < col.Len(); i++ {
			if col.IsNull(i) {
				continue
			}
			v := col.Time(i)
			if !seen {
				min, max = v, v
				seen = true
				continue
			}
			if v.Before(min) {
				min = v
			}
			if v.After(max) {
				max = v
			}
		}
		if seen {
			ds.Min = min
			ds.Max = max
			ds.Range = max.Sub(min)
			ds.ValueCounts = CountLabels(col)
			ds.Top5 = TopValues(ds.ValueCounts, TopN)
		}
		out = append(out, ds)
	}
	return out, nil
}
