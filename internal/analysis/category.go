package analysis

import (
	"math"
	"strconv"

	"github.com/montanaflynn/stats"

	"tabprof/domain/core"
	"tabprof/domain/table"
)

// AggregateRow is the aggregate statistics of one group
type AggregateRow struct {
	Group    string  `json:"group"`
	Sum      float64 `json:"sum"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Count    int     `json:"count"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
}

// AggregateTable is a numeric column aggregated per group of a
// grouping column. Rows appear in first-encounter group order.
type AggregateTable struct {
	GroupColumn string         `json:"group_column"`
	ValueColumn string         `json:"value_column"`
	Rows        []AggregateRow `json:"rows"`
}

// Row returns the aggregate row for a group label
func (t *AggregateTable) Row(group string) (AggregateRow, bool) {
	for _, r := range t.Rows {
		if r.Group == group {
			return r, true
		}
	}
	return AggregateRow{}, false
}

// CategoryAnalysis is the fan-out of one grouping column against every
// other eligible column. Contingency maps are keyed
// "<grouping>:<other>"; aggregate maps are keyed by the other column's
// name. Date-derived columns land in the separate date buckets.
type CategoryAnalysis struct {
	Grouping          string
	Contingency       map[string]*table.Contingency
	NumericAggregates map[string]*AggregateTable
	DateContingency   map[string]*table.Contingency
	DateAggregates    map[string]*AggregateTable
}

// AnalyzeByCategory runs date feature derivation and then fans the
// grouping column out against every other column of the augmented
// table. Each column is classified independently, so iteration order
// does not affect results.
func (a *Analyzer) AnalyzeByCategory(grouping string) (*CategoryAnalysis, error) {
	_, augmented, err := a.DateDistribution()
	if err != nil {
		return nil, err
	}
	return analyzeOn(augmented, a.dateDerivedNames(), grouping)
}

func analyzeOn(tbl *table.Table, dateDerived map[string]bool, grouping string) (*CategoryAnalysis, error) {
	if !tbl.HasColumn(grouping) {
		return nil, core.NewColumnNotFoundError("analyze_by_category", grouping)
	}

	res := &CategoryAnalysis{
		Grouping:          grouping,
		Contingency:       make(map[string]*table.Contingency),
		NumericAggregates: make(map[string]*AggregateTable),
		DateContingency:   make(map[string]*table.Contingency),
		DateAggregates:    make(map[string]*AggregateTable),
	}

	for _, name := range tbl.ColumnNames() {
		if name == grouping {
			continue
		}
		col, _ := tbl.Column(name)
		pairKey := grouping + ":" + name

		switch {
		case dateDerived[name]:
			// Same branch logic as below, routed into the date buckets.
			switch col.Type() {
			case table.DTypeCategorical:
				ct, err := table.Crosstab(tbl, grouping, name)
				if err != nil {
					return nil, err
				}
				res.DateContingency[pairKey] = ct
			case table.DTypeNumeric:
				at, err := aggregateByGroup(tbl, grouping, name)
				if err != nil {
					return nil, err
				}
				res.DateAggregates[name] = at
			}
		case col.Type() == table.DTypeCategorical:
			ct, err := table.Crosstab(tbl, grouping, name)
			if err != nil {
				return nil, err
			}
			res.Contingency[pairKey] = ct
		case col.Type() == table.DTypeNumeric:
			at, err := aggregateByGroup(tbl, grouping, name)
			if err != nil {
				return nil, err
			}
			res.NumericAggregates[name] = at
		}
		// Raw datetime columns match no branch and are skipped; their
		// derived companions carry the signal.
	}
	return res, nil
}

// aggregateByGroup groups the table by one column and aggregates a
// numeric column with sum, mean, median, count, variance and std dev.
// Count is the number of non-null values per group; variance and std
// dev are sample flavors, NaN below 2 observations.
func aggregateByGroup(tbl *table.Table, grouping, valueCol string) (*AggregateTable, error) {
	groups, err := table.GroupRows(tbl, []string{grouping})
	if err != nil {
		return nil, err
	}
	vcol, ok := tbl.Column(valueCol)
	if !ok {
		return nil, core.NewColumnNotFoundError("aggregate", valueCol)
	}

	out := &AggregateTable{GroupColumn: grouping, ValueColumn: valueCol}
	for _, g := range groups {
		var values []float64
		for _, row := range g.Rows {
			if !vcol.IsNull(row) {
				values = append(values, vcol.Float(row))
			}
		}
		row := AggregateRow{
			Group:    g.Key[0],
			Count:    len(values),
			Mean:     math.NaN(),
			Median:   math.NaN(),
			Variance: math.NaN(),
			StdDev:   math.NaN(),
		}
		if len(values) > 0 {
			row.Sum, _ = stats.Sum(values)
			row.Mean, _ = stats.Mean(values)
			row.Median, _ = stats.Median(values)
		}
		if len(values) >= 2 {
			row.Variance, _ = stats.SampleVariance(values)
			row.StdDev, _ = stats.StandardDeviationSample(values)
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// GroupCount is the row count of one group combination
type GroupCount struct {
	Key   []string `json:"key"`
	Count int      `json:"count"`
}

// GroupCountTable is the result of grouping by a column combination
type GroupCountTable struct {
	Columns []string     `json:"columns"`
	Groups  []GroupCount `json:"groups"`
}

// GroupDetails groups the filtered table by the full combination of the
// given columns and counts rows per group. Unknown columns fail the
// operation.
func (a *Analyzer) GroupDetails(cols []string) (*GroupCountTable, error) {
	if len(cols) == 0 {
		return nil, core.NewInsufficientDataError("group_details", "no grouping columns given")
	}
	groups, err := table.GroupRows(a.filtered, cols)
	if err != nil {
		return nil, err
	}
	out := &GroupCountTable{Columns: append([]string(nil), cols...)}
	for _, g := range groups {
		out.Groups = append(out.Groups, GroupCount{Key: g.Key, Count: len(g.Rows)})
	}
	return out, nil
}

// decileBuckets is the fixed bin count for numeric-to-categorical
// conversion.
const decileBuckets = 10

// DecileBucket converts a numeric column into 10 equal-width ordinal
// buckets over [min, max] (labels "0".."9", nulls unbucketed) and
// re-runs the category analysis with the synthetic column as the
// grouping key. Binning is undefined below 2 distinct non-null values.
func (a *Analyzer) DecileBucket(col string) (*CategoryAnalysis, error) {
	c, ok := a.filtered.Column(col)
	if !ok {
		return nil, core.NewColumnNotFoundError("decile_bucket", col)
	}
	if c.Type() != table.DTypeNumeric {
		return nil, core.NewInsufficientDataError("decile_bucket", "column "+col+" is not numeric")
	}

	values := c.FloatValues()
	distinct := make(map[float64]struct{}, len(values))
	for _, v := range values {
		distinct[v] = struct{}{}
	}
	if len(distinct) < 2 {
		return nil, core.NewInsufficientDataError("decile_bucket",
			"column "+col+" has fewer than 2 distinct non-null values")
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	width := (max - min) / decileBuckets

	n := c.Len()
	labels := make([]string, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		if c.IsNull(i) {
			continue
		}
		bucket := int((c.Float(i) - min) / width)
		if bucket >= decileBuckets {
			// The max value closes the top bin.
			bucket = decileBuckets - 1
		}
		labels[i] = strconv.Itoa(bucket)
		valid[i] = true
	}

	_, augmented, err := a.DateDistribution()
	if err != nil {
		return nil, err
	}
	augmented, err = augmented.WithColumns(
		table.NewCategoricalColumn(col+"_decile", labels, valid))
	if err != nil {
		return nil, err
	}
	return analyzeOn(augmented, a.dateDerivedNames(), col+"_decile")
}
