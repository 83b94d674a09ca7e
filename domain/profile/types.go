package profile

import (
	"time"

	"tabprof/domain/table"
)

// ColumnMeta is the per-column metadata record built once from the raw
// table. Eligible is false for columns that carry no distributional
// signal: entirely null, entirely constant, or entirely unique.
type ColumnMeta struct {
	Name          string      `json:"name"`
	Type          table.DType `json:"type"`
	NonNullCount  int         `json:"non_null_count"`
	FillRate      float64     `json:"fill_rate"`
	DistinctCount int         `json:"distinct_count"`
	DistinctRate  float64     `json:"distinct_rate"`
	Eligible      bool        `json:"is_eligible"`
}

// TableMeta is table-level metadata: record count, column count,
// overall fill rate and an approximate memory footprint.
type TableMeta struct {
	RecordCount int     `json:"num_records"`
	ColumnCount int     `json:"num_columns"`
	FillRate    float64 `json:"fill_rate"`
	MemoryBytes int     `json:"memory_bytes"`
}

// TypedColumns partitions eligible columns by type. Datetime columns
// are never excluded by the eligibility filter, so that list carries
// every datetime column.
type TypedColumns struct {
	Numeric     []string `json:"numeric"`
	Categorical []string `json:"categorical"`
	Datetime    []string `json:"datetime"`
}

// ValueCount is one distinct value and its frequency
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// DescriptiveStats holds the location/spread statistics for one
// numeric column.
type DescriptiveStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Range  float64 `json:"range"`
	P5     float64 `json:"5th_percentile"`
	P25    float64 `json:"25th_percentile"`
	Median float64 `json:"median"`
	P75    float64 `json:"75th_percentile"`
	P95    float64 `json:"95th_percentile"`
	IQR    float64 `json:"iqr"`
	Mean   float64 `json:"mean"`
}

// QuantileStats holds the dispersion/shape statistics for one numeric
// column. Variance and standard deviation are sample (n-1) flavors.
type QuantileStats struct {
	StdDev     float64 `json:"std_dev"`
	MeanAbsDev float64 `json:"mean_abs_deviation"`
	Skewness   float64 `json:"skewness"`
	Sum        float64 `json:"sum"`
	Variance   float64 `json:"variance"`
}

// CategoricalStats summarizes one categorical column. ValueCounts and
// Top5 are sorted by descending count, ties in first-encounter order.
// MemoryBytes is informational only.
type CategoricalStats struct {
	ValueCounts     []ValueCount       `json:"value_counts"`
	DistributionPct map[string]float64 `json:"distribution_pct"`
	Top5            []ValueCount       `json:"top_5"`
	MemoryBytes     int                `json:"memory_bytes"`
}

// DateStats summarizes one datetime column
type DateStats struct {
	Column      string        `json:"column"`
	Min         time.Time     `json:"min_date"`
	Max         time.Time     `json:"max_date"`
	Range       time.Duration `json:"date_range"`
	ValueCounts []ValueCount  `json:"value_counts"`
	Top5        []ValueCount  `json:"top_5"`
}

// Bundles map column names to their statistics
type (
	DescriptiveBundle map[string]DescriptiveStats
	QuantileBundle    map[string]QuantileStats
	CategoricalBundle map[string]CategoricalStats
)
