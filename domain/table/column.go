package table

import (
	"strconv"
	"time"
)

// Column is a single named, typed column with a validity mask.
// Exactly one of the backing slices is populated, matching the DType.
type Column struct {
	name   string
	dtype  DType
	floats []float64
	texts  []string
	times  []time.Time
	valid  []bool
}

// NewNumericColumn creates a numeric column. A nil valid mask means all
// values are present.
func NewNumericColumn(name string, values []float64, valid []bool) *Column {
	return &Column{
		name:   name,
		dtype:  DTypeNumeric,
		floats: values,
		valid:  normalizeMask(valid, len(values)),
	}
}

// NewCategoricalColumn creates a text/categorical column
func NewCategoricalColumn(name string, values []string, valid []bool) *Column {
	return &Column{
		name:  name,
		dtype: DTypeCategorical,
		texts: values,
		valid: normalizeMask(valid, len(values)),
	}
}

// NewDatetimeColumn creates a datetime column
func NewDatetimeColumn(name string, values []time.Time, valid []bool) *Column {
	return &Column{
		name:  name,
		dtype: DTypeDatetime,
		times: values,
		valid: normalizeMask(valid, len(values)),
	}
}

func normalizeMask(valid []bool, n int) []bool {
	if valid != nil {
		return valid
	}
	mask := make([]bool, n)
	for i := range mask {
		mask[i] = true
	}
	return mask
}

// Name returns the column name
func (c *Column) Name() string { return c.name }

// Type returns the column's DType
func (c *Column) Type() DType { return c.dtype }

// Len returns the number of rows, including nulls
func (c *Column) Len() int { return len(c.valid) }

// IsNull reports whether the value at row i is missing
func (c *Column) IsNull(i int) bool { return !c.valid[i] }

// Float returns the numeric value at row i. Only meaningful for
// numeric columns with a non-null value at i.
func (c *Column) Float(i int) float64 { return c.floats[i] }

// Text returns the string value at row i
func (c *Column) Text(i int) string { return c.texts[i] }

// Time returns the datetime value at row i
func (c *Column) Time(i int) time.Time { return c.times[i] }

// NonNullCount returns the number of present values
func (c *Column) NonNullCount() int {
	n := 0
	for _, ok := range c.valid {
		if ok {
			n++
		}
	}
	return n
}

// FloatValues returns the non-null numeric values in row order
// (skip-NA extraction).
func (c *Column) FloatValues() []float64 {
	out := make([]float64, 0, len(c.floats))
	for i, ok := range c.valid {
		if ok {
			out = append(out, c.floats[i])
		}
	}
	return out
}

// Label returns a string rendering of the value at row i for grouping
// and crosstab keys. The second return is false for null cells.
func (c *Column) Label(i int) (string, bool) {
	if c.IsNull(i) {
		return "", false
	}
	switch c.dtype {
	case DTypeNumeric:
		return strconv.FormatFloat(c.floats[i], 'g', -1, 64), true
	case DTypeCategorical:
		return c.texts[i], true
	case DTypeDatetime:
		return c.times[i].Format("2006-01-02 15:04:05"), true
	default:
		return "", false
	}
}

// MemoryBytes estimates the column's in-memory footprint. Informational
// only, not used by any analysis logic.
func (c *Column) MemoryBytes() int {
	size := len(c.valid) // validity mask
	switch c.dtype {
	case DTypeNumeric:
		size += 8 * len(c.floats)
	case DTypeCategorical:
		for _, s := range c.texts {
			size += 16 + len(s) // string header + bytes
		}
	case DTypeDatetime:
		size += 24 * len(c.times)
	}
	return size
}
