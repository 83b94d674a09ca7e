package profiling

import (
	"fmt"
	"strconv"

	"tabprof/domain/core"
	"tabprof/domain/profile"
	"tabprof/domain/table"
)

// BuildMetadata scans the raw table once and produces one ColumnMeta
// record per column. Nulls are coerced to a single sentinel bucket
// before distinct counting, so a column with nulls gains exactly one
// extra distinct value. A zero-row table is an explicit
// insufficient-data failure, never a NaN-filled result.
func BuildMetadata(t *table.Table) ([]profile.ColumnMeta, error) {
	if t.RowCount() == 0 {
		return nil, core.ErrEmptyTable
	}

	rows := float64(t.RowCount())
	meta := make([]profile.ColumnMeta, 0, t.ColumnCount())
	for _, name := range t.ColumnNames() {
		col, _ := t.Column(name)
		nonNull := col.NonNullCount()
		distinct := distinctCount(col)

		m := profile.ColumnMeta{
			Name:          name,
			Type:          col.Type(),
			NonNullCount:  nonNull,
			FillRate:      float64(nonNull) * 100 / rows,
			DistinctCount: distinct,
			DistinctRate:  float64(distinct) * 100 / rows,
		}
		m.Eligible = nonNull != 0 && distinct != 1 && distinct != nonNull
		meta = append(meta, m)
	}
	return meta, nil
}

// distinctCount counts distinct non-null values plus one sentinel
// bucket when the column has any nulls.
func distinctCount(col *table.Column) int {
	seen := make(map[string]struct{})
	hasNull := false
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			hasNull = true
			continue
		}
		switch col.Type() {
		case table.DTypeNumeric:
			seen[strconv.FormatFloat(col.Float(i), 'g', -1, 64)] = struct{}{}
		case table.DTypeCategorical:
			seen[col.Text(i)] = struct{}{}
		case table.DTypeDatetime:
			seen[strconv.FormatInt(col.Time(i).UnixNano(), 10)] = struct{}{}
		}
	}
	n := len(seen)
	if hasNull {
		n++
	}
	return n
}

// ProjectEligible projects the table onto eligible columns, preserving
// metadata order. It fails if metadata was never built.
func ProjectEligible(t *table.Table, meta []profile.ColumnMeta) (*table.Table, error) {
	if meta == nil {
		return nil, core.ErrMetadataNotBuilt
	}
	names := make([]string, 0, len(meta))
	for _, m := range meta {
		if m.Eligible {
			names = append(names, m.Name)
		}
	}
	return t.Select(names)
}

// ClassifyByType partitions eligible columns into numeric and
// categorical sets. Datetime columns are listed regardless of
// eligibility: a constant or fully unique date column still has an
// informative range.
func ClassifyByType(meta []profile.ColumnMeta) profile.TypedColumns {
	var types profile.TypedColumns
	for _, m := range meta {
		switch m.Type {
		case table.DTypeNumeric:
			if m.Eligible {
				types.Numeric = append(types.Numeric, m.Name)
			}
		case table.DTypeCategorical:
			if m.Eligible {
				types.Categorical = append(types.Categorical, m.Name)
			}
		case table.DTypeDatetime:
			types.Datetime = append(types.Datetime, m.Name)
		}
	}
	return types
}

// TableMeta computes table-level metadata: record count, column count,
// overall fill rate and approximate memory size.
func TableMeta(t *table.Table) (profile.TableMeta, error) {
	if t.RowCount() == 0 || t.ColumnCount() == 0 {
		return profile.TableMeta{}, fmt.Errorf("%w (operation table_meta)", core.ErrEmptyTable)
	}

	nonNull := 0
	memory := 0
	for _, name := range t.ColumnNames() {
		col, _ := t.Column(name)
		nonNull += col.NonNullCount()
		memory += col.MemoryBytes()
	}
	cells := t.RowCount() * t.ColumnCount()
	return profile.TableMeta{
		RecordCount: t.RowCount(),
		ColumnCount: t.ColumnCount(),
		FillRate:    float64(nonNull) * 100 / float64(cells),
		MemoryBytes: memory,
	}, nil
}
