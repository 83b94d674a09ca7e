package analysis

import (
	"tabprof/domain/profile"
	"tabprof/domain/table"
	"tabprof/internal/profiling"
)

// Analyzer performs multivariate analysis over the eligible projection
// of a raw table: correlation and covariance across numeric columns,
// date-derived feature expansion, and category-driven group analysis.
// The analyzer holds only derived inputs (metadata, typed column sets,
// the filtered table); every operation returns its result rather than
// mutating shared state, so result caching lives at the façade.
type Analyzer struct {
	raw      *table.Table
	filtered *table.Table
	meta     []profile.ColumnMeta
	types    profile.TypedColumns
}

// New classifies the raw table and builds the eligible projection all
// analysis operates on.
func New(raw *table.Table) (*Analyzer, error) {
	meta, err := profiling.BuildMetadata(raw)
	if err != nil {
		return nil, err
	}
	filtered, err := profiling.ProjectEligible(raw, meta)
	if err != nil {
		return nil, err
	}
	return &Analyzer{
		raw:      raw,
		filtered: filtered,
		meta:     meta,
		types:    profiling.ClassifyByType(meta),
	}, nil
}

// Metadata returns the column metadata records
func (a *Analyzer) Metadata() []profile.ColumnMeta { return a.meta }

// Filtered returns the eligible-column projection
func (a *Analyzer) Filtered() *table.Table { return a.filtered }

// Types returns the typed column sets
func (a *Analyzer) Types() profile.TypedColumns { return a.types }
