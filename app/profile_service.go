package app

import (
	"tabprof/domain/core"
	"tabprof/domain/profile"
	"tabprof/domain/table"
	"tabprof/internal/errors"
	"tabprof/internal/profiling"
)

// ProfileService orchestrates the classifier and the univariate
// statistics engine for one dataset and caches the latest bundles.
// Instances are meant for a single logical caller; Refresh followed by
// a cached read is not safe to interleave from concurrent call paths.
type ProfileService struct {
	tbl      *table.Table
	meta     []profile.ColumnMeta
	types    profile.TypedColumns
	filtered *table.Table

	tableMeta   profile.TableMeta
	descriptive profile.DescriptiveBundle
	quantile    profile.QuantileBundle
	categorical profile.CategoricalBundle
	dates       []profile.DateStats
}

// NewProfileService classifies the table and computes all univariate
// bundles up front.
func NewProfileService(tbl *table.Table) (*ProfileService, error) {
	s := &ProfileService{tbl: tbl}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// Refresh recomputes metadata and every bundle from the raw table,
// fully replacing the cached results.
func (s *ProfileService) Refresh() error {
	meta, err := profiling.BuildMetadata(s.tbl)
	if err != nil {
		return errors.WithCode(errors.CodeInsufficientData, err)
	}
	filtered, err := profiling.ProjectEligible(s.tbl, meta)
	if err != nil {
		return err
	}
	types := profiling.ClassifyByType(meta)

	tableMeta, err := profiling.TableMeta(s.tbl)
	if err != nil {
		return errors.WithCode(errors.CodeInsufficientData, err)
	}
	descriptive, quantile, err := profiling.DescribeNumeric(filtered, types.Numeric)
	if err != nil {
		return err
	}
	categorical, err := profiling.DescribeCategorical(filtered, types.Categorical)
	if err != nil {
		return err
	}
	// Date ranges may reference columns the eligibility filter dropped,
	// so datetime description reads the raw table.
	dates, err := profiling.DescribeDatetime(s.tbl, types.Datetime)
	if err != nil {
		return err
	}

	s.meta = meta
	s.filtered = filtered
	s.types = types
	s.tableMeta = tableMeta
	s.descriptive = descriptive
	s.quantile = quantile
	s.categorical = categorical
	s.dates = dates
	return nil
}

// Metadata returns the cached column metadata records
func (s *ProfileService) Metadata() []profile.ColumnMeta { return s.meta }

// TableMeta returns the cached table-level metadata
func (s *ProfileService) TableMeta() profile.TableMeta { return s.tableMeta }

// Types returns the cached typed column sets
func (s *ProfileService) Types() profile.TypedColumns { return s.types }

// Filtered returns the eligible-column projection
func (s *ProfileService) Filtered() *table.Table { return s.filtered }

// Describe returns the cached bundles selected by kind, keyed by
// analysis type. An unrecognized kind is a configuration error.
func (s *ProfileService) Describe(kind DescribeKind) (map[string]interface{}, error) {
	if !kind.valid() {
		return nil, errors.WithCode(errors.CodeInvalidKind,
			core.NewInvalidKindError("describe", string(kind)))
	}

	res := make(map[string]interface{})
	if kind == KindAll || kind == KindNumeric {
		res["descriptive"] = s.descriptive
		res["quantile"] = s.quantile
	}
	if kind == KindAll || kind == KindCategorical {
		res["categorical_column"] = s.categorical
	}
	if kind == KindAll || kind == KindDate {
		res["date_column"] = s.dates
	}
	return res, nil
}
