package app

import (
	"tabprof/domain/core"
	"tabprof/domain/profile"
	"tabprof/domain/table"
	"tabprof/internal/analysis"
	"tabprof/internal/errors"
)

// AnalysisService orchestrates the multivariate analyzer and caches
// the latest result of each analysis. Same single-caller contract as
// ProfileService.
type AnalysisService struct {
	analyzer *analysis.Analyzer

	correlation  *analysis.CorrelationSet
	covariance   *analysis.Matrix
	dateDist     []analysis.DateDistribution
	dateTable    *table.Table
	lastCategory *analysis.CategoryAnalysis
}

// NewAnalysisService builds the analyzer over the raw table
func NewAnalysisService(tbl *table.Table) (*AnalysisService, error) {
	analyzer, err := analysis.New(tbl)
	if err != nil {
		return nil, errors.WithCode(errors.CodeInsufficientData, err)
	}
	return &AnalysisService{analyzer: analyzer}, nil
}

// Metadata returns the column metadata the analyzer classified with
func (s *AnalysisService) Metadata() []profile.ColumnMeta { return s.analyzer.Metadata() }

// Filtered returns the eligible-column projection
func (s *AnalysisService) Filtered() *table.Table { return s.analyzer.Filtered() }

// Correlation recomputes and caches the three correlation matrices
func (s *AnalysisService) Correlation() *analysis.CorrelationSet {
	set := s.analyzer.Correlation()
	s.correlation = &set
	return s.correlation
}

// LastCorrelation returns the cached matrices, nil before the first
// Correlation call.
func (s *AnalysisService) LastCorrelation() *analysis.CorrelationSet { return s.correlation }

// Covariance recomputes and caches the covariance matrix
func (s *AnalysisService) Covariance() *analysis.Matrix {
	s.covariance = s.analyzer.Covariance()
	return s.covariance
}

// LastCovariance returns the cached covariance matrix
func (s *AnalysisService) LastCovariance() *analysis.Matrix { return s.covariance }

// DateDistribution recomputes the date-derived distributions and the
// augmented table, caching both.
func (s *AnalysisService) DateDistribution() ([]analysis.DateDistribution, *table.Table, error) {
	dists, augmented, err := s.analyzer.DateDistribution()
	if err != nil {
		return nil, nil, err
	}
	s.dateDist = dists
	s.dateTable = augmented
	return dists, augmented, nil
}

// LastDateDistribution returns the cached distributions and table
func (s *AnalysisService) LastDateDistribution() ([]analysis.DateDistribution, *table.Table) {
	return s.dateDist, s.dateTable
}

// CategoryAnalysis fans the grouping column out against the other
// eligible columns and returns the buckets selected by kind.
func (s *AnalysisService) CategoryAnalysis(column string, kind DescribeKind) (map[string]interface{}, error) {
	if !kind.valid() {
		return nil, errors.WithCode(errors.CodeInvalidKind,
			core.NewInvalidKindError("category_analysis", string(kind)))
	}
	res, err := s.analyzer.AnalyzeByCategory(column)
	if err != nil {
		return nil, wrapAnalysisError(err)
	}
	s.lastCategory = res
	return selectBuckets(res, kind), nil
}

// DecileAnalysis buckets a numeric column into deciles and runs the
// category analysis against the buckets, returning the kinds selected.
func (s *AnalysisService) DecileAnalysis(column string, kind DescribeKind) (map[string]interface{}, error) {
	if !kind.valid() {
		return nil, errors.WithCode(errors.CodeInvalidKind,
			core.NewInvalidKindError("decile_analysis", string(kind)))
	}
	res, err := s.analyzer.DecileBucket(column)
	if err != nil {
		return nil, wrapAnalysisError(err)
	}
	s.lastCategory = res
	return selectBuckets(res, kind), nil
}

// LastCategoryAnalysis returns the most recent category or decile
// analysis result.
func (s *AnalysisService) LastCategoryAnalysis() *analysis.CategoryAnalysis { return s.lastCategory }

// GroupDetails groups the filtered table by a column combination and
// counts rows per group.
func (s *AnalysisService) GroupDetails(columns []string) (*analysis.GroupCountTable, error) {
	res, err := s.analyzer.GroupDetails(columns)
	if err != nil {
		return nil, wrapAnalysisError(err)
	}
	return res, nil
}

func selectBuckets(res *analysis.CategoryAnalysis, kind DescribeKind) map[string]interface{} {
	out := make(map[string]interface{})
	if kind == KindAll || kind == KindCategorical {
		out["categorical"] = res.Contingency
	}
	if kind == KindAll || kind == KindNumeric {
		out["numeric"] = res.NumericAggregates
	}
	if kind == KindAll || kind == KindDate {
		out["date_categorical"] = res.DateContingency
		out["date_numeric"] = res.DateAggregates
	}
	return out
}

func wrapAnalysisError(err error) error {
	switch {
	case core.IsInsufficientDataError(err):
		return errors.WithCode(errors.CodeInsufficientData, err)
	case core.IsConfigError(err):
		return errors.WithCode(errors.CodeColumnNotFound, err)
	default:
		return err
	}
}
