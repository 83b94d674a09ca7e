package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabprof/domain/profile"
	"tabprof/internal/errors"
	"tabprof/internal/testkit"
)

func TestProfileService_Describe(t *testing.T) {
	svc, err := NewProfileService(testkit.SalesTable(t))
	require.NoError(t, err)

	all, err := svc.Describe(KindAll)
	require.NoError(t, err)
	assert.Contains(t, all, "descriptive")
	assert.Contains(t, all, "quantile")
	assert.Contains(t, all, "categorical_column")
	assert.Contains(t, all, "date_column")

	cat, err := svc.Describe(KindCategorical)
	require.NoError(t, err)
	assert.Contains(t, cat, "categorical_column")
	assert.NotContains(t, cat, "descriptive")

	bundle := cat["categorical_column"].(profile.CategoricalBundle)
	require.Contains(t, bundle, "status")
	assert.Equal(t, 2, bundle["status"].Top5[0].Count)
}

func TestProfileService_InvalidKind(t *testing.T) {
	svc, err := NewProfileService(testkit.SalesTable(t))
	require.NoError(t, err)

	_, err = svc.Describe(DescribeKind("bogus"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidKind, errors.GetCode(err))
}

func TestProfileService_EmptyTable(t *testing.T) {
	_, err := NewProfileService(testkit.EmptyTable(t))
	require.Error(t, err)
	assert.Equal(t, errors.CodeInsufficientData, errors.GetCode(err))
}

func TestProfileService_RefreshReplacesCache(t *testing.T) {
	svc, err := NewProfileService(testkit.RegionSalesTable(t))
	require.NoError(t, err)

	before := svc.Metadata()
	require.NoError(t, svc.Refresh())
	after := svc.Metadata()
	require.Equal(t, len(before), len(after))
	for i := range before {
		assert.Equal(t, before[i], after[i], "refresh on the same table must be idempotent")
	}
}

func TestParseKind(t *testing.T) {
	for _, valid := range []string{"all", "numeric", "categorical", "date"} {
		kind, err := ParseKind(valid)
		require.NoError(t, err)
		assert.Equal(t, DescribeKind(valid), kind)
	}
	_, err := ParseKind("everything")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidKind, errors.GetCode(err))
}

func TestAnalysisService_CachingContract(t *testing.T) {
	svc, err := NewAnalysisService(testkit.RegionSalesTable(t))
	require.NoError(t, err)

	assert.Nil(t, svc.LastCorrelation(), "no cached result before the first compute")
	set := svc.Correlation()
	require.NotNil(t, set)
	assert.Same(t, set, svc.LastCorrelation())

	assert.Nil(t, svc.LastCovariance())
	cov := svc.Covariance()
	assert.Same(t, cov, svc.LastCovariance())
}

func TestAnalysisService_CategoryAnalysisKinds(t *testing.T) {
	svc, err := NewAnalysisService(testkit.OrdersTable(t))
	require.NoError(t, err)

	all, err := svc.CategoryAnalysis("region", KindAll)
	require.NoError(t, err)
	assert.Contains(t, all, "categorical")
	assert.Contains(t, all, "numeric")
	assert.Contains(t, all, "date_categorical")
	assert.Contains(t, all, "date_numeric")

	numeric, err := svc.CategoryAnalysis("region", KindNumeric)
	require.NoError(t, err)
	assert.Contains(t, numeric, "numeric")
	assert.NotContains(t, numeric, "categorical")

	_, err = svc.CategoryAnalysis("region", DescribeKind("nope"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidKind, errors.GetCode(err))

	_, err = svc.CategoryAnalysis("ghost", KindAll)
	require.Error(t, err)
	assert.Equal(t, errors.CodeColumnNotFound, errors.GetCode(err))

	assert.NotNil(t, svc.LastCategoryAnalysis())
}

func TestAnalysisService_DecileAnalysis(t *testing.T) {
	svc, err := NewAnalysisService(testkit.OrdersTable(t))
	require.NoError(t, err)

	res, err := svc.DecileAnalysis("amount", KindNumeric)
	require.NoError(t, err)
	assert.Contains(t, res, "numeric")

	_, err = svc.DecileAnalysis("region", KindAll)
	require.Error(t, err, "decile bucketing a categorical column must fail")
}

func TestAnalysisService_GroupDetails(t *testing.T) {
	svc, err := NewAnalysisService(testkit.RegionSalesTable(t))
	require.NoError(t, err)

	res, err := svc.GroupDetails([]string{"region"})
	require.NoError(t, err)
	assert.Len(t, res.Groups, 2)

	_, err = svc.GroupDetails([]string{"ghost"})
	require.Error(t, err)
	assert.Equal(t, errors.CodeColumnNotFound, errors.GetCode(err))
}

func TestNewDataset(t *testing.T) {
	ds := NewDataset("sales", testkit.SalesTable(t))
	assert.False(t, ds.ID.IsEmpty())
	assert.Equal(t, "memory", ds.Source)
	assert.Equal(t, 3, ds.Table.RowCount())
}
