package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.InDelta(t, 0.8, cfg.Ingest.TypeThreshold, 1e-12)
	assert.NotEmpty(t, cfg.Ingest.DateLayouts)
	assert.Empty(t, cfg.Ingest.ExcelSheet)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TABPROF_TYPE_THRESHOLD", "0.9")
	t.Setenv("TABPROF_EXCEL_SHEET", "Data")
	t.Setenv("TABPROF_DATE_LAYOUTS", "2006-01-02, 02.01.2006")

	cfg, err := Load()
	require.NoError(t, err)
	assert.InDelta(t, 0.9, cfg.Ingest.TypeThreshold, 1e-12)
	assert.Equal(t, "Data", cfg.Ingest.ExcelSheet)
	assert.Equal(t, []string{"2006-01-02", "02.01.2006"}, cfg.Ingest.DateLayouts)
}

func TestLoad_RejectsBadThreshold(t *testing.T) {
	t.Setenv("TABPROF_TYPE_THRESHOLD", "1.5")
	_, err := Load()
	require.Error(t, err)
}
