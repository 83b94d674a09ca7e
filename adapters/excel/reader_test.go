package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabprof/domain/table"
	"tabprof/internal/config"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadTable_TypeInference(t *testing.T) {
	path := writeTempCSV(t,
		"name,amount,joined\n"+
			"alice,10,2023-01-02\n"+
			"bob,20.5,2023-02-03\n"+
			"carol,,2023-03-04\n")

	tbl, err := NewDataReader(path).ReadTable()
	require.NoError(t, err)

	require.Equal(t, 3, tbl.RowCount())
	require.Equal(t, []string{"name", "amount", "joined"}, tbl.ColumnNames())

	name, _ := tbl.Column("name")
	assert.Equal(t, table.DTypeCategorical, name.Type())

	amount, _ := tbl.Column("amount")
	assert.Equal(t, table.DTypeNumeric, amount.Type())
	assert.Equal(t, 2, amount.NonNullCount(), "empty cell becomes null")
	assert.InDelta(t, 20.5, amount.Float(1), 1e-12)

	joined, _ := tbl.Column("joined")
	assert.Equal(t, table.DTypeDatetime, joined.Type())
	assert.Equal(t, 2023, joined.Time(0).Year())
}

func TestReadTable_ThresholdFallsBackToText(t *testing.T) {
	// Half the cells parse as numbers: below the 80% threshold the
	// column stays categorical.
	path := writeTempCSV(t,
		"code\n"+
			"12\n"+
			"x1\n"+
			"34\n"+
			"y2\n")

	tbl, err := NewDataReader(path).ReadTable()
	require.NoError(t, err)

	code, _ := tbl.Column("code")
	assert.Equal(t, table.DTypeCategorical, code.Type())
	assert.Equal(t, 4, code.NonNullCount())
}

func TestReadTable_ShortRowsPadded(t *testing.T) {
	path := writeTempCSV(t,
		"a,b\n"+
			"1,x\n"+
			"2\n")

	tbl, err := NewDataReader(path).ReadTable()
	require.NoError(t, err)

	b, _ := tbl.Column("b")
	assert.Equal(t, 1, b.NonNullCount())
	assert.True(t, b.IsNull(1))
}

func TestReadTable_HeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "a,b\n")
	_, err := NewDataReader(path).ReadTable()
	require.Error(t, err)
}

func TestReadTable_MissingFile(t *testing.T) {
	_, err := NewDataReader("/nonexistent/data.csv").ReadTable()
	require.Error(t, err)
}

func TestReadTable_CustomLayouts(t *testing.T) {
	cfg := config.Default().Ingest
	cfg.DateLayouts = []string{"02.01.2006"}

	path := writeTempCSV(t,
		"when\n"+
			"10.05.2023\n"+
			"11.05.2023\n")

	tbl, err := NewDataReaderWithConfig(path, cfg).ReadTable()
	require.NoError(t, err)

	when, _ := tbl.Column("when")
	assert.Equal(t, table.DTypeDatetime, when.Type())
	assert.Equal(t, 10, when.Time(0).Day())
}

func TestReadWorkbook_RequiresExcel(t *testing.T) {
	path := writeTempCSV(t, "a\n1\n")
	_, err := NewDataReader(path).ReadWorkbook()
	require.Error(t, err)
}
