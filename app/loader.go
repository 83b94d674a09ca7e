package app

import (
	"path/filepath"
	"strings"

	"tabprof/adapters/excel"
	"tabprof/domain/core"
	"tabprof/internal"
	"tabprof/internal/config"
	"tabprof/internal/errors"
)

// LoadCSV ingests a CSV file into a registered dataset
func LoadCSV(path string, cfg config.IngestConfig) (*Dataset, error) {
	tbl, err := excel.NewDataReaderWithConfig(path, cfg).ReadTable()
	if err != nil {
		return nil, errors.IngestFailed(path, err)
	}
	ds := &Dataset{
		ID:        core.NewID(),
		Name:      datasetName(path),
		Source:    "csv",
		Table:     tbl,
		CreatedAt: core.Now(),
	}
	internal.DefaultLogger.Info("[Loader] dataset %s loaded from %s (%d columns, %d rows)",
		ds.Name, path, tbl.ColumnCount(), tbl.RowCount())
	return ds, nil
}

// LoadWorkbook ingests every sheet of an Excel file as its own
// dataset, keyed by sheet name.
func LoadWorkbook(path string, cfg config.IngestConfig) (map[string]*Dataset, error) {
	tables, err := excel.NewDataReaderWithConfig(path, cfg).ReadWorkbook()
	if err != nil {
		return nil, errors.IngestFailed(path, err)
	}
	out := make(map[string]*Dataset, len(tables))
	for sheet, tbl := range tables {
		out[sheet] = &Dataset{
			ID:        core.NewID(),
			Name:      datasetName(path) + "/" + sheet,
			Source:    "excel",
			Table:     tbl,
			CreatedAt: core.Now(),
		}
	}
	internal.DefaultLogger.Info("[Loader] workbook %s loaded (%d sheets)", path, len(out))
	return out, nil
}

func datasetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
