package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"tabprof/domain/table"
	"tabprof/internal"
	"tabprof/internal/config"
)

// DataReader handles reading Excel and CSV files into typed raw tables
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	cfg      config.IngestConfig
}

// NewDataReader creates a data reader with default ingestion settings
func NewDataReader(filePath string) *DataReader {
	return NewDataReaderWithConfig(filePath, config.Default().Ingest)
}

// NewDataReaderWithConfig creates a data reader with explicit settings
func NewDataReaderWithConfig(filePath string, cfg config.IngestConfig) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType, cfg: cfg}
}

// ReadTable reads the file into a single raw table. For Excel files it
// reads the configured sheet, falling back to the first sheet.
func (r *DataReader) ReadTable() (*table.Table, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case "csv":
		rows, err := r.readCSVRows()
		if err != nil {
			return nil, err
		}
		return r.buildTable(rows)
	case "xlsx":
		f, err := excelize.OpenFile(r.filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open Excel file: %w", err)
		}
		defer f.Close()

		sheet := r.cfg.ExcelSheet
		if sheet == "" {
			sheets := f.GetSheetList()
			if len(sheets) == 0 {
				return nil, fmt.Errorf("Excel file has no sheets")
			}
			sheet = sheets[0]
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
		}
		return r.buildTable(rows)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

// ReadWorkbook reads every sheet of an Excel file into its own raw
// table, keyed by sheet name.
func (r *DataReader) ReadWorkbook() (map[string]*table.Table, error) {
	if r.fileType != "xlsx" {
		return nil, fmt.Errorf("workbook reading requires an Excel file, got %s", r.fileType)
	}
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	out := make(map[string]*table.Table)
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
		}
		tbl, err := r.buildTable(rows)
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheet, err)
		}
		out[sheet] = tbl
	}
	return out, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

// buildTable turns raw string rows into a typed table: the first row is
// the header, each remaining row is data. Per-column types are inferred
// against the configured threshold.
func (r *DataReader) buildTable(rows [][]string) (*table.Table, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s file must have at least a header row and one data row",
			strings.ToUpper(r.fileType))
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	// Column-wise cell matrix; short rows are padded with empties.
	cells := make([][]string, len(headers))
	for i := range cells {
		cells[i] = make([]string, len(rows)-1)
	}
	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		for colIdx := range headers {
			if colIdx < len(rows[rowIdx]) {
				cells[colIdx][rowIdx-1] = strings.TrimSpace(rows[rowIdx][colIdx])
			}
		}
	}

	cols := make([]*table.Column, len(headers))
	for i, name := range headers {
		cols[i] = inferColumn(name, cells[i], r.cfg)
	}
	tbl, err := table.New(cols...)
	if err != nil {
		return nil, err
	}

	internal.DefaultLogger.Debug("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), tbl.ColumnCount(), tbl.RowCount())
	return tbl, nil
}

// inferColumn decides a column's type from its raw cells. A type wins
// when at least the threshold fraction of non-empty cells parses as it;
// numeric is tried before datetime, text is the fallback. Cells that
// fail the winning parse become nulls, as do empty cells.
func inferColumn(name string, cells []string, cfg config.IngestConfig) *table.Column {
	nonEmpty := 0
	numericHits := 0
	dateHits := 0
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		nonEmpty++
		if _, err := parseFloat(cell); err == nil {
			numericHits++
		} else if _, ok := parseDate(cell, cfg.DateLayouts); ok {
			dateHits++
		}
	}

	if nonEmpty > 0 && float64(numericHits)/float64(nonEmpty) >= cfg.TypeThreshold {
		values := make([]float64, len(cells))
		valid := make([]bool, len(cells))
		for i, cell := range cells {
			if cell == "" {
				continue
			}
			if v, err := parseFloat(cell); err == nil {
				values[i] = v
				valid[i] = true
			}
		}
		return table.NewNumericColumn(name, values, valid)
	}

	if nonEmpty > 0 && float64(dateHits)/float64(nonEmpty) >= cfg.TypeThreshold {
		values := make([]time.Time, len(cells))
		valid := make([]bool, len(cells))
		for i, cell := range cells {
			if cell == "" {
				continue
			}
			if v, ok := parseDate(cell, cfg.DateLayouts); ok {
				values[i] = v
				valid[i] = true
			}
		}
		return table.NewDatetimeColumn(name, values, valid)
	}

	values := make([]string, len(cells))
	valid := make([]bool, len(cells))
	for i, cell := range cells {
		if cell != "" {
			values[i] = cell
			valid[i] = true
		}
	}
	return table.NewCategoricalColumn(name, values, valid)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}

func parseDate(s string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if v, err := time.Parse(layout, s); err == nil {
			return v, true
		}
	}
	return time.Time{}, false
}
