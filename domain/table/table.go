package table

import (
	"fmt"

	"tabprof/domain/core"
)

// Table is an immutable in-memory collection of equal-length named
// columns. Derivations (projection, appended columns) produce new
// tables that share the underlying column storage.
type Table struct {
	cols  []*Column
	index map[string]int
	rows  int
}

// New builds a table from columns, validating equal lengths and
// unique names.
func New(cols ...*Column) (*Table, error) {
	t := &Table{index: make(map[string]int, len(cols))}
	for i, col := range cols {
		if i == 0 {
			t.rows = col.Len()
		} else if col.Len() != t.rows {
			return nil, fmt.Errorf("%w: column %s has %d rows, expected %d",
				core.ErrColumnLengthMismatch, col.Name(), col.Len(), t.rows)
		}
		if _, exists := t.index[col.Name()]; exists {
			return nil, fmt.Errorf("%w: %s", core.ErrDuplicateColumn, col.Name())
		}
		t.index[col.Name()] = i
		t.cols = append(t.cols, col)
	}
	return t, nil
}

// RowCount returns the number of rows
func (t *Table) RowCount() int { return t.rows }

// ColumnCount returns the number of columns
func (t *Table) ColumnCount() int { return len(t.cols) }

// ColumnNames returns the column names in declaration order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, col := range t.cols {
		names[i] = col.Name()
	}
	return names
}

// Column looks up a column by name
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// HasColumn reports whether a column exists
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Select projects the table onto the named columns, preserving the
// given order. Unknown names are an error.
func (t *Table) Select(names []string) (*Table, error) {
	cols := make([]*Column, 0, len(names))
	for _, name := range names {
		col, ok := t.Column(name)
		if !ok {
			return nil, core.NewColumnNotFoundError("select", name)
		}
		cols = append(cols, col)
	}
	out, err := New(cols...)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		// A projection of an empty column set keeps the row count.
		out.rows = t.rows
	}
	return out, nil
}

// WithColumns returns a new table with the given columns appended.
// The receiver is not modified.
func (t *Table) WithColumns(extra ...*Column) (*Table, error) {
	cols := make([]*Column, 0, len(t.cols)+len(extra))
	cols = append(cols, t.cols...)
	cols = append(cols, extra...)
	return New(cols...)
}
