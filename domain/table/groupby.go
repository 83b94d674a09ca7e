package table

import (
	"strings"

	"tabprof/domain/core"
)

// Group holds the row indices sharing one combination of grouping labels
type Group struct {
	Key  []string
	Rows []int
}

// GroupRows partitions row indices by the combined labels of the named
// columns. Rows where any grouping cell is null are skipped. Groups are
// returned in first-encounter order.
func GroupRows(t *Table, names []string) ([]Group, error) {
	cols := make([]*Column, len(names))
	for i, name := range names {
		col, ok := t.Column(name)
		if !ok {
			return nil, core.NewColumnNotFoundError("group", name)
		}
		cols[i] = col
	}

	var groups []Group
	seen := make(map[string]int)
	labels := make([]string, len(cols))
	for row := 0; row < t.rows; row++ {
		null := false
		for i, col := range cols {
			label, ok := col.Label(row)
			if !ok {
				null = true
				break
			}
			labels[i] = label
		}
		if null {
			continue
		}
		key := strings.Join(labels, "\x1f")
		idx, ok := seen[key]
		if !ok {
			idx = len(groups)
			seen[key] = idx
			groups = append(groups, Group{Key: append([]string(nil), labels...)})
		}
		groups[idx].Rows = append(groups[idx].Rows, row)
	}
	return groups, nil
}

// Contingency is a cross-tabulation of co-occurrence counts between two
// columns' value pairs.
type Contingency struct {
	RowColumn string
	ColColumn string
	RowLabels []string
	ColLabels []string
	Counts    [][]int
}

// Count returns the cell count for a row/column label pair, zero when
// either label is absent.
func (c *Contingency) Count(rowLabel, colLabel string) int {
	ri, ci := -1, -1
	for i, l := range c.RowLabels {
		if l == rowLabel {
			ri = i
			break
		}
	}
	for j, l := range c.ColLabels {
		if l == colLabel {
			ci = j
			break
		}
	}
	if ri < 0 || ci < 0 {
		return 0
	}
	return c.Counts[ri][ci]
}

// Crosstab builds the contingency table of rowCol against colCol. Rows
// where either cell is null are excluded. Labels appear in
// first-encounter order.
func Crosstab(t *Table, rowCol, colCol string) (*Contingency, error) {
	rc, ok := t.Column(rowCol)
	if !ok {
		return nil, core.NewColumnNotFoundError("crosstab", rowCol)
	}
	cc, ok := t.Column(colCol)
	if !ok {
		return nil, core.NewColumnNotFoundError("crosstab", colCol)
	}

	ct := &Contingency{RowColumn: rowCol, ColColumn: colCol}
	rowIdx := make(map[string]int)
	colIdx := make(map[string]int)
	type cell struct{ r, c int }
	cells := make(map[cell]int)

	for row := 0; row < t.rows; row++ {
		rl, ok := rc.Label(row)
		if !ok {
			continue
		}
		cl, ok := cc.Label(row)
		if !ok {
			continue
		}
		ri, ok := rowIdx[rl]
		if !ok {
			ri = len(ct.RowLabels)
			rowIdx[rl] = ri
			ct.RowLabels = append(ct.RowLabels, rl)
		}
		ci, ok := colIdx[cl]
		if !ok {
			ci = len(ct.ColLabels)
			colIdx[cl] = ci
			ct.ColLabels = append(ct.ColLabels, cl)
		}
		cells[cell{ri, ci}]++
	}

	ct.Counts = make([][]int, len(ct.RowLabels))
	for i := range ct.Counts {
		ct.Counts[i] = make([]int, len(ct.ColLabels))
	}
	for pos, n := range cells {
		ct.Counts[pos.r][pos.c] = n
	}
	return ct, nil
}
