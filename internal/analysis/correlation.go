package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Matrix is a square statistic matrix over named numeric columns
type Matrix struct {
	Columns []string
	Data    [][]float64
}

func newMatrix(cols []string) *Matrix {
	m := &Matrix{Columns: append([]string(nil), cols...)}
	m.Data = make([][]float64, len(cols))
	for i := range m.Data {
		m.Data[i] = make([]float64, len(cols))
	}
	return m
}

// At returns the value at row i, column j
func (m *Matrix) At(i, j int) float64 { return m.Data[i][j] }

// Value returns the entry for a named column pair; NaN for unknown names
func (m *Matrix) Value(colX, colY string) float64 {
	xi, yi := -1, -1
	for i, name := range m.Columns {
		if name == colX {
			xi = i
		}
		if name == colY {
			yi = i
		}
	}
	if xi < 0 || yi < 0 {
		return math.NaN()
	}
	return m.Data[xi][yi]
}

// CorrelationSet holds the three correlation matrices
type CorrelationSet struct {
	Pearson  *Matrix
	Spearman *Matrix
	Kendall  *Matrix
}

// Correlation computes pearson, spearman and kendall matrices over the
// numeric columns with pairwise skip-NA semantics: each pair keeps the
// rows where both values are present, not a whole-row drop. Pairs with
// fewer than 2 overlapping observations or zero variance in either
// column are NaN; this never fails the operation.
func (a *Analyzer) Correlation() CorrelationSet {
	cols := a.types.Numeric
	set := CorrelationSet{
		Pearson:  newMatrix(cols),
		Spearman: newMatrix(cols),
		Kendall:  newMatrix(cols),
	}
	for i := range cols {
		for j := i; j < len(cols); j++ {
			xs, ys := a.pairwiseOverlap(cols[i], cols[j])
			p, s, k := correlatePair(xs, ys)
			set.Pearson.Data[i][j], set.Pearson.Data[j][i] = p, p
			set.Spearman.Data[i][j], set.Spearman.Data[j][i] = s, s
			set.Kendall.Data[i][j], set.Kendall.Data[j][i] = k, k
		}
	}
	return set
}

// Covariance computes the pairwise sample covariance matrix over the
// numeric columns, with the same NaN semantics as Correlation.
func (a *Analyzer) Covariance() *Matrix {
	cols := a.types.Numeric
	m := newMatrix(cols)
	for i := range cols {
		for j := i; j < len(cols); j++ {
			xs, ys := a.pairwiseOverlap(cols[i], cols[j])
			v := math.NaN()
			if len(xs) >= 2 && !isConstant(xs) && !isConstant(ys) {
				v = stat.Covariance(xs, ys, nil)
			}
			m.Data[i][j], m.Data[j][i] = v, v
		}
	}
	return m
}

// pairwiseOverlap extracts the rows where both columns are non-null
func (a *Analyzer) pairwiseOverlap(colX, colY string) ([]float64, []float64) {
	cx, _ := a.filtered.Column(colX)
	cy, _ := a.filtered.Column(colY)
	var xs, ys []float64
	for row := 0; row < a.filtered.RowCount(); row++ {
		if cx.IsNull(row) || cy.IsNull(row) {
			continue
		}
		xs = append(xs, cx.Float(row))
		ys = append(ys, cy.Float(row))
	}
	return xs, ys
}

func correlatePair(xs, ys []float64) (pearson, spearman, kendall float64) {
	if len(xs) < 2 || isConstant(xs) || isConstant(ys) {
		nan := math.NaN()
		return nan, nan, nan
	}
	pearson = stat.Correlation(xs, ys, nil)
	spearman = stat.Correlation(ranks(xs), ranks(ys), nil)
	kendall = stat.Kendall(xs, ys, nil)
	return pearson, spearman, kendall
}

func isConstant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

// ranks assigns fractional ranks with ties averaged, the standard rank
// transform behind Spearman's rho.
func ranks(values []float64) []float64 {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return values[order[i]] < values[order[j]]
	})

	ranked := make([]float64, len(values))
	for i := 0; i < len(order); {
		j := i
		for j+1 < len(order) && values[order[j+1]] == values[order[i]] {
			j++
		}
		// Average rank over the tie run [i, j].
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranked[order[k]] = avg
		}
		i = j + 1
	}
	return ranked
}
