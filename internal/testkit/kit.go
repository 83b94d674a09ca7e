package testkit

import (
	"math"
	"testing"
	"time"

	"tabprof/domain/table"
)

// SalesTable is the canonical eligibility fixture. Both numeric
// columns are entirely unique and fall to the eligibility filter;
// only status survives.
//
//	id:     1, 2, 3        (unique -> not eligible)
//	status: A, A, B        (eligible categorical)
//	amount: 1, 2, 3        (unique -> not eligible)
func SalesTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New(
		table.NewNumericColumn("id", []float64{1, 2, 3}, nil),
		table.NewCategoricalColumn("status", []string{"A", "A", "B"}, nil),
		table.NewNumericColumn("amount", []float64{1, 2, 3}, nil),
	)
	if err != nil {
		t.Fatalf("building sales fixture: %v", err)
	}
	return tbl
}

// RegionSalesTable is the 6-row group-aggregate fixture:
//
//	region: north, north, north, south, south, south
//	sales:  10, 20, 30, 5, 5, 20
func RegionSalesTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New(
		table.NewCategoricalColumn("region",
			[]string{"north", "north", "north", "south", "south", "south"}, nil),
		table.NewNumericColumn("sales",
			[]float64{10, 20, 30, 5, 5, 20}, nil),
	)
	if err != nil {
		t.Fatalf("building region fixture: %v", err)
	}
	return tbl
}

// OrdersTable is a mixed-type fixture with nulls and a datetime
// column, for date derivation and fan-out tests. 8 rows.
func OrdersTable(t *testing.T) *table.Table {
	t.Helper()
	dates := []time.Time{
		date(2023, 1, 10), date(2023, 1, 15), date(2023, 2, 1), date(2023, 2, 20),
		date(2023, 2, 25), date(2024, 3, 5), date(2024, 3, 6), date(2024, 3, 7),
	}
	amountValid := []bool{true, true, true, true, true, true, false, true}
	tbl, err := table.New(
		table.NewCategoricalColumn("region",
			[]string{"east", "west", "east", "west", "east", "west", "east", "east"}, nil),
		table.NewNumericColumn("amount",
			[]float64{100, 250, 75, 300, 120, 80, math.NaN(), 95}, amountValid),
		table.NewDatetimeColumn("ordered_at", dates, nil),
	)
	if err != nil {
		t.Fatalf("building orders fixture: %v", err)
	}
	return tbl
}

// EmptyTable has columns but zero rows
func EmptyTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New(
		table.NewCategoricalColumn("status", nil, []bool{}),
		table.NewNumericColumn("amount", nil, []bool{}),
	)
	if err != nil {
		t.Fatalf("building empty fixture: %v", err)
	}
	return tbl
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
