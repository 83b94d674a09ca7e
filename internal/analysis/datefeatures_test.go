package analysis

import (
	"testing"

	"tabprof/domain/profile"
	"tabprof/internal/testkit"
)

func countFor(counts []profile.ValueCount, value string) int {
	for _, vc := range counts {
		if vc.Value == value {
			return vc.Count
		}
	}
	return 0
}

func TestDateDistribution_DerivedColumnsAppended(t *testing.T) {
	a, err := New(testkit.OrdersTable(t))
	if err != nil {
		t.Fatal(err)
	}
	dists, augmented, err := a.DateDistribution()
	if err != nil {
		t.Fatal(err)
	}
	if len(dists) != 1 {
		t.Fatalf("expected 1 distribution, got %d", len(dists))
	}

	for _, name := range []string{
		"ordered_at_yr", "ordered_at_month", "ordered_at_date", "ordered_at_mon_yr",
	} {
		if !augmented.HasColumn(name) {
			t.Errorf("augmented table missing derived column %s", name)
		}
	}
	if augmented.RowCount() != 8 {
		t.Errorf("augmented row count = %d, want 8", augmented.RowCount())
	}
}

func TestDateDistribution_MonthIsActualMonth(t *testing.T) {
	a, err := New(testkit.OrdersTable(t))
	if err != nil {
		t.Fatal(err)
	}
	_, augmented, err := a.DateDistribution()
	if err != nil {
		t.Fatal(err)
	}

	// First order is 2023-01-10: the month column carries the month,
	// not a second copy of the year.
	mcol, _ := augmented.Column("ordered_at_month")
	if label, _ := mcol.Label(0); label != "1" {
		t.Errorf("month label = %q, want \"1\"", label)
	}
	ycol, _ := augmented.Column("ordered_at_yr")
	if label, _ := ycol.Label(0); label != "2023" {
		t.Errorf("year label = %q, want \"2023\"", label)
	}
	dcol, _ := augmented.Column("ordered_at_date")
	if label, _ := dcol.Label(0); label != "2023-01-10" {
		t.Errorf("date label = %q", label)
	}
	mycol, _ := augmented.Column("ordered_at_mon_yr")
	if label, _ := mycol.Label(0); label != "1/2023" {
		t.Errorf("month/year label = %q, want \"1/2023\"", label)
	}
}

func TestDateDistribution_Counts(t *testing.T) {
	a, err := New(testkit.OrdersTable(t))
	if err != nil {
		t.Fatal(err)
	}
	dists, _, err := a.DateDistribution()
	if err != nil {
		t.Fatal(err)
	}
	d := dists[0]

	if got := countFor(d.Years, "2023"); got != 5 {
		t.Errorf("year 2023 count = %d, want 5", got)
	}
	if got := countFor(d.Years, "2024"); got != 3 {
		t.Errorf("year 2024 count = %d, want 3", got)
	}
	if got := countFor(d.Months, "2"); got != 3 {
		t.Errorf("month 2 count = %d, want 3", got)
	}
	if got := countFor(d.Days, "10"); got != 1 {
		t.Errorf("day 10 count = %d, want 1", got)
	}
	if got := countFor(d.MonthYear, "2-2023"); got != 3 {
		t.Errorf("month-year 2-2023 count = %d, want 3", got)
	}
	if got := countFor(d.MonthYear, "3-2024"); got != 3 {
		t.Errorf("month-year 3-2024 count = %d, want 3", got)
	}
}

func TestDateDistribution_NoDatetimeColumns(t *testing.T) {
	a, err := New(testkit.RegionSalesTable(t))
	if err != nil {
		t.Fatal(err)
	}
	dists, augmented, err := a.DateDistribution()
	if err != nil {
		t.Fatal(err)
	}
	if len(dists) != 0 {
		t.Errorf("expected no distributions, got %d", len(dists))
	}
	if augmented.ColumnCount() != a.Filtered().ColumnCount() {
		t.Error("augmented table should be unchanged without datetime columns")
	}
}
