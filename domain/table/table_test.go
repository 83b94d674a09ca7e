package table

import (
	"errors"
	"testing"
	"time"

	"tabprof/domain/core"
)

func TestNew_ValidatesShape(t *testing.T) {
	_, err := New(
		NewNumericColumn("a", []float64{1, 2}, nil),
		NewNumericColumn("b", []float64{1, 2, 3}, nil),
	)
	if !errors.Is(err, core.ErrColumnLengthMismatch) {
		t.Fatalf("expected length mismatch error, got %v", err)
	}

	_, err = New(
		NewNumericColumn("a", []float64{1}, nil),
		NewCategoricalColumn("a", []string{"x"}, nil),
	)
	if !errors.Is(err, core.ErrDuplicateColumn) {
		t.Fatalf("expected duplicate column error, got %v", err)
	}
}

func TestSelect_PreservesOrderAndRows(t *testing.T) {
	tbl, err := New(
		NewNumericColumn("a", []float64{1, 2, 3}, nil),
		NewCategoricalColumn("b", []string{"x", "y", "z"}, nil),
		NewNumericColumn("c", []float64{4, 5, 6}, nil),
	)
	if err != nil {
		t.Fatal(err)
	}

	sub, err := tbl.Select([]string{"c", "a"})
	if err != nil {
		t.Fatal(err)
	}
	names := sub.ColumnNames()
	if len(names) != 2 || names[0] != "c" || names[1] != "a" {
		t.Errorf("unexpected projection order: %v", names)
	}
	if sub.RowCount() != 3 {
		t.Errorf("projection changed row count: %d", sub.RowCount())
	}

	empty, err := tbl.Select(nil)
	if err != nil {
		t.Fatal(err)
	}
	if empty.RowCount() != 3 {
		t.Errorf("empty projection should keep row count, got %d", empty.RowCount())
	}

	if _, err := tbl.Select([]string{"missing"}); !errors.Is(err, core.ErrColumnNotFound) {
		t.Errorf("expected column-not-found, got %v", err)
	}
}

func TestColumn_NullsAndLabels(t *testing.T) {
	col := NewNumericColumn("v", []float64{1.5, 0, 3}, []bool{true, false, true})
	if col.NonNullCount() != 2 {
		t.Errorf("NonNullCount = %d, want 2", col.NonNullCount())
	}
	if got := col.FloatValues(); len(got) != 2 || got[0] != 1.5 || got[1] != 3 {
		t.Errorf("FloatValues = %v", got)
	}
	if _, ok := col.Label(1); ok {
		t.Error("null cell should have no label")
	}
	if label, ok := col.Label(0); !ok || label != "1.5" {
		t.Errorf("Label(0) = %q, %v", label, ok)
	}

	dt := NewDatetimeColumn("d",
		[]time.Time{time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)}, nil)
	if label, _ := dt.Label(0); label != "2023-05-01 00:00:00" {
		t.Errorf("datetime label = %q", label)
	}
}

func TestGroupRows_SkipsNullsKeepsEncounterOrder(t *testing.T) {
	tbl, err := New(
		NewCategoricalColumn("g", []string{"b", "a", "b", "", "a"},
			[]bool{true, true, true, false, true}),
	)
	if err != nil {
		t.Fatal(err)
	}
	groups, err := GroupRows(tbl, []string{"g"})
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Key[0] != "b" || len(groups[0].Rows) != 2 {
		t.Errorf("first group = %+v", groups[0])
	}
	if groups[1].Key[0] != "a" || len(groups[1].Rows) != 2 {
		t.Errorf("second group = %+v", groups[1])
	}

	if _, err := GroupRows(tbl, []string{"nope"}); !errors.Is(err, core.ErrColumnNotFound) {
		t.Errorf("expected column-not-found, got %v", err)
	}
}

func TestCrosstab_Counts(t *testing.T) {
	tbl, err := New(
		NewCategoricalColumn("region", []string{"east", "east", "west", "west", "east"}, nil),
		NewCategoricalColumn("status", []string{"ok", "bad", "ok", "ok", "ok"}, nil),
	)
	if err != nil {
		t.Fatal(err)
	}
	ct, err := Crosstab(tbl, "region", "status")
	if err != nil {
		t.Fatal(err)
	}
	if got := ct.Count("east", "ok"); got != 2 {
		t.Errorf("east/ok = %d, want 2", got)
	}
	if got := ct.Count("east", "bad"); got != 1 {
		t.Errorf("east/bad = %d, want 1", got)
	}
	if got := ct.Count("west", "ok"); got != 2 {
		t.Errorf("west/ok = %d, want 2", got)
	}
	if got := ct.Count("west", "bad"); got != 0 {
		t.Errorf("west/bad = %d, want 0", got)
	}

	total := 0
	for _, row := range ct.Counts {
		for _, n := range row {
			total += n
		}
	}
	if total != tbl.RowCount() {
		t.Errorf("crosstab total %d != row count %d", total, tbl.RowCount())
	}
}
