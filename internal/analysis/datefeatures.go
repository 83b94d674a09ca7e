package analysis

import (
	"strconv"

	"tabprof/domain/profile"
	"tabprof/domain/table"
	"tabprof/internal/profiling"
)

// Suffixes of the four companion columns derived from each datetime
// column during feature expansion.
const (
	suffixYear      = "_yr"
	suffixMonth     = "_month"
	suffixDate      = "_date"
	suffixMonthYear = "_mon_yr"
)

// DateDistribution holds the frequency distributions of the true
// year, month, day-of-month and month-year values of one datetime
// column.
type DateDistribution struct {
	Column    string               `json:"column"`
	Years     []profile.ValueCount `json:"yrs"`
	Months    []profile.ValueCount `json:"months"`
	Days      []profile.ValueCount `json:"days"`
	MonthYear []profile.ValueCount `json:"month_yr"`
}

// DateDistribution derives four companion columns for every datetime
// column (year, month, calendar date, month/year label) and returns the
// per-column frequency distributions together with the augmented table
// the cross-tabulation phase consumes. Datetime columns dropped by the
// eligibility filter still participate; their values come from the raw
// table.
func (a *Analyzer) DateDistribution() ([]DateDistribution, *table.Table, error) {
	dists := make([]DateDistribution, 0, len(a.types.Datetime))
	augmented := a.filtered

	for _, name := range a.types.Datetime {
		col, ok := a.raw.Column(name)
		if !ok {
			// Typed sets are built from the same raw table; absence
			// here means the metadata is stale.
			continue
		}

		n := col.Len()
		years := make([]string, n)
		months := make([]string, n)
		dates := make([]string, n)
		monYears := make([]string, n)
		valid := make([]bool, n)

		var yearLabels, monthLabels, dayLabels, monthYearLabels []string
		for i := 0; i < n; i++ {
			if col.IsNull(i) {
				continue
			}
			v := col.Time(i)
			yr := strconv.Itoa(v.Year())
			mon := strconv.Itoa(int(v.Month()))
			valid[i] = true
			years[i] = yr
			months[i] = mon
			dates[i] = v.Format("2006-01-02")
			monYears[i] = mon + "/" + yr

			yearLabels = append(yearLabels, yr)
			monthLabels = append(monthLabels, mon)
			dayLabels = append(dayLabels, strconv.Itoa(v.Day()))
			monthYearLabels = append(monthYearLabels, mon+"-"+yr)
		}

		var err error
		augmented, err = augmented.WithColumns(
			table.NewCategoricalColumn(name+suffixYear, years, valid),
			table.NewCategoricalColumn(name+suffixMonth, months, valid),
			table.NewCategoricalColumn(name+suffixDate, dates, valid),
			table.NewCategoricalColumn(name+suffixMonthYear, monYears, valid),
		)
		if err != nil {
			return nil, nil, err
		}

		dists = append(dists, DateDistribution{
			Column:    name,
			Years:     profiling.CountValues(yearLabels),
			Months:    profiling.CountValues(monthLabels),
			Days:      profiling.CountValues(dayLabels),
			MonthYear: profiling.CountValues(monthYearLabels),
		})
	}
	return dists, augmented, nil
}

// dateDerivedNames returns the set of derived column names present
// after feature expansion.
func (a *Analyzer) dateDerivedNames() map[string]bool {
	derived := make(map[string]bool, 4*len(a.types.Datetime))
	for _, name := range a.types.Datetime {
		derived[name+suffixYear] = true
		derived[name+suffixMonth] = true
		derived[name+suffixDate] = true
		derived[name+suffixMonthYear] = true
	}
	return derived
}
