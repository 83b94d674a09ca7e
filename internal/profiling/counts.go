package profiling

import (
	"sort"

	"tabprof/domain/profile"
	"tabprof/domain/table"
)

// TopN is the truncation size for top-value summaries
const TopN = 5

// CountLabels tallies the non-null labels of a column, sorted by
// descending count with ties kept in first-encounter order.
func CountLabels(col *table.Column) []profile.ValueCount {
	labels := make([]string, 0, col.Len())
	for i := 0; i < col.Len(); i++ {
		if label, ok := col.Label(i); ok {
			labels = append(labels, label)
		}
	}
	return CountValues(labels)
}

// CountValues tallies a label slice with the same ordering contract as
// CountLabels.
func CountValues(labels []string) []profile.ValueCount {
	index := make(map[string]int)
	var counts []profile.ValueCount
	for _, label := range labels {
		i, ok := index[label]
		if !ok {
			i = len(counts)
			index[label] = i
			counts = append(counts, profile.ValueCount{Value: label})
		}
		counts[i].Count++
	}
	// Stable sort preserves first-encounter order among equal counts.
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// TopValues truncates a sorted count list to the top n entries
func TopValues(counts []profile.ValueCount, n int) []profile.ValueCount {
	if len(counts) <= n {
		return counts
	}
	return counts[:n]
}
