package app

import (
	"tabprof/domain/core"
	"tabprof/domain/table"
)

// Dataset is a raw table registered with the façade layer, carrying an
// identifier and provenance. The table itself is owned by the caller
// and only read.
type Dataset struct {
	ID        core.ID        `json:"id"`
	Name      string         `json:"name"`
	Source    string         `json:"source"` // "csv", "excel", "memory"
	Table     *table.Table   `json:"-"`
	CreatedAt core.Timestamp `json:"created_at"`
}

// NewDataset wraps a table built in memory
func NewDataset(name string, tbl *table.Table) *Dataset {
	return &Dataset{
		ID:        core.NewID(),
		Name:      name,
		Source:    "memory",
		Table:     tbl,
		CreatedAt: core.Now(),
	}
}
