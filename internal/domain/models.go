package domain

import "strings"

// Row is one record shown in the grid. Field names are matched
// case-insensitively when rendering.
type Row map[string]string

// Get returns the value of field, matching the name case-insensitively.
// Missing fields yield "".
func (r Row) Get(field string) string {
	if v, ok := r[field]; ok {
		return v
	}
	for k, v := range r {
		if strings.EqualFold(k, field) {
			return v
		}
	}
	return ""
}

// Column describes one grid column
type Column struct {
	Display   string
	CellValue func(Row) string
}

// Value renders the column for row. A column without an accessor renders "".
func (c Column) Value(row Row) string {
	if c.CellValue == nil {
		return ""
	}
	return c.CellValue(row)
}

// DisablePredicate reports whether a row may not be selected
type DisablePredicate func(Row) bool

// ManifestEntry is one file written to a download manifest
type ManifestEntry struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

// Manifest records one download request
type Manifest struct {
	RequestID string          `toml:"request_id"`
	Files     []ManifestEntry `toml:"files"`
}
