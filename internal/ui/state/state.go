package state

import (
	"filegrid/internal/domain"
)

// StatusKind colours the status line
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// AppState contains the host application state around the grid.
// Selection itself is owned by the grid's selection controller.
type AppState struct {
	// Row data
	Source string       // where Rows came from
	Rows   []domain.Row // current row collection
	Loaded bool         // whether any collection was mounted yet

	// Last selection reported by the grid
	Reported []int

	// Download state
	Pending      []domain.ManifestEntry // files awaiting confirmation
	Downloaded   []domain.ManifestEntry // files in the last manifest
	ManifestPath string

	// UI state
	StatusMessage string
	StatusKind    StatusKind
	InPagerMode   bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Rows: make([]domain.Row, 0),
	}
}

// Row operations

// SetRows replaces the row collection and reports whether it counts as a
// reload of an already mounted collection
func (s *AppState) SetRows(source string, rows []domain.Row, reload bool) bool {
	reload = reload && s.Loaded
	s.Source = source
	s.Rows = rows
	s.Loaded = true
	if !reload {
		s.Reported = nil
	}
	return reload
}

// Row returns row i if it exists
func (s *AppState) Row(i int) (domain.Row, bool) {
	if i < 0 || i >= len(s.Rows) {
		return nil, false
	}
	return s.Rows[i], true
}

// RowsAt returns the rows at the given indices, skipping any out of range
func (s *AppState) RowsAt(indices []int) []domain.Row {
	rows := make([]domain.Row, 0, len(indices))
	for _, i := range indices {
		if row, ok := s.Row(i); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// Selection operations

// SetReported stores the selection reported by the grid
func (s *AppState) SetReported(selected []int) {
	s.Reported = append([]int(nil), selected...)
}

// SelectedEntries lists the files of the reported selection
func (s *AppState) SelectedEntries() []domain.ManifestEntry {
	rows := s.RowsAt(s.Reported)
	entries := make([]domain.ManifestEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.ManifestEntry{
			Name: row.Get("name"),
			Path: row.Get("path"),
		})
	}
	return entries
}

// Download operations

// TakePending returns and clears the files awaiting confirmation
func (s *AppState) TakePending() []domain.ManifestEntry {
	files := s.Pending
	s.Pending = nil
	return files
}

// SetDownloaded records a written manifest
func (s *AppState) SetDownloaded(path string, files []domain.ManifestEntry) {
	s.ManifestPath = path
	s.Downloaded = files
}

// Status operations

// SetStatus sets the status line
func (s *AppState) SetStatus(msg string, kind StatusKind) {
	s.StatusMessage = msg
	s.StatusKind = kind
}

// ClearStatus clears the status line
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusKind = StatusInfo
}
