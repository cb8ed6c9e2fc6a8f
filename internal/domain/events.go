package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRowsLoaded        EventType = "RowsLoaded"
	EventLoadRequested     EventType = "LoadRequested"
	EventSelectionChanged  EventType = "SelectionChanged"
	EventDownloadRequested EventType = "DownloadRequested"
	EventDownloadCompleted EventType = "DownloadCompleted"
	EventError             EventType = "Error"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// LoadRequestedEvent asks the dataset service to (re)load rows
type LoadRequestedEvent struct {
	Path string // Empty means the built-in sample rows
}

func (e LoadRequestedEvent) Type() EventType { return EventLoadRequested }

// RowsLoadedEvent is emitted when a row collection is available
type RowsLoadedEvent struct {
	Source string
	Rows   []Row
	Reload bool // true when the same source was loaded before
}

func (e RowsLoadedEvent) Type() EventType { return EventRowsLoaded }

// SelectionChangedEvent is emitted after every reported selection change
type SelectionChangedEvent struct {
	Selected []int
	Rows     []Row
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// DownloadRequestedEvent asks the download service to write a manifest
type DownloadRequestedEvent struct {
	RequestID string
	Files     []ManifestEntry
}

func (e DownloadRequestedEvent) Type() EventType { return EventDownloadRequested }

// DownloadCompletedEvent is emitted when a manifest has been written
type DownloadCompletedEvent struct {
	RequestID    string
	ManifestPath string
	Files        []ManifestEntry
	Error        error
}

func (e DownloadCompletedEvent) Type() EventType { return EventDownloadCompleted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	DataFile string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
