package handlers

import (
	"errors"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"filegrid/internal/download"
	"filegrid/internal/eventbus"
	"filegrid/internal/ui/state"
)

// StatusTimeout is how long transient status messages stay visible
const StatusTimeout = 3 * time.Second

// ClearStatusMsg clears a transient status message
type ClearStatusMsg struct{}

// ClearStatusAfter returns a command that clears the status line after d
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state   *state.AppState
	mountFn func(totalRows int, reload bool)
}

// NewEventHandler creates a new event handler. mountFn is called after
// every new row collection so the grid can remount or resize.
func NewEventHandler(appState *state.AppState, mountFn func(totalRows int, reload bool)) *EventHandler {
	return &EventHandler{
		state:   appState,
		mountFn: mountFn,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.RowsLoadedEvent:
		reload := h.state.SetRows(e.Source, e.Rows, e.Reload)
		if h.mountFn != nil {
			h.mountFn(len(e.Rows), reload)
		}
		h.state.SetStatus(fmt.Sprintf("Loaded %d rows", len(e.Rows)), state.StatusInfo)
		return ClearStatusAfter(StatusTimeout)

	case eventbus.DownloadCompletedEvent:
		if e.Error != nil {
			if errors.Is(e.Error, download.ErrNothingSelected) {
				h.state.SetStatus("No files selected", state.StatusInfo)
				return ClearStatusAfter(StatusTimeout)
			}
			h.state.SetStatus(fmt.Sprintf("Download failed: %v", e.Error), state.StatusError)
			return nil
		}
		// The panel lists what actually landed in the manifest
		manifest, err := download.ReadManifest(e.ManifestPath)
		if err != nil {
			log.Printf("Download %s: %v", e.RequestID, err)
			h.state.SetStatus(fmt.Sprintf("Download failed: %v", err), state.StatusError)
			return nil
		}
		h.state.SetDownloaded(e.ManifestPath, manifest.Files)
		h.state.SetStatus(fmt.Sprintf("Downloaded %d files", len(manifest.Files)), state.StatusSuccess)
		return ClearStatusAfter(StatusTimeout)

	case eventbus.ErrorEvent:
		msg := e.Message
		if e.Err != nil {
			msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		h.state.SetStatus(msg, state.StatusError)

	default:
		log.Printf("Unhandled event %s", event.Type())
	}

	return nil
}
