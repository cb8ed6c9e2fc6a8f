package handlers

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filegrid/internal/domain"
	"filegrid/internal/download"
	"filegrid/internal/eventbus"
	"filegrid/internal/ui/state"
)

type mount struct {
	total  int
	reload bool
}

func newHandler() (*EventHandler, *state.AppState, *[]mount) {
	s := state.NewAppState()
	var mounts []mount
	h := NewEventHandler(s, func(total int, reload bool) {
		mounts = append(mounts, mount{total: total, reload: reload})
	})
	return h, s, &mounts
}

func writeManifest(t *testing.T, m domain.Manifest) string {
	t.Helper()
	data, err := toml.Marshal(m)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), download.ManifestName(m.RequestID))
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestHandleRowsLoaded(t *testing.T) {
	h, s, mounts := newHandler()
	rows := []domain.Row{{"name": "a"}, {"name": "b"}}

	cmd := h.HandleEvent(eventbus.RowsLoadedEvent{Source: "files.toml", Rows: rows, Reload: true})
	assert.NotNil(t, cmd)
	assert.Equal(t, "files.toml", s.Source)
	assert.Equal(t, "Loaded 2 rows", s.StatusMessage)

	h.HandleEvent(eventbus.RowsLoadedEvent{Source: "files.toml", Rows: rows[:1], Reload: true})

	require.Len(t, *mounts, 2)
	// A collection is only a reload once something was mounted
	assert.Equal(t, mount{total: 2, reload: false}, (*mounts)[0])
	assert.Equal(t, mount{total: 1, reload: true}, (*mounts)[1])
}

func TestHandleDownloadCompleted(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, s, _ := newHandler()
		files := []domain.ManifestEntry{{Name: "netsh.exe", Path: `\Device\netsh.exe`}}
		path := writeManifest(t, domain.Manifest{RequestID: "r1", Files: files})

		cmd := h.HandleEvent(eventbus.DownloadCompletedEvent{RequestID: "r1", ManifestPath: path, Files: files})
		assert.NotNil(t, cmd)
		assert.Equal(t, path, s.ManifestPath)
		assert.Equal(t, files, s.Downloaded)
		assert.Equal(t, "Downloaded 1 files", s.StatusMessage)
		assert.Equal(t, state.StatusSuccess, s.StatusKind)
	})

	t.Run("panel follows manifest contents", func(t *testing.T) {
		h, s, _ := newHandler()
		written := []domain.ManifestEntry{{Name: "uxtheme.dll"}}
		path := writeManifest(t, domain.Manifest{RequestID: "r2", Files: written})

		h.HandleEvent(eventbus.DownloadCompletedEvent{
			RequestID:    "r2",
			ManifestPath: path,
			Files:        []domain.ManifestEntry{{Name: "netsh.exe"}, {Name: "uxtheme.dll"}},
		})
		assert.Equal(t, written, s.Downloaded)
	})

	t.Run("unreadable manifest", func(t *testing.T) {
		h, s, _ := newHandler()

		cmd := h.HandleEvent(eventbus.DownloadCompletedEvent{
			ManifestPath: filepath.Join(t.TempDir(), "missing.toml"),
			Files:        []domain.ManifestEntry{{Name: "netsh.exe"}},
		})
		assert.Nil(t, cmd)
		assert.Empty(t, s.ManifestPath)
		assert.Empty(t, s.Downloaded)
		assert.Contains(t, s.StatusMessage, "Download failed")
		assert.Equal(t, state.StatusError, s.StatusKind)
	})

	t.Run("nothing selected", func(t *testing.T) {
		h, s, _ := newHandler()

		h.HandleEvent(eventbus.DownloadCompletedEvent{Error: download.ErrNothingSelected})
		assert.Equal(t, "No files selected", s.StatusMessage)
		assert.Equal(t, state.StatusInfo, s.StatusKind)
		assert.Empty(t, s.ManifestPath)
	})

	t.Run("failure", func(t *testing.T) {
		h, s, _ := newHandler()

		cmd := h.HandleEvent(eventbus.DownloadCompletedEvent{Error: errors.New("disk full")})
		assert.Nil(t, cmd)
		assert.Equal(t, "Download failed: disk full", s.StatusMessage)
		assert.Equal(t, state.StatusError, s.StatusKind)
	})
}

func TestHandleErrorEvent(t *testing.T) {
	h, s, _ := newHandler()

	h.HandleEvent(eventbus.ErrorEvent{Message: "Failed to load files.toml", Err: errors.New("no such file")})
	assert.Equal(t, "Failed to load files.toml: no such file", s.StatusMessage)
	assert.Equal(t, state.StatusError, s.StatusKind)
}

func TestClearStatusAfter(t *testing.T) {
	cmd := ClearStatusAfter(0)
	require.NotNil(t, cmd)
	assert.Equal(t, ClearStatusMsg{}, cmd())
}
