package download

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"filegrid/internal/domain"
	"filegrid/internal/eventbus"
)

// ErrNothingSelected is returned for a request without files
var ErrNothingSelected = errors.New("no files selected")

// DownloadService writes download manifests for selected files
type DownloadService interface {
	Write(ctx context.Context, requestID string, files []domain.ManifestEntry) (string, error)
}

// downloadService is the concrete implementation
type downloadService struct {
	bus        eventbus.EventBus
	dir        string
	workerPool chan struct{} // Semaphore for limiting concurrent writes
}

// NewRequestID returns a fresh download request id
func NewRequestID() string {
	return uuid.NewString()
}

// NewDownloadService creates a download service writing into dir
func NewDownloadService(bus eventbus.EventBus, dir string) DownloadService {
	if dir == "" {
		dir = "."
	}
	ds := &downloadService{
		bus:        bus,
		dir:        dir,
		workerPool: make(chan struct{}, 2),
	}

	bus.Subscribe(eventbus.EventDownloadRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DownloadRequestedEvent); ok {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				path, err := ds.Write(ctx, event.RequestID, event.Files)
				if err != nil {
					log.Printf("Download %s failed: %v", event.RequestID, err)
				} else {
					log.Printf("Download %s: wrote %d files to %s", event.RequestID, len(event.Files), path)
				}
				ds.bus.Publish(eventbus.DownloadCompletedEvent{
					RequestID:    event.RequestID,
					ManifestPath: path,
					Files:        event.Files,
					Error:        err,
				})
			}()
		}
	})

	return ds
}

// Write stores the manifest for one request and returns its path
func (ds *downloadService) Write(ctx context.Context, requestID string, files []domain.ManifestEntry) (string, error) {
	if len(files) == 0 {
		return "", ErrNothingSelected
	}
	if requestID == "" {
		requestID = NewRequestID()
	}

	select {
	case ds.workerPool <- struct{}{}:
		defer func() { <-ds.workerPool }()
	case <-ctx.Done():
		return "", ctx.Err()
	}

	if err := os.MkdirAll(ds.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	data, err := toml.Marshal(domain.Manifest{RequestID: requestID, Files: files})
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(ds.dir, ManifestName(requestID))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return path, nil
}

// ManifestName returns the file name used for a request's manifest
func ManifestName(requestID string) string {
	return "filegrid-download-" + requestID + ".toml"
}

// ReadManifest loads a manifest written by Write
func ReadManifest(path string) (domain.Manifest, error) {
	var m domain.Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("failed to read manifest: %w", err)
	}
	if err := toml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return m, nil
}
