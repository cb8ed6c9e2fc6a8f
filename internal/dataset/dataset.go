package dataset

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"filegrid/internal/domain"
	"filegrid/internal/eventbus"
)

// SampleSource names the built-in row set
const SampleSource = "<sample>"

// DatasetService loads row collections for the grid
type DatasetService interface {
	Load(ctx context.Context, path string) ([]domain.Row, error)
	Request(ctx context.Context, path string)
}

// datasetService is the concrete implementation
type datasetService struct {
	bus        eventbus.EventBus
	mu         sync.Mutex
	lastSource string
}

// NewDatasetService creates a dataset service listening for load requests
func NewDatasetService(bus eventbus.EventBus) DatasetService {
	ds := &datasetService{bus: bus}

	bus.Subscribe(eventbus.EventLoadRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.LoadRequestedEvent); ok {
			ds.Request(context.Background(), event.Path)
		}
	})

	return ds
}

// Request loads path in the background and publishes the result
func (ds *datasetService) Request(ctx context.Context, path string) {
	go func() {
		rows, err := ds.Load(ctx, path)
		if err != nil {
			log.Printf("Failed to load rows from %s: %v", sourceName(path), err)
			ds.bus.Publish(eventbus.ErrorEvent{
				Message: fmt.Sprintf("Failed to load %s", sourceName(path)),
				Err:     err,
			})
			return
		}

		source := sourceName(path)
		ds.mu.Lock()
		reload := ds.lastSource == source
		ds.lastSource = source
		ds.mu.Unlock()

		log.Printf("Loaded %d rows from %s", len(rows), source)
		ds.bus.Publish(eventbus.RowsLoadedEvent{
			Source: source,
			Rows:   rows,
			Reload: reload,
		})
	}()
}

// Load reads rows from path. An empty path yields the sample rows.
func (ds *datasetService) Load(ctx context.Context, path string) ([]domain.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == "" {
		return SampleRows(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	return Decode(data)
}

type document struct {
	Rows []map[string]any `toml:"rows"`
}

// Decode parses a TOML document of [[rows]] tables. Non-string values are
// formatted with fmt.
func Decode(data []byte) ([]domain.Row, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}

	rows := make([]domain.Row, 0, len(doc.Rows))
	for _, raw := range doc.Rows {
		row := make(domain.Row, len(raw))
		for k, v := range raw {
			switch val := v.(type) {
			case string:
				row[k] = val
			default:
				row[k] = fmt.Sprint(val)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Encode writes rows as a TOML document Decode can read back
func Encode(rows []domain.Row) ([]byte, error) {
	doc := struct {
		Rows []domain.Row `toml:"rows"`
	}{Rows: rows}
	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rows: %w", err)
	}
	return data, nil
}

func sourceName(path string) string {
	if path == "" {
		return SampleSource
	}
	return path
}

// SampleRows returns the built-in file download rows
func SampleRows() []domain.Row {
	return []domain.Row{
		{"name": "smss.exe", "device": "Mario", "path": `\Device\HarddiskVolume2\Windows\System32\smss.exe`, "status": "scheduled"},
		{"name": "netsh.exe", "device": "Luigi", "path": `\Device\HarddiskVolume2\Windows\System32\netsh.exe`, "status": "available"},
		{"name": "uxtheme.dll", "device": "Peach", "path": `\Device\HarddiskVolume1\Windows\System32\uxtheme.dll`, "status": "available"},
		{"name": "aries.sys", "device": "Daisy", "path": `\Device\HarddiskVolume1\Windows\System32\aries.sys`, "status": "scheduled"},
		{"name": "cryptbase.dll", "device": "Yoshi", "path": `\Device\HarddiskVolume1\Windows\System32\cryptbase.dll`, "status": "scheduled"},
		{"name": "7za.exe", "device": "Toad", "path": `\Device\HarddiskVolume1\temp\7za.exe`, "status": "scheduled"},
	}
}
