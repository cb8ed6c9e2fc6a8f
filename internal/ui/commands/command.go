package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"filegrid/internal/domain"
	"filegrid/internal/download"
	"filegrid/internal/eventbus"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Bus eventbus.EventBus
}

// LoadCommand asks the dataset service for a row collection
type LoadCommand struct {
	ctx  *CommandContext
	path string
}

// NewLoadCommand creates a new load command
func NewLoadCommand(ctx *CommandContext, path string) *LoadCommand {
	return &LoadCommand{
		ctx:  ctx,
		path: path,
	}
}

// Execute publishes the load request from a tea command so the first
// request happens once the program is running
func (c *LoadCommand) Execute() tea.Cmd {
	if c.ctx.Bus == nil {
		return nil
	}
	bus, path := c.ctx.Bus, c.path
	return func() tea.Msg {
		bus.Publish(eventbus.LoadRequestedEvent{Path: path})
		return nil
	}
}

// DownloadCommand requests a manifest for the given files
type DownloadCommand struct {
	ctx   *CommandContext
	files []domain.ManifestEntry

	// RequestID is assigned on Execute
	RequestID string
}

// NewDownloadCommand creates a new download command
func NewDownloadCommand(ctx *CommandContext, files []domain.ManifestEntry) *DownloadCommand {
	return &DownloadCommand{
		ctx:   ctx,
		files: files,
	}
}

// Execute publishes the download request
func (c *DownloadCommand) Execute() tea.Cmd {
	if len(c.files) == 0 || c.ctx.Bus == nil {
		return nil
	}
	c.RequestID = download.NewRequestID()
	c.ctx.Bus.Publish(eventbus.DownloadRequestedEvent{
		RequestID: c.RequestID,
		Files:     c.files,
	})
	return nil
}
