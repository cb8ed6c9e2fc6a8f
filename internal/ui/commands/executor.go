package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"filegrid/internal/domain"
	"filegrid/internal/eventbus"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{Bus: bus},
	}
}

// ExecuteLoad creates and executes a load command
func (e *Executor) ExecuteLoad(path string) tea.Cmd {
	cmd := NewLoadCommand(e.ctx, path)
	return cmd.Execute()
}

// ExecuteDownload creates and executes a download command and returns the
// request ID, empty when nothing was requested
func (e *Executor) ExecuteDownload(files []domain.ManifestEntry) (string, tea.Cmd) {
	cmd := NewDownloadCommand(e.ctx, files)
	teaCmd := cmd.Execute()
	return cmd.RequestID, teaCmd
}
