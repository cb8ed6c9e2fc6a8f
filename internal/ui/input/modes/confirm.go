package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"filegrid/internal/ui/input/types"
)

// ConfirmMode asks for confirmation before a download is requested
type ConfirmMode struct {
	keys types.KeyMap
}

func NewConfirmMode(keys types.KeyMap) *ConfirmMode {
	return &ConfirmMode{keys: keys}
}

func (m *ConfirmMode) Name() string {
	return "confirm-download"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Confirm):
		return []types.Action{
			types.ConfirmDownloadAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case key.Matches(msg, m.keys.Cancel):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	// Swallow everything else while the prompt is open
	return nil, true
}
