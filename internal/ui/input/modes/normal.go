package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"filegrid/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "next"}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "previous"}}, true

	case key.Matches(msg, m.keys.Toggle):
		if ctx.EnterTogglesActive() {
			if _, ok := ctx.ActiveRow(); ok {
				return []types.Action{types.ToggleActiveRowAction{}}, true
			}
		}
		return []types.Action{types.ToggleRowAction{Row: types.KeyboardToggleRow}}, true

	case key.Matches(msg, m.keys.SelectAll):
		if ctx.TotalRows() == 0 {
			return nil, false
		}
		return []types.Action{types.ToggleSelectAllAction{}}, true

	case key.Matches(msg, m.keys.Download):
		if ctx.SelectedCount() == 0 {
			return []types.Action{types.RequestDownloadAction{}}, true
		}
		return []types.Action{
			types.RequestDownloadAction{},
			types.ChangeModeAction{Mode: types.ModeConfirmDownload},
		}, true

	case key.Matches(msg, m.keys.View):
		if !ctx.HasManifest() {
			return nil, false
		}
		return []types.Action{types.ViewManifestAction{}}, true

	case key.Matches(msg, m.keys.Reload):
		return []types.Action{types.ReloadAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
