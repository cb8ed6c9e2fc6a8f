package viewmodels

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"

	"filegrid/internal/domain"
	inputtypes "filegrid/internal/ui/input/types"
	"filegrid/internal/ui/logic"
	"filegrid/internal/ui/services/selection"
	"filegrid/internal/ui/state"
	"filegrid/internal/ui/views"
)

// ToolbarItems are the host entries shown after the selection heading
var ToolbarItems = []string{"[d] Download Files"}

// ViewModel transforms application and grid state into view-ready data
type ViewModel struct {
	state   *state.AppState
	grid    *selection.Controller
	columns []domain.Column
	disable domain.DisablePredicate
	width   int
	height  int
	help    help.Model

	countReported bool
}

// Option configures a ViewModel
type Option func(*ViewModel)

// WithReportedCount makes the toolbar heading count the host's reported
// selection instead of the grid's own
func WithReportedCount() Option {
	return func(vm *ViewModel) {
		vm.countReported = true
	}
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, grid *selection.Controller, columns []domain.Column, disable domain.DisablePredicate, opts ...Option) *ViewModel {
	vm := &ViewModel{
		state:   appState,
		grid:    grid,
		columns: columns,
		disable: disable,
		help:    help.New(),
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// ToggleFullHelp switches between the short and full help footer
func (vm *ViewModel) ToggleFullHelp() {
	vm.help.ShowAll = !vm.help.ShowAll
}

// ShowingFullHelp reports whether the full help footer is shown
func (vm *ViewModel) ShowingFullHelp() bool {
	return vm.help.ShowAll
}

// BuildViewState creates a ViewState for rendering. The disable predicate
// is evaluated on every call.
func (vm *ViewModel) BuildViewState(mode inputtypes.Mode, keys inputtypes.KeyMap) views.ViewState {
	rows := vm.state.Rows
	disabled := logic.DisabledRows(rows, vm.disable)
	checked := make([]bool, len(rows))
	for i := range rows {
		checked[i] = vm.grid.RowChecked(i, disabled[i])
	}
	active, hasActive := vm.grid.ActiveRow()
	snapshot := vm.grid.State()

	vs := views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Source:        vm.state.Source,
		Columns:       vm.columns,
		Rows:          rows,
		Disabled:      disabled,
		Checked:       checked,
		ActiveRow:     active,
		HasActive:     hasActive,
		SelectAll:     vm.grid.SelectAllDisplay(),
		AllSelected:   snapshot.AllSelected(),
		SelectedCount: snapshot.SelectedCount(),
		ToolbarItems:  ToolbarItems,
		StatusMessage: vm.state.StatusMessage,
		StatusKind:    vm.state.StatusKind,
		Downloaded:    vm.state.Downloaded,
		ManifestPath:  vm.state.ManifestPath,
	}
	if vm.countReported {
		vs.AllSelected = false
		vs.SelectedCount = len(vm.state.Reported)
	}

	if mode == inputtypes.ModeConfirmDownload {
		vs.ConfirmPrompt = fmt.Sprintf("Download %d files? (y/n)", len(vm.state.Pending))
		vs.HelpView = vm.help.View(inputtypes.ConfirmKeyMap{KeyMap: keys})
	} else {
		vs.HelpView = vm.help.View(keys)
	}
	return vs
}
