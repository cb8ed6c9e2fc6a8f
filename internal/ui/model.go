package ui

import (
	"fmt"
	"log"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"filegrid/internal/config"
	"filegrid/internal/domain"
	"filegrid/internal/eventbus"
	"filegrid/internal/ui/commands"
	"filegrid/internal/ui/handlers"
	"filegrid/internal/ui/input"
	inputtypes "filegrid/internal/ui/input/types"
	"filegrid/internal/ui/logic"
	"filegrid/internal/ui/services/selection"
	"filegrid/internal/ui/state"
	"filegrid/internal/ui/viewmodels"
	"filegrid/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	width  int
	height int

	viewModel    *viewmodels.ViewModel
	renderer     *views.Renderer
	inputHandler *input.Handler
	eventHandler *handlers.EventHandler
	executor     *commands.Executor
	pager        *PagerOps

	// Grid
	columns   []domain.Column
	disable   domain.DisablePredicate
	selection *selection.Controller

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        state.NewAppState(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(inputtypes.DefaultKeyMap()),
		executor:     commands.NewExecutor(bus),
		pager:        NewPagerOps(),
		columns:      logic.BuildColumns(cfg.Columns),
		disable:      logic.DisableWhen(cfg.Selection.DisableWhen),
	}

	bound := selection.BoundSelected
	if cfg.Navigation.Bound == config.BoundRows {
		bound = selection.BoundRows
	}
	m.selection = selection.NewController(0,
		selection.WithBound(bound),
		selection.WithNotifier(m.onSelect),
	)
	m.eventHandler = handlers.NewEventHandler(m.state, m.mount)
	var vmOpts []viewmodels.Option
	if !cfg.Selection.SelectAllIncludesDisabled {
		vmOpts = append(vmOpts, viewmodels.WithReportedCount())
	}
	m.viewModel = viewmodels.NewViewModel(m.state, m.selection, m.columns, m.disable, vmOpts...)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init requests the first row collection
func (m *Model) Init() tea.Cmd {
	return m.executor.ExecuteLoad(m.config.DataFile)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		ctx := &ModelContext{model: m}
		prevMode := m.inputHandler.CurrentMode()
		actions := m.inputHandler.HandleKey(msg, ctx)
		if m.inputHandler.CurrentMode() != prevMode {
			log.Printf("Input mode: %s", m.inputHandler.ModeName())
		}

		var cmds []tea.Cmd
		for _, action := range actions {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		// Leaving the prompt drops whatever was awaiting confirmation
		if m.inputHandler.CurrentMode() == inputtypes.ModeNormal {
			m.state.Pending = nil
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.InPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.viewState())
}

func (m *Model) viewState() views.ViewState {
	return m.viewModel.BuildViewState(m.inputHandler.CurrentMode(), m.inputHandler.Keys())
}

// Selection returns the selection most recently reported by the grid
func (m *Model) Selection() []int {
	return append([]int(nil), m.state.Reported...)
}

// mount seeds the grid for a new row collection. A reload keeps the
// selection that still fits, anything else starts fresh.
func (m *Model) mount(totalRows int, reload bool) {
	if !reload {
		m.selection.Remount(totalRows)
		return
	}
	m.selection.Resize(totalRows)

	// The refreshed rows may disable a different set
	if selected := m.filterSelection(m.selection.DerivedSelection()); !slices.Equal(selected, m.state.Reported) {
		m.report(selected)
	}
}

// onSelect receives grid selection changes
func (m *Model) onSelect(_ tea.Msg, selected []int) {
	m.report(m.filterSelection(selected))
}

// filterSelection drops disabled rows when select-all is configured not to
// include them
func (m *Model) filterSelection(selected []int) []int {
	if m.config.Selection.SelectAllIncludesDisabled {
		return selected
	}
	return logic.FilterEnabled(selected, logic.DisabledRows(m.state.Rows, m.disable))
}

func (m *Model) report(selected []int) {
	m.state.SetReported(selected)
	log.Printf("Selection changed: %v", selected)

	if m.bus != nil {
		m.bus.Publish(eventbus.SelectionChangedEvent{
			Selected: m.Selection(),
			Rows:     m.state.RowsAt(selected),
		})
	}
}

// isDisabled evaluates the disable predicate for one row
func (m *Model) isDisabled(i int) bool {
	row, ok := m.state.Row(i)
	if !ok || m.disable == nil {
		return false
	}
	return m.disable(row)
}

func (m *Model) toggleRow(row int) {
	if err := m.selection.ToggleRow(row); err != nil {
		log.Printf("Toggle ignored: %v", err)
	}
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.selection.Navigate(selection.Direction(a.Direction))

	case inputtypes.ToggleRowAction:
		m.toggleRow(a.Row)

	case inputtypes.ToggleActiveRowAction:
		if row, ok := m.selection.ActiveRow(); ok && !m.isDisabled(row) {
			m.toggleRow(row)
		}

	case inputtypes.ToggleSelectAllAction:
		m.selection.ToggleSelectAll()

	case inputtypes.RequestDownloadAction:
		entries := m.state.SelectedEntries()
		if len(entries) == 0 {
			m.state.SetStatus("No files selected", state.StatusInfo)
			return handlers.ClearStatusAfter(handlers.StatusTimeout)
		}
		m.state.Pending = entries

	case inputtypes.ConfirmDownloadAction:
		files := m.state.TakePending()
		if len(files) == 0 {
			return nil
		}
		id, cmd := m.executor.ExecuteDownload(files)
		log.Printf("Download %s requested for %d files", id, len(files))
		m.state.SetStatus(fmt.Sprintf("Downloading %d files...", len(files)), state.StatusInfo)
		return cmd

	case inputtypes.ViewManifestAction:
		return m.showManifestInPager(m.state.ManifestPath)

	case inputtypes.ReloadAction:
		m.state.SetStatus("Reloading...", state.StatusInfo)
		return m.executor.ExecuteLoad(m.config.DataFile)

	case inputtypes.ToggleHelpAction:
		m.viewModel.ToggleFullHelp()

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.inputHandler.CurrentMode() != inputtypes.ModeNormal {
		return nil
	}

	hit := views.ComputeLayout(m.viewState()).HitTest(msg.X, msg.Y)
	switch hit.Kind {
	case views.HitSelectAll:
		m.selection.ToggleSelectAll()

	case views.HitRowCheckbox, views.HitRow:
		// Disabled rows ignore clicks on both the checkbox and the row body
		if !m.isDisabled(hit.Row) {
			m.toggleRow(hit.Row)
		}
	}
	return nil
}

// showManifestInPager returns a command that pages the manifest using ov
func (m *Model) showManifestInPager(path string) tea.Cmd {
	if m.program == nil || path == "" {
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.ShowFileInPager(path)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return manifestPagerMsg{path: path, err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case manifestPagerMsg:
		if msg.err != nil {
			log.Printf("Manifest pager failed for %s: %v", msg.path, msg.err)
			m.state.SetStatus(fmt.Sprintf("Failed to open %s", msg.path), state.StatusError)
			return m, handlers.ClearStatusAfter(handlers.StatusTimeout)
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return m, nil

	case handlers.ClearStatusMsg:
		m.state.ClearStatus()
		return m, nil

	default:
		return m, nil
	}
}

// ModelContext exposes model state to the input handler
type ModelContext struct {
	model *Model
}

func (c *ModelContext) TotalRows() int {
	return c.model.selection.TotalRows()
}

func (c *ModelContext) ActiveRow() (int, bool) {
	return c.model.selection.ActiveRow()
}

func (c *ModelContext) SelectedCount() int {
	return len(c.model.state.Reported)
}

func (c *ModelContext) EnterTogglesActive() bool {
	return c.model.config.Keyboard.EnterTogglesActive
}

func (c *ModelContext) HasManifest() bool {
	return c.model.state.ManifestPath != ""
}
