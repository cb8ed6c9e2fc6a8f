package selection

import (
	"fmt"
	"log"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// Notifier receives the reported selection after every settled change.
// trigger is nil when the change comes from a state recomputation rather
// than a single input event.
type Notifier func(trigger tea.Msg, selected []int)

// Option configures a Controller
type Option func(*Controller)

// WithNotifier sets the selection-change callback
func WithNotifier(fn Notifier) Option {
	return func(c *Controller) {
		c.notify = fn
	}
}

// WithBound sets the forward navigation bound
func WithBound(b Bound) Option {
	return func(c *Controller) {
		c.bound = b
	}
}

// Controller owns the selection state of one mounted grid
type Controller struct {
	state  State
	bound  Bound
	notify Notifier
}

// NewController creates a controller mounted on totalRows rows.
// Mounting never notifies.
func NewController(totalRows int, opts ...Option) *Controller {
	c := &Controller{
		state: NewState(totalRows),
		bound: BoundSelected,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ToggleRow flips selection of row. The disable predicate is the caller's
// concern.
func (c *Controller) ToggleRow(row int) error {
	if row < 0 || row >= c.state.totalRows {
		return fmt.Errorf("toggle row %d of %d: %w", row, c.state.totalRows, ErrRowOutOfRange)
	}
	c.dispatch(ToggleRowAction{Row: row})
	return nil
}

// ToggleSelectAll flips the select-all control
func (c *Controller) ToggleSelectAll() {
	if c.state.allSelected {
		c.dispatch(DeselectAllAction{})
		return
	}
	c.dispatch(SelectAllAction{})
}

// Navigate moves the active row one step in direction
func (c *Controller) Navigate(direction Direction) {
	from := 0
	if row, ok := c.state.ActiveRow(); ok {
		from = row
	}
	c.dispatch(NavigateAction{Direction: direction, From: from, Bound: c.bound})
}

// DerivedSelection returns the selection reported outward, ascending
func (c *Controller) DerivedSelection() []int {
	return derive(c.state)
}

// SelectAllDisplay returns the display state of the select-all checkbox
func (c *Controller) SelectAllDisplay() CheckState {
	switch {
	case c.state.allSelected:
		return Checked
	case len(c.state.selected) > 0:
		return Indeterminate
	default:
		return Unchecked
	}
}

// RowChecked reports whether a row's checkbox renders as checked
func (c *Controller) RowChecked(row int, disabled bool) bool {
	if disabled {
		return false
	}
	return c.state.allSelected || c.state.IsSelected(row)
}

// ActiveRow returns the keyboard-focused row, if any
func (c *Controller) ActiveRow() (int, bool) {
	return c.state.ActiveRow()
}

// TotalRows returns the mounted row count
func (c *Controller) TotalRows() int {
	return c.state.totalRows
}

// State returns a snapshot of the current state
func (c *Controller) State() State {
	snapshot := c.state
	snapshot.selected = make(map[int]struct{}, len(c.state.selected))
	for row := range c.state.selected {
		snapshot.selected[row] = struct{}{}
	}
	return snapshot
}

// Remount discards the current state and mounts a fresh one on totalRows
// rows. Like the first mount, it does not notify.
func (c *Controller) Remount(totalRows int) {
	c.state = NewState(totalRows)
	log.Printf("selection: mounted %d rows", c.state.totalRows)
}

// Resize keeps the current selection across a refresh of the same
// collection. Rows past the new end are dropped and the select-all flag is
// recomputed.
func (c *Controller) Resize(totalRows int) {
	c.apply(c.state.resize(totalRows))
}

func (c *Controller) dispatch(action Action) {
	c.apply(Transition(c.state, action))
}

// apply installs next and notifies when the reported selection moved
func (c *Controller) apply(next State) {
	before := derive(c.state)
	c.state = next
	after := derive(next)
	if slices.Equal(before, after) || c.notify == nil {
		return
	}
	c.notify(nil, after)
}

func derive(s State) []int {
	if !s.allSelected {
		return s.SelectedRows()
	}
	rows := make([]int, s.totalRows)
	for i := range rows {
		rows[i] = i
	}
	return rows
}
