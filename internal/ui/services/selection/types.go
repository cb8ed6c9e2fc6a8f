package selection

import "errors"

// ErrRowOutOfRange is returned when a toggle names a row that does not exist
// in the current row collection.
var ErrRowOutOfRange = errors.New("row index out of range")

// Direction represents keyboard navigation directions
type Direction string

const (
	DirectionNext     Direction = "next"
	DirectionPrevious Direction = "previous"
)

// Bound selects the upper limit used for forward navigation
type Bound int

const (
	// BoundSelected limits forward navigation to the number of selected rows.
	BoundSelected Bound = iota
	// BoundRows limits forward navigation to the number of rows.
	BoundRows
)

// CheckState is the display state of a checkbox
type CheckState int

const (
	Unchecked CheckState = iota
	Indeterminate
	Checked
)

func (c CheckState) String() string {
	switch c {
	case Checked:
		return "checked"
	case Indeterminate:
		return "indeterminate"
	default:
		return "unchecked"
	}
}

// Action is a transition request consumed by Transition.
// The set of actions is closed; anything else is ignored.
type Action interface {
	Type() string
	isAction()
}

// ToggleRowAction flips membership of Row
type ToggleRowAction struct {
	Row int
}

func (a ToggleRowAction) Type() string { return "toggle_row" }
func (ToggleRowAction) isAction()      {}

// SelectAllAction marks every row as selected
type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }
func (SelectAllAction) isAction()      {}

// DeselectAllAction clears the selection
type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }
func (DeselectAllAction) isAction()      {}

// NavigateAction moves the active row one step from From
type NavigateAction struct {
	Direction Direction
	From      int
	Bound     Bound
}

func (a NavigateAction) Type() string { return "navigate" }
func (NavigateAction) isAction()      {}
