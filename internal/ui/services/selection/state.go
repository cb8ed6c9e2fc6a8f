package selection

import "sort"

// State holds selection state for one mounted row collection.
//
// A State is a value. Transition never mutates the state it is given, so a
// State can be kept, compared and replayed freely.
type State struct {
	selected    map[int]struct{}
	allSelected bool
	activeRow   int
	hasActive   bool
	totalRows   int
}

// NewState returns the initial state for a collection of totalRows rows
func NewState(totalRows int) State {
	if totalRows < 0 {
		totalRows = 0
	}
	return State{
		selected:  make(map[int]struct{}),
		totalRows: totalRows,
	}
}

// TotalRows returns the row count the state was created for
func (s State) TotalRows() int {
	return s.totalRows
}

// AllSelected reports whether the select-all override is on
func (s State) AllSelected() bool {
	return s.allSelected
}

// ActiveRow returns the keyboard-focused row, if any
func (s State) ActiveRow() (int, bool) {
	return s.activeRow, s.hasActive
}

// IsSelected reports explicit membership of row, ignoring the select-all flag
func (s State) IsSelected(row int) bool {
	_, ok := s.selected[row]
	return ok
}

// SelectedCount returns the number of explicitly selected rows
func (s State) SelectedCount() int {
	return len(s.selected)
}

// SelectedRows returns the explicitly selected rows in ascending order
func (s State) SelectedRows() []int {
	rows := make([]int, 0, len(s.selected))
	for row := range s.selected {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	return rows
}

// Equal reports whether two states are identical
func (s State) Equal(other State) bool {
	if s.allSelected != other.allSelected ||
		s.totalRows != other.totalRows ||
		s.hasActive != other.hasActive ||
		(s.hasActive && s.activeRow != other.activeRow) {
		return false
	}
	return s.sameMembers(other)
}

func (s State) sameMembers(other State) bool {
	if len(s.selected) != len(other.selected) {
		return false
	}
	for row := range s.selected {
		if _, ok := other.selected[row]; !ok {
			return false
		}
	}
	return true
}

// Transition applies an action and returns the next state.
// Unknown actions return the state unchanged.
func Transition(s State, action Action) State {
	switch a := action.(type) {
	case ToggleRowAction:
		next := make(map[int]struct{}, len(s.selected)+1)
		for row := range s.selected {
			next[row] = struct{}{}
		}
		if _, ok := next[a.Row]; ok {
			delete(next, a.Row)
		} else {
			next[a.Row] = struct{}{}
		}
		s.selected = next
		// The only place allSelected is derived from membership.
		s.allSelected = len(next) == s.totalRows
		return s

	case SelectAllAction:
		s.allSelected = true
		return s

	case DeselectAllAction:
		s.selected = make(map[int]struct{})
		s.allSelected = false
		return s

	case NavigateAction:
		var target int
		switch a.Direction {
		case DirectionNext:
			limit := len(s.selected) - 1
			if a.Bound == BoundRows {
				limit = s.totalRows - 1
			}
			target = min(limit, a.From+1)
		case DirectionPrevious:
			target = max(0, a.From-1)
		default:
			return s
		}
		s.activeRow = target
		s.hasActive = true
		return s

	default:
		return s
	}
}

// resize rebuilds the state for a refreshed collection of totalRows rows.
// Members past the new end are dropped and the select-all flag is
// recomputed against the new total.
func (s State) resize(totalRows int) State {
	if totalRows < 0 {
		totalRows = 0
	}
	next := NewState(totalRows)
	for row := range s.selected {
		if row >= 0 && row < totalRows {
			next.selected[row] = struct{}{}
		}
	}
	switch {
	case totalRows == 0:
		next.selected = make(map[int]struct{})
		next.allSelected = false
	case s.allSelected:
		next.allSelected = true
	default:
		next.allSelected = len(next.selected) == totalRows
	}
	if s.hasActive && s.activeRow >= 0 && s.activeRow < totalRows {
		next.activeRow = s.activeRow
		next.hasActive = true
	}
	return next
}
