package views

// Offsets of the main container padding. Keep in sync with Styles.Main.
const (
	mainPadX = 2
	mainPadY = 1
)

const (
	cursorWidth   = 2
	checkboxWidth = 3
	cellGap       = "  "
	maxCellWidth  = 48
)

// HitKind identifies what a mouse position lands on
type HitKind int

const (
	HitNone HitKind = iota
	HitSelectAll
	HitRowCheckbox
	HitRow
)

// Hit is the result of a hit test. Row is -1 unless a row was hit.
type Hit struct {
	Kind HitKind
	Row  int
}

// Layout gives the screen position of the grid's interactive parts
type Layout struct {
	OriginX      int
	OriginY      int
	ToolbarY     int
	HasSelectAll bool
	HeaderY      int // -1 when no header row is drawn
	FirstRowY    int
	Rows         int // number of clickable rows
	CheckboxX    int
}

// ComputeLayout returns the positions Render will draw state at
func ComputeLayout(state ViewState) Layout {
	l := Layout{
		OriginX:   mainPadX,
		OriginY:   mainPadY,
		HeaderY:   -1,
		CheckboxX: mainPadX + cursorWidth,
	}

	// title, blank line, toolbar, blank line
	l.ToolbarY = l.OriginY + 2
	y := l.ToolbarY + 2

	hasData := len(state.Columns) > 0 && len(state.Rows) > 0
	l.HasSelectAll = hasData
	if len(state.Columns) > 0 {
		l.HeaderY = y
		y++
	}
	l.FirstRowY = y
	if hasData {
		l.Rows = len(state.Rows)
	}
	return l
}

// HitTest maps a screen cell to the grid element drawn there
func (l Layout) HitTest(x, y int) Hit {
	inCheckbox := x >= l.CheckboxX && x < l.CheckboxX+checkboxWidth

	if y == l.ToolbarY && l.HasSelectAll && inCheckbox {
		return Hit{Kind: HitSelectAll, Row: -1}
	}

	if l.Rows > 0 && y >= l.FirstRowY && y < l.FirstRowY+l.Rows && x >= l.OriginX {
		row := y - l.FirstRowY
		if inCheckbox {
			return Hit{Kind: HitRowCheckbox, Row: row}
		}
		return Hit{Kind: HitRow, Row: row}
	}

	return Hit{Kind: HitNone, Row: -1}
}
