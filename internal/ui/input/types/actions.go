package types

// KeyboardToggleRow is the row a keyboard toggle names when it does not
// target the active row. No row has this index.
const KeyboardToggleRow = -1

// Navigation actions
type NavigateAction struct {
	Direction string // "next" or "previous"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type ToggleRowAction struct {
	Row int
}

func (a ToggleRowAction) Type() string { return "toggle_row" }

// ToggleActiveRowAction toggles the keyboard-focused row
type ToggleActiveRowAction struct{}

func (a ToggleActiveRowAction) Type() string { return "toggle_active_row" }

type ToggleSelectAllAction struct{}

func (a ToggleSelectAllAction) Type() string { return "toggle_select_all" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Download actions
type RequestDownloadAction struct{}

func (a RequestDownloadAction) Type() string { return "request_download" }

type ConfirmDownloadAction struct{}

func (a ConfirmDownloadAction) Type() string { return "confirm_download" }

type ViewManifestAction struct{}

func (a ViewManifestAction) Type() string { return "view_manifest" }

// Command actions
type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
