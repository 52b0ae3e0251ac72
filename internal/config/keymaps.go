package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Drag
	Pickup   string `yaml:"pickup"`
	Drop     string `yaml:"drop"`
	Cancel   string `yaml:"cancel"`
	Dismiss  string `yaml:"dismiss"`
	ViewItem string `yaml:"view_item"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevItem   string `yaml:"prev_item"`
	NextItem   string `yaml:"next_item"`

	// Other
	ResetBoard string `yaml:"reset_board"`
	ShowHelp   string `yaml:"show_help"`
	Quit       string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Drag
		Pickup:   "space",
		Drop:     "enter",
		Cancel:   "esc",
		Dismiss:  "x",
		ViewItem: "enter",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevItem:   "k",
		NextItem:   "j",

		// Other
		ResetBoard: "R",
		ShowHelp:   "?",
		Quit:       "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.Pickup == "" {
		k.Pickup = defaults.Pickup
	}
	if k.Drop == "" {
		k.Drop = defaults.Drop
	}
	if k.Cancel == "" {
		k.Cancel = defaults.Cancel
	}
	if k.Dismiss == "" {
		k.Dismiss = defaults.Dismiss
	}
	if k.ViewItem == "" {
		k.ViewItem = defaults.ViewItem
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevItem == "" {
		k.PrevItem = defaults.PrevItem
	}
	if k.NextItem == "" {
		k.NextItem = defaults.NextItem
	}
	if k.ResetBoard == "" {
		k.ResetBoard = defaults.ResetBoard
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
