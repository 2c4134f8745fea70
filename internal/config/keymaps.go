package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Pagination
	PrevPage   string `yaml:"prev_page"`
	NextPage   string `yaml:"next_page"`
	JumpToPage string `yaml:"jump_to_page"`
	Refresh    string `yaml:"refresh"`

	// Drag and drop
	PickUp     string `yaml:"pick_up"`
	Drop       string `yaml:"drop"`
	CancelDrag string `yaml:"cancel_drag"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",

		PrevPage:   "[",
		NextPage:   "]",
		JumpToPage: "g",
		Refresh:    "r",

		PickUp:     "space",
		Drop:       "enter",
		CancelDrag: "esc",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevCard, defaults.PrevCard)
	fill(&k.NextCard, defaults.NextCard)
	fill(&k.PrevPage, defaults.PrevPage)
	fill(&k.NextPage, defaults.NextPage)
	fill(&k.JumpToPage, defaults.JumpToPage)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.PickUp, defaults.PickUp)
	fill(&k.Drop, defaults.Drop)
	fill(&k.CancelDrag, defaults.CancelDrag)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
