package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Cards
	AddCard       string `yaml:"add_card"`
	EditCard      string `yaml:"edit_card"`
	DeleteCard    string `yaml:"delete_card"`
	MoveCardLeft  string `yaml:"move_card_left"`
	MoveCardRight string `yaml:"move_card_right"`
	MoveCardUp    string `yaml:"move_card_up"`
	MoveCardDown  string `yaml:"move_card_down"`
	ViewCard      string `yaml:"view_card"`

	// Prompts
	Confirm string `yaml:"confirm"`
	Cancel  string `yaml:"cancel"`

	// Navigation
	PrevList string `yaml:"prev_list"`
	NextList string `yaml:"next_list"`
	PrevCard string `yaml:"prev_card"`
	NextCard string `yaml:"next_card"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddCard:       "a",
		EditCard:      "e",
		DeleteCard:    "d",
		MoveCardLeft:  "H",
		MoveCardRight: "L",
		MoveCardUp:    "K",
		MoveCardDown:  "J",
		ViewCard:      "enter",

		Confirm: "y",
		Cancel:  "esc",

		PrevList: "h",
		NextList: "l",
		PrevCard: "k",
		NextCard: "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	for _, pair := range []struct {
		dst *string
		def string
	}{
		{&k.AddCard, defaults.AddCard},
		{&k.EditCard, defaults.EditCard},
		{&k.DeleteCard, defaults.DeleteCard},
		{&k.MoveCardLeft, defaults.MoveCardLeft},
		{&k.MoveCardRight, defaults.MoveCardRight},
		{&k.MoveCardUp, defaults.MoveCardUp},
		{&k.MoveCardDown, defaults.MoveCardDown},
		{&k.ViewCard, defaults.ViewCard},
		{&k.Confirm, defaults.Confirm},
		{&k.Cancel, defaults.Cancel},
		{&k.PrevList, defaults.PrevList},
		{&k.NextList, defaults.NextList},
		{&k.PrevCard, defaults.PrevCard},
		{&k.NextCard, defaults.NextCard},
		{&k.ShowHelp, defaults.ShowHelp},
		{&k.Quit, defaults.Quit},
	} {
		if *pair.dst == "" {
			*pair.dst = pair.def
		}
	}
}
