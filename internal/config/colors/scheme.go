package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - new card prompt
	Edit   string `yaml:"edit"`   // Blue - comment prompt
	Delete string `yaml:"delete"` // Red - delete confirmation

	// Board elements
	ListBorder     string `yaml:"list_border"`
	CardBorder     string `yaml:"card_border"`
	SelectedBorder string `yaml:"selected_border"`
	WipExceeded    string `yaml:"wip_exceeded"` // list header when over its limit

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors
	InfoFg    string `yaml:"info_fg"`
	WarningFg string `yaml:"warning_fg"`
	ErrorFg   string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	c.MergeFrom(*preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
}

// MergeFrom copies every color that is set in other but empty in c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Accent, other.Accent)
	fill(&c.Create, other.Create)
	fill(&c.Edit, other.Edit)
	fill(&c.Delete, other.Delete)
	fill(&c.ListBorder, other.ListBorder)
	fill(&c.CardBorder, other.CardBorder)
	fill(&c.SelectedBorder, other.SelectedBorder)
	fill(&c.WipExceeded, other.WipExceeded)
	fill(&c.Title, other.Title)
	fill(&c.Subtle, other.Subtle)
	fill(&c.Normal, other.Normal)
	fill(&c.InfoFg, other.InfoFg)
	fill(&c.WarningFg, other.WarningFg)
	fill(&c.ErrorFg, other.ErrorFg)
}

// Override replaces every color that is set in other
func (c *ColorScheme) Override(other ColorScheme) {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	set(&c.Preset, other.Preset)
	set(&c.Accent, other.Accent)
	set(&c.Create, other.Create)
	set(&c.Edit, other.Edit)
	set(&c.Delete, other.Delete)
	set(&c.ListBorder, other.ListBorder)
	set(&c.CardBorder, other.CardBorder)
	set(&c.SelectedBorder, other.SelectedBorder)
	set(&c.WipExceeded, other.WipExceeded)
	set(&c.Title, other.Title)
	set(&c.Subtle, other.Subtle)
	set(&c.Normal, other.Normal)
	set(&c.InfoFg, other.InfoFg)
	set(&c.WarningFg, other.WarningFg)
	set(&c.ErrorFg, other.ErrorFg)
}
