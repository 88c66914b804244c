package theme

import "github.com/thenoetrevino/tablero/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Title          string
	Subtle         string
	Normal         string
	Create         string
	Edit           string
	Delete         string
	ListBorder     string
	CardBorder     string
	SelectedBorder string
	WipExceeded    string
	InfoFg         string
	WarningFg      string
	ErrorFg        string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Highlight = scheme.Accent
	Title = scheme.Title
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Create = scheme.Create
	Edit = scheme.Edit
	Delete = scheme.Delete
	ListBorder = scheme.ListBorder
	CardBorder = scheme.CardBorder
	SelectedBorder = scheme.SelectedBorder
	WipExceeded = scheme.WipExceeded
	InfoFg = scheme.InfoFg
	WarningFg = scheme.WarningFg
	ErrorFg = scheme.ErrorFg
}
