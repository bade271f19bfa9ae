package entity

// PreferenceKey is the store slot holding the dark-mode flag.
const PreferenceKey = "darkMode"

// DarkModeClass is the marker set on the document root while the dark theme is active.
const DarkModeClass = "dark-mode"

// Palette is the set of colors applied to every chart for one theme.
// Colors are CSS notations ("#333", "rgba(40, 44, 54, 0.85)").
type Palette struct {
	Text              string
	GridLine          string
	Background        string
	TooltipBackground string
	TooltipBorder     string
	LegendHover       string
}
