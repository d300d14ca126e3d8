package styles

// DefaultThemeName is used when no theme is configured.
const DefaultThemeName = "ember"

// NewEmberTheme creates the default warm theme.
func NewEmberTheme() *Theme {
	return &Theme{
		Name:   "ember",
		IsDark: true,

		Primary:   ParseHex("#C0392B"), // Fire red
		Secondary: ParseHex("#F4D03F"), // Bright yellow
		Accent:    ParseHex("#F39C12"), // Golden orange

		BgBase:   ParseHex("#2C3E50"),
		BgSubtle: ParseHex("#3D566E"),

		FgBase:     ParseHex("#f5f6fa"),
		FgMuted:    ParseHex("#a0a0a0"),
		FgSubtle:   ParseHex("#6F6F70"),
		FgInverted: ParseHex("#1e1e1e"),

		Border:      ParseHex("#5D6D7E"),
		BorderFocus: ParseHex("#F39C12"),

		Success: ParseHex("#27AE60"),
		Warning: ParseHex("#F39C12"),
		Info:    ParseHex("#3498DB"),
	}
}

// NewSlateTheme creates a cool, low-contrast theme.
func NewSlateTheme() *Theme {
	return &Theme{
		Name:   "slate",
		IsDark: true,

		Primary:   ParseHex("#5DADE2"),
		Secondary: ParseHex("#AF7AC5"),
		Accent:    ParseHex("#48C9B0"),

		BgBase:   ParseHex("#1C2833"),
		BgSubtle: ParseHex("#283747"),

		FgBase:     ParseHex("#EAECEE"),
		FgMuted:    ParseHex("#99A3A4"),
		FgSubtle:   ParseHex("#626567"),
		FgInverted: ParseHex("#17202A"),

		Border:      ParseHex("#34495E"),
		BorderFocus: ParseHex("#48C9B0"),

		Success: ParseHex("#52BE80"),
		Warning: ParseHex("#F5B041"),
		Info:    ParseHex("#5DADE2"),
	}
}
