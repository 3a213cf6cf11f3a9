package chart

import "github.com/sells-group/pulseboard/internal/model"

// Theme holds the chrome colors shared by every chart variant. Series
// colors come from the palette, never from here.
type Theme struct {
	Background string
	Grid       string
	Axis       string
	Text       string
	MutedText  string
}

var lightTheme = Theme{
	Background: "#FFFFFF",
	Grid:       "#E5E7EB",
	Axis:       "#9CA3AF",
	Text:       "#111827",
	MutedText:  "#6B7280",
}

var darkTheme = Theme{
	Background: "#111827",
	Grid:       "#374151",
	Axis:       "#6B7280",
	Text:       "#F9FAFB",
	MutedText:  "#9CA3AF",
}

func themeFor(mode model.ThemeMode) Theme {
	if mode == model.ThemeDark {
		return darkTheme
	}
	return lightTheme
}
