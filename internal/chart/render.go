// Package chart renders declarative ChartConfigs to SVG. Dispatch is a
// closed match over the seven chart types; every variant shares the
// same theme chrome, palette fallback, fixed height, and fluid width.
package chart

import (
	"github.com/sells-group/pulseboard/internal/model"
	"github.com/sells-group/pulseboard/internal/palette"
)

// Render dispatches cfg to its variant renderer and returns SVG markup.
// An unrecognized type tag returns *UnsupportedTypeError; empty data
// renders a visible empty state, never an error.
func Render(cfg model.ChartConfig, theme model.ThemeMode) (string, error) {
	th := themeFor(theme)
	f := newFrame(cfg)

	switch cfg.Type {
	case model.ChartBar:
		return renderBar(cfg, f, th), nil
	case model.ChartLine:
		return renderLine(cfg, f, th, false), nil
	case model.ChartArea:
		return renderLine(cfg, f, th, true), nil
	case model.ChartPie:
		return renderPie(cfg, f, th), nil
	case model.ChartRadar:
		return renderRadar(cfg, f, th), nil
	case model.ChartScatter:
		return renderScatter(cfg, f, th), nil
	case model.ChartComposed:
		return renderComposed(cfg, f, th), nil
	}
	return "", &UnsupportedTypeError{Type: string(cfg.Type)}
}

// seriesColors applies the config-colors-first, palette-cycling-second
// rule uniformly for all variants.
func seriesColors(cfg model.ChartConfig, n int) []string {
	return palette.SeriesColors(cfg.Colors, n)
}
