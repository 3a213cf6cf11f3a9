// Package palette provides the deterministic, order-stable color
// assignment shared by every chart on every dashboard. Series color is
// a pure function of the series' position in its original config list,
// so callers must pass pre-filter, pre-sort indices to keep colors
// stable across re-renders.
package palette

// Palette is a fixed ordered sequence of color tokens, reused
// cyclically by index.
type Palette []string

// Default is the shared series palette.
var Default = Palette{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// ColorFor returns the token at index i, wrapping modulo the palette
// length. Negative indices wrap from the end. An empty palette yields
// the empty string.
func (p Palette) ColorFor(i int) string {
	if len(p) == 0 {
		return ""
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// ColorFor assigns from the Default palette.
func ColorFor(i int) string {
	return Default.ColorFor(i)
}

// SeriesColors returns n colors: explicit config colors first, then the
// shared palette cycling by series index for any series the config left
// uncolored.
func SeriesColors(explicit []string, n int) []string {
	colors := make([]string, n)
	for i := 0; i < n; i++ {
		if i < len(explicit) && explicit[i] != "" {
			colors[i] = explicit[i]
			continue
		}
		colors[i] = Default.ColorFor(i)
	}
	return colors
}
