package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorForStable(t *testing.T) {
	for i := 0; i < len(Default)*3; i++ {
		assert.Equal(t, ColorFor(i), ColorFor(i), "index %d", i)
	}
}

func TestColorForWraps(t *testing.T) {
	assert.Equal(t, ColorFor(0), ColorFor(len(Default)))
	assert.Equal(t, ColorFor(3), ColorFor(len(Default)+3))
	assert.Equal(t, ColorFor(1), ColorFor(2*len(Default)+1))
}

func TestColorForNegative(t *testing.T) {
	assert.Equal(t, Default[len(Default)-1], ColorFor(-1))
}

func TestColorForEmptyPalette(t *testing.T) {
	var p Palette
	assert.Equal(t, "", p.ColorFor(0))
	assert.Equal(t, "", p.ColorFor(7))
}

func TestSeriesColorsExplicitFirst(t *testing.T) {
	got := SeriesColors([]string{"#111111", "#222222"}, 4)

	assert.Equal(t, []string{"#111111", "#222222", Default[2], Default[3]}, got)
}

func TestSeriesColorsSkipsBlanks(t *testing.T) {
	got := SeriesColors([]string{"", "#222222"}, 2)

	assert.Equal(t, []string{Default[0], "#222222"}, got)
}

func TestSeriesColorsCyclesPastPalette(t *testing.T) {
	n := len(Default) + 2
	got := SeriesColors(nil, n)

	assert.Len(t, got, n)
	assert.Equal(t, Default[0], got[len(Default)])
	assert.Equal(t, Default[1], got[len(Default)+1])
}
