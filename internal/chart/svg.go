package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/sells-group/pulseboard/internal/model"
)

// viewWidth is the logical coordinate width. Rendered width is fluid:
// the svg element carries width="100%" and scales via its viewBox.
const viewWidth = 640

const defaultHeight = 320

// frame is the plot geometry for one chart.
type frame struct {
	width  int
	height int
	left   int
	right  int
	top    int
	bottom int
}

func newFrame(cfg model.ChartConfig) frame {
	h := cfg.Height
	if h <= 0 {
		h = defaultHeight
	}
	f := frame{
		width:  viewWidth,
		height: h,
		left:   48,
		right:  16,
		top:    20,
		bottom: 32,
	}
	if cfg.Title != "" {
		f.top += 22
	}
	if cfg.ShowLegend {
		f.bottom += 22
	}
	return f
}

func (f frame) plotW() float64 { return float64(f.width - f.left - f.right) }
func (f frame) plotH() float64 { return float64(f.height - f.top - f.bottom) }

// doc accumulates SVG markup.
type doc struct {
	b strings.Builder
}

func (d *doc) writef(format string, args ...any) {
	fmt.Fprintf(&d.b, format, args...)
}

func (d *doc) open(f frame, th Theme) {
	d.writef(`<svg xmlns="http://www.w3.org/2000/svg" width="100%%" height="%d" viewBox="0 0 %d %d" role="img">`,
		f.height, f.width, f.height)
	d.writef(`<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`, f.width, f.height, th.Background)
}

func (d *doc) close() string {
	d.b.WriteString("</svg>")
	return d.b.String()
}

func (d *doc) title(f frame, th Theme, title string) {
	if title == "" {
		return
	}
	d.writef(`<text x="%d" y="18" font-size="14" font-weight="600" fill="%s">%s</text>`,
		f.left, th.Text, escape(title))
}

func (d *doc) line(x1, y1, x2, y2 float64, stroke string, width float64) {
	d.writef(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f"/>`,
		x1, y1, x2, y2, stroke, width)
}

func (d *doc) text(x, y float64, size int, fill, anchor, s string) {
	d.writef(`<text x="%.2f" y="%.2f" font-size="%d" fill="%s" text-anchor="%s">%s</text>`,
		x, y, size, fill, anchor, escape(s))
}

// legend draws one swatch + label per series along the bottom edge.
func (d *doc) legend(f frame, th Theme, names, colors []string) {
	x := float64(f.left)
	y := float64(f.height - 10)
	for i, name := range names {
		d.writef(`<rect x="%.2f" y="%.2f" width="10" height="10" fill="%s"/>`, x, y-9, colors[i])
		d.text(x+14, y, 11, th.MutedText, "start", name)
		x += 14 + float64(8*len(name)) + 16
	}
}

// gridAndAxes draws horizontal gridlines with value labels for the left
// axis, plus the two axis lines.
func (d *doc) gridAndAxes(f frame, th Theme, sc scale) {
	const ticks = 4
	for i := 0; i <= ticks; i++ {
		v := sc.min + (sc.max-sc.min)*float64(i)/ticks
		y := sc.y(v, f)
		d.line(float64(f.left), y, float64(f.width-f.right), y, th.Grid, 1)
		d.text(float64(f.left)-6, y+4, 10, th.MutedText, "end", formatTick(v))
	}
	d.line(float64(f.left), float64(f.top), float64(f.left), float64(f.height-f.bottom), th.Axis, 1)
	d.line(float64(f.left), float64(f.height-f.bottom), float64(f.width-f.right), float64(f.height-f.bottom), th.Axis, 1)
}

// xLabels draws one label per record, centered on its slot.
func (d *doc) xLabels(f frame, th Theme, labels []string) {
	if len(labels) == 0 {
		return
	}
	slot := f.plotW() / float64(len(labels))
	for i, l := range labels {
		x := float64(f.left) + slot*(float64(i)+0.5)
		d.text(x, float64(f.height-f.bottom)+16, 10, th.MutedText, "middle", l)
	}
}

func (d *doc) emptyState(f frame, th Theme) {
	d.text(float64(f.width)/2, float64(f.height)/2, 12, th.MutedText, "middle", "No data")
}

// scale maps values into plot-area pixels on the y axis.
type scale struct {
	min float64
	max float64
}

func (s scale) y(v float64, f frame) float64 {
	span := s.max - s.min
	if span == 0 {
		span = 1
	}
	return float64(f.height-f.bottom) - (v-s.min)/span*f.plotH()
}

// valueScale computes a y scale over the given keys, padded to zero on
// the low side for all-positive data so bars read from a zero baseline.
func valueScale(data []model.Record, keys []string) scale {
	min, max := math.Inf(1), math.Inf(-1)
	for _, r := range data {
		for _, k := range keys {
			v, ok := r.Fields[k]
			if !ok {
				continue
			}
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
	}
	if math.IsInf(min, 1) {
		return scale{min: 0, max: 1}
	}
	if min > 0 {
		min = 0
	}
	if max == min {
		max = min + 1
	}
	return scale{min: min, max: max}
}

func labels(data []model.Record) []string {
	out := make([]string, len(data))
	for i, r := range data {
		out[i] = r.Label
	}
	return out
}

func formatTick(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e6 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return escaper.Replace(s)
}
