package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/sells-group/pulseboard/internal/model"
)

// radarDomain is the fixed value domain for radar charts. Callers are
// responsible for pre-normalizing series; the renderer never rescales.
const radarDomain = 100.0

// renderRadar draws one polygon per plotted key over axes taken from
// the record labels.
func renderRadar(cfg model.ChartConfig, f frame, th Theme) string {
	var d doc
	d.open(f, th)
	d.title(f, th, cfg.Title)

	if len(cfg.Data) < 3 || len(cfg.Keys) == 0 {
		// A radar needs at least three axes to enclose an area.
		d.emptyState(f, th)
		return d.close()
	}

	cx := float64(f.width) / 2
	cy := float64(f.top) + f.plotH()/2
	r := math.Min(f.plotW(), f.plotH())/2 - 16
	n := len(cfg.Data)

	// Concentric guide rings at 25% steps.
	for ring := 1; ring <= 4; ring++ {
		rr := r * float64(ring) / 4
		d.writef(`<polygon points="%s" fill="none" stroke="%s" stroke-width="1"/>`,
			ringPoints(cx, cy, rr, n), th.Grid)
	}

	// Spokes and axis labels.
	for i, rec := range cfg.Data {
		a := spokeAngle(i, n)
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		d.line(cx, cy, x, y, th.Grid, 1)
		lx, ly := cx+(r+12)*math.Cos(a), cy+(r+12)*math.Sin(a)
		d.text(lx, ly+3, 10, th.MutedText, "middle", rec.Label)
	}

	colors := seriesColors(cfg, len(cfg.Keys))
	for j, k := range cfg.Keys {
		var pts strings.Builder
		for i, rec := range cfg.Data {
			v := math.Max(0, math.Min(rec.Fields[k], radarDomain))
			a := spokeAngle(i, n)
			rr := r * v / radarDomain
			fmt.Fprintf(&pts, "%.2f,%.2f ", cx+rr*math.Cos(a), cy+rr*math.Sin(a))
		}
		p := strings.TrimSpace(pts.String())
		d.writef(`<polygon points="%s" fill="%s" fill-opacity="0.2" stroke="%s" stroke-width="2"/>`,
			p, colors[j], colors[j])
	}

	if cfg.ShowLegend {
		d.legend(f, th, cfg.Keys, colors)
	}
	return d.close()
}

func spokeAngle(i, n int) float64 {
	return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
}

func ringPoints(cx, cy, r float64, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		a := spokeAngle(i, n)
		fmt.Fprintf(&b, "%.2f,%.2f ", cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return strings.TrimSpace(b.String())
}
