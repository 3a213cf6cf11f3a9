package chart

import (
	"math"

	"github.com/sells-group/pulseboard/internal/model"
)

// renderPie draws one slice per record, sized by the first plotted key.
// Slices are colored by record position so colors stay stable when a
// caller re-renders the same config.
func renderPie(cfg model.ChartConfig, f frame, th Theme) string {
	var d doc
	d.open(f, th)
	d.title(f, th, cfg.Title)

	if len(cfg.Data) == 0 || len(cfg.Keys) == 0 {
		d.emptyState(f, th)
		return d.close()
	}

	key := cfg.Keys[0]
	total := 0.0
	for _, r := range cfg.Data {
		if v := r.Fields[key]; v > 0 {
			total += v
		}
	}
	if total == 0 {
		d.emptyState(f, th)
		return d.close()
	}

	cx := float64(f.width) / 2
	cy := float64(f.top) + f.plotH()/2
	r := math.Min(f.plotW(), f.plotH())/2 - 8

	colors := seriesColors(cfg, len(cfg.Data))
	angle := -math.Pi / 2
	for i, rec := range cfg.Data {
		v := rec.Fields[key]
		if v <= 0 {
			continue
		}
		sweep := v / total * 2 * math.Pi
		drawSlice(&d, cx, cy, r, angle, angle+sweep, colors[i])
		angle += sweep
	}

	if cfg.ShowLegend {
		d.legend(f, th, labels(cfg.Data), colors)
	}
	return d.close()
}

func drawSlice(d *doc, cx, cy, r, a0, a1 float64, color string) {
	// A single slice covering (almost) the full circle degenerates to a
	// zero-length arc, so draw it as a circle instead.
	if a1-a0 >= 2*math.Pi-1e-9 {
		d.writef(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`, cx, cy, r, color)
		return
	}
	x0, y0 := cx+r*math.Cos(a0), cy+r*math.Sin(a0)
	x1, y1 := cx+r*math.Cos(a1), cy+r*math.Sin(a1)
	largeArc := 0
	if a1-a0 > math.Pi {
		largeArc = 1
	}
	d.writef(`<path d="M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z" fill="%s"/>`,
		cx, cy, x0, y0, r, r, largeArc, x1, y1, color)
}
