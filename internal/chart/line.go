package chart

import (
	"fmt"
	"strings"

	"github.com/sells-group/pulseboard/internal/model"
)

// renderLine draws one polyline per plotted key; with fill it becomes
// the area variant.
func renderLine(cfg model.ChartConfig, f frame, th Theme, fill bool) string {
	var d doc
	d.open(f, th)
	d.title(f, th, cfg.Title)

	if len(cfg.Data) == 0 || len(cfg.Keys) == 0 {
		d.emptyState(f, th)
		return d.close()
	}

	sc := valueScale(cfg.Data, cfg.Keys)
	d.gridAndAxes(f, th, sc)
	d.xLabels(f, th, labels(cfg.Data))

	colors := seriesColors(cfg, len(cfg.Keys))
	for j, k := range cfg.Keys {
		drawSeriesLine(&d, cfg.Data, k, colors[j], f, sc, fill)
	}

	if cfg.ShowLegend {
		d.legend(f, th, cfg.Keys, colors)
	}
	return d.close()
}

// drawSeriesLine is shared with the composed renderer.
func drawSeriesLine(d *doc, data []model.Record, key, color string, f frame, sc scale, fill bool) {
	pts := seriesPoints(data, key, f, sc)
	if len(pts) == 0 {
		return
	}

	if fill {
		base := float64(f.height - f.bottom)
		var poly strings.Builder
		fmt.Fprintf(&poly, "%.2f,%.2f ", pts[0][0], base)
		for _, p := range pts {
			fmt.Fprintf(&poly, "%.2f,%.2f ", p[0], p[1])
		}
		fmt.Fprintf(&poly, "%.2f,%.2f", pts[len(pts)-1][0], base)
		d.writef(`<polygon points="%s" fill="%s" fill-opacity="0.25" stroke="none"/>`,
			strings.TrimSpace(poly.String()), color)
	}

	var line strings.Builder
	for _, p := range pts {
		fmt.Fprintf(&line, "%.2f,%.2f ", p[0], p[1])
	}
	d.writef(`<polyline points="%s" fill="none" stroke="%s" stroke-width="2"/>`,
		strings.TrimSpace(line.String()), color)

	for _, p := range pts {
		d.writef(`<circle cx="%.2f" cy="%.2f" r="2.5" fill="%s"/>`, p[0], p[1], color)
	}
}

func seriesPoints(data []model.Record, key string, f frame, sc scale) [][2]float64 {
	slot := f.plotW() / float64(len(data))
	pts := make([][2]float64, 0, len(data))
	for i, r := range data {
		v, ok := r.Fields[key]
		if !ok {
			continue
		}
		x := float64(f.left) + slot*(float64(i)+0.5)
		pts = append(pts, [2]float64{x, sc.y(v, f)})
	}
	return pts
}
