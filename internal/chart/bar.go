package chart

import "github.com/sells-group/pulseboard/internal/model"

// renderBar draws grouped vertical bars: one group per record, one bar
// per plotted key.
func renderBar(cfg model.ChartConfig, f frame, th Theme) string {
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
	drawBars(&d, cfg.Data, cfg.Keys, colors, f, sc)

	if cfg.ShowLegend {
		d.legend(f, th, cfg.Keys, colors)
	}
	return d.close()
}

// drawBars is shared with the composed renderer.
func drawBars(d *doc, data []model.Record, keys []string, colors []string, f frame, sc scale) {
	slot := f.plotW() / float64(len(data))
	// Bars fill 70% of each slot, split evenly among the keyed series.
	group := slot * 0.7
	barW := group / float64(len(keys))
	baseline := sc.y(0, f)
	if sc.min > 0 {
		baseline = float64(f.height - f.bottom)
	}

	for i, r := range data {
		x0 := float64(f.left) + slot*float64(i) + (slot-group)/2
		for j, k := range keys {
			v, ok := r.Fields[k]
			if !ok {
				continue
			}
			y := sc.y(v, f)
			top, h := y, baseline-y
			if h < 0 {
				top, h = baseline, -h
			}
			d.writef(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`,
				x0+barW*float64(j), top, barW, h, colors[j])
		}
	}
}
