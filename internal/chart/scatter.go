package chart

import (
	"math"

	"github.com/sells-group/pulseboard/internal/model"
)

// renderScatter plots points with x from the first key and one y series
// per remaining key.
func renderScatter(cfg model.ChartConfig, f frame, th Theme) string {
	var d doc
	d.open(f, th)
	d.title(f, th, cfg.Title)

	if len(cfg.Data) == 0 || len(cfg.Keys) < 2 {
		d.emptyState(f, th)
		return d.close()
	}

	xKey := cfg.Keys[0]
	yKeys := cfg.Keys[1:]

	xs := scatterScale(cfg.Data, xKey)
	ys := valueScale(cfg.Data, yKeys)
	d.gridAndAxes(f, th, ys)

	xSpan := xs.max - xs.min
	if xSpan == 0 {
		xSpan = 1
	}

	colors := seriesColors(cfg, len(yKeys))
	for j, k := range yKeys {
		for _, r := range cfg.Data {
			xv, okX := r.Fields[xKey]
			yv, okY := r.Fields[k]
			if !okX || !okY {
				continue
			}
			x := float64(f.left) + (xv-xs.min)/xSpan*f.plotW()
			d.writef(`<circle cx="%.2f" cy="%.2f" r="4" fill="%s" fill-opacity="0.8"/>`,
				x, ys.y(yv, f), colors[j])
		}
	}

	if cfg.ShowLegend {
		d.legend(f, th, yKeys, colors)
	}
	return d.close()
}

func scatterScale(data []model.Record, key string) scale {
	min, max := math.Inf(1), math.Inf(-1)
	for _, r := range data {
		if v, ok := r.Fields[key]; ok {
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
	}
	if math.IsInf(min, 1) {
		return scale{min: 0, max: 1}
	}
	if max == min {
		max = min + 1
	}
	return scale{min: min, max: max}
}
