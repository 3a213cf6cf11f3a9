package chart

import "github.com/sells-group/pulseboard/internal/model"

// renderComposed mixes bar, line, and area series in one plot. Series
// roles come from cfg.Composed; keys without a role render as bars.
// Right-axis series get their own scale drawn on the right edge.
func renderComposed(cfg model.ChartConfig, f frame, th Theme) string {
	var d doc
	d.open(f, th)
	d.title(f, th, cfg.Title)

	if len(cfg.Data) == 0 || len(cfg.Keys) == 0 {
		d.emptyState(f, th)
		return d.close()
	}

	roles := make(map[string]model.ComposedSeries, len(cfg.Composed))
	for _, s := range cfg.Composed {
		roles[s.Key] = s
	}
	seriesFor := func(key string) model.ComposedSeries {
		if s, ok := roles[key]; ok {
			return s
		}
		return model.ComposedSeries{Key: key, Role: model.RoleBar}
	}

	var leftKeys, rightKeys, barKeys []string
	for _, k := range cfg.Keys {
		s := seriesFor(k)
		if s.RightAxis {
			rightKeys = append(rightKeys, k)
		} else {
			leftKeys = append(leftKeys, k)
		}
		if s.Role == model.RoleBar || s.Role == "" {
			barKeys = append(barKeys, k)
		}
	}
	if len(leftKeys) == 0 {
		leftKeys = cfg.Keys
	}

	left := valueScale(cfg.Data, leftKeys)
	right := left
	if len(rightKeys) > 0 {
		right = valueScale(cfg.Data, rightKeys)
	}

	d.gridAndAxes(f, th, left)
	if len(rightKeys) > 0 {
		drawRightAxis(&d, f, th, right)
	}
	d.xLabels(f, th, labels(cfg.Data))

	colors := seriesColors(cfg, len(cfg.Keys))
	colorOf := make(map[string]string, len(cfg.Keys))
	for i, k := range cfg.Keys {
		colorOf[k] = colors[i]
	}

	// Bars first so lines and areas draw on top of them.
	if len(barKeys) > 0 {
		barColors := make([]string, len(barKeys))
		for i, k := range barKeys {
			barColors[i] = colorOf[k]
		}
		drawBars(&d, cfg.Data, barKeys, barColors, f, left)
	}
	for _, k := range cfg.Keys {
		s := seriesFor(k)
		if s.Role == model.RoleBar || s.Role == "" {
			continue
		}
		sc := left
		if s.RightAxis {
			sc = right
		}
		drawSeriesLine(&d, cfg.Data, k, colorOf[k], f, sc, s.Role == model.RoleArea)
	}

	if cfg.ShowLegend {
		d.legend(f, th, cfg.Keys, colors)
	}
	return d.close()
}

func drawRightAxis(d *doc, f frame, th Theme, sc scale) {
	x := float64(f.width - f.right)
	d.line(x, float64(f.top), x, float64(f.height-f.bottom), th.Axis, 1)
	const ticks = 4
	for i := 0; i <= ticks; i++ {
		v := sc.min + (sc.max-sc.min)*float64(i)/ticks
		d.text(x+4, sc.y(v, f)+4, 10, th.MutedText, "start", formatTick(v))
	}
}
