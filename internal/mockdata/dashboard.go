package mockdata

import (
	"fmt"

	"github.com/sells-group/pulseboard/internal/model"
)

var kpiColors = []string{"indigo", "emerald", "amber", "rose", "violet", "cyan"}

// Dashboard builds the dashboard config for a vertical. Tab content is
// produced lazily: each closure regenerates its charts when the
// composer activates the tab.
func Dashboard(v model.VerticalModule) model.DashboardConfig {
	cfg := model.DashboardConfig{
		Title:       v.Name + " Operations",
		Description: v.Description,
		KPIs:        kpis(v),
	}

	cfg.Tabs = []model.Tab{
		{
			ID: "overview", Label: "Overview", Icon: "activity",
			Content: func() []model.ChartConfig { return overviewCharts(v) },
		},
		{
			ID: "usecases", Label: "Use Cases", Icon: "target",
			Content: func() []model.ChartConfig { return useCaseCharts(v) },
		},
		{
			ID: "distribution", Label: "Distribution", Icon: "pie-chart",
			Content: func() []model.ChartConfig { return distributionCharts(v) },
		},
	}
	return cfg
}

// MetricValue returns the current synthetic reading for a metric,
// placed inside the healthy band most of the time.
func MetricValue(verticalID string, m model.MetricConfig) float64 {
	rng := rngFor("metric", verticalID, m.ID)
	span := m.Threshold.Warning - m.Threshold.Critical
	if span < 0 {
		span = -span
	}
	if span == 0 {
		span = 1
	}
	offset := span * (0.2 + rng.Float64()*1.3)
	if m.Polarity == model.LowerIsBetter {
		v := m.Threshold.Warning - offset
		if v < 0 {
			v = m.Threshold.Warning * rng.Float64()
		}
		return v
	}
	return m.Threshold.Warning + offset
}

func kpis(v model.VerticalModule) []model.KPI {
	out := make([]model.KPI, 0, len(v.Metrics))
	for i, m := range v.Metrics {
		rng := rngFor("kpi", v.ID, m.ID)
		value := MetricValue(v.ID, m)
		change := round1(rng.Float64()*8 - 3)
		trend := model.TrendUp
		if change < 0 {
			trend = model.TrendDown
		}
		out = append(out, model.KPI{
			Title:  m.Name,
			Value:  formatValue(value, m.Unit),
			Change: change,
			Trend:  trend,
			Icon:   string(m.Visualization),
			Color:  kpiColors[i%len(kpiColors)],
		})
	}
	return out
}

func overviewCharts(v model.VerticalModule) []model.ChartConfig {
	charts := make([]model.ChartConfig, 0, len(v.Metrics)+1)
	for _, m := range v.Metrics {
		ct := model.ChartLine
		switch m.Visualization {
		case model.VisualizationBar:
			ct = model.ChartBar
		case model.VisualizationPie:
			ct = model.ChartPie
		case model.VisualizationGauge:
			// Gauges render as single-series area trends on dashboards.
			ct = model.ChartArea
		}
		charts = append(charts, model.ChartConfig{
			Type:       ct,
			Title:      m.Name,
			Data:       trendSeries(v.ID, m, 12),
			Keys:       []string{"value"},
			Height:     260,
			ShowLegend: false,
		})
	}
	charts = append(charts, capacityComposed(v))
	return charts
}

func useCaseCharts(v model.VerticalModule) []model.ChartConfig {
	if len(v.UseCases) == 0 {
		return nil
	}
	axes := []model.Record{
		{Label: "Security", Fields: map[string]float64{}},
		{Label: "Integrity", Fields: map[string]float64{}},
		{Label: "Accuracy", Fields: map[string]float64{}},
	}
	keys := make([]string, 0, len(v.UseCases))
	for _, uc := range v.UseCases {
		axes[0].Fields[uc.Name] = float64(uc.Scores.Security)
		axes[1].Fields[uc.Name] = float64(uc.Scores.Integrity)
		axes[2].Fields[uc.Name] = float64(uc.Scores.Accuracy)
		keys = append(keys, uc.Name)
	}
	return []model.ChartConfig{{
		Type:       model.ChartRadar,
		Title:      "Use Case Scores",
		Data:       axes,
		Keys:       keys,
		Height:     320,
		ShowLegend: true,
	}}
}

func distributionCharts(v model.VerticalModule) []model.ChartConfig {
	rng := rngFor("distribution", v.ID)
	records := make([]model.Record, 0, len(v.Features))
	for _, f := range v.Features {
		records = append(records, model.Record{
			Label:  f,
			Fields: map[string]float64{"share": float64(10 + rng.IntN(40))},
		})
	}

	scatter := make([]model.Record, 0, 24)
	for i := 0; i < 24; i++ {
		load := 20 + rng.Float64()*70
		scatter = append(scatter, model.Record{
			Label: fmt.Sprintf("s%d", i),
			Fields: map[string]float64{
				"load":    round1(load),
				"latency": round1(40 + load*1.4 + rng.Float64()*25),
			},
		})
	}

	return []model.ChartConfig{
		{
			Type:       model.ChartPie,
			Title:      "Workload by Feature",
			Data:       records,
			Keys:       []string{"share"},
			Height:     280,
			ShowLegend: true,
		},
		{
			Type:   model.ChartScatter,
			Title:  "Load vs Latency",
			Data:   scatter,
			Keys:   []string{"load", "latency"},
			Height: 280,
		},
	}
}

func capacityComposed(v model.VerticalModule) model.ChartConfig {
	rng := rngFor("capacity", v.ID)
	months := []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}
	data := make([]model.Record, 0, len(months))
	for _, mo := range months {
		used := 40 + rng.Float64()*45
		data = append(data, model.Record{
			Label: mo,
			Fields: map[string]float64{
				"capacity":    100,
				"used":        round1(used),
				"utilization": round1(used),
			},
		})
	}
	return model.ChartConfig{
		Type:  model.ChartComposed,
		Title: "Capacity & Utilization",
		Data:  data,
		Keys:  []string{"capacity", "used", "utilization"},
		Composed: []model.ComposedSeries{
			{Key: "capacity", Role: model.RoleArea},
			{Key: "used", Role: model.RoleBar},
			{Key: "utilization", Role: model.RoleLine, RightAxis: true},
		},
		Height:     300,
		ShowLegend: true,
	}
}

func trendSeries(verticalID string, m model.MetricConfig, n int) []model.Record {
	rng := rngFor("trend", verticalID, m.ID)
	current := MetricValue(verticalID, m)
	out := make([]model.Record, 0, n)
	for i := 0; i < n; i++ {
		jitter := (rng.Float64() - 0.5) * 0.1 * current
		out = append(out, model.Record{
			Label:  fmt.Sprintf("w%02d", i+1),
			Fields: map[string]float64{"value": round1(current + jitter)},
		})
	}
	return out
}

func formatValue(v float64, unit string) string {
	switch unit {
	case "%":
		return fmt.Sprintf("%.1f%%", v)
	case "":
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.1f %s", v, unit)
	}
}
