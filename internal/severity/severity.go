// Package severity is the single source of truth for threshold-based
// status classification. Every status badge, progress-bar color, and
// trend icon in the dashboards derives its tier here; call sites must
// not re-implement their own color-by-value logic.
package severity

import "github.com/sells-group/pulseboard/internal/model"

// Tier is the health classification of a metric value.
type Tier int

const (
	TierHealthy Tier = iota
	TierWarning
	TierCritical
)

func (t Tier) String() string {
	switch t {
	case TierHealthy:
		return "healthy"
	case TierWarning:
		return "warning"
	case TierCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Classify maps a metric value to a severity tier. Ties at a boundary
// resolve to the stricter tier. For lower-is-better metrics both
// comparisons invert: large values are the unhealthy ones.
func Classify(value float64, th model.Threshold, p model.Polarity) Tier {
	if p == model.LowerIsBetter {
		switch {
		case value >= th.Critical:
			return TierCritical
		case value >= th.Warning:
			return TierWarning
		default:
			return TierHealthy
		}
	}
	switch {
	case value <= th.Critical:
		return TierCritical
	case value <= th.Warning:
		return TierWarning
	default:
		return TierHealthy
	}
}

// ClassifyMetric classifies a value against a metric's own threshold
// and polarity.
func ClassifyMetric(value float64, m model.MetricConfig) Tier {
	return Classify(value, m.Threshold, m.Polarity)
}

// TrendTier maps a KPI trend direction to a tier: up is healthy, down
// is critical. This is deliberately polarity-blind — KPI deltas are
// colored by direction only, matching the shipped dashboards. A
// polarity-aware variant would replace this one function.
func TrendTier(tr model.Trend) Tier {
	if tr == model.TrendDown {
		return TierCritical
	}
	return TierHealthy
}

var tierColors = map[model.ThemeMode]map[Tier]string{
	model.ThemeLight: {
		TierHealthy:  "#059669",
		TierWarning:  "#D97706",
		TierCritical: "#DC2626",
	},
	model.ThemeDark: {
		TierHealthy:  "#34D399",
		TierWarning:  "#FBBF24",
		TierCritical: "#F87171",
	},
}

// Color returns the display color token for a tier under a theme.
func (t Tier) Color(theme model.ThemeMode) string {
	colors, ok := tierColors[theme]
	if !ok {
		colors = tierColors[model.ThemeLight]
	}
	if c, ok := colors[t]; ok {
		return c
	}
	return colors[TierHealthy]
}
