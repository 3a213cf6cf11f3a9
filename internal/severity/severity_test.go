package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/pulseboard/internal/model"
)

func TestClassifyHigherIsBetter(t *testing.T) {
	th := model.Threshold{Warning: 95, Critical: 90}

	tests := []struct {
		value float64
		want  Tier
	}{
		{89, TierCritical},
		{90, TierCritical}, // boundary resolves to the stricter tier
		{92, TierWarning},
		{95, TierWarning}, // boundary resolves to the stricter tier
		{96, TierHealthy},
		{100, TierHealthy},
	}
	for _, tt := range tests {
		got := Classify(tt.value, th, model.HigherIsBetter)
		assert.Equal(t, tt.want, got, "value %v", tt.value)
	}
}

func TestClassifyLowerIsBetter(t *testing.T) {
	// A frequency-deviation style metric: small values are healthy, so
	// critical sits above warning.
	th := model.Threshold{Warning: 30, Critical: 40}

	tests := []struct {
		value float64
		want  Tier
	}{
		{15, TierHealthy},
		{29.9, TierHealthy},
		{30, TierWarning},
		{35, TierWarning},
		{40, TierCritical},
		{55, TierCritical},
	}
	for _, tt := range tests {
		got := Classify(tt.value, th, model.LowerIsBetter)
		assert.Equal(t, tt.want, got, "value %v", tt.value)
	}
}

func TestClassifyLowerIsBetterMisordered(t *testing.T) {
	// When critical sits below warning on a lower-is-better metric the
	// warning band is unreachable: anything at or above critical is
	// already critical. The registry warns about catalogs like this,
	// but classification must still stay deterministic.
	th := model.Threshold{Warning: 30, Critical: 20}

	assert.Equal(t, TierHealthy, Classify(15, th, model.LowerIsBetter))
	assert.Equal(t, TierCritical, Classify(25, th, model.LowerIsBetter))
	assert.Equal(t, TierCritical, Classify(35, th, model.LowerIsBetter))
}

func TestClassifyMonotonic(t *testing.T) {
	th := model.Threshold{Warning: 70, Critical: 50}

	prev := TierCritical
	for v := 0.0; v <= 100; v += 0.5 {
		got := Classify(v, th, model.HigherIsBetter)
		assert.LessOrEqual(t, int(got), int(prev),
			"severity must not increase as a higher-is-better value rises (value %v)", v)
		prev = got
	}
}

func TestClassifyMetric(t *testing.T) {
	m := model.MetricConfig{
		ID:        "freq-dev",
		Threshold: model.Threshold{Warning: 0.05, Critical: 0.1},
		Polarity:  model.LowerIsBetter,
	}

	assert.Equal(t, TierHealthy, ClassifyMetric(0.01, m))
	assert.Equal(t, TierWarning, ClassifyMetric(0.06, m))
	assert.Equal(t, TierCritical, ClassifyMetric(0.12, m))
}

func TestTrendTier(t *testing.T) {
	assert.Equal(t, TierHealthy, TrendTier(model.TrendUp))
	assert.Equal(t, TierCritical, TrendTier(model.TrendDown))
}

func TestTierColorThemed(t *testing.T) {
	light := TierCritical.Color(model.ThemeLight)
	dark := TierCritical.Color(model.ThemeDark)

	assert.NotEmpty(t, light)
	assert.NotEmpty(t, dark)
	assert.NotEqual(t, light, dark, "tier colors are theme-aware")

	// Unknown theme degrades to light rather than empty output.
	assert.Equal(t, light, TierCritical.Color(model.ThemeMode("sepia")))
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "healthy", TierHealthy.String())
	assert.Equal(t, "warning", TierWarning.String())
	assert.Equal(t, "critical", TierCritical.String())
	assert.Equal(t, "unknown", Tier(42).String())
}
