package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThemeMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ThemeMode
		wantErr bool
	}{
		{"", ThemeLight, false},
		{"light", ThemeLight, false},
		{"dark", ThemeDark, false},
		{"solarized", ThemeLight, true},
		{"DARK", ThemeLight, true},
	}
	for _, tt := range tests {
		got, err := ParseThemeMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
		} else {
			require.NoError(t, err, "input %q", tt.in)
		}
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestChartTypeValid(t *testing.T) {
	for _, ct := range ChartTypes {
		assert.True(t, ct.Valid(), "type %q", ct)
	}
	assert.False(t, ChartType("heatmap").Valid())
	assert.False(t, ChartType("").Valid())
}

func TestDashboardConfigTab(t *testing.T) {
	cfg := DashboardConfig{
		Tabs: []Tab{
			{ID: "overview", Label: "Overview"},
			{ID: "trends", Label: "Trends"},
		},
	}

	tab := cfg.Tab("trends")
	require.NotNil(t, tab)
	assert.Equal(t, "Trends", tab.Label)

	assert.Nil(t, cfg.Tab("missing"))
}

func TestVerticalModuleMetric(t *testing.T) {
	v := VerticalModule{
		Metrics: []MetricConfig{
			{ID: "uptime", Name: "Grid Uptime"},
			{ID: "freq-dev", Name: "Frequency Deviation", Polarity: LowerIsBetter},
		},
	}

	m := v.Metric("freq-dev")
	require.NotNil(t, m)
	assert.Equal(t, LowerIsBetter, m.Polarity)

	assert.Nil(t, v.Metric("nope"))
}
