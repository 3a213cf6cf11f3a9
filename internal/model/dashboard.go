package model

import "github.com/rotisserie/eris"

// ThemeMode selects light or dark rendering. It is threaded explicitly
// through the composer and chart renderer; components never read a
// global theme preference themselves.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// ParseThemeMode parses a persisted theme preference. Empty input
// defaults to light.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch s {
	case "", "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return ThemeLight, eris.Errorf("model: unknown theme %q", s)
}

// Trend is the direction of a KPI's change since the previous period.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// ChartType tags a chart config with its rendering variant. The chart
// dispatcher matches exhaustively over these seven values; anything else
// is an UnsupportedTypeError at render time.
type ChartType string

const (
	ChartBar      ChartType = "bar"
	ChartLine     ChartType = "line"
	ChartArea     ChartType = "area"
	ChartPie      ChartType = "pie"
	ChartRadar    ChartType = "radar"
	ChartScatter  ChartType = "scatter"
	ChartComposed ChartType = "composed"
)

// ChartTypes lists every supported chart type in declaration order.
var ChartTypes = []ChartType{
	ChartBar, ChartLine, ChartArea, ChartPie, ChartRadar, ChartScatter, ChartComposed,
}

// Valid reports whether t is one of the seven supported types.
func (t ChartType) Valid() bool {
	for _, ct := range ChartTypes {
		if t == ct {
			return true
		}
	}
	return false
}

// SeriesRole selects how a composed chart draws one keyed series.
type SeriesRole string

const (
	RoleBar  SeriesRole = "bar"
	RoleLine SeriesRole = "line"
	RoleArea SeriesRole = "area"
)

// ComposedSeries binds a plotted key to a role for composed charts.
// RightAxis places the series on the secondary y axis.
type ComposedSeries struct {
	Key       string     `json:"key"`
	Role      SeriesRole `json:"role"`
	RightAxis bool       `json:"right_axis,omitempty"`
}

// Record is one data point of a chart: a label plus named numeric fields.
type Record struct {
	Label  string             `json:"label"`
	Fields map[string]float64 `json:"fields"`
}

// ChartConfig is the declarative description of a single chart. Configs
// are ephemeral: rebuilt on every render pass and discarded after use.
type ChartConfig struct {
	Type       ChartType        `json:"type"`
	Title      string           `json:"title"`
	Data       []Record         `json:"data"`
	Keys       []string         `json:"keys"`
	Colors     []string         `json:"colors,omitempty"`
	Height     int              `json:"height"`
	ShowLegend bool             `json:"show_legend"`
	Composed   []ComposedSeries `json:"composed,omitempty"`
}

// KPI is a headline summary value shown as a card.
type KPI struct {
	Title  string  `json:"title"`
	Value  string  `json:"value"`
	Change float64 `json:"change"`
	Trend  Trend   `json:"trend"`
	Icon   string  `json:"icon"`
	Color  string  `json:"color"`
}

// Tab is one panel of a dashboard. Content is a lazy producer: the
// composer invokes it only when the tab is active, and re-invokes it on
// every activation so panels see live filter and theme state.
type Tab struct {
	ID      string               `json:"id"`
	Label   string               `json:"label"`
	Icon    string               `json:"icon"`
	Content func() []ChartConfig `json:"-"`
}

// DashboardConfig is the declarative description of a full dashboard
// page. Like ChartConfig it carries no identity beyond a single render.
type DashboardConfig struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	KPIs        []KPI  `json:"kpis"`
	Tabs        []Tab  `json:"tabs"`
}

// Tab returns the tab with the given id, or nil.
func (c DashboardConfig) Tab(id string) *Tab {
	for i := range c.Tabs {
		if c.Tabs[i].ID == id {
			return &c.Tabs[i]
		}
	}
	return nil
}
