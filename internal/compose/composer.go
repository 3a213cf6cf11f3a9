// Package compose assembles dashboard pages from declarative configs:
// KPI cards in order, a tab strip, and exactly one active tab panel.
// Tab content producers are lazy — invoked only when their tab is
// active, fresh on every activation, never cached.
package compose

import (
	"html/template"

	"github.com/rotisserie/eris"

	"github.com/sells-group/pulseboard/internal/chart"
	"github.com/sells-group/pulseboard/internal/model"
	"github.com/sells-group/pulseboard/internal/severity"
)

// State is the per-session dashboard state: which tab is active.
type State struct {
	ActiveTab string
}

// NewState returns the initial state for a config: first tab active.
func NewState(cfg model.DashboardConfig) State {
	if len(cfg.Tabs) > 0 {
		return State{ActiveTab: cfg.Tabs[0].ID}
	}
	return State{}
}

// SwitchTab is a pure state transition. The only validation is that the
// target id exists in cfg.Tabs.
func SwitchTab(cfg model.DashboardConfig, s State, id string) (State, error) {
	if cfg.Tab(id) == nil {
		return s, eris.Errorf("compose: unknown tab %q", id)
	}
	return State{ActiveTab: id}, nil
}

// Card is a rendered KPI card.
type Card struct {
	KPI        model.KPI
	DeltaColor string
}

// TabHeader is one entry of the tab strip.
type TabHeader struct {
	ID     string
	Label  string
	Icon   string
	Active bool
}

// Page is a fully composed dashboard page, ready for HTML output.
type Page struct {
	Title       string
	Description string
	Theme       model.ThemeMode
	Cards       []Card
	Tabs        []TabHeader
	ActiveTab   string
	Charts      []template.HTML
}

// Compose builds a Page from a dashboard config. KPI deltas are colored
// through the severity classifier (trend sign only); the active tab's
// content producer is invoked exactly once, and inactive producers are
// not invoked at all.
func Compose(cfg model.DashboardConfig, s State, theme model.ThemeMode) (Page, error) {
	p := Page{
		Title:       cfg.Title,
		Description: cfg.Description,
		Theme:       theme,
		ActiveTab:   s.ActiveTab,
	}
	if p.ActiveTab == "" && len(cfg.Tabs) > 0 {
		p.ActiveTab = cfg.Tabs[0].ID
	}

	for _, k := range cfg.KPIs {
		p.Cards = append(p.Cards, Card{
			KPI:        k,
			DeltaColor: severity.TrendTier(k.Trend).Color(theme),
		})
	}

	for _, t := range cfg.Tabs {
		p.Tabs = append(p.Tabs, TabHeader{
			ID:     t.ID,
			Label:  t.Label,
			Icon:   t.Icon,
			Active: t.ID == p.ActiveTab,
		})
	}

	active := cfg.Tab(p.ActiveTab)
	if active == nil || active.Content == nil {
		return p, nil
	}
	for _, cc := range active.Content() {
		svg, err := chart.Render(cc, theme)
		if err != nil {
			return Page{}, eris.Wrapf(err, "compose: tab %q chart %q", active.ID, cc.Title)
		}
		p.Charts = append(p.Charts, template.HTML(svg)) //nolint:gosec // renderer escapes all user text
	}
	return p, nil
}
