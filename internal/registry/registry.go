// Package registry holds the static catalog of industry verticals. The
// catalog is populated once at startup and read-only thereafter.
package registry

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/pulseboard/internal/model"
)

// Registry is an indexed, immutable collection of vertical modules.
type Registry struct {
	verticals []model.VerticalModule
	byID      map[string]int
}

// New builds a Registry from the given verticals, preserving order.
// A later vertical with a duplicate id replaces the earlier one in the
// index but keeps the earlier position, so merged catalogs stay stable.
// Threshold/polarity consistency is validated with warnings; nothing
// is rejected, since catalog data predates the polarity field.
func New(verticals ...model.VerticalModule) *Registry {
	r := &Registry{
		byID: make(map[string]int, len(verticals)),
	}
	for _, v := range verticals {
		validateThresholds(v)
		key := strings.ToLower(v.ID)
		if i, ok := r.byID[key]; ok {
			r.verticals[i] = v
			continue
		}
		r.byID[key] = len(r.verticals)
		r.verticals = append(r.verticals, v)
	}
	return r
}

// Lookup returns the vertical with the given id. Unknown ids return
// ok=false, never an error; callers decide fallback behavior.
func (r *Registry) Lookup(id string) (model.VerticalModule, bool) {
	i, ok := r.byID[strings.ToLower(id)]
	if !ok {
		return model.VerticalModule{}, false
	}
	return r.verticals[i], true
}

// List returns all verticals in registration order.
func (r *Registry) List() []model.VerticalModule {
	out := make([]model.VerticalModule, len(r.verticals))
	copy(out, r.verticals)
	return out
}

// FilterByFeature returns verticals with at least one feature containing
// substr, case-insensitively.
func (r *Registry) FilterByFeature(substr string) []model.VerticalModule {
	return r.filter(substr, func(v model.VerticalModule) []string { return v.Features })
}

// FilterByRegulation returns verticals with at least one regulation
// containing substr, case-insensitively.
func (r *Registry) FilterByRegulation(substr string) []model.VerticalModule {
	return r.filter(substr, func(v model.VerticalModule) []string { return v.Regulations })
}

func (r *Registry) filter(substr string, field func(model.VerticalModule) []string) []model.VerticalModule {
	needle := strings.ToLower(substr)
	var out []model.VerticalModule
	for _, v := range r.verticals {
		for _, s := range field(v) {
			if strings.Contains(strings.ToLower(s), needle) {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

// validateThresholds warns when a metric's threshold ordering disagrees
// with its polarity: higher-is-better metrics need critical <= warning,
// lower-is-better metrics the reverse.
func validateThresholds(v model.VerticalModule) {
	for _, m := range v.Metrics {
		ok := m.Threshold.Critical <= m.Threshold.Warning
		if m.Polarity == model.LowerIsBetter {
			ok = m.Threshold.Critical >= m.Threshold.Warning
		}
		if !ok {
			zap.L().Warn("registry: metric thresholds inconsistent with polarity",
				zap.String("vertical", v.ID),
				zap.String("metric", m.ID),
				zap.Float64("warning", m.Threshold.Warning),
				zap.Float64("critical", m.Threshold.Critical),
				zap.String("polarity", string(m.Polarity)),
			)
		}
	}
}
