package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/pulseboard/internal/model"
)

func TestLookupRoundTrip(t *testing.T) {
	v := model.VerticalModule{
		ID:          "energy",
		Name:        "Energy & Utilities",
		Features:    []string{"Grid Optimization"},
		Regulations: []string{"NERC CIP"},
	}
	r := New(v)

	got, ok := r.Lookup("energy")
	require.True(t, ok)
	assert.Equal(t, v, got)
}

func TestLookupCaseInsensitive(t *testing.T) {
	r := New(model.VerticalModule{ID: "Energy"})

	_, ok := r.Lookup("ENERGY")
	assert.True(t, ok)
	_, ok = r.Lookup("energy")
	assert.True(t, ok)
}

func TestLookupUnknown(t *testing.T) {
	r := New(BuiltIn()...)

	got, ok := r.Lookup("aerospace")
	assert.False(t, ok)
	assert.Zero(t, got, "miss returns an explicit zero value, not a partial record")
}

func TestListPreservesOrder(t *testing.T) {
	r := New(
		model.VerticalModule{ID: "b"},
		model.VerticalModule{ID: "a"},
		model.VerticalModule{ID: "c"},
	)

	ids := make([]string, 0, 3)
	for _, v := range r.List() {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

func TestListReturnsCopy(t *testing.T) {
	r := New(model.VerticalModule{ID: "a", Name: "A"})

	list := r.List()
	list[0].Name = "mutated"

	got, _ := r.Lookup("a")
	assert.Equal(t, "A", got.Name)
}

func TestDuplicateIDReplacesKeepingPosition(t *testing.T) {
	r := New(
		model.VerticalModule{ID: "a", Name: "first"},
		model.VerticalModule{ID: "b"},
		model.VerticalModule{ID: "A", Name: "override"},
	)

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "override", list[0].Name)

	got, ok := r.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "override", got.Name)
}

func TestFilterByFeatureCaseInsensitive(t *testing.T) {
	r := New(BuiltIn()...)

	got := r.FilterByFeature("grid")
	require.Len(t, got, 1)
	assert.Equal(t, "energy", got[0].ID)
}

func TestFilterByRegulation(t *testing.T) {
	r := New(BuiltIn()...)

	got := r.FilterByRegulation("pci")
	ids := make([]string, 0, len(got))
	for _, v := range got {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"finance", "retail"}, ids)
}

func TestFilterNoMatch(t *testing.T) {
	r := New(BuiltIn()...)

	assert.Empty(t, r.FilterByFeature("quantum"))
	assert.Empty(t, r.FilterByRegulation("maritime-law"))
}

func TestBuiltInCatalogShape(t *testing.T) {
	verticals := BuiltIn()
	require.NotEmpty(t, verticals)

	seen := map[string]bool{}
	for _, v := range verticals {
		assert.NotEmpty(t, v.ID)
		assert.NotEmpty(t, v.Name)
		assert.False(t, seen[v.ID], "duplicate vertical id %q", v.ID)
		seen[v.ID] = true

		for _, m := range v.Metrics {
			assert.True(t, m.Polarity.Valid(),
				"metric %s/%s must declare polarity explicitly", v.ID, m.ID)
			if m.Polarity == model.LowerIsBetter {
				assert.GreaterOrEqual(t, m.Threshold.Critical, m.Threshold.Warning,
					"metric %s/%s: lower-is-better needs critical >= warning", v.ID, m.ID)
			} else {
				assert.LessOrEqual(t, m.Threshold.Critical, m.Threshold.Warning,
					"metric %s/%s: higher-is-better needs critical <= warning", v.ID, m.ID)
			}
		}
		for _, uc := range v.UseCases {
			assert.InDelta(t, 50, float64(uc.Scores.Security), 50, "scores stay within 0-100")
			assert.InDelta(t, 50, float64(uc.Scores.Integrity), 50)
			assert.InDelta(t, 50, float64(uc.Scores.Accuracy), 50)
		}
	}
}
