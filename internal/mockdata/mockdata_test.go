package mockdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/pulseboard/internal/model"
	"github.com/sells-group/pulseboard/internal/registry"
	"github.com/sells-group/pulseboard/internal/severity"
)

func TestGeneratorsDeterministic(t *testing.T) {
	assert.Equal(t, LeaseFor("lease-7"), LeaseFor("lease-7"))
	assert.Equal(t, ActionQueue(), ActionQueue())
	assert.Equal(t, Compliance("30d", "HIPAA"), Compliance("30d", "HIPAA"))
	assert.Equal(t, AuditLogs(AuditFilter{}), AuditLogs(AuditFilter{}))
}

func TestLeaseForVariesByID(t *testing.T) {
	assert.NotEqual(t, LeaseFor("a"), LeaseFor("b"))
}

func TestComplianceRanges(t *testing.T) {
	assert.Len(t, Compliance("7d", "SOC2"), 7)
	assert.Len(t, Compliance("30d", "SOC2"), 30)
	assert.Len(t, Compliance("90d", "SOC2"), 12)

	for _, s := range Compliance("30d", "PCI DSS") {
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 100.0)
		assert.GreaterOrEqual(t, s.Passing, 0)
		assert.GreaterOrEqual(t, s.Failing, 0)
	}
}

func TestComplianceDefaultsFramework(t *testing.T) {
	got := Compliance("7d", "")
	require.NotEmpty(t, got)
	assert.Equal(t, "SOC2", got[0].Framework)
}

func TestAuditLogsFilters(t *testing.T) {
	all := AuditLogs(AuditFilter{})
	require.NotEmpty(t, all)

	critical := AuditLogs(AuditFilter{Severity: "CRITICAL"})
	assert.NotEmpty(t, critical, "severity filter is case-insensitive")
	assert.Less(t, len(critical), len(all))
	for _, l := range critical {
		assert.Equal(t, "critical", l.Severity)
	}

	logins := AuditLogs(AuditFilter{Action: "log"})
	for _, l := range logins {
		assert.Contains(t, l.Action, "log")
	}
}

func TestDashboardShape(t *testing.T) {
	for _, v := range registry.BuiltIn() {
		cfg := Dashboard(v)

		assert.NotEmpty(t, cfg.Title)
		assert.Len(t, cfg.KPIs, len(v.Metrics), "one KPI per metric for %s", v.ID)
		require.NotEmpty(t, cfg.Tabs)
		for _, tab := range cfg.Tabs {
			require.NotNil(t, tab.Content, "tab %s/%s has a content producer", v.ID, tab.ID)
			for _, cc := range tab.Content() {
				assert.True(t, cc.Type.Valid(), "chart type %q in %s/%s", cc.Type, v.ID, tab.ID)
				assert.NotEmpty(t, cc.Keys)
			}
		}
	}
}

func TestDashboardKPITrendsMatchChangeSign(t *testing.T) {
	for _, v := range registry.BuiltIn() {
		for _, k := range Dashboard(v).KPIs {
			if k.Change < 0 {
				assert.Equal(t, model.TrendDown, k.Trend)
			} else {
				assert.Equal(t, model.TrendUp, k.Trend)
			}
		}
	}
}

func TestMetricValueMostlyHealthy(t *testing.T) {
	// Generated readings sit on the healthy side of the warning
	// threshold for either polarity.
	for _, v := range registry.BuiltIn() {
		for _, m := range v.Metrics {
			val := MetricValue(v.ID, m)
			tier := severity.Classify(val, m.Threshold, m.Polarity)
			assert.NotEqual(t, severity.TierCritical, tier,
				"metric %s/%s value %v classified critical", v.ID, m.ID, val)
		}
	}
}

func TestUseCaseRadarPreNormalized(t *testing.T) {
	v := registry.BuiltIn()[0]
	cfg := Dashboard(v)

	tab := cfg.Tab("usecases")
	require.NotNil(t, tab)
	for _, cc := range tab.Content() {
		require.Equal(t, model.ChartRadar, cc.Type)
		for _, r := range cc.Data {
			for k, val := range r.Fields {
				assert.GreaterOrEqual(t, val, 0.0, "axis %s series %s", r.Label, k)
				assert.LessOrEqual(t, val, 100.0, "radar input stays in the fixed domain")
			}
		}
	}
}
