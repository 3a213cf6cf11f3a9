package mockdata

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strings"
	"time"
)

// refTime anchors all generated timestamps so output is reproducible.
var refTime = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

func rngFor(parts ...string) *rand.Rand {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	seed := h.Sum64()
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// LeaseFor returns the lease record for an agent lease id.
func LeaseFor(id string) Lease {
	rng := rngFor("lease", id)
	statuses := []string{"active", "active", "active", "renewing", "expiring"}
	acquired := refTime.Add(-time.Duration(rng.IntN(72)+1) * time.Hour)
	return Lease{
		ID:         id,
		Agent:      fmt.Sprintf("vanguard-%02d", rng.IntN(24)),
		Vertical:   pick(rng, "energy", "healthcare", "finance", "manufacturing", "retail", "logistics"),
		Status:     statuses[rng.IntN(len(statuses))],
		AcquiredAt: acquired,
		ExpiresAt:  acquired.Add(96 * time.Hour),
		RenewCount: rng.IntN(9),
	}
}

// ActionQueue returns the full pending action queue, newest first.
func ActionQueue() []ActionItem {
	rng := rngFor("actions")
	titles := []string{
		"Acknowledge threshold breach",
		"Approve remediation plan",
		"Review anomaly cluster",
		"Rotate agent credentials",
		"Re-baseline forecast model",
		"Confirm maintenance window",
	}
	verticals := []string{"energy", "healthcare", "finance", "manufacturing", "retail", "logistics"}
	priorities := []string{"low", "medium", "high", "critical"}
	statuses := []string{"pending", "pending", "in_progress", "blocked"}

	items := make([]ActionItem, 0, 18)
	for i := 0; i < 18; i++ {
		items = append(items, ActionItem{
			ID:        fmt.Sprintf("act-%04d", 1000+i),
			Title:     titles[rng.IntN(len(titles))],
			Vertical:  verticals[rng.IntN(len(verticals))],
			Priority:  priorities[rng.IntN(len(priorities))],
			Status:    statuses[rng.IntN(len(statuses))],
			Assignee:  fmt.Sprintf("vanguard-%02d", rng.IntN(24)),
			CreatedAt: refTime.Add(-time.Duration(i*37) * time.Minute),
		})
	}
	return items
}

// Compliance returns one snapshot per period for a framework over a
// named time range ("7d", "30d", "90d").
func Compliance(timeRange, framework string) []ComplianceSnapshot {
	if framework == "" {
		framework = "SOC2"
	}
	periods := 7
	switch timeRange {
	case "30d":
		periods = 30
	case "90d":
		periods = 12 // weekly buckets
	}

	rng := rngFor("compliance", timeRange, framework)
	base := 82 + rng.Float64()*10
	out := make([]ComplianceSnapshot, 0, periods)
	for i := 0; i < periods; i++ {
		score := clamp(base+rng.Float64()*6-3, 0, 100)
		total := 120 + rng.IntN(40)
		passing := int(float64(total) * score / 100)
		out = append(out, ComplianceSnapshot{
			Period:    refTime.AddDate(0, 0, -(periods - 1 - i)).Format("2006-01-02"),
			Framework: framework,
			Score:     round1(score),
			Passing:   passing,
			Failing:   total - passing,
		})
		base = score
	}
	return out
}

// AuditLogs returns the filtered audit trail, newest first.
func AuditLogs(filter AuditFilter) []AuditLog {
	rng := rngFor("audit")
	actors := []string{"ops.admin", "sre.oncall", "vanguard-03", "vanguard-11", "compliance.bot"}
	actions := []string{"login", "config.update", "dashboard.view", "export.csv", "threshold.edit", "agent.restart"}
	resources := []string{"energy/grid-uptime", "finance/txn-success-rate", "healthcare/er-wait-time", "catalog", "audit-log"}
	severities := []string{"info", "info", "info", "warning", "critical"}

	logs := make([]AuditLog, 0, 120)
	for i := 0; i < 120; i++ {
		l := AuditLog{
			ID:        fmt.Sprintf("audit-%05d", 10000+i),
			Timestamp: refTime.Add(-time.Duration(i*11) * time.Minute),
			Actor:     actors[rng.IntN(len(actors))],
			Action:    actions[rng.IntN(len(actions))],
			Resource:  resources[rng.IntN(len(resources))],
			Severity:  severities[rng.IntN(len(severities))],
			SourceIP:  fmt.Sprintf("10.40.%d.%d", rng.IntN(16), 2+rng.IntN(250)),
		}
		if !matchesFilter(l, filter) {
			continue
		}
		logs = append(logs, l)
	}
	return logs
}

func matchesFilter(l AuditLog, f AuditFilter) bool {
	if f.Severity != "" && !strings.EqualFold(l.Severity, f.Severity) {
		return false
	}
	if f.Actor != "" && !strings.Contains(strings.ToLower(l.Actor), strings.ToLower(f.Actor)) {
		return false
	}
	if f.Action != "" && !strings.Contains(strings.ToLower(l.Action), strings.ToLower(f.Action)) {
		return false
	}
	return true
}

func pick(rng *rand.Rand, options ...string) string {
	return options[rng.IntN(len(options))]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
