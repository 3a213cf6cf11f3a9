// Package mockdata generates the synthetic records behind every
// dashboard. Generators are deterministic per input, so repeated
// renders (and tests) see identical data.
package mockdata

import "time"

// Lease is an agent lease record served by the vanguards lease endpoint.
type Lease struct {
	ID         string    `json:"id"`
	Agent      string    `json:"agent"`
	Vertical   string    `json:"vertical"`
	Status     string    `json:"status"`
	AcquiredAt time.Time `json:"acquired_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	RenewCount int       `json:"renew_count"`
}

// ActionItem is one entry of the pending action queue.
type ActionItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Vertical  string    `json:"vertical"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	Assignee  string    `json:"assignee"`
	CreatedAt time.Time `json:"created_at"`
}

// ComplianceSnapshot is one period of a framework's compliance series.
type ComplianceSnapshot struct {
	Period    string  `json:"period"`
	Framework string  `json:"framework"`
	Score     float64 `json:"score"`
	Passing   int     `json:"passing"`
	Failing   int     `json:"failing"`
}

// AuditLog is a single audit trail entry. The csv tags drive the
// export encoding.
type AuditLog struct {
	ID        string    `json:"id" csv:"id"`
	Timestamp time.Time `json:"timestamp" csv:"timestamp"`
	Actor     string    `json:"actor" csv:"actor"`
	Action    string    `json:"action" csv:"action"`
	Resource  string    `json:"resource" csv:"resource"`
	Severity  string    `json:"severity" csv:"severity"`
	SourceIP  string    `json:"source_ip" csv:"source_ip"`
}

// AuditFilter narrows audit log listings. Zero fields match everything.
type AuditFilter struct {
	Severity string
	Actor    string
	Action   string
}
