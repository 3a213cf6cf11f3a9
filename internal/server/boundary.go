package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jszwec/csvutil"
	"go.uber.org/zap"

	"github.com/sells-group/pulseboard/internal/fetch"
	"github.com/sells-group/pulseboard/internal/mockdata"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// dataSourceHeader tells clients whether they got live or fallback
// data, so a future UI can surface a degraded-data banner.
const dataSourceHeader = "X-Data-Source"

func (s *Server) handleLease(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res := fetch.Load(r.Context(), "vanguard-lease",
		func(ctx context.Context) (mockdata.Lease, error) { return s.live.Lease(ctx, id) },
		mockdata.LeaseFor(id),
	)
	w.Header().Set(dataSourceHeader, sourceOf(res.Degraded))
	respondJSON(w, http.StatusOK, res.Value)
}

func (s *Server) handleActionQueue(w http.ResponseWriter, r *http.Request) {
	res := fetch.Load(r.Context(), "action-queue", s.live.Actions, mockdata.ActionQueue())
	w.Header().Set(dataSourceHeader, sourceOf(res.Degraded))

	page, pageSize := pagination(r)
	items, total := paginate(res.Value, page, pageSize)
	respondJSON(w, http.StatusOK, map[string]any{
		"items":    items,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	})
}

func (s *Server) handleCompliance(w http.ResponseWriter, r *http.Request) {
	timeRange := r.URL.Query().Get("timeRange")
	if timeRange == "" {
		timeRange = "7d"
	}
	framework := r.URL.Query().Get("framework")

	series := mockdata.Compliance(timeRange, framework)
	respondJSON(w, http.StatusOK, map[string]any{
		"timeRange": timeRange,
		"framework": series[0].Framework,
		"series":    series,
	})
}

func auditFilter(r *http.Request) mockdata.AuditFilter {
	q := r.URL.Query()
	return mockdata.AuditFilter{
		Severity: q.Get("severity"),
		Actor:    q.Get("actor"),
		Action:   q.Get("action"),
	}
}

func (s *Server) handleAuditLogs(w http.ResponseWriter, r *http.Request) {
	logs := mockdata.AuditLogs(auditFilter(r))

	page, pageSize := pagination(r)
	pageLogs, total := paginate(logs, page, pageSize)
	respondJSON(w, http.StatusOK, map[string]any{
		"logs":     pageLogs,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	})
}

func (s *Server) handleAuditExport(w http.ResponseWriter, r *http.Request) {
	if !s.exportLimiter.Allow() {
		respondError(w, http.StatusTooManyRequests, "export rate limit exceeded")
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	switch format {
	case "csv":
	case "pdf":
		respondError(w, http.StatusNotImplemented, "pdf export not implemented")
		return
	default:
		respondError(w, http.StatusBadRequest, "unknown export format")
		return
	}

	logs := mockdata.AuditLogs(auditFilter(r))
	data, err := csvutil.Marshal(logs)
	if err != nil {
		zap.L().Error("server: encode audit export", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "encode export")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="audit-logs.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func sourceOf(degraded bool) string {
	if degraded {
		return "fallback"
	}
	return "live"
}

func pagination(r *http.Request) (page, pageSize int) {
	q := r.URL.Query()
	page, _ = strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(q.Get("pageSize"))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func paginate[T any](items []T, page, pageSize int) ([]T, int) {
	total := len(items)
	start := (page - 1) * pageSize
	if start >= total {
		return []T{}, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return items[start:end], total
}
