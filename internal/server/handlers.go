package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sells-group/pulseboard/internal/chart"
	"github.com/sells-group/pulseboard/internal/compose"
	"github.com/sells-group/pulseboard/internal/mockdata"
	"github.com/sells-group/pulseboard/internal/model"
)

// verticalSummary is the list projection of a vertical module.
type verticalSummary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Regulations  []string `json:"regulations"`
	UseCaseCount int      `json:"use_case_count"`
	MetricCount  int      `json:"metric_count"`
}

func (s *Server) handleListVerticals(w http.ResponseWriter, r *http.Request) {
	verticals := s.reg.List()
	if f := r.URL.Query().Get("feature"); f != "" {
		verticals = s.reg.FilterByFeature(f)
	} else if reg := r.URL.Query().Get("regulation"); reg != "" {
		verticals = s.reg.FilterByRegulation(reg)
	}

	out := make([]verticalSummary, 0, len(verticals))
	for _, v := range verticals {
		out = append(out, verticalSummary{
			ID:           v.ID,
			Name:         v.Name,
			Description:  v.Description,
			Features:     v.Features,
			Regulations:  v.Regulations,
			UseCaseCount: len(v.UseCases),
			MetricCount:  len(v.Metrics),
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"items": out,
		"total": len(out),
	})
}

func (s *Server) handleGetVertical(w http.ResponseWriter, r *http.Request) {
	v, ok := s.reg.Lookup(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "vertical not found")
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	v, ok := s.reg.Lookup(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "vertical not found")
		return
	}

	cfg := mockdata.Dashboard(v)
	state := compose.NewState(cfg)
	if tab := r.URL.Query().Get("tab"); tab != "" {
		var err error
		state, err = compose.SwitchTab(cfg, state, tab)
		if err != nil {
			respondError(w, http.StatusNotFound, "unknown tab")
			return
		}
	}

	page, err := compose.Compose(cfg, state, s.theme(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "compose dashboard")
		return
	}
	html, err := page.HTML()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "render dashboard")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

func (s *Server) handleRenderChart(w http.ResponseWriter, r *http.Request) {
	var cfg model.ChartConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		respondError(w, http.StatusBadRequest, "invalid chart config")
		return
	}

	svg, err := chart.Render(cfg, s.theme(r))
	if err != nil {
		var ute *chart.UnsupportedTypeError
		if errors.As(err, &ute) {
			respondError(w, http.StatusUnprocessableEntity, ute.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "render chart")
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(svg))
}
