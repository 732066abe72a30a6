package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/athlonet/sportdesk/internal/api/respond"
	"github.com/athlonet/sportdesk/internal/backend"
	"github.com/athlonet/sportdesk/internal/catalog"
	"github.com/athlonet/sportdesk/internal/perf"
)

// summaryPage mirrors the backend pagination envelope over normalized
// summaries so the frontend table code works unchanged.
type summaryPage struct {
	Data       []perf.Summary `json:"data"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
	HasNext    bool           `json:"hasNext"`
	HasPrev    bool           `json:"hasPrev"`
}

// GetPerformanceSummaries lists performances normalized for display.
// @Summary List normalized performances
// @Description Fetches performances from the backend and renders each into a flat display summary (result string, names, best badge).
// @Tags performances
// @Produce json
// @Param search query string false "Search term"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sportType query string false "Sport filter" Enums(BASKETBALL, FOOTBALL, ATHLETICS, WRESTLING, BOXING)
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} respond.ErrorResponse
// @Router /performances/summaries [get]
func (h *Handler) GetPerformanceSummaries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := backend.ListParams{
		Search:    q.Get("search"),
		SportType: catalog.SportType(q.Get("sportType")),
	}
	if n, err := strconv.Atoi(q.Get("page")); err == nil {
		params.Page = n
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil {
		params.Limit = n
	}

	page, err := h.client.ListPerformances(r.Context(), params)
	if err != nil {
		writeBackendError(w, err)
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, summaryPage{
		Data:       perf.SummarizeAll(page.Data),
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
		HasNext:    page.HasNext,
		HasPrev:    page.HasPrev,
	})
}

// GetAthletePerformances lists one athlete's performances, normalized.
// An athlete with no recorded performances gets an empty list, not an
// error.
// @Summary Athlete performance history
// @Description Returns the athlete's normalized performance summaries, newest-as-returned by the backend.
// @Tags performances
// @Produce json
// @Param id path int true "Athlete ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /athletes/{id}/performances [get]
func (h *Handler) GetAthletePerformances(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "athlete id must be an integer")
		return
	}

	records, err := h.client.PerformancesByAthlete(r.Context(), id)
	if err != nil {
		writeBackendError(w, err)
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"data":  perf.SummarizeAll(records),
		"total": len(records),
	})
}
