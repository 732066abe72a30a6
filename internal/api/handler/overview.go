package handler

import (
	"net/http"

	"github.com/athlonet/sportdesk/internal/api/respond"
	"github.com/athlonet/sportdesk/internal/backend"
	"github.com/athlonet/sportdesk/internal/stats"
)

// overviewFetchLimit bounds how much the overview pulls from the backend.
// The aggregation is display-only; beyond this the numbers stop being
// worth another page fetch.
const overviewFetchLimit = 500

// Overview is the aggregated payload behind the dashboard landing page.
type Overview struct {
	Totals       stats.Totals        `json:"totals"`
	BySport      []stats.SportCount  `json:"bySport"`
	TopAthletes  []stats.AthleteRank `json:"topAthletes"`
	GenderSplit  []stats.GenderCount `json:"genderSplit"`
	RecentEvents []stats.Activity    `json:"recentActivity"`
}

// GetOverview aggregates dashboard statistics.
// @Summary Dashboard overview
// @Description Derives totals, counts by sport, top athletes by appearances, gender split, and recent activity from the backend's athlete and performance lists.
// @Tags overview
// @Produce json
// @Success 200 {object} Overview
// @Failure 502 {object} respond.ErrorResponse
// @Router /overview [get]
func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	athletes, err := h.client.ListAthletes(r.Context(), backend.ListParams{Limit: overviewFetchLimit})
	if err != nil {
		writeBackendError(w, err)
		return
	}
	performances, err := h.client.ListPerformances(r.Context(), backend.ListParams{Limit: overviewFetchLimit})
	if err != nil {
		writeBackendError(w, err)
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, Overview{
		Totals:       stats.Compute(athletes.Data, performances.Data),
		BySport:      stats.CountBySport(performances.Data),
		TopAthletes:  stats.RankByAppearances(performances.Data, 10),
		GenderSplit:  stats.GenderSplit(athletes.Data),
		RecentEvents: stats.RecentActivity(athletes.Data, performances.Data, 5),
	})
}
