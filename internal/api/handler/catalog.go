package handler

import (
	"net/http"

	"github.com/athlonet/sportdesk/internal/api/respond"
	"github.com/athlonet/sportdesk/internal/catalog"
)

type catalogSport struct {
	Sport       catalog.SportType `json:"sport"`
	IsTeamSport bool              `json:"isTeamSport"`
	TeamPrefix  string            `json:"teamPrefix"`
	Disciplines []catalogEntry    `json:"disciplines,omitempty"`
}

type catalogEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// GetCatalog serves the static sport taxonomy in one call: the creation
// dialogs need sports, disciplines, and enums together.
// @Summary Sport catalog
// @Description Returns sport categories, discipline codes with names, team-code prefixes, and the gender/event-status enums.
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /catalog [get]
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	sports := make([]catalogSport, 0, len(catalog.SportTypes))
	for _, s := range catalog.SportTypes {
		cs := catalogSport{
			Sport:       s,
			IsTeamSport: catalog.IsTeamSport(s),
			TeamPrefix:  catalog.TeamCodePrefix(s),
		}
		for _, code := range catalog.DisciplineCodes(s) {
			cs.Disciplines = append(cs.Disciplines, catalogEntry{Code: code, Name: catalog.DisciplineName(code)})
		}
		sports = append(sports, cs)
	}

	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"sports":  sports,
		"genders": []catalog.Gender{catalog.Male, catalog.Female, catalog.Other},
		"eventStatuses": []catalog.EventStatus{
			catalog.StatusScheduled, catalog.StatusLive, catalog.StatusFinished, catalog.StatusCanceled,
		},
	})
}
