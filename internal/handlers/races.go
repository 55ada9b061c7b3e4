package handlers

import (
	"net/http"

	"github.com/wbcassist/wbcmatch/internal/catalog"
	"github.com/wbcassist/wbcmatch/internal/models"
)

type RaceHandler struct {
	Catalog *catalog.Catalog
}

type raceInfo struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	UnitCount int    `json:"unit_count"`
}

func (h *RaceHandler) List(w http.ResponseWriter, r *http.Request) {
	races := h.Catalog.Races()
	out := make([]raceInfo, 0, len(races))
	for _, race := range races {
		out = append(out, raceInfo{
			Name:      race.String(),
			Slug:      race.Slug(),
			UnitCount: h.Catalog.Count(race),
		})
	}
	writeJSON(w, out)
}

func (h *RaceHandler) UnitTypes(w http.ResponseWriter, r *http.Request) {
	types := h.Catalog.UnitTypes()
	if types == nil {
		types = []models.UnitType{}
	}
	writeJSON(w, types)
}
