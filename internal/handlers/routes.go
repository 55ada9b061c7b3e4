package handlers

import (
	"net/http"

	"github.com/wbcassist/wbcmatch/internal/catalog"
	"github.com/wbcassist/wbcmatch/internal/matchup"
)

// Register mounts the API on mux.
func Register(mux *http.ServeMux, cat *catalog.Catalog, engine *matchup.Engine) {
	raceHandler := &RaceHandler{Catalog: cat}
	unitHandler := &UnitHandler{Catalog: cat}
	matchupHandler := &MatchupHandler{Engine: engine}

	// Health check
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Dataset
	mux.HandleFunc("GET /api/races", raceHandler.List)
	mux.HandleFunc("GET /api/unit-types", raceHandler.UnitTypes)
	mux.HandleFunc("GET /api/units", unitHandler.List)
	mux.HandleFunc("GET /api/units/xlsx", unitHandler.XLSX)
	mux.HandleFunc("GET /api/races/{race}/units/{name}", unitHandler.Get)

	// Matchups
	mux.HandleFunc("GET /api/matchups", matchupHandler.Matchups)
	mux.HandleFunc("GET /api/matchups/xlsx", matchupHandler.XLSX)
	mux.HandleFunc("GET /api/counters", matchupHandler.Counters)
	mux.HandleFunc("GET /api/swap", matchupHandler.Swap)
	mux.HandleFunc("GET /api/policy", matchupHandler.Policy)
}
