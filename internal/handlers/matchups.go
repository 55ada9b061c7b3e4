package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/wbcassist/wbcmatch/internal/matchup"
	"github.com/wbcassist/wbcmatch/internal/models"
	"github.com/wbcassist/wbcmatch/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type MatchupHandler struct {
	Engine *matchup.Engine
}

type matchupResponse struct {
	Selection matchup.Selection      `json:"selection"`
	Records   []models.MatchupRecord `json:"records"`
	Summary   report.Summary         `json:"summary"`
	Table     *report.TableData      `json:"table"`
	Chart     *report.ChartConfig    `json:"chart,omitempty"`
}

// compute parses the query and runs the engine, answering 400 itself when
// the selection is unusable.
func (h *MatchupHandler) compute(w http.ResponseWriter, r *http.Request) (matchup.Selection, []models.MatchupRecord, bool) {
	sel, err := selectionFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return sel, nil, false
	}
	records, err := h.Engine.Compute(sel)
	if err != nil {
		engineError(w, err)
		return sel, nil, false
	}
	return sel, records, true
}

func engineError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, matchup.ErrInvalidSelection) {
		status = http.StatusBadRequest
	}
	http.Error(w, err.Error(), status)
}

func (h *MatchupHandler) Matchups(w http.ResponseWriter, r *http.Request) {
	sel, records, ok := h.compute(w, r)
	if !ok {
		return
	}
	title := selectionTitle(sel)
	summary := report.Summarize(records)
	writeJSON(w, matchupResponse{
		Selection: sel,
		Records:   records,
		Summary:   summary,
		Table:     report.MatchupTable(title, records),
		Chart:     report.MatchupChart(title, summary),
	})
}

// XLSX serves the matchup table as a workbook download.
func (h *MatchupHandler) XLSX(w http.ResponseWriter, r *http.Request) {
	sel, records, ok := h.compute(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, report.MatchupTable(selectionTitle(sel), records)); err != nil {
		log.Printf("[HTTP] %s xlsx export: %v", RequestIDFromContext(r.Context()), err)
		http.Error(w, "export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-matchups.xlsx"`, sel.Player.Slug()))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

// Counters answers the same query as Matchups grouped by player unit.
func (h *MatchupHandler) Counters(w http.ResponseWriter, r *http.Request) {
	sel, err := selectionFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	counters, err := h.Engine.Counters(sel)
	if err != nil {
		engineError(w, err)
		return
	}
	writeJSON(w, counters)
}

// Swap returns the selection with the player and the enemy at ?index=
// exchanged. It does not run the engine.
func (h *MatchupHandler) Swap(w http.ResponseWriter, r *http.Request) {
	sel, err := selectionFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	index := 0
	if v := r.URL.Query().Get("index"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid index", http.StatusBadRequest)
			return
		}
		index = n
	}
	swapped, err := sel.Swap(index)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, swapped)
}

type policyResponse struct {
	Weights       map[matchup.Dimension]float64 `json:"weights"`
	Margin        float64                       `json:"margin"`
	Dimensions    []matchup.Dimension           `json:"dimensions"`
	MaxEnemyRaces int                           `json:"max_enemy_races"`
}

func (h *MatchupHandler) Policy(w http.ResponseWriter, r *http.Request) {
	p := h.Engine.Policy()
	writeJSON(w, policyResponse{
		Weights:       p.Weights,
		Margin:        p.Margin,
		Dimensions:    matchup.AllDimensions(),
		MaxEnemyRaces: h.Engine.MaxEnemyRaces(),
	})
}

func selectionTitle(sel matchup.Selection) string {
	names := make([]string, len(sel.Enemies))
	for i, r := range sel.Enemies {
		names[i] = r.String()
	}
	return sel.Player.String() + " vs " + strings.Join(names, ", ")
}
