package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/wbcassist/wbcmatch/internal/catalog"
	"github.com/wbcassist/wbcmatch/internal/models"
	"github.com/wbcassist/wbcmatch/internal/report"
)

type UnitHandler struct {
	Catalog *catalog.Catalog
}

// filter narrows the catalog to ?race= and ?type=. Units come sorted by
// race, tier, then name.
func (h *UnitHandler) filter(q url.Values) ([]models.Unit, error) {
	var race models.Race
	if v := q.Get("race"); v != "" {
		parsed, err := models.ParseRace(v)
		if err != nil {
			return nil, err
		}
		race = parsed
	}
	types := map[models.UnitType]bool{}
	for _, v := range listParam(q, "type") {
		t, err := models.ParseUnitType(v)
		if err != nil {
			return nil, err
		}
		types[t] = true
	}

	out := []models.Unit{}
	for _, u := range h.Catalog.All() {
		if race != models.RaceUnknown && u.Race != race {
			continue
		}
		if len(types) > 0 && !types[u.Type] {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// List browses units, optionally narrowed to one race and some unit types.
func (h *UnitHandler) List(w http.ResponseWriter, r *http.Request) {
	units, err := h.filter(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, units)
}

// XLSX exports the same list as a workbook.
func (h *UnitHandler) XLSX(w http.ResponseWriter, r *http.Request) {
	units, err := h.filter(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	title, name := "All races", "units.xlsx"
	if v := r.URL.Query().Get("race"); v != "" {
		race, _ := models.ParseRace(v)
		title, name = race.String(), race.Slug()+"-units.xlsx"
	}
	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, report.UnitTable(title, units)); err != nil {
		log.Printf("[HTTP] %s unit xlsx export: %v", RequestIDFromContext(r.Context()), err)
		http.Error(w, "export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

func (h *UnitHandler) Get(w http.ResponseWriter, r *http.Request) {
	race, err := models.ParseRace(r.PathValue("race"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	u, ok := h.Catalog.Unit(race, r.PathValue("name"))
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, u)
}
