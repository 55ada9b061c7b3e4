package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/wbcassist/wbcmatch/internal/matchup"
)

// listParam collects a repeated parameter, also splitting comma separated
// values: ?enemy=Orcs&enemy=Undead and ?enemy=Orcs,Undead are the same.
func listParam(q url.Values, key string) []string {
	var out []string
	for _, v := range q[key] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// selectionFromQuery reads player, enemy, type and enemy_type. Passing
// enemy_type at all, even empty, gives the enemy side its own filter.
func selectionFromQuery(q url.Values) (matchup.Selection, error) {
	var enemyTypes []string
	if _, ok := q["enemy_type"]; ok {
		enemyTypes = append([]string{}, listParam(q, "enemy_type")...)
	}
	return matchup.ParseSelection(q.Get("player"), listParam(q, "enemy"), listParam(q, "type"), enemyTypes)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[HTTP] encode response: %v", err)
	}
}
