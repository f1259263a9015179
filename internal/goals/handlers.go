package goals

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
)

const (
	Table = "goals"

	fetchErrorDetail = "Error fetching goals from Supabase"
)

// Source is anything that can return every row of a table.
// Implemented by supabase.Client and db.Source.
type Source interface {
	SelectAll(ctx context.Context, table string) ([]map[string]any, error)
}

// ListHandler serves GET /goals. Any backend or validation failure is logged
// and answered with one generic 500; no partial results.
func ListHandler(src Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := src.SelectAll(r.Context(), Table)
		if err != nil {
			log.Printf("[ERROR] fetch goals: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": fetchErrorDetail})
			return
		}

		list, err := FromRows(rows)
		if err != nil {
			log.Printf("[ERROR] fetch goals: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": fetchErrorDetail})
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[WARN] encode response: %v", err)
	}
}
