package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// handleHeadingSearch does vector similarity search over stored headings.
func (s *Server) handleHeadingSearch(w http.ResponseWriter, r *http.Request) {
	if s.index == nil {
		jsonError(w, "heading index is not configured", http.StatusServiceUnavailable)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		jsonError(w, "q query parameter is required", http.StatusBadRequest)
		return
	}

	limit := 5
	if v := r.URL.Query().Get("k"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := s.index.Search(r.Context(), query, limit)
	if err != nil {
		jsonError(w, "search failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"results": records})
}
