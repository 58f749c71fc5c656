package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/amprasad/studyplanner/internal/parser"
	"github.com/amprasad/studyplanner/internal/planner"
	"github.com/amprasad/studyplanner/internal/schedule"
)

// handleUpload processes one document synchronously: extract headings and
// text, score difficulty, and allocate the hours budget proportionally.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusUnsupportedMediaType)
		return
	}

	totalHours, err := strconv.ParseFloat(r.FormValue("total_hours"), 64)
	if err != nil {
		jsonError(w, "total_hours is required and must be numeric", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	topK := 0
	if v := r.FormValue("top_k"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			topK = n
		}
	}

	result, err := s.planner.BuildSchedule(r.Context(), planner.Request{
		Filename:   filename,
		Data:       data,
		TotalHours: totalHours,
		StartDate:  r.FormValue("start_date"),
		TopK:       topK,
	})
	if err != nil {
		writePipelineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleGenerate builds a capacity-bounded schedule from a manual topic
// list: one topic per day, truncated at the day ceiling.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if fields := req.Validate(); fields != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"errors": fields})
		return
	}

	if req.DailyHours <= 0 {
		req.DailyHours = s.cfg.DefaultDailyHours
	}
	if req.Days <= 0 {
		req.Days = s.cfg.DefaultDays
	}

	topics := make([]schedule.Topic, len(req.Topics))
	for i, t := range req.Topics {
		topics[i] = schedule.Topic{
			Name:  t.Name,
			Score: float64(t.Difficulty),
			Hours: t.HoursRequired,
		}
	}

	entries, err := schedule.CapacityBounded(topics, req.Days, req.DailyHours)
	if err != nil {
		writePipelineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"schedule": entries})
}

// writePipelineError maps pipeline error kinds to HTTP statuses.
func writePipelineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, parser.ErrUnsupportedFormat):
		jsonError(w, err.Error(), http.StatusUnsupportedMediaType)
	case errors.Is(err, parser.ErrExtractionFailed):
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, schedule.ErrInvalidParameters):
		jsonError(w, err.Error(), http.StatusBadRequest)
	default:
		jsonError(w, err.Error(), http.StatusInternalServerError)
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
