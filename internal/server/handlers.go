// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pdiddy/autoaid/internal/maintenance"
	"github.com/pdiddy/autoaid/internal/score"
	"github.com/pdiddy/autoaid/internal/table"
)

// resultsResponse wraps every list answer.
type resultsResponse struct {
	Count   int `json:"count"`
	Results any `json:"results"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) searchVehicles(w http.ResponseWriter, r *http.Request) {
	recs, err := s.catalog.FilterVehicles(r.FormValue("keyword"), strings.TrimSpace(r.FormValue("price")))
	if err != nil {
		s.writeQueryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resultsResponse{Count: len(recs), Results: recs})
}

func (s *Server) searchProblems(w http.ResponseWriter, r *http.Request) {
	recs, err := s.catalog.FilterProblemsByKeyword(r.FormValue("keyword"))
	if err != nil {
		s.writeQueryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resultsResponse{Count: len(recs), Results: recs})
}

func (s *Server) filterByDealer(w http.ResponseWriter, r *http.Request) {
	recs, err := s.catalog.FilterProblemsByDealer(r.FormValue("dealer"))
	if err != nil {
		s.writeQueryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resultsResponse{Count: len(recs), Results: recs})
}

func (s *Server) suggestSolutions(w http.ResponseWriter, r *http.Request) {
	recs, err := s.catalog.SuggestSolutions(r.FormValue("keyword"))
	if err != nil {
		s.writeQueryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resultsResponse{Count: len(recs), Results: recs})
}

func (s *Server) filterParts(w http.ResponseWriter, r *http.Request) {
	recs, err := s.catalog.FilterParts(r.FormValue("keyword"))
	if err != nil {
		s.writeQueryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resultsResponse{Count: len(recs), Results: recs})
}

func (s *Server) carScore(w http.ResponseWriter, r *http.Request) {
	in := score.ParseInput(
		r.FormValue("kmdrive"),
		r.FormValue("avg"),
		r.FormValue("byear"),
		r.FormValue("type"),
	)
	writeJSON(w, http.StatusOK, score.Compute(in))
}

// maintenanceLog looks up logs by the plateText field, or else by the name
// of the uploaded imageFile.
func (s *Server) maintenanceLog(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	plate := r.FormValue("plateText")
	if plate == "" {
		if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			writeError(w, http.StatusBadRequest, "invalid upload", err.Error())
			return
		}
		if f, hdr, err := r.FormFile("imageFile"); err == nil {
			f.Close()
			plate = maintenance.PlateFromFilename(hdr.Filename)
		}
	}
	if plate == "" {
		writeError(w, http.StatusBadRequest, "plate required", "send plateText or an imageFile upload")
		return
	}

	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "maintenance lookup unavailable", "no maintenance store configured")
		return
	}

	logs, err := maintenance.Lookup(r.Context(), s.store, plate)
	if err != nil {
		s.writeQueryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resultsResponse{Count: len(logs), Results: logs})
}

func (s *Server) writeQueryError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "query failed"

	var missing *table.MissingColumnError
	switch {
	case errors.As(err, &missing):
		message = "dataset missing required column"
	case errors.Is(err, maintenance.ErrLookupUnavailable):
		status = http.StatusServiceUnavailable
		message = "maintenance lookup unavailable"
	}

	s.log.Error().Err(err).Str("path", r.URL.Path).Int("status", status).Msg(message)
	writeError(w, status, message, err.Error())
}

func writeError(w http.ResponseWriter, status int, message, detail string) {
	writeJSON(w, status, errorResponse{Error: message, Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
