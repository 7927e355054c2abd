package httpserver

import (
	"encoding/json"
	"net/http"
)

type detailResponse struct {
	Detail string `json:"detail"`
}

type validationResponse struct {
	Detail []validationIssue `json:"detail"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.logger.Error().Err(err).Msg("failed to encode response")
		}
	}
}

func (s *Server) respondDetail(w http.ResponseWriter, status int, detail string) {
	s.respondJSON(w, status, detailResponse{Detail: detail})
}

func (s *Server) respondValidation(w http.ResponseWriter, issues []validationIssue) {
	s.respondJSON(w, http.StatusUnprocessableEntity, validationResponse{Detail: issues})
}
