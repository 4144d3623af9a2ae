package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/nexflow/campaign-engine/internal/generation"
)

// ErrorResponse is the structured error body returned for every failure.
// Raw carries unparseable model output for diagnostics when available.
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Raw     string `json:"raw,omitempty"`
}

// jsonResponse writes a JSON response with the given status code
func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// errorResponse writes a structured error body
func (s *Server) errorResponse(w http.ResponseWriter, status int, kind, message, raw string) {
	s.jsonResponse(w, status, ErrorResponse{Kind: kind, Message: message, Raw: raw})
}

// generationErrorResponse maps tagged generation errors onto HTTP statuses.
// NoContext, InvalidJSON, and SchemaInvalid are client-recoverable (the
// request was fine, the knowledge base or model output was not); upstream
// failures are 502s.
func (s *Server) generationErrorResponse(w http.ResponseWriter, err error) {
	var noContext *generation.NoContextError
	var invalidJSON *generation.InvalidJSONError
	var schemaErr *generation.SchemaError
	var upstream *generation.UpstreamError

	switch {
	case errors.As(err, &noContext):
		s.errorResponse(w, http.StatusUnprocessableEntity, "no_context", err.Error(), "")
	case errors.As(err, &invalidJSON):
		s.errorResponse(w, http.StatusBadGateway, "invalid_json", err.Error(), invalidJSON.Raw)
	case errors.As(err, &schemaErr):
		s.errorResponse(w, http.StatusBadGateway, "schema_invalid", err.Error(), schemaErr.Raw)
	case errors.As(err, &upstream):
		s.errorResponse(w, http.StatusBadGateway, "upstream_failure", err.Error(), "")
	default:
		s.errorResponse(w, http.StatusInternalServerError, "internal", err.Error(), "")
	}
}
