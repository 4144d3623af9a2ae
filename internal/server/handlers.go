package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/nexflow/campaign-engine/internal/personas"
	"github.com/nexflow/campaign-engine/internal/pipeline"
	"github.com/nexflow/campaign-engine/internal/types"
)

// CampaignRequest represents the request body for POST /campaigns. Either
// query or the campaign parameter fields must be provided; persona is always
// required (unrecognized personas fall back to unfiltered retrieval).
type CampaignRequest struct {
	Persona         string `json:"persona" validate:"required"`
	Query           string `json:"query,omitempty"`
	CampaignType    string `json:"campaign_type,omitempty"`
	Industry        string `json:"industry,omitempty"`
	Region          string `json:"region,omitempty"`
	BudgetLevel     string `json:"budget_level,omitempty"`
	TonePreference  string `json:"tone_preference,omitempty"`
	CustomerDetails string `json:"customer_details,omitempty"`
	ChannelFocus    string `json:"channel_focus,omitempty"`
}

// CampaignResponse represents the response body for POST /campaigns.
type CampaignResponse struct {
	RequestID string `json:"request_id"`
	pipeline.Result
}

// PersonasResponse represents the response body for GET /personas.
type PersonasResponse struct {
	Personas []string `json:"personas"`
}

// handleGenerateCampaign runs the full pipeline for one campaign request
func (s *Server) handleGenerateCampaign(w http.ResponseWriter, r *http.Request) {
	var req CampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body: "+err.Error(), "")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid_request", validationMessage(err), "")
		return
	}
	if req.Query == "" && req.CampaignType == "" && req.Industry == "" {
		s.errorResponse(w, http.StatusBadRequest, "invalid_request",
			"Either query or campaign parameters (campaign_type, industry, ...) are required", "")
		return
	}

	result, err := s.runner.Run(r.Context(), pipeline.CampaignRequest{
		Persona:         req.Persona,
		Query:           req.Query,
		CampaignType:    req.CampaignType,
		Industry:        req.Industry,
		Region:          req.Region,
		BudgetLevel:     req.BudgetLevel,
		TonePreference:  req.TonePreference,
		CustomerDetails: req.CustomerDetails,
		ChannelFocus:    types.ChannelFocus(req.ChannelFocus),
	})
	if err != nil {
		s.generationErrorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, CampaignResponse{
		RequestID: uuid.New().String(),
		Result:    *result,
	})
}

// handleListPersonas returns the recognized persona names
func (s *Server) handleListPersonas(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, PersonasResponse{Personas: personas.Names()})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// validationMessage extracts a readable message from validator errors
func validationMessage(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		fieldErr := validationErrors[0]
		return "Field '" + fieldErr.Field() + "' failed validation: " + fieldErr.Tag()
	}
	return err.Error()
}
