package handler

import (
	"net/http"

	"github.com/osse101/SpinWheel_Go/internal/auth"
	"github.com/osse101/SpinWheel_Go/internal/domain"
	"github.com/osse101/SpinWheel_Go/internal/logger"
	"github.com/osse101/SpinWheel_Go/internal/spin"
)

// SpinRequest is the optional body of a spin call
type SpinRequest struct {
	ClientRequestID *string `json:"clientRequestId,omitempty" validate:"omitempty,min=1,max=128,requestid"`
}

// SpinResponse is returned for a successful spin
type SpinResponse struct {
	Success bool `json:"success"`
	domain.SpinOutcome
}

// SpinStatusResponse reports the caller's cooldown state
type SpinStatusResponse struct {
	Success bool `json:"success"`
	domain.SpinStatus
}

// HandleSpin performs a spin for the authenticated user
// @Summary Spin the wheel
// @Description Draws a weighted prize for the caller and records it. Subject to a per-user cooldown.
// @Tags spin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SpinRequest false "Optional client request ID"
// @Success 200 {object} SpinResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/spin [post]
func HandleSpin(svc spin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SpinRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Spin", true); err != nil {
			return
		}

		userID := auth.UserIDFromContext(r.Context())
		outcome, err := svc.RecordSpin(r.Context(), userID, req.ClientRequestID)
		if err != nil {
			respondServiceError(w, r, "spin", err)
			return
		}

		logger.FromContext(r.Context()).Debug("Spin served", "spin_id", outcome.SpinID)
		respondJSON(w, http.StatusOK, SpinResponse{Success: true, SpinOutcome: *outcome})
	}
}

// HandleSpinStatus reports whether the caller may spin now
// @Summary Spin cooldown status
// @Description Returns the remaining cooldown for the caller and the active wheel version
// @Tags spin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SpinStatusResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/spin/status [get]
func HandleSpinStatus(svc spin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := svc.GetStatus(r.Context(), auth.UserIDFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, "spin status", err)
			return
		}
		respondJSON(w, http.StatusOK, SpinStatusResponse{Success: true, SpinStatus: *status})
	}
}
