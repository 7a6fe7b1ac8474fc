package handler

import (
	"net/http"

	"github.com/osse101/SpinWheel_Go/internal/domain"
	"github.com/osse101/SpinWheel_Go/internal/logger"
	"github.com/osse101/SpinWheel_Go/internal/spin"
)

// WheelResponse carries a wheel configuration
type WheelResponse struct {
	Success bool                       `json:"success"`
	Message string                     `json:"message,omitempty"`
	Wheel   *domain.WheelConfiguration `json:"wheel"`
}

// PublishWheelRequest is the body of an admin wheel update
type PublishWheelRequest struct {
	Segments        []domain.Segment `json:"segments" validate:"required,min=1"`
	CooldownMinutes int              `json:"cooldownMinutes" validate:"gt=0,lte=10080"`
}

// HandleGetWheel returns the active wheel for rendering
// @Summary Active wheel
// @Description Returns the segments, weights and cooldown of the active wheel
// @Tags wheel
// @Produce json
// @Security BearerAuth
// @Success 200 {object} WheelResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/wheel [get]
func HandleGetWheel(svc spin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := svc.ActiveWheel(r.Context())
		if err != nil {
			respondServiceError(w, r, "get wheel", err)
			return
		}
		respondJSON(w, http.StatusOK, WheelResponse{Success: true, Wheel: cfg})
	}
}

// HandlePublishWheel replaces the active wheel configuration
// @Summary Publish wheel
// @Description Validates and stores a new wheel configuration version. Past spins keep their recorded prizes.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body PublishWheelRequest true "Wheel configuration"
// @Success 200 {object} WheelResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/admin/wheel [put]
func HandlePublishWheel(svc spin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PublishWheelRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Publish wheel", false); err != nil {
			return
		}

		published, err := svc.PublishWheel(r.Context(), &domain.WheelConfiguration{
			Segments:        req.Segments,
			CooldownMinutes: req.CooldownMinutes,
		})
		if err != nil {
			respondServiceError(w, r, "publish wheel", err)
			return
		}

		logger.FromContext(r.Context()).Info(MsgWheelPublished, "version", published.Version)
		respondJSON(w, http.StatusOK, WheelResponse{Success: true, Message: MsgWheelPublished, Wheel: published})
	}
}
