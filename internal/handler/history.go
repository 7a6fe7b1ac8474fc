package handler

import (
	"net/http"

	"github.com/osse101/SpinWheel_Go/internal/auth"
	"github.com/osse101/SpinWheel_Go/internal/domain"
	"github.com/osse101/SpinWheel_Go/internal/spin"
)

// HistoryResponse is one page of the caller's spin history
type HistoryResponse struct {
	Success bool `json:"success"`
	domain.HistoryPage
}

// HandleGetHistory returns the caller's spins, newest first
// @Summary Spin history
// @Description Returns a page of the caller's spins with statistics computed over that page
// @Tags spin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (1-100, default 20; 0 uses the default)"
// @Param offset query int false "Records to skip (default 0)"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/history [get]
func HandleGetHistory(svc spin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetIntQueryParam(r, w, QueryParamLimit, domain.DefaultHistoryLimit, ErrMsgInvalidLimit)
		if !ok {
			return
		}
		// limit=0 means "not set", as for an absent parameter
		if limit == 0 {
			limit = domain.DefaultHistoryLimit
		}
		offset, ok := GetIntQueryParam(r, w, QueryParamOffset, 0, ErrMsgInvalidOffset)
		if !ok {
			return
		}

		page, err := svc.GetHistory(r.Context(), auth.UserIDFromContext(r.Context()), limit, offset)
		if err != nil {
			respondServiceError(w, r, "history", err)
			return
		}

		respondJSON(w, http.StatusOK, HistoryResponse{Success: true, HistoryPage: *page})
	}
}
