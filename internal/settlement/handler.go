package settlement

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hoangvt/caulong/pkg/response"
)

// Handler handles HTTP requests for settlement operations. Routes are
// mounted under /sessions/{sessionId}.
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register attaches the settlement endpoints to the /sessions/{sessionId} subtree
func (h *Handler) Register(r chi.Router) {
	r.Post("/settle", h.Settle)
	r.Get("/report", h.Report)
}

// Settle handles POST /sessions/{sessionId}/settle
// @Summary      Settle a session
// @Description  Recompute the payment ledger from current votes and counts; idempotent
// @Tags         settlement
// @Produce      json
// @Param        sessionId path int true "Session ID"
// @Success      200 {object} response.APIResponse{data=ResultResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionId}/settle [post]
func (h *Handler) Settle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := strconv.ParseInt(chi.URLParam(r, "sessionId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid session ID")
		return
	}

	result, err := h.service.Settle(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to settle session")
		return
	}

	response.JSON(w, http.StatusOK, result.ToResponse())
}

// Report handles GET /sessions/{sessionId}/report
// @Summary      Get the settlement report
// @Description  Settle the session and render the text summary
// @Tags         settlement
// @Produce      plain
// @Param        sessionId path int true "Session ID"
// @Success      200 {string} string "Text report"
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionId}/report [get]
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	sessionID, err := strconv.ParseInt(chi.URLParam(r, "sessionId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid session ID")
		return
	}

	report, err := h.service.Report(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to generate report")
		return
	}

	response.Text(w, http.StatusOK, report)
}
