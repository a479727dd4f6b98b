package audit

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hoangvt/caulong/pkg/response"
)

// Handler handles HTTP requests for the audit log
type Handler struct {
	repo *Repository
}

// NewHandler creates a new audit handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Routes returns the router for audit endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/{sessionId}", h.ListBySession)

	return r
}

// ListBySession handles GET /audit/{sessionId}
// @Summary      List audit entries for a session
// @Tags         audit
// @Produce      json
// @Param        sessionId path int true "Session ID"
// @Success      200 {object} response.APIResponse{data=[]Entry}
// @Failure      400 {object} response.APIResponse
// @Router       /audit/{sessionId} [get]
func (h *Handler) ListBySession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := strconv.ParseInt(chi.URLParam(r, "sessionId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid session ID")
		return
	}

	entries, err := h.repo.ListBySession(r.Context(), sessionID)
	if err != nil {
		response.InternalError(w, "Failed to list audit logs")
		return
	}

	response.JSON(w, http.StatusOK, entries)
}
