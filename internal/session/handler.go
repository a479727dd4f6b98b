package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/hoangvt/caulong/pkg/response"
)

var validate = validator.New()

// Handler handles HTTP requests for session operations
type Handler struct {
	service *Service
}

// NewHandler creates a new session handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register attaches the collection endpoints to the /sessions subtree.
// Item endpoints register separately under /{sessionId} so votes, settlement,
// and payments can share that subtree.
func (h *Handler) Register(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/current", h.GetCurrent)
}

// RegisterItem attaches the per-session endpoints under /sessions/{sessionId}
func (h *Handler) RegisterItem(r chi.Router) {
	r.Get("/", h.GetByID)
	r.Patch("/counts", h.UpdateCounts)
	r.Patch("/status", h.UpdateStatus)
}

// Create handles POST /sessions
// @Summary      Create a session
// @Description  Create a badminton session for a play date (at most one per day)
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body CreateSessionRequest true "Session creation request"
// @Success      201 {object} response.APIResponse{data=SessionResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /sessions [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	sess, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrSessionExists) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create session")
		return
	}

	response.JSON(w, http.StatusCreated, sess.ToResponse())
}

// List handles GET /sessions
// @Summary      List sessions
// @Tags         sessions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Param        status query string false "Filter by status" Enums(pending, completed, inactive)
// @Success      200 {object} response.APIResponse{data=[]SessionResponse}
// @Router       /sessions [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	status := Status(r.URL.Query().Get("status"))

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	sessions, total, err := h.service.List(r.Context(), status, page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list sessions")
		return
	}

	sessionResponses := make([]*SessionResponse, len(sessions))
	for i, s := range sessions {
		sessionResponses[i] = s.ToResponse()
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, sessionResponses, meta)
}

// GetCurrent handles GET /sessions/current
// @Summary      Get today's session
// @Tags         sessions
// @Produce      json
// @Success      200 {object} response.APIResponse{data=SessionResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/current [get]
func (h *Handler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.GetCurrent(r.Context())
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.NotFound(w, "No session scheduled for today")
			return
		}
		response.InternalError(w, "Failed to get current session")
		return
	}

	response.JSON(w, http.StatusOK, sess.ToResponse())
}

// GetByID handles GET /sessions/{sessionId}
// @Summary      Get session by ID
// @Tags         sessions
// @Produce      json
// @Param        sessionId path int true "Session ID"
// @Success      200 {object} response.APIResponse{data=SessionResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionId} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "sessionId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid session ID")
		return
	}

	sess, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get session")
		return
	}

	response.JSON(w, http.StatusOK, sess.ToResponse())
}

// UpdateCounts handles PATCH /sessions/{sessionId}/counts
// @Summary      Update court/shuttle counts
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionId path int true "Session ID"
// @Param        request body UpdateCountsRequest true "Counts update request"
// @Success      200 {object} response.APIResponse{data=SessionResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionId}/counts [patch]
func (h *Handler) UpdateCounts(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "sessionId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid session ID")
		return
	}

	var req UpdateCountsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	sess, err := h.service.UpdateCounts(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update session counts")
		return
	}

	response.JSON(w, http.StatusOK, sess.ToResponse())
}

// UpdateStatus handles PATCH /sessions/{sessionId}/status
// @Summary      Update session status
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionId path int true "Session ID"
// @Param        request body UpdateStatusRequest true "Status update request"
// @Success      200 {object} response.APIResponse{data=SessionResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionId}/status [patch]
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "sessionId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid session ID")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	sess, err := h.service.UpdateStatus(r.Context(), id, Status(req.Status))
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrInvalidTransition) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update session status")
		return
	}

	response.JSON(w, http.StatusOK, sess.ToResponse())
}
