package vote

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

// Handler handles HTTP requests for vote operations. Routes are mounted
// under /sessions/{sessionId}.
type Handler struct {
	service *Service
}

// NewHandler creates a new vote handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register attaches the vote endpoints to the /sessions/{sessionId} subtree
func (h *Handler) Register(r chi.Router) {
	r.Post("/votes", h.Cast)
	r.Get("/votes", h.ListBySession)
	r.Post("/proxy-votes", h.CastProxy)
	r.Get("/proxy-votes", h.ListProxyBySession)
}

func sessionIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "sessionId"), 10, 64)
}

// Cast handles POST /sessions/{sessionId}/votes
// @Summary      Cast a vote
// @Description  Cast VOTE_YES/VOTE_NO (supersedes the opposite declaration) or pledge COURT/SHUTTLE
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        sessionId path int true "Session ID"
// @Param        request body CastVoteRequest true "Vote request"
// @Success      201 {object} response.APIResponse{data=VoteResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionId}/votes [post]
func (h *Handler) Cast(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid session ID")
		return
	}

	var req CastVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	v, err := h.service.Cast(r.Context(), sessionID, &req)
	if err != nil {
		writeVoteError(w, err, "Failed to cast vote")
		return
	}

	response.JSON(w, http.StatusCreated, v.ToResponse())
}

// ListBySession handles GET /sessions/{sessionId}/votes
// @Summary      List votes for a session
// @Tags         votes
// @Produce      json
// @Param        sessionId path int true "Session ID"
// @Success      200 {object} response.APIResponse{data=[]VoteResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionId}/votes [get]
func (h *Handler) ListBySession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid session ID")
		return
	}

	votes, err := h.service.ListBySession(r.Context(), sessionID)
	if err != nil {
		writeVoteError(w, err, "Failed to list votes")
		return
	}

	voteResponses := make([]*VoteResponse, len(votes))
	for i, v := range votes {
		voteResponses[i] = v.ToResponse()
	}

	response.JSON(w, http.StatusOK, voteResponses)
}

// CastProxy handles POST /sessions/{sessionId}/proxy-votes
// @Summary      Cast a proxy vote
// @Description  Vote on behalf of a target; financial responsibility binds to the voter
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        sessionId path int true "Session ID"
// @Param        request body CastProxyVoteRequest true "Proxy vote request"
// @Success      201 {object} response.APIResponse{data=ProxyVoteResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionId}/proxy-votes [post]
func (h *Handler) CastProxy(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid session ID")
		return
	}

	var req CastProxyVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	pv, err := h.service.CastProxy(r.Context(), sessionID, &req)
	if err != nil {
		writeVoteError(w, err, "Failed to cast proxy vote")
		return
	}

	response.JSON(w, http.StatusCreated, pv.ToResponse())
}

// ListProxyBySession handles GET /sessions/{sessionId}/proxy-votes
// @Summary      List proxy votes for a session
// @Tags         votes
// @Produce      json
// @Param        sessionId path int true "Session ID"
// @Success      200 {object} response.APIResponse{data=[]ProxyVoteResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionId}/proxy-votes [get]
func (h *Handler) ListProxyBySession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid session ID")
		return
	}

	proxyVotes, err := h.service.ListProxyBySession(r.Context(), sessionID)
	if err != nil {
		writeVoteError(w, err, "Failed to list proxy votes")
		return
	}

	proxyResponses := make([]*ProxyVoteResponse, len(proxyVotes))
	for i, pv := range proxyVotes {
		proxyResponses[i] = pv.ToResponse()
	}

	response.JSON(w, http.StatusOK, proxyResponses)
}

func writeVoteError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrUserNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrSessionClosed),
		errors.Is(err, ErrInvalidVoteType),
		errors.Is(err, ErrProxySelfVote),
		errors.Is(err, ErrTargetUnresolved):
		response.BadRequest(w, err.Error())
	default:
		response.InternalError(w, fallback)
	}
}
