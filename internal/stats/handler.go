package stats

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hoangvt/caulong/pkg/response"
)

// Handler handles HTTP requests for statistics
type Handler struct {
	service *Service
}

// NewHandler creates a new stats handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for statistics endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Range)

	return r
}

// Range handles GET /statistics
// @Summary      Aggregate statistics over a date range
// @Description  Recompute totals, turnout, and averages for computed sessions between start and end (default: last 30 days)
// @Tags         statistics
// @Produce      json
// @Param        start query string false "Start date (YYYY-MM-DD)"
// @Param        end query string false "End date (YYYY-MM-DD)"
// @Success      200 {object} response.APIResponse{data=Overview}
// @Failure      400 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /statistics [get]
func (h *Handler) Range(w http.ResponseWriter, r *http.Request) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if v := r.URL.Query().Get("start"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "Invalid start date, expected YYYY-MM-DD")
			return
		}
		start = parsed
	}
	if v := r.URL.Query().Get("end"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "Invalid end date, expected YYYY-MM-DD")
			return
		}
		// Inclusive end of day.
		end = parsed.Add(24*time.Hour - time.Second)
	}

	overview, err := h.service.Range(r.Context(), start, end)
	if err != nil {
		if errors.Is(err, ErrInvalidRange) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute statistics")
		return
	}

	response.JSON(w, http.StatusOK, overview)
}
