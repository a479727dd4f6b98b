package payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hoangvt/caulong/pkg/response"
)

// Handler handles HTTP requests for payment operations
type Handler struct {
	service *Service
}

// NewHandler creates a new payment handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for /payments endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/{id}/mark-paid", h.MarkPaid)
	r.Post("/{id}/mark-unpaid", h.MarkUnpaid)

	return r
}

// RegisterSession attaches the ledger listing to the /sessions/{sessionId} subtree
func (h *Handler) RegisterSession(r chi.Router) {
	r.Get("/payments", h.ListBySession)
}

// ListBySession handles GET /sessions/{sessionId}/payments
// @Summary      List a session's payment ledger
// @Tags         payments
// @Produce      json
// @Param        sessionId path int true "Session ID"
// @Success      200 {object} response.APIResponse{data=LedgerResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionId}/payments [get]
func (h *Handler) ListBySession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := strconv.ParseInt(chi.URLParam(r, "sessionId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid session ID")
		return
	}

	payments, summary, err := h.service.ListBySession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list payments")
		return
	}

	paymentResponses := make([]*PaymentResponse, len(payments))
	for i, p := range payments {
		paymentResponses[i] = p.ToResponse()
	}

	response.JSON(w, http.StatusOK, &LedgerResponse{
		Payments: paymentResponses,
		Summary:  summary,
	})
}

// MarkPaid handles POST /payments/{id}/mark-paid
// @Summary      Mark a payment as paid
// @Tags         payments
// @Produce      json
// @Param        id path int true "Payment ID"
// @Success      200 {object} response.APIResponse{data=PaymentResponse}
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /payments/{id}/mark-paid [post]
func (h *Handler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	h.setPaid(w, r, true)
}

// MarkUnpaid handles POST /payments/{id}/mark-unpaid
// @Summary      Revert a paid mark
// @Tags         payments
// @Produce      json
// @Param        id path int true "Payment ID"
// @Success      200 {object} response.APIResponse{data=PaymentResponse}
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /payments/{id}/mark-unpaid [post]
func (h *Handler) MarkUnpaid(w http.ResponseWriter, r *http.Request) {
	h.setPaid(w, r, false)
}

func (h *Handler) setPaid(w http.ResponseWriter, r *http.Request, paid bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid payment ID")
		return
	}

	var p *Payment
	if paid {
		p, err = h.service.MarkPaid(r.Context(), id)
	} else {
		p, err = h.service.MarkUnpaid(r.Context(), id)
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound), errors.Is(err, ErrSessionNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrSessionFrozen):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to update payment")
		}
		return
	}

	response.JSON(w, http.StatusOK, p.ToResponse())
}
