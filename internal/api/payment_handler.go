package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/streamly-api/internal/api/shared"
	"github.com/phrazzld/streamly-api/internal/service"
)

// PaymentHandler handles payment-related API requests.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler with the given dependencies.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// GetAll handles GET /payments/getAll requests.
func (h *PaymentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.GetPayments(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	resp := PaymentListResponse{Payments: make([]PaymentResponse, 0, len(payments))}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, paymentToResponse(p))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetByID handles GET /payments/getPaymentById/{id} requests.
func (h *PaymentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPaymentByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PaymentEnvelope{Payment: paymentToResponse(payment)})
}

// Create handles POST /payments/create requests.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	payment, err := h.paymentService.CreatePayment(r.Context(), service.CreatePaymentInput{
		CCNumber: req.CCNumber,
		Amount:   req.Amount,
	})
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	slog.Info("payment created", "payment_id", payment.ID, "amount", payment.Amount)

	shared.RespondWithJSON(w, r, http.StatusCreated, PaymentCreatedResponse{
		Message: "Payment created successfully",
		Payment: paymentToResponse(payment),
	})
}

// Delete handles DELETE /payments/delete/{id} requests.
func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.paymentService.DeletePayment(r.Context(), id); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	slog.Info("payment deleted", "payment_id", id)

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Payment deleted successfully"})
}

// pathID extracts the numeric id path parameter. It writes a 404 response
// and returns false for non-numeric values: a malformed id can never match
// a stored payment.
func (h *PaymentHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Payment not found")
		return 0, false
	}
	return id, true
}
