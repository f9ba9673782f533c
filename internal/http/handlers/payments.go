package handlers

import (
	"errors"
	"net/http"

	"parcel-server/internal/apperr"
	"parcel-server/internal/domain"
	"parcel-server/internal/logx"
)

// PaymentHandler serves HTTP endpoints for payment resources.
type PaymentHandler struct {
	usecase paymentUsecase
	logger  logx.Logger
}

// NewPaymentHandler wires a paymentUsecase into HTTP handlers.
func NewPaymentHandler(logger logx.Logger, uc paymentUsecase) *PaymentHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &PaymentHandler{usecase: uc, logger: logger}
}

// History handles GET /payments with an optional ?email= payer filter.
func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	payments, err := h.usecase.History(r.Context(), email)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "Failed to get payments")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, payments)
}

// Record handles POST /payments: marks the parcel paid and stores the
// payment record. An absent and an already-paid parcel are reported with
// the same 404 message.
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	p := &domain.Payment{
		ParcelID:      req.ParcelID,
		Email:         req.Email,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	}

	id, err := h.usecase.Record(r.Context(), p)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusCreated, paymentRecordedResponse{
			Message:    "Payment recorded and parcel marked as paid",
			InsertedID: id.Hex(),
		})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid parcelId")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "Parcel not found or already paid")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "Failed to record payment")
	}
}

// CreateIntent handles POST /create-payment-intent. Gateway failures pass
// the gateway's message through verbatim.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req createIntentRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	secret, err := h.usecase.CreateIntent(r.Context(), req.AmountInCents)
	if err != nil {
		h.logger.Warn("payment intent error",
			logx.String("req_id", reqID(r.Context())),
			logx.Any("err", err),
		)
		writeJSON(h.logger, w, r, http.StatusInternalServerError, gatewayErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, clientSecretResponse{ClientSecret: secret})
}
