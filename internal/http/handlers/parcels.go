package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"parcel-server/internal/apperr"
	"parcel-server/internal/domain"
	"parcel-server/internal/logx"
)

// ParcelHandler serves HTTP endpoints for parcel resources.
type ParcelHandler struct {
	usecase parcelUsecase
	logger  logx.Logger
}

// NewParcelHandler wires a parcelUsecase into HTTP handlers.
func NewParcelHandler(logger logx.Logger, uc parcelUsecase) *ParcelHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &ParcelHandler{usecase: uc, logger: logger}
}

// List handles GET /parcels with an optional ?email= creator filter.
func (h *ParcelHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	parcels, err := h.usecase.List(r.Context(), email)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "Failed to get parcels")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, parcels)
}

// GetByID handles GET /parcels/{id}. A malformed id counts as a retrieval
// failure and reports 500, matching the store's object id semantics.
func (h *ParcelHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")

	p, err := h.usecase.Get(r.Context(), idHex)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, p)
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "Parcel not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "Failed to fetch parcel")
	}
}

// Create handles POST /parcels. The body is stored as-is, no validation.
func (h *ParcelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.Parcel
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	id, err := h.usecase.Create(r.Context(), req)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "Failed to create parcel")
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, insertedResponse{
		Inserted:   true,
		InsertedID: id.Hex(),
	})
}

// Delete handles DELETE /parcels/{id}. An absent parcel reports a zero
// deleted count, not 404.
func (h *ParcelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")

	n, err := h.usecase.Delete(r.Context(), idHex)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "Failed to delete parcel")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deletedResponse{DeletedCount: n})
}
