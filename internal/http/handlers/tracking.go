package handlers

import (
	"net/http"

	"parcel-server/internal/logx"
	"parcel-server/internal/service/tracking"
)

// TrackingHandler serves HTTP endpoints for tracking logs.
type TrackingHandler struct {
	usecase trackingUsecase
	logger  logx.Logger
}

// NewTrackingHandler wires a trackingUsecase into HTTP handlers.
func NewTrackingHandler(logger logx.Logger, uc trackingUsecase) *TrackingHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &TrackingHandler{usecase: uc, logger: logger}
}

// Append handles POST /tracking with a server-assigned timestamp.
func (h *TrackingHandler) Append(w http.ResponseWriter, r *http.Request) {
	var req trackingRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	id, err := h.usecase.Append(r.Context(), tracking.AppendInput{
		TrackingID: req.TrackingID,
		ParcelID:   req.ParcelID,
		Status:     req.Status,
		Message:    req.Message,
		UpdatedBy:  req.UpdatedBy,
	})
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "Failed to record tracking log")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, trackingResponse{
		Success:    true,
		InsertedID: id.Hex(),
	})
}
