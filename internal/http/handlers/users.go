package handlers

import (
	"errors"
	"net/http"

	"parcel-server/internal/apperr"
	"parcel-server/internal/domain"
	"parcel-server/internal/logx"
)

// UserHandler serves HTTP endpoints for user resources.
type UserHandler struct {
	usecase userUsecase
	logger  logx.Logger
}

// NewUserHandler wires a userUsecase into HTTP handlers.
func NewUserHandler(logger logx.Logger, uc userUsecase) *UserHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &UserHandler{usecase: uc, logger: logger}
}

// Register handles POST /users. Registration is idempotent by email: the
// first call inserts the full body, repeats report the existing record.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.User
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.usecase.Register(r.Context(), req)
	switch {
	case err == nil && !res.Inserted:
		writeJSON(h.logger, w, r, http.StatusOK, userExistsResponse{
			Message:  "User already exists",
			Inserted: false,
		})
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, insertedResponse{
			Inserted:   true,
			InsertedID: res.ID.Hex(),
		})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "email is required")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "Failed to register user")
	}
}
