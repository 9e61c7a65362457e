package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	httperrors "github.com/gokatarajesh/exam-assembler/pkg/http/errors"
)

// HTTPHandlers provides REST endpoints for authentication.
type HTTPHandlers struct {
	authSvc  *Service
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for auth endpoints.
func NewHTTPHandlers(authSvc *Service, validate *validator.Validate, logger zerolog.Logger) *HTTPHandlers {
	if validate == nil {
		validate = validator.New()
	}
	return &HTTPHandlers{
		authSvc:  authSvc,
		validate: validate,
		logger:   logger,
	}
}

// Token handles POST /v1/auth/token
func (h *HTTPHandlers) Token(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "Method not allowed")
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httperrors.RespondValidationErrors(w, err)
		return
	}

	resp, err := h.authSvc.Login(r.Context(), req)
	switch {
	case errors.Is(err, ErrLoginDisabled):
		httperrors.RespondServiceUnavailable(w, httperrors.ErrCodeLoginDisabled, err.Error())
		return
	case errors.Is(err, ErrInvalidCredentials):
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeLoginFailed, err.Error())
		return
	case err != nil:
		h.logger.Error().Err(err).Msg("token issue failed")
		httperrors.RespondInternalError(w, "could not issue token")
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
