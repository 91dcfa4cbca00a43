package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/telswitch/isdnc/internal/middleware"
	"github.com/telswitch/isdnc/internal/model"
	"github.com/telswitch/isdnc/internal/service"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /api/v1/auth/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.Register(r.Context(), req); err != nil {
		switch {
		case isValidationError(err):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserExists):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, genericServerError)
		}
		return
	}

	writeData(w, http.StatusCreated, nil)
}

// HandleLogin handles POST /api/v1/auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, genericServerError)
		return
	}

	writeData(w, http.StatusOK, resp)
}

// HandleMe handles GET /api/v1/auth/me requests.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	resp, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, genericServerError)
		return
	}

	writeData(w, http.StatusOK, resp)
}

// HandleForgotPassword handles POST /api/v1/auth/forgot-password requests.
func (h *AuthHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ForgotPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	msg, err := h.service.ForgotPassword(r.Context(), req)
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, genericServerError)
		return
	}

	writeData(w, http.StatusOK, map[string]string{"message": msg})
}

// decodeBody decodes a size-capped JSON request body, writing the error
// response itself when decoding fails.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrUsernameLength) ||
		errors.Is(err, service.ErrInvalidEmail) ||
		errors.Is(err, service.ErrPasswordLength)
}
