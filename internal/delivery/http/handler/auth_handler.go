package handler

import (
	"encoding/json"
	"net/http"

	"medibook-portal/internal/delivery/dto"
	"medibook-portal/internal/domain/entity"
	"medibook-portal/internal/store"
	"medibook-portal/internal/usecase"
	"medibook-portal/pkg/response"
	"medibook-portal/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	session     *store.SessionStore
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, session *store.SessionStore, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		session:     session,
		validator:   validator,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.authUsecase.Login(r.Context(), req.Identifier, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Login successful", sessionResponse(session))
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.authUsecase.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Registration successful", sessionResponse(session))
}

func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	if _, err := h.authUsecase.CurrentUser(r.Context()); err != nil {
		respondError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Session is valid", sessionResponse(h.session.Current()))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authUsecase.Logout(r.Context())
	response.Success(w, http.StatusOK, "Logged out successfully", nil)
}

// The session token never leaves the portal process.
func sessionResponse(session entity.Session) dto.SessionResponse {
	return dto.SessionResponse{
		Role:     session.Role,
		ID:       session.ID,
		Email:    session.Email,
		Username: session.Username,
	}
}
