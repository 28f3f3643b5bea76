package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/domain"
	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthData struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			RespondValidationErrors(w, vErr.Fields)
		case errors.Is(err, domain.ErrEmailTaken):
			RespondError(w, http.StatusBadRequest, "email already registered")
		default:
			log.Printf("ERROR [auth.Register]: %v", err)
			RespondError(w, http.StatusInternalServerError, "failed to register user")
		}
		return
	}

	RespondMessage(w, http.StatusCreated, "user registered", AuthData{
		ID:    result.User.ID.String(),
		Name:  result.User.Name,
		Email: result.User.Email,
		Token: result.Token,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			RespondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		log.Printf("ERROR [auth.Login]: %v", err)
		RespondError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	RespondMessage(w, http.StatusOK, "login successful", AuthData{
		ID:    result.User.ID.String(),
		Name:  result.User.Name,
		Email: result.User.Email,
		Token: result.Token,
	})
}
