package handlers

import (
	"net/http"

	"github.com/hongminglow/movies-be/internal/apperr"
	"github.com/hongminglow/movies-be/internal/auth"
	"github.com/hongminglow/movies-be/internal/http/respond"
	"github.com/hongminglow/movies-be/internal/models"
	"github.com/hongminglow/movies-be/internal/models/dto"
)

// AuthHandler owns the register, login and profile endpoints.
type AuthHandler struct {
	service    *auth.Service
	allowAdmin bool
}

// NewAuthHandler constructs the handler. allowAdmin enables /auth/register-admin.
func NewAuthHandler(service *auth.Service, allowAdmin bool) *AuthHandler {
	return &AuthHandler{service: service, allowAdmin: allowAdmin}
}

// Routes lists the auth endpoints and their policies.
func (h *AuthHandler) Routes() []Route {
	return []Route{
		{Method: http.MethodPost, Pattern: "/auth/register", Policy: auth.Public(), RateLimited: true, Handler: h.handleRegister},
		{Method: http.MethodPost, Pattern: "/auth/register-admin", Policy: auth.Public(), RateLimited: true, Handler: h.handleRegisterAdmin},
		{Method: http.MethodPost, Pattern: "/auth/login", Policy: auth.Public(), RateLimited: true, Handler: h.handleLogin},
		{Method: http.MethodGet, Pattern: "/profile", Policy: auth.Authenticated(), Handler: h.handleProfile},
	}
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, models.RoleUser, "registration successful")
}

func (h *AuthHandler) handleRegisterAdmin(w http.ResponseWriter, r *http.Request) {
	if !h.allowAdmin {
		respond.Error(w, r, apperr.RouteNotFound())
		return
	}
	h.register(w, r, models.RoleAdmin, "admin registration successful")
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request, role models.Role, message string) {
	var req dto.Credentials
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	user, err := h.service.Register(r.Context(), req, role)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, dto.RegisterResponse{
		Message:  message,
		UserID:   user.ID,
		Username: user.Username,
	})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.Credentials
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	token, err := h.service.Login(r.Context(), req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.LoginResponse{Message: "login successful", Token: token})
}

func (h *AuthHandler) handleProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, r, apperr.MissingToken())
		return
	}
	profile, err := h.service.Profile(r.Context(), claims)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, profile)
}
