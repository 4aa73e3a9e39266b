package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sayalimunde/mini-lms/internal/api/httpx"
	"github.com/sayalimunde/mini-lms/internal/models"
	"github.com/sayalimunde/mini-lms/internal/services"
)

type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type registerReq struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

type authResp struct {
	User   models.User        `json:"user"`
	Tokens services.TokenPair `json:"tokens"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "validation", err.Error(), nil)
		return
	}
	u, pair, err := h.svc.Register(r.Context(), req.Email, req.Password, req.DisplayName, role)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			httpx.WriteError(w, http.StatusConflict, "email_taken", err.Error(), nil)
			return
		}
		httpx.WriteError(w, http.StatusBadRequest, "validation", err.Error(), nil)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, authResp{User: u, Tokens: pair})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	u, pair, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid credentials", nil)
			return
		}
		httpx.WriteDomainError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, authResp{User: u, Tokens: pair})
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "refresh_token required", nil)
		return
	}
	pair, err := h.svc.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid refresh token", nil)
			return
		}
		httpx.WriteDomainError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pair)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req refreshReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "refresh_token required", nil)
		return
	}
	if err := h.svc.Logout(r.Context(), req.RefreshToken); err != nil {
		httpx.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
