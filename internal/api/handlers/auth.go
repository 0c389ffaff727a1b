package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mara/thread-board-website/internal/api/middleware"
	"github.com/mara/thread-board-website/internal/domain"
	"github.com/mara/thread-board-website/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type SignUpRequest struct {
	ProfileName            string `json:"profileName"`
	ProfileEmail           string `json:"profileEmail"`
	ProfilePassword        string `json:"profilePassword"`
	ProfilePasswordConfirm string `json:"profilePasswordConfirm"`
}

type SignInRequest struct {
	ProfileEmail    string `json:"profileEmail"`
	ProfilePassword string `json:"profilePassword"`
}

type AuthResponse struct {
	Profile      domain.PublicProfile `json:"profile"`
	AccessToken  string               `json:"accessToken"`
	RefreshToken string               `json:"refreshToken"`
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	_, err := h.authService.SignUp(r.Context(), service.SignUpInput{
		ProfileName:            req.ProfileName,
		ProfileEmail:           req.ProfileEmail,
		ProfilePassword:        req.ProfilePassword,
		ProfilePasswordConfirm: req.ProfilePasswordConfirm,
	})
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		if errors.Is(err, service.ErrEmailTaken) || errors.Is(err, service.ErrProfileNameTaken) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		log.Printf("ERROR [auth.SignUp] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: "Profile Successfully Created"})
}

func (h *AuthHandler) Activate(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	if err := h.authService.Activate(r.Context(), token); err != nil {
		if errors.Is(err, service.ErrInvalidActivationToken) {
			http.Error(w, "Invalid activation token", http.StatusBadRequest)
			return
		}
		log.Printf("ERROR [auth.Activate] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Profile successfully activated"})
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ProfileEmail == "" || req.ProfilePassword == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	result, err := h.authService.SignIn(r.Context(), service.SignInInput{
		ProfileEmail:    req.ProfileEmail,
		ProfilePassword: req.ProfilePassword,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		if errors.Is(err, service.ErrProfileNotActivated) {
			http.Error(w, "Profile has not been activated", http.StatusForbidden)
			return
		}
		log.Printf("ERROR [auth.SignIn] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Profile:      result.Profile.Public(),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.authService.SignOut(r.Context(), profileID); err != nil {
		log.Printf("ERROR [auth.SignOut] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
