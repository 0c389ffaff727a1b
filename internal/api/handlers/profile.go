package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mara/thread-board-website/internal/api/middleware"
	"github.com/mara/thread-board-website/internal/domain"
	"github.com/mara/thread-board-website/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// PrivateProfileResponse is the self-view of a profile. The hash and
// activation token stay server-side even here.
type PrivateProfileResponse struct {
	ProfileID       string  `json:"profileId"`
	ProfileAbout    *string `json:"profileAbout"`
	ProfileEmail    string  `json:"profileEmail"`
	ProfileImageURL *string `json:"profileImageUrl"`
	ProfileName     string  `json:"profileName"`
}

type UpdateProfileRequest struct {
	ProfileAbout    *string `json:"profileAbout"`
	ProfileEmail    string  `json:"profileEmail"`
	ProfileImageURL *string `json:"profileImageUrl"`
	ProfileName     string  `json:"profileName"`
}

// GetByID returns the public projection of a profile.
func (h *ProfileHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		http.Error(w, "Invalid profile ID", http.StatusBadRequest)
		return
	}

	profile, err := h.profileService.GetPublicByID(r.Context(), profileID)
	if err != nil {
		log.Printf("ERROR [profile.GetByID] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "profileName")

	profile, err := h.profileService.GetPublicByName(r.Context(), name)
	if err != nil {
		log.Printf("ERROR [profile.GetByName] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Search returns every profile whose name contains the fragment.
func (h *ProfileHandler) Search(w http.ResponseWriter, r *http.Request) {
	namePart := chi.URLParam(r, "namePart")

	profiles, err := h.profileService.SearchByName(r.Context(), namePart)
	if err != nil {
		log.Printf("ERROR [profile.Search] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if profiles == nil {
		profiles = []domain.PublicProfile{}
	}

	writeJSON(w, http.StatusOK, profiles)
}

// Me returns the caller's own profile, email included.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.profileService.GetPrivateByID(r.Context(), profileID)
	if err != nil {
		log.Printf("ERROR [profile.Me] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, PrivateProfileResponse{
		ProfileID:       profile.ProfileID.String(),
		ProfileAbout:    profile.ProfileAbout,
		ProfileEmail:    profile.ProfileEmail,
		ProfileImageURL: profile.ProfileImageURL,
		ProfileName:     profile.ProfileName,
	})
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		http.Error(w, "Invalid profile ID", http.StatusBadRequest)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := h.profileService.Update(r.Context(), requesterID, profileID, service.UpdateProfileInput{
		ProfileAbout:    req.ProfileAbout,
		ProfileEmail:    req.ProfileEmail,
		ProfileImageURL: req.ProfileImageURL,
		ProfileName:     req.ProfileName,
	})
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		if errors.Is(err, domain.ErrNotProfileOwner) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		if errors.Is(err, domain.ErrProfileNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [profile.Update] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: msg})
}
