package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mara/thread-board-website/internal/domain"
	"github.com/mara/thread-board-website/internal/repository"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) GetPublicByID(ctx context.Context, id uuid.UUID) (*domain.PublicProfile, error) {
	return s.profileRepo.GetPublicByID(ctx, id)
}

func (s *ProfileService) GetPublicByName(ctx context.Context, name string) (*domain.PublicProfile, error) {
	return s.profileRepo.GetPublicByName(ctx, name)
}

func (s *ProfileService) SearchByName(ctx context.Context, namePart string) ([]domain.PublicProfile, error) {
	return s.profileRepo.SearchPublicByName(ctx, namePart)
}

func (s *ProfileService) GetPrivateByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return s.profileRepo.GetPrivateByID(ctx, id)
}

// UpdateProfileInput carries the caller-editable fields. Hash and
// activation token are never writable through this path.
type UpdateProfileInput struct {
	ProfileAbout    *string
	ProfileEmail    string
	ProfileImageURL *string
	ProfileName     string
}

// Update replaces the profile row identified by profileID. Only the owner
// may update; requesterID comes from the verified token.
func (s *ProfileService) Update(ctx context.Context, requesterID, profileID uuid.UUID, input UpdateProfileInput) (string, error) {
	if requesterID != profileID {
		return "", domain.ErrNotProfileOwner
	}

	profile, err := s.profileRepo.GetPrivateByID(ctx, profileID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", domain.ErrProfileNotFound
	}

	profile.ProfileAbout = input.ProfileAbout
	profile.ProfileEmail = input.ProfileEmail
	profile.ProfileImageURL = input.ProfileImageURL
	profile.ProfileName = strings.TrimSpace(input.ProfileName)

	if err := domain.Validate(profile); err != nil {
		return "", err
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return "", err
	}
	return "Profile successfully updated", nil
}
