package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/mara/thread-board-website/internal/domain"
	"gorm.io/gorm"
)

// publicColumns is the exact column set exposed to external callers. The
// private columns (hash, activation token, email) are never selected here.
const publicColumns = "profile_id, profile_about, profile_image_url, profile_name"

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *profileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Insert(ctx context.Context, profile *domain.Profile) error {
	if profile.ProfileID == uuid.Nil {
		profile.ProfileID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) GetPrivateByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return r.getPrivate(ctx, "profile_id = ?", id)
}

func (r *profileRepository) GetPrivateByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return r.getPrivate(ctx, "profile_email = ?", email)
}

func (r *profileRepository) GetPrivateByActivationToken(ctx context.Context, token string) (*domain.Profile, error) {
	return r.getPrivate(ctx, "profile_activation_token = ?", token)
}

func (r *profileRepository) GetPublicByID(ctx context.Context, id uuid.UUID) (*domain.PublicProfile, error) {
	return r.getPublic(ctx, "profile_id = ?", id)
}

func (r *profileRepository) GetPublicByName(ctx context.Context, name string) (*domain.PublicProfile, error) {
	return r.getPublic(ctx, "profile_name = ?", name)
}

func (r *profileRepository) SearchPublicByName(ctx context.Context, namePart string) ([]domain.PublicProfile, error) {
	var profiles []domain.PublicProfile
	err := r.db.WithContext(ctx).
		Model(&domain.Profile{}).
		Select(publicColumns).
		Where("profile_name LIKE ?", "%"+namePart+"%").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// getPrivate enforces the exact-match contract: zero rows is (nil, nil),
// more than one row is a data-integrity fault, never a silent truncation.
func (r *profileRepository) getPrivate(ctx context.Context, query string, arg any) (*domain.Profile, error) {
	var profiles []domain.Profile
	err := r.db.WithContext(ctx).
		Where(query, arg).
		Limit(2).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	switch len(profiles) {
	case 0:
		return nil, nil
	case 1:
		return &profiles[0], nil
	default:
		return nil, domain.ErrIntegrityViolation
	}
}

func (r *profileRepository) getPublic(ctx context.Context, query string, arg any) (*domain.PublicProfile, error) {
	var profiles []domain.PublicProfile
	err := r.db.WithContext(ctx).
		Model(&domain.Profile{}).
		Select(publicColumns).
		Where(query, arg).
		Limit(2).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	switch len(profiles) {
	case 0:
		return nil, nil
	case 1:
		return &profiles[0], nil
	default:
		return nil, domain.ErrIntegrityViolation
	}
}
