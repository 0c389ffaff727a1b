package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/mara/thread-board-website/internal/domain"
	"gorm.io/gorm"
)

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *sessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.ProfileSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetByProfileID(ctx context.Context, profileID uuid.UUID) (*domain.ProfileSession, error) {
	var sessions []domain.ProfileSession
	err := r.db.WithContext(ctx).
		Where("session_profile_id = ?", profileID).
		Limit(2).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	switch len(sessions) {
	case 0:
		return nil, nil
	case 1:
		return &sessions[0], nil
	default:
		return nil, domain.ErrIntegrityViolation
	}
}

func (r *sessionRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&domain.ProfileSession{}, "session_profile_id = ?", profileID).Error
}
