package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mara/thread-board-website/internal/domain"
)

// Exact-match lookups return (nil, nil) when no row matches and
// domain.ErrIntegrityViolation when more than one row matches.

type ProfileRepository interface {
	Insert(ctx context.Context, profile *domain.Profile) error
	// Update overwrites the full row identified by profile.ProfileID.
	Update(ctx context.Context, profile *domain.Profile) error
	GetPrivateByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetPrivateByEmail(ctx context.Context, email string) (*domain.Profile, error)
	GetPrivateByActivationToken(ctx context.Context, token string) (*domain.Profile, error)
	GetPublicByID(ctx context.Context, id uuid.UUID) (*domain.PublicProfile, error)
	GetPublicByName(ctx context.Context, name string) (*domain.PublicProfile, error)
	// SearchPublicByName matches profile names containing namePart anywhere.
	SearchPublicByName(ctx context.Context, namePart string) ([]domain.PublicProfile, error)
}

type ThreadRepository interface {
	// Insert assigns the thread id and timestamp; caller values are ignored.
	Insert(ctx context.Context, thread *domain.Thread) error
	GetAll(ctx context.Context) ([]domain.Thread, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Thread, error)
	// GetByProfileName returns top-level threads authored by the named profile.
	GetByProfileName(ctx context.Context, profileName string) ([]domain.Thread, error)
	// GetByProfileID returns top-level threads authored by the given profile.
	GetByProfileID(ctx context.Context, profileID uuid.UUID) ([]domain.Thread, error)
	// GetReplyTree returns the thread and its full descendant subtree.
	GetReplyTree(ctx context.Context, id uuid.UUID) ([]domain.Thread, error)
	// GetPage returns top-level threads newest first, ten per 1-indexed page.
	GetPage(ctx context.Context, page int) ([]domain.Thread, error)
	// Delete removes the thread and, via the database, its reply subtree.
	// Deleting a missing thread is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.ProfileSession) error
	GetByProfileID(ctx context.Context, profileID uuid.UUID) (*domain.ProfileSession, error)
	DeleteByProfileID(ctx context.Context, profileID uuid.UUID) error
}

type Repositories struct {
	Profile ProfileRepository
	Thread  ThreadRepository
	Session SessionRepository
}
