package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProfileSession stores the hash of an issued refresh token. At most one
// live session per profile; signing in again rotates it.
type ProfileSession struct {
	SessionID        uuid.UUID `json:"sessionId" gorm:"column:session_id;type:uuid;primary_key"`
	SessionProfileID uuid.UUID `json:"sessionProfileId" gorm:"column:session_profile_id;type:uuid;not null;index"`
	RefreshTokenHash string    `json:"-" gorm:"column:session_refresh_token_hash;not null"`
	ExpiresAt        time.Time `json:"expiresAt" gorm:"column:session_expires_at;not null"`
	CreatedAt        time.Time `json:"createdAt" gorm:"column:session_created_at"`
}

func (ProfileSession) TableName() string { return "profile_session" }
