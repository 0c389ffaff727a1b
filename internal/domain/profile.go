package domain

import (
	"github.com/google/uuid"
)

// Profile is the full (private) profile row. ProfileEmail, ProfileHash and
// ProfileActivationToken must never reach an external caller; use Public()
// for anything that leaves the service layer.
type Profile struct {
	ProfileID              uuid.UUID `json:"profileId" gorm:"column:profile_id;type:uuid;primary_key"`
	ProfileAbout           *string   `json:"profileAbout" gorm:"column:profile_about;size:512" validate:"omitempty,max=512"`
	ProfileActivationToken *string   `json:"-" gorm:"column:profile_activation_token;type:char(32)" validate:"omitempty,len=32"`
	ProfileEmail           string    `json:"-" gorm:"column:profile_email;size:128;uniqueIndex;not null" validate:"required,email,max=128"`
	ProfileHash            string    `json:"-" gorm:"column:profile_hash;type:char(97);not null" validate:"required,len=97"`
	ProfileImageURL        *string   `json:"profileImageUrl" gorm:"column:profile_image_url;size:255" validate:"omitempty,url,max=255"`
	ProfileName            string    `json:"profileName" gorm:"column:profile_name;size:32;uniqueIndex;not null" validate:"required,min=1,max=32"`
}

func (Profile) TableName() string { return "profile" }

// PublicProfile is the externally visible projection of Profile. It is a
// separate struct rather than a field filter so that adding a field to
// Profile forces an explicit decision about whether it appears here.
type PublicProfile struct {
	ProfileID       uuid.UUID `json:"profileId" gorm:"column:profile_id"`
	ProfileAbout    *string   `json:"profileAbout" gorm:"column:profile_about"`
	ProfileImageURL *string   `json:"profileImageUrl" gorm:"column:profile_image_url"`
	ProfileName     string    `json:"profileName" gorm:"column:profile_name"`
}

// Public projects the profile onto its public shape, dropping the hash,
// activation token and email.
func (p *Profile) Public() PublicProfile {
	return PublicProfile{
		ProfileID:       p.ProfileID,
		ProfileAbout:    p.ProfileAbout,
		ProfileImageURL: p.ProfileImageURL,
		ProfileName:     p.ProfileName,
	}
}
