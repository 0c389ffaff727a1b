package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mara/thread-board-website/internal/config"
	"github.com/mara/thread-board-website/internal/domain"
	"github.com/mara/thread-board-website/internal/repository"
)

var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailTaken             = errors.New("email is already in use")
	ErrProfileNameTaken       = errors.New("profile name is already in use")
	ErrProfileNotActivated    = errors.New("profile has not been activated")
	ErrInvalidActivationToken = errors.New("invalid activation token")
)

type AuthService struct {
	profileRepo repository.ProfileRepository
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewAuthService(profileRepo repository.ProfileRepository, sessionRepo repository.SessionRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

// SignUpInput is the inbound sign-up payload. Password rules follow the
// sign-up validator: 8-32 characters, confirmed by retyping.
type SignUpInput struct {
	ProfileName            string `validate:"required,min=1,max=32"`
	ProfileEmail           string `validate:"required,email,max=128"`
	ProfilePassword        string `validate:"required,min=8,max=32"`
	ProfilePasswordConfirm string `validate:"required,eqfield=ProfilePassword"`
}

type SignInInput struct {
	ProfileEmail    string
	ProfilePassword string
}

type AuthResult struct {
	Profile      *domain.Profile
	AccessToken  string
	RefreshToken string
}

// SignUp creates a new, unactivated profile. The activation token is
// returned so the caller can deliver it (the mail transport is outside this
// layer).
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (string, error) {
	input.ProfileName = strings.TrimSpace(input.ProfileName)
	if err := domain.Validate(input); err != nil {
		return "", err
	}

	existing, err := s.profileRepo.GetPrivateByEmail(ctx, input.ProfileEmail)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrEmailTaken
	}

	byName, err := s.profileRepo.GetPublicByName(ctx, input.ProfileName)
	if err != nil {
		return "", err
	}
	if byName != nil {
		return "", ErrProfileNameTaken
	}

	hash, err := HashPassword(input.ProfilePassword)
	if err != nil {
		return "", err
	}

	token, err := newActivationToken()
	if err != nil {
		return "", err
	}

	profile := &domain.Profile{
		ProfileID:              uuid.New(),
		ProfileActivationToken: &token,
		ProfileEmail:           input.ProfileEmail,
		ProfileHash:            hash,
		ProfileName:            input.ProfileName,
	}
	if err := domain.Validate(profile); err != nil {
		return "", err
	}

	if err := s.profileRepo.Insert(ctx, profile); err != nil {
		return "", err
	}
	return token, nil
}

// Activate clears the activation token of the matching profile.
func (s *AuthService) Activate(ctx context.Context, token string) error {
	profile, err := s.profileRepo.GetPrivateByActivationToken(ctx, token)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrInvalidActivationToken
	}
	profile.ProfileActivationToken = nil
	return s.profileRepo.Update(ctx, profile)
}

func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	profile, err := s.profileRepo.GetPrivateByEmail(ctx, input.ProfileEmail)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrInvalidCredentials
	}
	if profile.ProfileActivationToken != nil {
		return nil, ErrProfileNotActivated
	}

	ok, err := VerifyPassword(profile.ProfileHash, input.ProfilePassword)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokens(ctx, profile)
}

func (s *AuthService) generateTokens(ctx context.Context, profile *domain.Profile) (*AuthResult, error) {
	accessToken, err := s.generateAccessToken(profile)
	if err != nil {
		return nil, err
	}

	refreshToken := uuid.New().String()
	refreshHash, err := HashPassword(refreshToken)
	if err != nil {
		return nil, err
	}

	// Rotate: at most one live session per profile
	_ = s.sessionRepo.DeleteByProfileID(ctx, profile.ProfileID)

	session := &domain.ProfileSession{
		SessionID:        uuid.New(),
		SessionProfileID: profile.ProfileID,
		RefreshTokenHash: refreshHash,
		ExpiresAt:        time.Now().Add(7 * 24 * time.Hour),
		CreatedAt:        time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &AuthResult{
		Profile:      profile,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) generateAccessToken(profile *domain.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub":  profile.ProfileID.String(),
		"name": profile.ProfileName,
		"auth": profile.Public(),
		"exp":  time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) ValidateToken(tokenString string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}
	return nil, errors.New("invalid token")
}

func (s *AuthService) SignOut(ctx context.Context, profileID uuid.UUID) error {
	return s.sessionRepo.DeleteByProfileID(ctx, profileID)
}

func newActivationToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
