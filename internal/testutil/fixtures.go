package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mara/thread-board-website/internal/domain"
	"github.com/mara/thread-board-website/internal/service"
	"gorm.io/gorm"
)

// ProfileBuilder creates test profiles with a builder pattern
type ProfileBuilder struct {
	name      string
	email     string
	password  string
	about     *string
	imageURL  *string
	activated bool
}

// NewProfileBuilder creates a new ProfileBuilder with default values
func NewProfileBuilder() *ProfileBuilder {
	suffix := uuid.New().String()[:8]
	return &ProfileBuilder{
		name:      fmt.Sprintf("testprofile_%s", suffix),
		email:     fmt.Sprintf("test_%s@example.com", suffix),
		password:  "testpassword123",
		activated: true,
	}
}

func (b *ProfileBuilder) WithName(name string) *ProfileBuilder {
	b.name = name
	return b
}

func (b *ProfileBuilder) WithEmail(email string) *ProfileBuilder {
	b.email = email
	return b
}

func (b *ProfileBuilder) WithPassword(password string) *ProfileBuilder {
	b.password = password
	return b
}

func (b *ProfileBuilder) WithAbout(about string) *ProfileBuilder {
	b.about = &about
	return b
}

// Unactivated leaves the activation token set, so sign-in is refused.
func (b *ProfileBuilder) Unactivated() *ProfileBuilder {
	b.activated = false
	return b
}

// Build creates the profile in the database and returns it with the raw password
func (b *ProfileBuilder) Build(t *testing.T, db *gorm.DB) (*domain.Profile, string) {
	t.Helper()

	hash, err := service.HashPassword(b.password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	profile := &domain.Profile{
		ProfileID:       uuid.New(),
		ProfileAbout:    b.about,
		ProfileEmail:    b.email,
		ProfileHash:     hash,
		ProfileImageURL: b.imageURL,
		ProfileName:     b.name,
	}
	if !b.activated {
		token := fmt.Sprintf("%032x", uuid.New().ID())
		profile.ProfileActivationToken = &token
	}

	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	return profile, b.password
}

// AuthResponse matches the API sign-in response
type AuthResponse struct {
	Profile struct {
		ProfileID   string `json:"profileId"`
		ProfileName string `json:"profileName"`
	} `json:"profile"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// BuildAndAuthenticate creates an activated profile and signs it in via the
// API, returning the profile and access token
func (b *ProfileBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.Profile, string) {
	t.Helper()

	profile, password := b.Build(t, ts.DB.DB)

	body, _ := json.Marshal(map[string]string{
		"profileEmail":    profile.ProfileEmail,
		"profilePassword": password,
	})
	resp, err := http.Post(ts.APIURL("/sign-in"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to sign in: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("sign-in returned status %d", resp.StatusCode)
	}

	var result AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode sign-in response: %v", err)
	}

	return profile, result.AccessToken
}

// ThreadBuilder creates test threads with a builder pattern
type ThreadBuilder struct {
	profileID uuid.UUID
	replyTo   *uuid.UUID
	content   string
	imageURL  *string
	datetime  *time.Time
}

// NewThreadBuilder creates a new ThreadBuilder for the given author
func NewThreadBuilder(profileID uuid.UUID) *ThreadBuilder {
	return &ThreadBuilder{
		profileID: profileID,
		content:   fmt.Sprintf("test thread %s", uuid.New().String()[:8]),
	}
}

func (b *ThreadBuilder) WithContent(content string) *ThreadBuilder {
	b.content = content
	return b
}

func (b *ThreadBuilder) ReplyTo(threadID uuid.UUID) *ThreadBuilder {
	b.replyTo = &threadID
	return b
}

// WithDatetime pins the thread timestamp, for ordering-sensitive tests
func (b *ThreadBuilder) WithDatetime(dt time.Time) *ThreadBuilder {
	b.datetime = &dt
	return b
}

// Build inserts the thread directly into the database
func (b *ThreadBuilder) Build(t *testing.T, db *gorm.DB) *domain.Thread {
	t.Helper()

	dt := time.Now().UTC()
	if b.datetime != nil {
		dt = *b.datetime
	}

	thread := &domain.Thread{
		ThreadID:            uuid.New(),
		ThreadProfileID:     b.profileID,
		ThreadReplyThreadID: b.replyTo,
		ThreadContent:       b.content,
		ThreadDatetime:      dt,
		ThreadImageURL:      b.imageURL,
	}

	if err := db.Create(thread).Error; err != nil {
		t.Fatalf("failed to create thread: %v", err)
	}

	return thread
}

// AuthenticatedRequest performs an HTTP request with a bearer token
func AuthenticatedRequest(t *testing.T, method, url, token string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}
