package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mara/thread-board-website/internal/domain"
	"github.com/mara/thread-board-website/internal/repository/postgres"
	"github.com/mara/thread-board-website/internal/service"
	"github.com/mara/thread-board-website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*service.AuthService, *testutil.TestDB) {
	t.Helper()
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	return service.NewAuthService(repos.Profile, repos.Session, testutil.TestConfig()), testDB
}

func TestAuthService_SignUpActivateSignIn(t *testing.T) {
	svc, testDB := newAuthService(t)
	ctx := context.Background()

	token, err := svc.SignUp(ctx, service.SignUpInput{
		ProfileName:            "alice",
		ProfileEmail:           "alice@example.com",
		ProfilePassword:        "hunter22hunter22",
		ProfilePasswordConfirm: "hunter22hunter22",
	})
	require.NoError(t, err)
	assert.Len(t, token, 32)

	// Not activated yet, sign-in refused
	_, err = svc.SignIn(ctx, service.SignInInput{
		ProfileEmail:    "alice@example.com",
		ProfilePassword: "hunter22hunter22",
	})
	assert.ErrorIs(t, err, service.ErrProfileNotActivated)

	require.NoError(t, svc.Activate(ctx, token))

	result, err := svc.SignIn(ctx, service.SignInInput{
		ProfileEmail:    "alice@example.com",
		ProfilePassword: "hunter22hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", result.Profile.ProfileName)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)

	// A session row now exists for the profile
	session, err := postgres.NewSessionRepository(testDB.DB).GetByProfileID(ctx, result.Profile.ProfileID)
	require.NoError(t, err)
	require.NotNil(t, session)
}

func TestAuthService_SignUp_Rejections(t *testing.T) {
	svc, testDB := newAuthService(t)
	ctx := context.Background()

	testutil.NewProfileBuilder().
		WithName("taken").
		WithEmail("taken@example.com").
		Build(t, testDB.DB)

	valid := service.SignUpInput{
		ProfileName:            "fresh",
		ProfileEmail:           "fresh@example.com",
		ProfilePassword:        "longenough1",
		ProfilePasswordConfirm: "longenough1",
	}

	tests := []struct {
		name    string
		mutate  func(*service.SignUpInput)
		wantErr error
	}{
		{
			name:    "duplicate email",
			mutate:  func(in *service.SignUpInput) { in.ProfileEmail = "taken@example.com" },
			wantErr: service.ErrEmailTaken,
		},
		{
			name:    "duplicate name",
			mutate:  func(in *service.SignUpInput) { in.ProfileName = "taken" },
			wantErr: service.ErrProfileNameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			_, err := svc.SignUp(ctx, input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_SignUp_Validation(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	valid := service.SignUpInput{
		ProfileName:            "validname",
		ProfileEmail:           "valid@example.com",
		ProfilePassword:        "longenough1",
		ProfilePasswordConfirm: "longenough1",
	}

	tests := []struct {
		name   string
		mutate func(*service.SignUpInput)
	}{
		{"blank name", func(in *service.SignUpInput) { in.ProfileName = "   " }},
		{"malformed email", func(in *service.SignUpInput) { in.ProfileEmail = "not-an-email" }},
		{"password too short", func(in *service.SignUpInput) {
			in.ProfilePassword = "short"
			in.ProfilePasswordConfirm = "short"
		}},
		{"password too long", func(in *service.SignUpInput) {
			long := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" // 33
			in.ProfilePassword = long
			in.ProfilePasswordConfirm = long
		}},
		{"confirmation mismatch", func(in *service.SignUpInput) { in.ProfilePasswordConfirm = "different1234" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			_, err := svc.SignUp(ctx, input)
			var verr *domain.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestAuthService_Activate_InvalidToken(t *testing.T) {
	svc, _ := newAuthService(t)

	err := svc.Activate(context.Background(), "00000000000000000000000000000000")
	assert.ErrorIs(t, err, service.ErrInvalidActivationToken)
}

func TestAuthService_SignIn_InvalidCredentials(t *testing.T) {
	svc, testDB := newAuthService(t)
	ctx := context.Background()

	profile, _ := testutil.NewProfileBuilder().
		WithEmail("bob@example.com").
		WithPassword("correct-password").
		Build(t, testDB.DB)

	_, err := svc.SignIn(ctx, service.SignInInput{
		ProfileEmail:    "nobody@example.com",
		ProfilePassword: "whatever123",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.SignIn(ctx, service.SignInInput{
		ProfileEmail:    profile.ProfileEmail,
		ProfilePassword: "wrong-password",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, testDB := newAuthService(t)
	ctx := context.Background()

	profile, password := testutil.NewProfileBuilder().WithName("carol").Build(t, testDB.DB)

	result, err := svc.SignIn(ctx, service.SignInInput{
		ProfileEmail:    profile.ProfileEmail,
		ProfilePassword: password,
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, profile.ProfileID.String(), (*claims)["sub"])
	assert.Equal(t, "carol", (*claims)["name"])

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestAuthService_SignOut(t *testing.T) {
	svc, testDB := newAuthService(t)
	ctx := context.Background()

	profile, password := testutil.NewProfileBuilder().Build(t, testDB.DB)

	_, err := svc.SignIn(ctx, service.SignInInput{
		ProfileEmail:    profile.ProfileEmail,
		ProfilePassword: password,
	})
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(ctx, profile.ProfileID))

	session, err := postgres.NewSessionRepository(testDB.DB).GetByProfileID(ctx, profile.ProfileID)
	require.NoError(t, err)
	assert.Nil(t, session)

	// Signing out without a live session is still a success
	assert.NoError(t, svc.SignOut(ctx, uuid.New()))
}
