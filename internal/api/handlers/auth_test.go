package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mara/thread-board-website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	buf, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(buf))
	require.NoError(t, err)
	return resp
}

func TestSignUpFlow(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ctx := context.Background()

	signUp := map[string]string{
		"profileName":            "alice",
		"profileEmail":           "alice@example.com",
		"profilePassword":        "hunter22hunter22",
		"profilePasswordConfirm": "hunter22hunter22",
	}

	resp := postJSON(t, ts.APIURL("/sign-up"), signUp)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	// Sign-in before activation is refused
	resp = postJSON(t, ts.APIURL("/sign-in"), map[string]string{
		"profileEmail":    "alice@example.com",
		"profilePassword": "hunter22hunter22",
	})
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusForbidden, "not been activated")

	// Fetch the stored activation token and hit the activation link
	profile, err := ts.Repos.Profile.GetPrivateByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, profile)
	require.NotNil(t, profile.ProfileActivationToken)

	resp, err = http.Get(ts.APIURL("/sign-up/activation/" + *profile.ProfileActivationToken))
	require.NoError(t, err)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	resp = postJSON(t, ts.APIURL("/sign-in"), map[string]string{
		"profileEmail":    "alice@example.com",
		"profilePassword": "hunter22hunter22",
	})
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var auth testutil.AuthResponse
	testutil.AssertJSONResponse(t, resp, &auth)
	assert.Equal(t, "alice", auth.Profile.ProfileName)
	assert.NotEmpty(t, auth.AccessToken)
	assert.NotEmpty(t, auth.RefreshToken)
}

func TestSignUp_Conflicts(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewProfileBuilder().
		WithName("taken").
		WithEmail("taken@example.com").
		Build(t, ts.DB.DB)

	tests := []struct {
		name       string
		body       map[string]string
		wantStatus int
		wantText   string
	}{
		{
			name: "duplicate email",
			body: map[string]string{
				"profileName":            "someone",
				"profileEmail":           "taken@example.com",
				"profilePassword":        "longenough1",
				"profilePasswordConfirm": "longenough1",
			},
			wantStatus: http.StatusConflict,
			wantText:   "email is already in use",
		},
		{
			name: "duplicate name",
			body: map[string]string{
				"profileName":            "taken",
				"profileEmail":           "new@example.com",
				"profilePassword":        "longenough1",
				"profilePasswordConfirm": "longenough1",
			},
			wantStatus: http.StatusConflict,
			wantText:   "profile name is already in use",
		},
		{
			name: "password mismatch",
			body: map[string]string{
				"profileName":            "someoneelse",
				"profileEmail":           "else@example.com",
				"profilePassword":        "longenough1",
				"profilePasswordConfirm": "different1234",
			},
			wantStatus: http.StatusBadRequest,
			wantText:   "validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.APIURL("/sign-up"), tt.body)
			defer resp.Body.Close()
			testutil.AssertErrorResponse(t, resp, tt.wantStatus, tt.wantText)
		})
	}
}

func TestActivate_InvalidToken(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/sign-up/activation/00000000000000000000000000000000"))
	require.NoError(t, err)
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Invalid activation token")
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	ts := testutil.NewTestServer(t)

	profile, _ := testutil.NewProfileBuilder().
		WithPassword("correct-password").
		Build(t, ts.DB.DB)

	tests := []struct {
		name string
		body map[string]string
	}{
		{
			name: "unknown email",
			body: map[string]string{
				"profileEmail":    "nobody@example.com",
				"profilePassword": "whatever123",
			},
		},
		{
			name: "wrong password",
			body: map[string]string{
				"profileEmail":    profile.ProfileEmail,
				"profilePassword": "wrong-password",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.APIURL("/sign-in"), tt.body)
			defer resp.Body.Close()
			testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "Invalid credentials")
		})
	}
}

func TestSignOut(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ctx := context.Background()

	profile, token := testutil.NewProfileBuilder().BuildAndAuthenticate(t, ts)

	resp := testutil.AuthenticatedRequest(t, http.MethodPost, ts.APIURL("/sign-out"), token, nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	session, err := ts.Repos.Session.GetByProfileID(ctx, profile.ProfileID)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSignOut_RequiresAuth(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := postJSON(t, ts.APIURL("/sign-out"), nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
}
