package postgres_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mara/thread-board-website/internal/domain"
	"github.com/mara/thread-board-website/internal/repository/postgres"
	"github.com/mara/thread-board-website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_InsertAndGetPrivateByID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProfileRepository(testDB.DB)
	ctx := context.Background()

	about := "hello there"
	token := strings.Repeat("t", 32)
	profile := &domain.Profile{
		ProfileAbout:           &about,
		ProfileActivationToken: &token,
		ProfileEmail:           "insert@example.com",
		ProfileHash:            strings.Repeat("h", 97),
		ProfileName:            "insert_user",
	}

	require.NoError(t, repo.Insert(ctx, profile))
	assert.NotEqual(t, uuid.Nil, profile.ProfileID, "insert should assign an id")

	got, err := repo.GetPrivateByID(ctx, profile.ProfileID)
	require.NoError(t, err)
	require.NotNil(t, got)

	// Every field except the generated id round-trips verbatim
	assert.Equal(t, profile.ProfileAbout, got.ProfileAbout)
	assert.Equal(t, *profile.ProfileActivationToken, strings.TrimSpace(*got.ProfileActivationToken))
	assert.Equal(t, profile.ProfileEmail, got.ProfileEmail)
	assert.Equal(t, profile.ProfileHash, strings.TrimSpace(got.ProfileHash))
	assert.Equal(t, profile.ProfileName, got.ProfileName)
}

func TestProfileRepository_GetPrivateByEmail(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProfileRepository(testDB.DB)
	ctx := context.Background()

	profile, _ := testutil.NewProfileBuilder().
		WithEmail("byemail@example.com").
		Build(t, testDB.DB)

	got, err := repo.GetPrivateByEmail(ctx, "byemail@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, profile.ProfileID, got.ProfileID)

	// Not-found is (nil, nil), never an error
	missing, err := repo.GetPrivateByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProfileRepository_GetPrivateByActivationToken(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProfileRepository(testDB.DB)
	ctx := context.Background()

	profile, _ := testutil.NewProfileBuilder().Unactivated().Build(t, testDB.DB)
	require.NotNil(t, profile.ProfileActivationToken)

	got, err := repo.GetPrivateByActivationToken(ctx, *profile.ProfileActivationToken)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, profile.ProfileID, got.ProfileID)

	missing, err := repo.GetPrivateByActivationToken(ctx, strings.Repeat("f", 32))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProfileRepository_GetPublicByID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProfileRepository(testDB.DB)
	ctx := context.Background()

	profile, _ := testutil.NewProfileBuilder().
		WithName("public_user").
		WithAbout("public about").
		Build(t, testDB.DB)

	got, err := repo.GetPublicByID(ctx, profile.ProfileID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, profile.ProfileID, got.ProfileID)
	assert.Equal(t, "public_user", got.ProfileName)
	require.NotNil(t, got.ProfileAbout)
	assert.Equal(t, "public about", *got.ProfileAbout)

	missing, err := repo.GetPublicByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProfileRepository_GetPublicByName(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProfileRepository(testDB.DB)
	ctx := context.Background()

	profile, _ := testutil.NewProfileBuilder().
		WithName("named_user").
		Build(t, testDB.DB)

	got, err := repo.GetPublicByName(ctx, "named_user")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, profile.ProfileID, got.ProfileID)

	missing, err := repo.GetPublicByName(ctx, "no_such_user")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProfileRepository_SearchPublicByName(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProfileRepository(testDB.DB)
	ctx := context.Background()

	testutil.NewProfileBuilder().WithName("alice").Build(t, testDB.DB)
	testutil.NewProfileBuilder().WithName("natalia").Build(t, testDB.DB)
	testutil.NewProfileBuilder().WithName("bob").Build(t, testDB.DB)

	// Containment, not prefix: "ali" hits both alice and natalia
	results, err := repo.SearchPublicByName(ctx, "ali")
	require.NoError(t, err)
	require.Len(t, results, 2)

	names := []string{results[0].ProfileName, results[1].ProfileName}
	assert.Contains(t, names, "alice")
	assert.Contains(t, names, "natalia")

	none, err := repo.SearchPublicByName(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProfileRepository_Update(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProfileRepository(testDB.DB)
	ctx := context.Background()

	profile, _ := testutil.NewProfileBuilder().
		WithName("before_update").
		Build(t, testDB.DB)

	newAbout := "updated about"
	profile.ProfileName = "after_update"
	profile.ProfileAbout = &newAbout
	require.NoError(t, repo.Update(ctx, profile))

	got, err := repo.GetPrivateByID(ctx, profile.ProfileID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "after_update", got.ProfileName)
	require.NotNil(t, got.ProfileAbout)
	assert.Equal(t, "updated about", *got.ProfileAbout)
}

func TestProfileRepository_DuplicateEmailRejected(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProfileRepository(testDB.DB)
	ctx := context.Background()

	testutil.NewProfileBuilder().WithEmail("dup@example.com").Build(t, testDB.DB)

	dup := &domain.Profile{
		ProfileEmail: "dup@example.com",
		ProfileHash:  strings.Repeat("h", 97),
		ProfileName:  "someone_else",
	}
	assert.Error(t, repo.Insert(ctx, dup))
}
