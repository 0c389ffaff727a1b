package domain_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mara/thread-board-website/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProfile_Public(t *testing.T) {
	about := "likes long walks"
	imageURL := "https://example.com/avatar.png"
	token := strings.Repeat("a", 32)

	p := domain.Profile{
		ProfileID:              uuid.New(),
		ProfileAbout:           &about,
		ProfileActivationToken: &token,
		ProfileEmail:           "alice@example.com",
		ProfileHash:            strings.Repeat("h", 97),
		ProfileImageURL:        &imageURL,
		ProfileName:            "alice",
	}

	pub := p.Public()

	assert.Equal(t, p.ProfileID, pub.ProfileID)
	assert.Equal(t, p.ProfileAbout, pub.ProfileAbout)
	assert.Equal(t, p.ProfileImageURL, pub.ProfileImageURL)
	assert.Equal(t, p.ProfileName, pub.ProfileName)
}

// The public projection must remove exactly the hash, activation token and
// email, and nothing else. Checked structurally so a new Profile field
// cannot slip into (or silently vanish from) the public shape unnoticed.
func TestProfile_PublicFieldSet(t *testing.T) {
	hidden := map[string]bool{
		"ProfileHash":            true,
		"ProfileActivationToken": true,
		"ProfileEmail":           true,
	}

	private := reflect.TypeOf(domain.Profile{})
	public := reflect.TypeOf(domain.PublicProfile{})

	publicFields := make(map[string]reflect.Type)
	for i := 0; i < public.NumField(); i++ {
		f := public.Field(i)
		publicFields[f.Name] = f.Type
	}

	visible := 0
	for i := 0; i < private.NumField(); i++ {
		f := private.Field(i)
		if hidden[f.Name] {
			_, leaked := publicFields[f.Name]
			assert.False(t, leaked, "private field %s leaked into PublicProfile", f.Name)
			continue
		}
		visible++
		typ, ok := publicFields[f.Name]
		assert.True(t, ok, "field %s missing from PublicProfile", f.Name)
		assert.Equal(t, f.Type, typ, "field %s has a different type in PublicProfile", f.Name)
	}

	assert.Equal(t, visible, public.NumField(), "PublicProfile carries fields Profile does not")
}
