package firebase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokenVerifier stands in for the Firebase auth client.
type fakeTokenVerifier struct {
	token    *auth.Token
	tokenErr error
	user     *auth.UserRecord
	userErr  error

	getUserCalled bool
}

func (f *fakeTokenVerifier) VerifyIDToken(_ context.Context, _ string) (*auth.Token, error) {
	return f.token, f.tokenErr
}

func (f *fakeTokenVerifier) GetUser(_ context.Context, _ string) (*auth.UserRecord, error) {
	f.getUserCalled = true

	return f.user, f.userErr
}

func newTestVerifier(client tokenVerifier) *identityVerifier {
	return &identityVerifier{
		client: client,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestIdentityVerifier_VerifyIDToken_ClaimsCarryEmail(t *testing.T) {
	client := &fakeTokenVerifier{
		token: &auth.Token{
			UID: "firebase-uid-1",
			Claims: map[string]interface{}{
				"email":   "jane@example.com",
				"picture": "https://example.com/jane.png",
			},
		},
	}

	identity, err := newTestVerifier(client).VerifyIDToken(context.Background(), "valid-token")

	require.NoError(t, err)
	assert.Equal(t, "firebase-uid-1", identity.UID)
	assert.Equal(t, "jane@example.com", identity.Email)
	assert.Equal(t, "https://example.com/jane.png", identity.PictureURL)
	assert.False(t, client.getUserCalled, "user record lookup is skipped when claims carry the email")
}

func TestIdentityVerifier_VerifyIDToken_FallsBackToUserRecord(t *testing.T) {
	client := &fakeTokenVerifier{
		token: &auth.Token{
			UID:    "firebase-uid-1",
			Claims: map[string]interface{}{},
		},
		user: &auth.UserRecord{
			UserInfo: &auth.UserInfo{
				Email:    "jane@example.com",
				PhotoURL: "https://example.com/jane.png",
			},
		},
	}

	identity, err := newTestVerifier(client).VerifyIDToken(context.Background(), "valid-token")

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", identity.Email)
	assert.Equal(t, "https://example.com/jane.png", identity.PictureURL)
	assert.True(t, client.getUserCalled)
}

func TestIdentityVerifier_VerifyIDToken_InvalidToken(t *testing.T) {
	client := &fakeTokenVerifier{
		tokenErr: errors.New("ID token has expired"),
	}

	identity, err := newTestVerifier(client).VerifyIDToken(context.Background(), "expired-token")

	assert.Nil(t, identity)
	assert.Error(t, err)
	assert.False(t, client.getUserCalled)
}

func TestIdentityVerifier_VerifyIDToken_UserRecordLookupFails(t *testing.T) {
	client := &fakeTokenVerifier{
		token: &auth.Token{
			UID:    "firebase-uid-1",
			Claims: map[string]interface{}{},
		},
		userErr: errors.New("user not found"),
	}

	identity, err := newTestVerifier(client).VerifyIDToken(context.Background(), "valid-token")

	assert.Nil(t, identity)
	assert.Error(t, err)
}
