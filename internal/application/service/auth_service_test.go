package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (AuthService, ProfileService) {
	t.Helper()
	profiles := NewProfileService(newFakeProfileRepo(), nopLogger{})
	auth := NewAuthService(
		newFakeUserRepo(),
		newFakeSessionRepo(),
		profiles,
		time.Hour,
		bcrypt.MinCost, // keep hashing fast in tests
		nopLogger{},
	)
	return auth, profiles
}

func TestAuthService_SignUpCreatesDefaultProfile(t *testing.T) {
	auth, profiles := newAuthFixture(t)
	ctx := context.Background()

	user, err := auth.SignUp(ctx, "Owner@Example.com", "s3cret-pass", "24AAACB1234F1Z5")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", user.Email)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

	profile, err := profiles.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, DefaultInvoicePrefix, profile.InvoicePrefix)
	assert.Equal(t, "24AAACB1234F1Z5", profile.GSTIN)
}

func TestAuthService_SignUpRejectsDuplicateEmail(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.SignUp(ctx, "owner@example.com", "s3cret-pass", "")
	require.NoError(t, err)

	_, err = auth.SignUp(ctx, "owner@example.com", "another-pass", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_SignUpRejectsBadInput(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.SignUp(ctx, "not-an-email", "s3cret-pass", "")
	assert.Error(t, err)

	_, err = auth.SignUp(ctx, "owner@example.com", "short", "")
	assert.Error(t, err)

	_, err = auth.SignUp(ctx, "owner@example.com", "s3cret-pass", "BADGSTIN")
	assert.Error(t, err)
}

func TestAuthService_SignInAndCurrentUser(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	user, err := auth.SignUp(ctx, "owner@example.com", "s3cret-pass", "")
	require.NoError(t, err)

	session, err := auth.SignIn(ctx, "owner@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	current, err := auth.CurrentUser(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)
}

func TestAuthService_SignInWrongPassword(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.SignUp(ctx, "owner@example.com", "s3cret-pass", "")
	require.NoError(t, err)

	_, err = auth.SignIn(ctx, "owner@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.SignIn(ctx, "nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_SignOutInvalidatesToken(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.SignUp(ctx, "owner@example.com", "s3cret-pass", "")
	require.NoError(t, err)
	session, err := auth.SignIn(ctx, "owner@example.com", "s3cret-pass")
	require.NoError(t, err)

	require.NoError(t, auth.SignOut(ctx, session.Token))
	_, err = auth.CurrentUser(ctx, session.Token)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestAuthService_ExpiredSession(t *testing.T) {
	profiles := NewProfileService(newFakeProfileRepo(), nopLogger{})
	auth := NewAuthService(newFakeUserRepo(), newFakeSessionRepo(), profiles, -time.Minute, bcrypt.MinCost, nopLogger{})
	ctx := context.Background()

	_, err := auth.SignUp(ctx, "owner@example.com", "s3cret-pass", "")
	require.NoError(t, err)
	session, err := auth.SignIn(ctx, "owner@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = auth.CurrentUser(ctx, session.Token)
	assert.ErrorIs(t, err, ErrSessionExpired)
}
