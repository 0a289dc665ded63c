package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/estately/estately/internal/domain/user/valueobjects"
	"github.com/estately/estately/internal/shared/authorization"
)

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "h:" + p, nil }
func (plainHasher) Verify(p, h string) error {
	if "h:"+p != h {
		return errors.New("mismatch")
	}
	return nil
}

func newTestUser(t *testing.T) *User {
	email, err := vo.NewEmail("owner@example.com")
	require.NoError(t, err)
	u, err := NewUser(email, "Owner")
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	u := newTestUser(t)
	assert.NotEmpty(t, u.UUID())
	assert.Equal(t, authorization.RoleUser, u.Role())
	assert.False(t, u.IsBlocked())
	assert.False(t, u.IsEmailVerified())

	email, _ := vo.NewEmail("x@example.com")
	_, err := NewUser(email, "  ")
	assert.Error(t, err)
}

func TestUser_Password(t *testing.T) {
	u := newTestUser(t)
	pw, err := vo.NewPassword("secret123")
	require.NoError(t, err)
	require.NoError(t, u.SetPassword(pw, plainHasher{}))

	assert.NoError(t, u.VerifyPassword("secret123", plainHasher{}))
	assert.ErrorIs(t, u.VerifyPassword("wrong", plainHasher{}), ErrInvalidCredentials)
}

func TestUser_VerifyEmail(t *testing.T) {
	u := newTestUser(t)
	token, err := u.GenerateEmailVerificationToken()
	require.NoError(t, err)

	assert.ErrorIs(t, u.VerifyEmail("bogus"), ErrInvalidToken)
	require.NoError(t, u.VerifyEmail(token.Value()))
	assert.True(t, u.IsEmailVerified())
	assert.Nil(t, u.VerificationTokenHash())
	assert.ErrorIs(t, u.VerifyEmail(token.Value()), ErrAlreadyVerified)
}

func TestUser_ResetPassword(t *testing.T) {
	u := newTestUser(t)
	token, err := u.GeneratePasswordResetToken()
	require.NoError(t, err)
	pw, _ := vo.NewPassword("newpass99")

	require.NoError(t, u.ResetPassword(token.Value(), pw, plainHasher{}))
	assert.NoError(t, u.VerifyPassword("newpass99", plainHasher{}))
	assert.ErrorIs(t, u.ResetPassword(token.Value(), pw, plainHasher{}), ErrInvalidToken)
}

func TestUser_SetID(t *testing.T) {
	u := newTestUser(t)
	assert.Error(t, u.SetID(0))
	require.NoError(t, u.SetID(5))
	assert.Error(t, u.SetID(6))
}
