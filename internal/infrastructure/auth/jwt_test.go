package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estately/estately/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate("uuid-1", authorization.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "uuid-1", claims.UserUUID)
	assert.Equal(t, authorization.RoleAdmin, claims.Role)

	_, err = svc.VerifyAccess(pair.RefreshToken)
	assert.Error(t, err)

	refreshed, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "uuid-1", refreshed.UserUUID)

	_, err = svc.Refresh(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	pair, err := NewJWTService("one", 15, 7).Generate("uuid-1", authorization.RoleUser)
	require.NoError(t, err)

	_, err = NewJWTService("two", 15, 7).Verify(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTService("s", -1, 7)
	pair, err := svc.Generate("uuid-1", authorization.RoleUser)
	require.NoError(t, err)

	_, err = svc.Verify(pair.AccessToken)
	assert.Error(t, err)
}

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(4)
	hash, err := h.Hash("s3cretpass")
	require.NoError(t, err)

	assert.NoError(t, h.Verify("s3cretpass", hash))
	assert.Error(t, h.Verify("wrong", hash))
	assert.Error(t, h.Verify("s3cretpass", "not-a-hash"))
}
