package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/estately/estately/internal/domain/store"
	"github.com/estately/estately/internal/domain/user"
	vo "github.com/estately/estately/internal/domain/user/valueobjects"
	"github.com/estately/estately/internal/shared/authorization"
)

const ServiceDomain = "estately.test"

// FakeHasher stores passwords with a fixed prefix.
type FakeHasher struct{}

func (FakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (FakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return user.ErrInvalidCredentials
	}
	return nil
}

// Tenant is a persisted user together with the store it owns.
type Tenant struct {
	User  *user.User
	Store *store.Store
}

// NewTenant persists a verified user with password "passw0rd!" and an
// active store.
func (r *Repos) NewTenant(t testing.TB, email string) *Tenant {
	t.Helper()
	ctx := context.Background()

	addr, err := vo.NewEmail(email)
	require.NoError(t, err)
	u, err := user.NewUser(addr, "Owner "+email)
	require.NoError(t, err)
	pw, err := vo.NewPassword("passw0rd!")
	require.NoError(t, err)
	require.NoError(t, u.SetPassword(pw, FakeHasher{}))
	require.NoError(t, r.Users.Create(ctx, u))

	s, err := store.NewStore(u.ID(), store.HostnameFor(u.UUID(), ServiceDomain), "")
	require.NoError(t, err)
	_, err = s.SetStatus(store.StatusActive)
	require.NoError(t, err)
	require.NoError(t, r.Stores.Create(ctx, s))

	return &Tenant{User: u, Store: s}
}

// NewAdmin persists an admin account without a store.
func (r *Repos) NewAdmin(t testing.TB, email string) *user.User {
	t.Helper()
	addr, err := vo.NewEmail(email)
	require.NoError(t, err)
	u, err := user.NewUser(addr, "Admin")
	require.NoError(t, err)
	u.SetRole(authorization.RoleAdmin)
	require.NoError(t, r.Users.Create(context.Background(), u))
	return u
}
