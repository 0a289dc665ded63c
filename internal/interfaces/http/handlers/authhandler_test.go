package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estately/estately/internal/application/user/usecases"
	"github.com/estately/estately/internal/domain/store"
	"github.com/estately/estately/internal/domain/user"
	vo "github.com/estately/estately/internal/domain/user/valueobjects"
	"github.com/estately/estately/internal/interfaces/http/handlers/testutil"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockRegisterUC struct {
	result *usecases.RegisterWithPasswordResult
	err    error
	got    usecases.RegisterWithPasswordCommand
}

func (m *mockRegisterUC) Execute(ctx context.Context, cmd usecases.RegisterWithPasswordCommand) (*usecases.RegisterWithPasswordResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockVerifyEmailUC struct {
	result *user.User
	err    error
}

func (m *mockVerifyEmailUC) Execute(ctx context.Context, token string) (*user.User, error) {
	return m.result, m.err
}

type mockResendUC struct {
	userID uint
	err    error
}

func (m *mockResendUC) Execute(ctx context.Context, userID uint) error {
	m.userID = userID
	return m.err
}

type mockLoginUC struct {
	result *usecases.LoginResult
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginWithPasswordCommand) (*usecases.LoginResult, error) {
	return m.result, m.err
}

type mockRefreshUC struct {
	result *usecases.TokenPair
	err    error
}

func (m *mockRefreshUC) Execute(ctx context.Context, refreshToken string) (*usecases.TokenPair, error) {
	return m.result, m.err
}

type mockRequestResetUC struct {
	calls int
	err   error
}

func (m *mockRequestResetUC) Execute(ctx context.Context, email string) error {
	m.calls++
	return m.err
}

type mockResetPasswordUC struct {
	err error
}

func (m *mockResetPasswordUC) Execute(ctx context.Context, cmd usecases.ResetPasswordCommand) error {
	return m.err
}

type mockChangePasswordUC struct {
	got usecases.ChangePasswordCommand
	err error
}

func (m *mockChangePasswordUC) Execute(ctx context.Context, cmd usecases.ChangePasswordCommand) error {
	m.got = cmd
	return m.err
}

type mockGetUserUC struct {
	result *user.User
	err    error
}

func (m *mockGetUserUC) Execute(ctx context.Context, userID uint) (*user.User, error) {
	return m.result, m.err
}

// =====================================================================
// Helpers
// =====================================================================

type authMocks struct {
	register       *mockRegisterUC
	verify         *mockVerifyEmailUC
	resend         *mockResendUC
	login          *mockLoginUC
	refresh        *mockRefreshUC
	requestReset   *mockRequestResetUC
	resetPassword  *mockResetPasswordUC
	changePassword *mockChangePasswordUC
	getUser        *mockGetUserUC
}

func newTestAuthHandler() (*AuthHandler, *authMocks) {
	m := &authMocks{
		register:       &mockRegisterUC{},
		verify:         &mockVerifyEmailUC{},
		resend:         &mockResendUC{},
		login:          &mockLoginUC{},
		refresh:        &mockRefreshUC{},
		requestReset:   &mockRequestResetUC{},
		resetPassword:  &mockResetPasswordUC{},
		changePassword: &mockChangePasswordUC{},
		getUser:        &mockGetUserUC{},
	}
	h := NewAuthHandler(m.register, m.verify, m.resend, m.login, m.refresh,
		m.requestReset, m.resetPassword, m.changePassword, m.getUser, logger.NewNopLogger())
	return h, m
}

func testUser(t *testing.T) *user.User {
	t.Helper()
	email, err := vo.NewEmail("jane@example.com")
	require.NoError(t, err)
	u, err := user.NewUser(email, "Jane")
	require.NoError(t, err)
	return u
}

func testStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewStore(1, "jane.estately.local", "Jane Realty")
	require.NoError(t, err)
	return s
}

// =====================================================================
// Tests
// =====================================================================

func TestAuthHandler_Register(t *testing.T) {
	t.Run("creates account and store", func(t *testing.T) {
		h, m := newTestAuthHandler()
		m.register.result = &usecases.RegisterWithPasswordResult{User: testUser(t), Store: testStore(t)}

		c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", map[string]string{
			"email": "jane@example.com", "name": "Jane", "password": "s3cret-pass",
		})
		h.Register(c)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)

		var data struct {
			User  struct{ Email string } `json:"user"`
			Store struct{ Hostname string } `json:"store"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "jane@example.com", data.User.Email)
		assert.Equal(t, "jane.estately.local", data.Store.Hostname)
		assert.Equal(t, "Jane", m.register.got.Name)
	})

	t.Run("short password is rejected before the use case", func(t *testing.T) {
		h, m := newTestAuthHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", map[string]string{
			"email": "jane@example.com", "name": "Jane", "password": "short",
		})
		h.Register(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, m.register.got.Email)
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		h, m := newTestAuthHandler()
		m.register.err = errors.NewConflictError("email already registered")
		c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", map[string]string{
			"email": "jane@example.com", "name": "Jane", "password": "s3cret-pass",
		})
		h.Register(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns bearer tokens", func(t *testing.T) {
		h, m := newTestAuthHandler()
		m.login.result = &usecases.LoginResult{
			User:   testUser(t),
			Tokens: &usecases.TokenPair{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900},
		}
		c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", map[string]string{
			"email": "jane@example.com", "password": "s3cret-pass",
		})
		h.Login(c)

		require.Equal(t, http.StatusOK, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		var tokens struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
			ExpiresIn   int64  `json:"expires_in"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &tokens))
		assert.Equal(t, "a", tokens.AccessToken)
		assert.Equal(t, "Bearer", tokens.TokenType)
		assert.EqualValues(t, 900, tokens.ExpiresIn)
	})

	t.Run("bad credentials", func(t *testing.T) {
		h, m := newTestAuthHandler()
		m.login.err = errors.NewUnauthorizedError("invalid email or password")
		c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", map[string]string{
			"email": "jane@example.com", "password": "nope",
		})
		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("blocked account", func(t *testing.T) {
		h, m := newTestAuthHandler()
		m.login.err = errors.NewForbiddenError("account is blocked")
		c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", map[string]string{
			"email": "jane@example.com", "password": "s3cret-pass",
		})
		h.Login(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAuthHandler_ForgotPassword_HidesFailures(t *testing.T) {
	h, m := newTestAuthHandler()
	m.requestReset.err = errors.NewNotFoundError("user not found")

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/forgot-password", map[string]string{
		"email": "ghost@example.com",
	})
	h.ForgotPassword(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, m.requestReset.calls)
}

func TestAuthHandler_ChangePassword_UsesAuthenticatedUser(t *testing.T) {
	h, m := newTestAuthHandler()

	c, w := testutil.NewTestContext(http.MethodPut, "/auth/change-password", map[string]string{
		"old_password": "old-pass-1", "new_password": "new-pass-12",
	})
	testutil.SetAuthContext(c, 42, "user")
	h.ChangePassword(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), m.changePassword.got.UserID)
	assert.Equal(t, "new-pass-12", m.changePassword.got.NewPassword)
}

func TestAuthHandler_ResendVerification(t *testing.T) {
	h, m := newTestAuthHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/resend-verification", nil)
	testutil.SetAuthContext(c, 7, "user")
	h.ResendVerification(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), m.resend.userID)
}

func TestAuthHandler_RefreshToken_Invalid(t *testing.T) {
	h, m := newTestAuthHandler()
	m.refresh.err = errors.NewUnauthorizedError("invalid refresh token")

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/refresh", map[string]string{"refresh_token": "x"})
	h.RefreshToken(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	h, m := newTestAuthHandler()
	m.getUser.result = testUser(t)

	c, w := testutil.NewTestContext(http.MethodGet, "/users/me", nil)
	testutil.SetAuthContext(c, 1, "user")
	h.GetCurrentUser(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "jane@example.com")
}
