package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/estately/estately/internal/application/testutil"
	"github.com/estately/estately/internal/domain/user"
	"github.com/estately/estately/internal/shared/authorization"
	apperrors "github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
)

type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) Generate(userUUID string, role authorization.UserRole) (*TokenPair, error) {
	args := m.Called(userUUID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TokenPair), args.Error(1)
}

func (m *mockJWTService) Refresh(refreshToken string) (string, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.Error(1)
}

func newRegister(r *testutil.Repos, dns DNSProvisioner, email EmailService) *RegisterWithPasswordUseCase {
	return NewRegisterWithPasswordUseCase(r.Users, r.Stores, r.Tx, testutil.FakeHasher{}, dns,
		email, testutil.ServiceDomain, logger.NewNopLogger())
}

func TestRegister_CreatesStoreWithUUIDHostname(t *testing.T) {
	r := testutil.NewRepos(t)
	dns := new(testutil.MockDNSProvisioner)
	email := new(testutil.MockEmailService)
	dns.On("CreateRecord", mock.Anything, mock.AnythingOfType("string")).Return(nil)
	email.On("SendVerificationEmail", "jane@example.com", mock.AnythingOfType("string")).Return(nil)

	res, err := newRegister(r, dns, email).Execute(context.Background(), RegisterWithPasswordCommand{
		Email: "Jane@Example.com", Name: "Jane", Password: "passw0rd!",
	})
	require.NoError(t, err)

	wantHost := res.User.UUID() + "." + testutil.ServiceDomain
	assert.Equal(t, wantHost, res.Store.Hostname())
	assert.Equal(t, res.User.ID(), res.Store.OwnerID())
	assert.False(t, res.Store.IsActive())
	dns.AssertCalled(t, "CreateRecord", mock.Anything, wantHost)
	email.AssertExpectations(t)

	stored, err := r.Stores.GetByOwnerID(context.Background(), res.User.ID())
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, wantHost, stored.Hostname())
}

func TestRegister_DNSFailureRollsBack(t *testing.T) {
	r := testutil.NewRepos(t)
	dns := new(testutil.MockDNSProvisioner)
	dns.On("CreateRecord", mock.Anything, mock.Anything).Return(errors.New("route53 throttled"))
	email := new(testutil.MockEmailService)

	_, err := newRegister(r, dns, email).Execute(context.Background(), RegisterWithPasswordCommand{
		Email: "jane@example.com", Name: "Jane", Password: "passw0rd!",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))

	u, err := r.Users.GetByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
	email.AssertNotCalled(t, "SendVerificationEmail", mock.Anything, mock.Anything)
}

func TestRegister_EmailFailureStillSucceeds(t *testing.T) {
	r := testutil.NewRepos(t)
	dns := new(testutil.MockDNSProvisioner)
	dns.On("CreateRecord", mock.Anything, mock.Anything).Return(nil)
	email := new(testutil.MockEmailService)
	email.On("SendVerificationEmail", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	res, err := newRegister(r, dns, email).Execute(context.Background(), RegisterWithPasswordCommand{
		Email: "jane@example.com", Name: "Jane", Password: "passw0rd!",
	})
	require.NoError(t, err)
	assert.NotZero(t, res.User.ID())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r := testutil.NewRepos(t)
	r.NewTenant(t, "jane@example.com")

	_, err := newRegister(r, new(testutil.MockDNSProvisioner), new(testutil.MockEmailService)).
		Execute(context.Background(), RegisterWithPasswordCommand{
			Email: "JANE@example.com", Name: "Jane", Password: "passw0rd!",
		})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestRegister_InvalidInput(t *testing.T) {
	r := testutil.NewRepos(t)
	uc := newRegister(r, new(testutil.MockDNSProvisioner), new(testutil.MockEmailService))

	_, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{Email: "nope", Name: "x", Password: "passw0rd!"})
	assert.True(t, apperrors.IsBadRequestError(err))

	_, err = uc.Execute(context.Background(), RegisterWithPasswordCommand{Email: "a@b.com", Name: "x", Password: "short"})
	assert.True(t, apperrors.IsBadRequestError(err))
}

func TestVerifyEmail(t *testing.T) {
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "jane@example.com")
	token, err := tenant.User.GenerateEmailVerificationToken()
	require.NoError(t, err)
	require.NoError(t, r.Users.Update(context.Background(), tenant.User))

	uc := NewVerifyEmailUseCase(r.Users, logger.NewNopLogger())

	_, err = uc.Execute(context.Background(), "wrong")
	assert.ErrorIs(t, err, user.ErrInvalidToken)

	u, err := uc.Execute(context.Background(), token.Value())
	require.NoError(t, err)
	assert.True(t, u.IsEmailVerified())

	_, err = uc.Execute(context.Background(), token.Value())
	assert.ErrorIs(t, err, user.ErrInvalidToken)
}

func TestLogin(t *testing.T) {
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "jane@example.com")
	jwt := new(mockJWTService)
	jwt.On("Generate", tenant.User.UUID(), authorization.RoleUser).
		Return(&TokenPair{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900}, nil)

	uc := NewLoginWithPasswordUseCase(r.Users, testutil.FakeHasher{}, jwt, logger.NewNopLogger())

	res, err := uc.Execute(context.Background(), LoginWithPasswordCommand{Email: "Jane@example.com", Password: "passw0rd!"})
	require.NoError(t, err)
	assert.Equal(t, "a", res.Tokens.AccessToken)

	_, err = uc.Execute(context.Background(), LoginWithPasswordCommand{Email: "jane@example.com", Password: "nope"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	_, err = uc.Execute(context.Background(), LoginWithPasswordCommand{Email: "ghost@example.com", Password: "passw0rd!"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLogin_BlockedUserForbidden(t *testing.T) {
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "jane@example.com")
	tenant.User.SetBlocked(true)
	require.NoError(t, r.Users.Update(context.Background(), tenant.User))

	uc := NewLoginWithPasswordUseCase(r.Users, testutil.FakeHasher{}, new(mockJWTService), logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), LoginWithPasswordCommand{Email: "jane@example.com", Password: "passw0rd!"})
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestRefreshToken(t *testing.T) {
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "jane@example.com")
	jwt := new(mockJWTService)
	jwt.On("Refresh", "good").Return(tenant.User.UUID(), nil)
	jwt.On("Refresh", "bad").Return("", errors.New("expired"))
	jwt.On("Generate", tenant.User.UUID(), authorization.RoleUser).Return(&TokenPair{AccessToken: "a2"}, nil)

	uc := NewRefreshTokenUseCase(r.Users, jwt, logger.NewNopLogger())

	pair, err := uc.Execute(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "a2", pair.AccessToken)

	_, err = uc.Execute(context.Background(), "bad")
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, apperrors.TypeOf(err))
}

func TestChangePassword(t *testing.T) {
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "jane@example.com")
	email := new(testutil.MockEmailService)
	email.On("SendPasswordChangedEmail", "jane@example.com").Return(nil)

	uc := NewChangePasswordUseCase(r.Users, testutil.FakeHasher{}, email, logger.NewNopLogger())

	err := uc.Execute(context.Background(), ChangePasswordCommand{UserID: tenant.User.ID(), OldPassword: "wrong", NewPassword: "newpassw0rd"})
	assert.True(t, apperrors.IsBadRequestError(err))

	require.NoError(t, uc.Execute(context.Background(), ChangePasswordCommand{
		UserID: tenant.User.ID(), OldPassword: "passw0rd!", NewPassword: "newpassw0rd",
	}))
	email.AssertExpectations(t)

	u, _ := r.Users.GetByID(context.Background(), tenant.User.ID())
	assert.NoError(t, u.VerifyPassword("newpassw0rd", testutil.FakeHasher{}))
}

func TestRequestAndResetPassword(t *testing.T) {
	r := testutil.NewRepos(t)
	r.NewTenant(t, "jane@example.com")
	throttle := new(testutil.MockThrottle)
	throttle.On("Allow", mock.Anything, "password-reset:jane@example.com").Return(true, nil)
	email := new(testutil.MockEmailService)

	var sent string
	email.On("SendPasswordResetEmail", "jane@example.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { sent = args.String(1) }).Return(nil)
	email.On("SendPasswordChangedEmail", "jane@example.com").Return(nil)

	request := NewRequestPasswordResetUseCase(r.Users, throttle, email, logger.NewNopLogger())
	require.NoError(t, request.Execute(context.Background(), "Jane@example.com"))
	require.NotEmpty(t, sent)

	reset := NewResetPasswordUseCase(r.Users, testutil.FakeHasher{}, email, logger.NewNopLogger())
	err := reset.Execute(context.Background(), ResetPasswordCommand{Token: "bogus", NewPassword: "brandnew1"})
	assert.ErrorIs(t, err, user.ErrInvalidToken)

	require.NoError(t, reset.Execute(context.Background(), ResetPasswordCommand{Token: sent, NewPassword: "brandnew1"}))

	u, _ := r.Users.GetByEmail(context.Background(), "jane@example.com")
	assert.NoError(t, u.VerifyPassword("brandnew1", testutil.FakeHasher{}))
	assert.Nil(t, u.ResetTokenHash())

	// token is single use
	err = reset.Execute(context.Background(), ResetPasswordCommand{Token: sent, NewPassword: "another1x"})
	assert.ErrorIs(t, err, user.ErrInvalidToken)
}

func TestRequestPasswordReset_UnknownOrThrottledIsSilent(t *testing.T) {
	r := testutil.NewRepos(t)
	r.NewTenant(t, "jane@example.com")
	throttle := new(testutil.MockThrottle)
	throttle.On("Allow", mock.Anything, "password-reset:ghost@example.com").Return(true, nil)
	throttle.On("Allow", mock.Anything, "password-reset:jane@example.com").Return(false, nil)
	email := new(testutil.MockEmailService)

	uc := NewRequestPasswordResetUseCase(r.Users, throttle, email, logger.NewNopLogger())
	assert.NoError(t, uc.Execute(context.Background(), "ghost@example.com"))
	assert.NoError(t, uc.Execute(context.Background(), "jane@example.com"))
	email.AssertNotCalled(t, "SendPasswordResetEmail", mock.Anything, mock.Anything)
}

func TestSetUserBlocked(t *testing.T) {
	r := testutil.NewRepos(t)
	admin := r.NewAdmin(t, "admin@example.com")
	tenant := r.NewTenant(t, "jane@example.com")
	uc := NewSetUserBlockedUseCase(r.Users, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), SetUserBlockedCommand{ActorID: admin.ID(), UserID: admin.ID(), Blocked: true})
	assert.ErrorIs(t, err, user.ErrCannotBlockSelf)

	u, err := uc.Execute(context.Background(), SetUserBlockedCommand{ActorID: admin.ID(), UserID: tenant.User.ID(), Blocked: true})
	require.NoError(t, err)
	assert.True(t, u.IsBlocked())

	list := NewListUsersUseCase(r.Users, logger.NewNopLogger())
	blocked := true
	res, err := list.Execute(context.Background(), ListUsersQuery{Blocked: &blocked})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)
}
