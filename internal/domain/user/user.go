package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	vo "github.com/estately/estately/internal/domain/user/valueobjects"
	"github.com/estately/estately/internal/shared/authorization"
	"github.com/estately/estately/internal/shared/biztime"
)

const (
	verificationTTL = 24 * time.Hour
	resetTTL        = 30 * time.Minute
)

// User is an account that may own one store.
type User struct {
	id                    uint
	uuid                  string
	email                 string
	name                  string
	passwordHash          string
	role                  authorization.UserRole
	blocked               bool
	emailVerified         bool
	verificationTokenHash *string
	verificationExpiresAt *time.Time
	resetTokenHash        *string
	resetExpiresAt        *time.Time
	version               int
	createdAt             time.Time
	updatedAt             time.Time
}

// PasswordHasher is implemented by the bcrypt hasher in infrastructure/auth.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

func NewUser(email *vo.Email, name string) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return nil, fmt.Errorf("name must be 1-100 characters")
	}

	now := biztime.NowUTC()
	return &User{
		uuid:      uuid.NewString(),
		email:     email.String(),
		name:      name,
		role:      authorization.RoleUser,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(
	id uint,
	uuid, email, name, passwordHash string,
	role authorization.UserRole,
	blocked, emailVerified bool,
	verificationTokenHash *string,
	verificationExpiresAt *time.Time,
	resetTokenHash *string,
	resetExpiresAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:                    id,
		uuid:                  uuid,
		email:                 email,
		name:                  name,
		passwordHash:          passwordHash,
		role:                  role,
		blocked:               blocked,
		emailVerified:         emailVerified,
		verificationTokenHash: verificationTokenHash,
		verificationExpiresAt: verificationExpiresAt,
		resetTokenHash:        resetTokenHash,
		resetExpiresAt:        resetExpiresAt,
		version:               version,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}
}

func (u *User) ID() uint                          { return u.id }
func (u *User) UUID() string                      { return u.uuid }
func (u *User) Email() string                     { return u.email }
func (u *User) Name() string                      { return u.name }
func (u *User) PasswordHash() string              { return u.passwordHash }
func (u *User) Role() authorization.UserRole      { return u.role }
func (u *User) IsAdmin() bool                     { return u.role.IsAdmin() }
func (u *User) IsBlocked() bool                   { return u.blocked }
func (u *User) IsEmailVerified() bool             { return u.emailVerified }
func (u *User) VerificationTokenHash() *string    { return u.verificationTokenHash }
func (u *User) VerificationExpiresAt() *time.Time { return u.verificationExpiresAt }
func (u *User) ResetTokenHash() *string           { return u.resetTokenHash }
func (u *User) ResetExpiresAt() *time.Time        { return u.resetExpiresAt }
func (u *User) Version() int                      { return u.version }
func (u *User) CreatedAt() time.Time              { return u.createdAt }
func (u *User) UpdatedAt() time.Time              { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) touch() {
	u.updatedAt = biztime.NowUTC()
	u.version++
}

func (u *User) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return fmt.Errorf("name must be 1-100 characters")
	}
	u.name = name
	u.touch()
	return nil
}

func (u *User) SetRole(role authorization.UserRole) {
	if u.role == role {
		return
	}
	u.role = role
	u.touch()
}

func (u *User) SetBlocked(blocked bool) {
	if u.blocked == blocked {
		return
	}
	u.blocked = blocked
	u.touch()
}

func (u *User) SetPassword(password *vo.Password, hasher PasswordHasher) error {
	if password == nil {
		return fmt.Errorf("password cannot be nil")
	}
	hash, err := hasher.Hash(password.String())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.passwordHash = hash
	u.touch()
	return nil
}

func (u *User) VerifyPassword(plain string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return ErrInvalidCredentials
	}
	if err := hasher.Verify(plain, u.passwordHash); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateEmailVerificationToken stores the hash and returns the plain token
// to be mailed.
func (u *User) GenerateEmailVerificationToken() (*vo.Token, error) {
	token, err := vo.GenerateToken()
	if err != nil {
		return nil, err
	}
	hash := token.Hash()
	expires := biztime.NowUTC().Add(verificationTTL)
	u.verificationTokenHash = &hash
	u.verificationExpiresAt = &expires
	u.touch()
	return token, nil
}

func (u *User) VerifyEmail(plain string) error {
	if u.emailVerified {
		return ErrAlreadyVerified
	}
	if !tokenValid(plain, u.verificationTokenHash, u.verificationExpiresAt) {
		return ErrInvalidToken
	}
	u.emailVerified = true
	u.verificationTokenHash = nil
	u.verificationExpiresAt = nil
	u.touch()
	return nil
}

func (u *User) GeneratePasswordResetToken() (*vo.Token, error) {
	token, err := vo.GenerateToken()
	if err != nil {
		return nil, err
	}
	hash := token.Hash()
	expires := biztime.NowUTC().Add(resetTTL)
	u.resetTokenHash = &hash
	u.resetExpiresAt = &expires
	u.touch()
	return token, nil
}

func (u *User) ResetPassword(plain string, password *vo.Password, hasher PasswordHasher) error {
	if !tokenValid(plain, u.resetTokenHash, u.resetExpiresAt) {
		return ErrInvalidToken
	}
	if err := u.SetPassword(password, hasher); err != nil {
		return err
	}
	u.resetTokenHash = nil
	u.resetExpiresAt = nil
	return nil
}

func tokenValid(plain string, hash *string, expiresAt *time.Time) bool {
	if hash == nil || expiresAt == nil {
		return false
	}
	if biztime.NowUTC().After(*expiresAt) {
		return false
	}
	return vo.MatchesHash(plain, *hash)
}
