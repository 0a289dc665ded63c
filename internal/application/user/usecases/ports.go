package usecases

import (
	"context"

	"github.com/estately/estately/internal/shared/authorization"
)

type EmailService interface {
	SendVerificationEmail(to, token string) error
	SendPasswordResetEmail(to, token string) error
	SendPasswordChangedEmail(to string) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type JWTService interface {
	Generate(userUUID string, role authorization.UserRole) (*TokenPair, error)
	// Refresh validates a refresh token and returns the user it was issued to.
	Refresh(refreshToken string) (string, error)
}

// DNSProvisioner creates the A record of a new store hostname.
type DNSProvisioner interface {
	CreateRecord(ctx context.Context, host string) error
}

// Throttle reports whether another attempt for key is allowed now.
type Throttle interface {
	Allow(ctx context.Context, key string) (bool, error)
}
