package http

import (
	"context"

	contactUsecases "github.com/estately/estately/internal/application/contact/usecases"
	"github.com/estately/estately/internal/application/user/usecases"
	"github.com/estately/estately/internal/infrastructure/auth"
	"github.com/estately/estately/internal/infrastructure/email"
	"github.com/estately/estately/internal/infrastructure/ratelimit"
	"github.com/estately/estately/internal/shared/authorization"
)

// Mailer is every outgoing email the application sends.
type Mailer interface {
	usecases.EmailService
	SendContactNotification(to string, n email.ContactNotification) error
	SendAdminContactNotification(n email.AdminContactNotification) error
}

// jwtServiceAdapter adapts auth.JWTService to usecases.JWTService interface
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(userUUID string, role authorization.UserRole) (*usecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(userUUID, role)
	if err != nil {
		return nil, err
	}
	return &usecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (a *jwtServiceAdapter) Refresh(refreshToken string) (string, error) {
	claims, err := a.JWTService.Refresh(refreshToken)
	if err != nil {
		return "", err
	}
	return claims.UserUUID, nil
}

// throttleAdapter applies fixed limits to an arbitrary key.
type throttleAdapter struct {
	limiter ratelimit.RateLimiter
	limits  ratelimit.Limits
}

func (a *throttleAdapter) Allow(ctx context.Context, key string) (bool, error) {
	return a.limiter.Allow(ctx, key, a.limits)
}

// notifierAdapter adapts the mailer to contact usecases.Notifier
type notifierAdapter struct {
	mailer Mailer
}

func (a *notifierAdapter) NotifyStoreOwner(to string, n contactUsecases.StoreNotification) error {
	return a.mailer.SendContactNotification(to, email.ContactNotification{
		StoreName: n.StoreName,
		ItemTitle: n.ItemTitle,
		Name:      n.Name,
		Email:     n.Email,
		Phone:     n.Phone,
		Message:   n.Message,
	})
}

func (a *notifierAdapter) NotifyAdmin(n contactUsecases.AdminNotification) error {
	return a.mailer.SendAdminContactNotification(email.AdminContactNotification{
		Name:    n.Name,
		Email:   n.Email,
		Phone:   n.Phone,
		Company: n.Company,
		Message: n.Message,
	})
}
