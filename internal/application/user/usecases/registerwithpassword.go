package usecases

import (
	"context"
	"fmt"

	"github.com/estately/estately/internal/domain/store"
	"github.com/estately/estately/internal/domain/user"
	vo "github.com/estately/estately/internal/domain/user/valueobjects"
	"github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
)

type RegisterWithPasswordCommand struct {
	Email    string
	Name     string
	Password string
}

type RegisterWithPasswordResult struct {
	User  *user.User
	Store *store.Store
}

// RegisterWithPasswordUseCase creates an account together with its store
// and the store's DNS record.
type RegisterWithPasswordUseCase struct {
	userRepo      user.Repository
	storeRepo     store.Repository
	txManager     db.Transactor
	hasher        user.PasswordHasher
	dns           DNSProvisioner
	emailService  EmailService
	serviceDomain string
	logger        logger.Interface
}

func NewRegisterWithPasswordUseCase(
	userRepo user.Repository,
	storeRepo store.Repository,
	txManager db.Transactor,
	hasher user.PasswordHasher,
	dns DNSProvisioner,
	emailService EmailService,
	serviceDomain string,
	logger logger.Interface,
) *RegisterWithPasswordUseCase {
	return &RegisterWithPasswordUseCase{
		userRepo:      userRepo,
		storeRepo:     storeRepo,
		txManager:     txManager,
		hasher:        hasher,
		dns:           dns,
		emailService:  emailService,
		serviceDomain: serviceDomain,
		logger:        logger,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, cmd RegisterWithPasswordCommand) (*RegisterWithPasswordResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}
	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, user.ErrEmailTaken
	}

	newUser, err := user.NewUser(email, cmd.Name)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}
	if err := newUser.SetPassword(password, uc.hasher); err != nil {
		return nil, err
	}
	token, err := newUser.GenerateEmailVerificationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	var newStore *store.Store
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Create(txCtx, newUser); err != nil {
			if errors.IsDuplicateError(err) {
				return user.ErrEmailTaken
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		hostname := store.HostnameFor(newUser.UUID(), uc.serviceDomain)
		s, err := store.NewStore(newUser.ID(), hostname, "")
		if err != nil {
			return err
		}
		if err := uc.storeRepo.Create(txCtx, s); err != nil {
			if errors.IsDuplicateError(err) {
				return store.ErrHostnameTaken
			}
			return fmt.Errorf("failed to create store: %w", err)
		}

		if err := uc.dns.CreateRecord(txCtx, hostname); err != nil {
			return errors.NewConflictError("failed to provision store hostname", err.Error())
		}
		newStore = s
		return nil
	})
	if err != nil {
		uc.logger.Warnw("registration failed", "email", email.String(), "error", err)
		return nil, err
	}

	if err := uc.emailService.SendVerificationEmail(newUser.Email(), token.Value()); err != nil {
		uc.logger.Errorw("failed to send verification email", "user_id", newUser.ID(), "error", err)
	}

	uc.logger.Infow("user registered",
		"user_id", newUser.ID(),
		"store_id", newStore.ID(),
		"hostname", newStore.Hostname(),
	)
	return &RegisterWithPasswordResult{User: newUser, Store: newStore}, nil
}
