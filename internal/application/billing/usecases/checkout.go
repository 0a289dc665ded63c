package usecases

import (
	"context"
	"fmt"

	"github.com/estately/estately/internal/domain/subscription"
	"github.com/estately/estately/internal/domain/user"
	"github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
)

var ErrAlreadySubscribed = errors.NewConflictError("a subscription is already running, change the plan instead")

func processorFailure(err error) error {
	return errors.NewConflictError(subscription.ErrProcessorFailure.Message, err.Error())
}

func loadPurchasableProduct(ctx context.Context, repo subscription.ProductRepository, id uint) (*subscription.Product, error) {
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if p == nil {
		return nil, subscription.ErrProductNotFound
	}
	if !p.IsActive() || p.ExternalPriceID() == "" {
		return nil, subscription.ErrProductInactive
	}
	return p, nil
}

type CreateCheckoutSessionCommand struct {
	UserID    uint
	ProductID uint
}

type CreateCheckoutSessionUseCase struct {
	userRepo    user.Repository
	subRepo     subscription.Repository
	productRepo subscription.ProductRepository
	gateway     PaymentGateway
	txManager   db.Transactor
	logger      logger.Interface
}

func NewCreateCheckoutSessionUseCase(
	userRepo user.Repository,
	subRepo subscription.Repository,
	productRepo subscription.ProductRepository,
	gateway PaymentGateway,
	txManager db.Transactor,
	logger logger.Interface,
) *CreateCheckoutSessionUseCase {
	return &CreateCheckoutSessionUseCase{
		userRepo:    userRepo,
		subRepo:     subRepo,
		productRepo: productRepo,
		gateway:     gateway,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute returns the processor-hosted checkout URL.
func (uc *CreateCheckoutSessionUseCase) Execute(ctx context.Context, cmd CreateCheckoutSessionCommand) (string, error) {
	product, err := loadPurchasableProduct(ctx, uc.productRepo, cmd.ProductID)
	if err != nil {
		return "", err
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return "", user.ErrUserNotFound
	}

	customerID, err := uc.subRepo.GetCustomerIDByUserID(ctx, u.ID())
	if err != nil {
		return "", fmt.Errorf("failed to get customer: %w", err)
	}
	if customerID == "" {
		customerID, err = uc.gateway.CreateCustomer(ctx, u.Email(), u.Name(), u.ID())
		if err != nil {
			uc.logger.Errorw("failed to create processor customer", "user_id", u.ID(), "error", err)
			return "", processorFailure(err)
		}
		uc.logger.Infow("processor customer created", "user_id", u.ID(), "customer_id", customerID)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		current, err := uc.subRepo.GetCurrentByUserID(txCtx, u.ID())
		if err != nil {
			return fmt.Errorf("failed to get subscription: %w", err)
		}

		switch {
		case current == nil:
		case current.Status().IsTerminal():
			current.Retire()
			if err := uc.subRepo.Update(txCtx, current); err != nil {
				return fmt.Errorf("failed to retire subscription: %w", err)
			}
		case !current.IsAttached():
			current.SetPendingPrice(product.ExternalPriceID(), product.Tier())
			return uc.subRepo.Update(txCtx, current)
		default:
			return ErrAlreadySubscribed
		}

		sub, err := subscription.NewSubscription(u.ID(), customerID, product.ExternalPriceID(), product.Tier())
		if err != nil {
			return err
		}
		if err := uc.subRepo.Create(txCtx, sub); err != nil {
			return fmt.Errorf("failed to create subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	url, err := uc.gateway.CreateCheckoutSession(ctx, customerID, product.ExternalPriceID(), u.ID())
	if err != nil {
		uc.logger.Errorw("failed to create checkout session", "user_id", u.ID(), "error", err)
		return "", processorFailure(err)
	}
	uc.logger.Infow("checkout session created", "user_id", u.ID(), "product_id", product.ID())
	return url, nil
}

type CreatePortalSessionUseCase struct {
	subRepo subscription.Repository
	gateway PaymentGateway
	logger  logger.Interface
}

func NewCreatePortalSessionUseCase(subRepo subscription.Repository, gateway PaymentGateway, logger logger.Interface) *CreatePortalSessionUseCase {
	return &CreatePortalSessionUseCase{subRepo: subRepo, gateway: gateway, logger: logger}
}

func (uc *CreatePortalSessionUseCase) Execute(ctx context.Context, userID uint) (string, error) {
	customerID, err := uc.subRepo.GetCustomerIDByUserID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get customer: %w", err)
	}
	if customerID == "" {
		return "", subscription.ErrNoCustomer
	}

	url, err := uc.gateway.CreatePortalSession(ctx, customerID)
	if err != nil {
		uc.logger.Errorw("failed to create portal session", "user_id", userID, "error", err)
		return "", processorFailure(err)
	}
	return url, nil
}

type ChangePlanCommand struct {
	UserID    uint
	ProductID uint
}

// ChangePlanUseCase moves the running subscription item to another price.
// The tier is confirmed by the following updated event.
type ChangePlanUseCase struct {
	subRepo     subscription.Repository
	productRepo subscription.ProductRepository
	gateway     PaymentGateway
	txManager   db.Transactor
	logger      logger.Interface
}

func NewChangePlanUseCase(
	subRepo subscription.Repository,
	productRepo subscription.ProductRepository,
	gateway PaymentGateway,
	txManager db.Transactor,
	logger logger.Interface,
) *ChangePlanUseCase {
	return &ChangePlanUseCase{
		subRepo:     subRepo,
		productRepo: productRepo,
		gateway:     gateway,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *ChangePlanUseCase) Execute(ctx context.Context, cmd ChangePlanCommand) (*subscription.Subscription, error) {
	product, err := loadPurchasableProduct(ctx, uc.productRepo, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	var sub *subscription.Subscription
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		current, err := uc.subRepo.GetCurrentByUserID(txCtx, cmd.UserID)
		if err != nil {
			return fmt.Errorf("failed to get subscription: %w", err)
		}
		if current == nil {
			return subscription.ErrSubscriptionNotFound
		}
		if err := current.RequestPriceChange(product.ExternalPriceID()); err != nil {
			return err
		}
		if err := uc.subRepo.Update(txCtx, current); err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}
		if err := uc.gateway.UpdateSubscriptionItemPrice(txCtx, current.ItemID(), product.ExternalPriceID()); err != nil {
			uc.logger.Errorw("failed to change plan", "user_id", cmd.UserID, "error", err)
			return processorFailure(err)
		}
		sub = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("plan change requested", "user_id", cmd.UserID, "desired_price_id", sub.DesiredPriceID())
	return sub, nil
}
