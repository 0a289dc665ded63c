package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/estately/estately/internal/domain/subscription"
	vo "github.com/estately/estately/internal/domain/subscription/valueobjects"
	"github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
)

// HandleWebhookUseCase reconciles the local subscription mirror with a
// verified processor event.
type HandleWebhookUseCase struct {
	subRepo     subscription.Repository
	productRepo subscription.ProductRepository
	gateway     PaymentGateway
	syncer      StoreStatusSyncer
	txManager   db.Transactor
	logger      logger.Interface
}

func NewHandleWebhookUseCase(
	subRepo subscription.Repository,
	productRepo subscription.ProductRepository,
	gateway PaymentGateway,
	syncer StoreStatusSyncer,
	txManager db.Transactor,
	logger logger.Interface,
) *HandleWebhookUseCase {
	return &HandleWebhookUseCase{
		subRepo:     subRepo,
		productRepo: productRepo,
		gateway:     gateway,
		syncer:      syncer,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *HandleWebhookUseCase) Execute(ctx context.Context, payload []byte, signature string) error {
	event, err := uc.gateway.ParseWebhook(payload, signature)
	if err != nil {
		uc.logger.Warnw("rejected webhook", "error", err)
		if stderrors.Is(err, subscription.ErrInvalidSignature) {
			return err
		}
		return errors.NewBadRequestError("malformed webhook payload", err.Error())
	}

	log := uc.logger.With("event_id", event.ID, "event_type", event.Type, "customer_id", event.CustomerID)

	switch event.Type {
	case subscription.EventSubscriptionCreated,
		subscription.EventSubscriptionUpdated,
		subscription.EventSubscriptionDeleted:
	default:
		log.Infow("ignoring webhook event type")
		return nil
	}
	if event.CustomerID == "" {
		log.Warnw("subscription event without customer")
		return nil
	}

	state := event.State
	if event.Type != subscription.EventSubscriptionDeleted {
		state.Tier, err = uc.resolveTier(ctx, state.PriceID)
		if err != nil {
			return err
		}
		if state.Tier == "" {
			log.Warnw("unknown price, keeping tier", "price_id", state.PriceID)
		}
	}

	return uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		sub, err := uc.subRepo.GetCurrentByCustomerID(txCtx, event.CustomerID)
		if err != nil {
			return fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub == nil {
			log.Warnw("webhook for unknown customer")
			return nil
		}

		changed := false
		switch event.Type {
		case subscription.EventSubscriptionCreated:
			changed = sub.Attach(state)
			if !changed {
				log.Infow("subscription already attached", "subscription_id", sub.SubscriptionID())
			}
		case subscription.EventSubscriptionUpdated:
			previous := sub.Status()
			var unexpected bool
			changed, unexpected = sub.Sync(state)
			if unexpected {
				log.Warnw("subscription status moved outside the state machine",
					"from", previous,
					"to", state.Status,
				)
			}
		case subscription.EventSubscriptionDeleted:
			changed = sub.Detach()
		}

		if changed {
			if err := uc.subRepo.Update(txCtx, sub); err != nil {
				return fmt.Errorf("failed to update subscription: %w", err)
			}
		}

		if event.Type == subscription.EventSubscriptionUpdated && sub.NeedsPriceSync() {
			if err := uc.gateway.UpdateSubscriptionItemPrice(txCtx, sub.ItemID(), sub.DesiredPriceID()); err != nil {
				log.Errorw("failed to push desired price", "desired_price_id", sub.DesiredPriceID(), "error", err)
				return errors.NewConflictError(subscription.ErrProcessorFailure.Message, err.Error())
			}
			log.Infow("pushed desired price to processor", "desired_price_id", sub.DesiredPriceID())
		}

		if err := uc.syncer.SyncForUser(txCtx, sub.UserID()); err != nil {
			return err
		}

		log.Infow("webhook reconciled", "changed", changed, "status", sub.Status())
		return nil
	})
}

func (uc *HandleWebhookUseCase) resolveTier(ctx context.Context, priceID string) (vo.Tier, error) {
	if priceID == "" {
		return "", nil
	}
	p, err := uc.productRepo.GetByPriceID(ctx, priceID)
	if err != nil {
		return "", fmt.Errorf("failed to get product: %w", err)
	}
	if p == nil {
		return "", nil
	}
	return p.Tier(), nil
}
