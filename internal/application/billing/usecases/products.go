package usecases

import (
	"context"
	"fmt"

	"github.com/estately/estately/internal/domain/subscription"
	vo "github.com/estately/estately/internal/domain/subscription/valueobjects"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
)

type ListProductsUseCase struct {
	productRepo subscription.ProductRepository
	logger      logger.Interface
}

func NewListProductsUseCase(productRepo subscription.ProductRepository, logger logger.Interface) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo, logger: logger}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, activeOnly bool) ([]*subscription.Product, error) {
	products, err := uc.productRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

type CreateProductCommand struct {
	Name     string
	Tier     string
	Amount   int64
	Currency string
	Interval string
}

// CreateProductUseCase mirrors a new plan into the processor before storing
// it locally.
type CreateProductUseCase struct {
	productRepo subscription.ProductRepository
	gateway     PaymentGateway
	logger      logger.Interface
}

func NewCreateProductUseCase(productRepo subscription.ProductRepository, gateway PaymentGateway, logger logger.Interface) *CreateProductUseCase {
	return &CreateProductUseCase{productRepo: productRepo, gateway: gateway, logger: logger}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, cmd CreateProductCommand) (*subscription.Product, error) {
	tier, err := vo.NewTier(cmd.Tier)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}
	p, err := subscription.NewProduct(cmd.Name, tier, cmd.Amount, cmd.Currency, vo.BillingInterval(cmd.Interval))
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	productID, priceID, err := uc.gateway.CreateProductPrice(ctx, p.Name(), p.Amount(), p.Currency(), p.Interval())
	if err != nil {
		uc.logger.Errorw("failed to create processor product", "name", p.Name(), "error", err)
		return nil, processorFailure(err)
	}
	if err := p.AttachExternal(productID, priceID); err != nil {
		return nil, err
	}
	if err := uc.productRepo.Create(ctx, p); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("price is already mapped to a product", priceID)
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	uc.logger.Infow("product created", "product_id", p.ID(), "price_id", priceID, "tier", tier)
	return p, nil
}

type SetProductActiveUseCase struct {
	productRepo subscription.ProductRepository
	logger      logger.Interface
}

func NewSetProductActiveUseCase(productRepo subscription.ProductRepository, logger logger.Interface) *SetProductActiveUseCase {
	return &SetProductActiveUseCase{productRepo: productRepo, logger: logger}
}

func (uc *SetProductActiveUseCase) Execute(ctx context.Context, id uint, active bool) (*subscription.Product, error) {
	p, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if p == nil {
		return nil, subscription.ErrProductNotFound
	}
	p.SetActive(active)
	if err := uc.productRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	uc.logger.Infow("product availability changed", "product_id", id, "active", active)
	return p, nil
}

type MySubscriptionResult struct {
	Current *subscription.Subscription
	History []*subscription.Subscription
}

type GetMySubscriptionUseCase struct {
	subRepo subscription.Repository
	logger  logger.Interface
}

func NewGetMySubscriptionUseCase(subRepo subscription.Repository, logger logger.Interface) *GetMySubscriptionUseCase {
	return &GetMySubscriptionUseCase{subRepo: subRepo, logger: logger}
}

func (uc *GetMySubscriptionUseCase) Execute(ctx context.Context, userID uint) (*MySubscriptionResult, error) {
	all, err := uc.subRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	res := &MySubscriptionResult{History: make([]*subscription.Subscription, 0, len(all))}
	for _, s := range all {
		if s.IsCurrent() {
			res.Current = s
			continue
		}
		res.History = append(res.History, s)
	}
	if res.Current == nil && len(res.History) == 0 {
		return nil, subscription.ErrSubscriptionNotFound
	}
	return res, nil
}
