package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/estately/estately/internal/domain/subscription"
	"github.com/estately/estately/internal/infrastructure/persistence/mappers"
	"github.com/estately/estately/internal/infrastructure/persistence/models"
	"github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, s *subscription.Subscription) error {
	model := r.mapper.ToModel(s)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription in database", "user_id", model.UserID, "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	if err := s.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}
	r.logger.Infow("subscription created successfully", "id", model.ID, "user_id", model.UserID, "customer_id", model.CustomerID)
	return nil
}

// Update writes every column, including a NULL current_user_id for retired
// rows.
func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, s *subscription.Subscription) error {
	model := r.mapper.ToModel(s)
	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update subscription", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) first(ctx context.Context, query string, args ...interface{}) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, args...).Order("id DESC").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to query subscription", "query", query, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *SubscriptionRepositoryImpl) GetCurrentByUserID(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	return r.first(ctx, "user_id = ? AND is_current = ?", userID, true)
}

func (r *SubscriptionRepositoryImpl) GetCurrentByCustomerID(ctx context.Context, customerID string) (*subscription.Subscription, error) {
	return r.first(ctx, "customer_id = ? AND is_current = ?", customerID, true)
}

func (r *SubscriptionRepositoryImpl) GetCustomerIDByUserID(ctx context.Context, userID uint) (string, error) {
	var customerIDs []string
	err := db.GetTxFromContext(ctx, r.db).Model(&models.SubscriptionModel{}).
		Where("user_id = ? AND customer_id <> ''", userID).
		Order("id DESC").
		Limit(1).
		Pluck("customer_id", &customerIDs).Error
	if err != nil {
		return "", fmt.Errorf("failed to get customer id: %w", err)
	}
	if len(customerIDs) == 0 {
		return "", nil
	}
	return customerIDs[0], nil
}

func (r *SubscriptionRepositoryImpl) ListByUserID(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
	var rows []*models.SubscriptionModel
	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).Order("id DESC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to get subscriptions by user ID", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get subscriptions: %w", err)
	}
	return r.mapper.ToEntities(rows), nil
}

type ProductRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewProductRepository(db *gorm.DB, logger logger.Interface) subscription.ProductRepository {
	return &ProductRepositoryImpl{db: db, logger: logger}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, p *subscription.Product) error {
	model := mappers.ProductToModel(p)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create product", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create product: %w", err)
	}
	return p.SetID(model.ID)
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, p *subscription.Product) error {
	if err := db.GetTxFromContext(ctx, r.db).Save(mappers.ProductToModel(p)).Error; err != nil {
		r.logger.Errorw("failed to update product", "id", p.ID(), "error", err)
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (r *ProductRepositoryImpl) first(ctx context.Context, query string, args ...interface{}) (*subscription.Product, error) {
	var model models.ProductModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return mappers.ProductToEntity(&model), nil
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Product, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *ProductRepositoryImpl) GetByPriceID(ctx context.Context, priceID string) (*subscription.Product, error) {
	return r.first(ctx, "external_price_id = ?", priceID)
}

func (r *ProductRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*subscription.Product, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ProductModel{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	var rows []*models.ProductModel
	if err := query.Order("amount ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	products := make([]*subscription.Product, 0, len(rows))
	for _, m := range rows {
		products = append(products, mappers.ProductToEntity(m))
	}
	return products, nil
}
