package mappers

import (
	"github.com/estately/estately/internal/domain/subscription"
	vo "github.com/estately/estately/internal/domain/subscription/valueobjects"
	"github.com/estately/estately/internal/infrastructure/persistence/models"
	"github.com/estately/estately/internal/shared/mapper"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) *subscription.Subscription
	ToModel(entity *subscription.Subscription) *models.SubscriptionModel
	ToEntities(models []*models.SubscriptionModel) []*subscription.Subscription
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) *subscription.Subscription {
	if model == nil {
		return nil
	}
	return subscription.ReconstructSubscription(
		model.ID,
		model.UserID,
		model.CustomerID,
		model.SubscriptionID,
		model.ItemID,
		model.PriceID,
		model.DesiredPriceID,
		vo.SubscriptionStatus(model.Status),
		vo.Tier(model.Type),
		model.StartAt.UTC(),
		model.EndAt.UTC(),
		model.IsCurrent,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) *models.SubscriptionModel {
	if entity == nil {
		return nil
	}
	var currentUserID *uint
	if entity.IsCurrent() {
		uid := entity.UserID()
		currentUserID = &uid
	}
	return &models.SubscriptionModel{
		ID:             entity.ID(),
		UserID:         entity.UserID(),
		CustomerID:     entity.CustomerID(),
		SubscriptionID: entity.SubscriptionID(),
		ItemID:         entity.ItemID(),
		PriceID:        entity.PriceID(),
		DesiredPriceID: entity.DesiredPriceID(),
		Status:         entity.Status().String(),
		Type:           entity.Tier().String(),
		StartAt:        entity.StartAt(),
		EndAt:          entity.EndAt(),
		IsCurrent:      entity.IsCurrent(),
		CurrentUserID:  currentUserID,
		Version:        entity.Version(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *SubscriptionMapperImpl) ToEntities(ms []*models.SubscriptionModel) []*subscription.Subscription {
	return mapper.MapSlice(ms, m.ToEntity)
}

func ProductToEntity(model *models.ProductModel) *subscription.Product {
	if model == nil {
		return nil
	}
	return subscription.ReconstructProduct(
		model.ID,
		model.Name,
		vo.Tier(model.Tier),
		model.ExternalProductID,
		model.ExternalPriceID,
		model.Amount,
		model.Currency,
		vo.BillingInterval(model.Interval),
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func ProductToModel(entity *subscription.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:                entity.ID(),
		Name:              entity.Name(),
		Tier:              entity.Tier().String(),
		ExternalProductID: entity.ExternalProductID(),
		ExternalPriceID:   entity.ExternalPriceID(),
		Amount:            entity.Amount(),
		Currency:          entity.Currency(),
		Interval:          entity.Interval().String(),
		Active:            entity.IsActive(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}
}
