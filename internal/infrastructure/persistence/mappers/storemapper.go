package mappers

import (
	"github.com/estately/estately/internal/domain/store"
	"github.com/estately/estately/internal/infrastructure/persistence/models"
	"github.com/estately/estately/internal/shared/mapper"
)

type StoreMapper interface {
	ToEntity(model *models.StoreModel) *store.Store
	ToModel(entity *store.Store) *models.StoreModel
	ToEntities(models []*models.StoreModel) []*store.Store
}

type StoreMapperImpl struct{}

func NewStoreMapper() StoreMapper {
	return &StoreMapperImpl{}
}

func (m *StoreMapperImpl) ToEntity(model *models.StoreModel) *store.Store {
	if model == nil {
		return nil
	}
	return store.ReconstructStore(
		model.ID,
		model.Hostname,
		model.OwnerID,
		store.Branding{
			Name:         model.Name,
			Description:  model.Description,
			ContactEmail: model.ContactEmail,
			ContactPhone: model.ContactPhone,
			Address:      model.Address,
			LogoFileID:   model.LogoFileID,
			CoverFileID:  model.CoverFileID,
			PrimaryColor: model.PrimaryColor,
		},
		store.Status(model.Status),
		model.Protected,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *StoreMapperImpl) ToModel(entity *store.Store) *models.StoreModel {
	if entity == nil {
		return nil
	}
	b := entity.Branding()
	return &models.StoreModel{
		ID:           entity.ID(),
		Hostname:     entity.Hostname(),
		OwnerID:      entity.OwnerID(),
		Name:         b.Name,
		Description:  b.Description,
		ContactEmail: b.ContactEmail,
		ContactPhone: b.ContactPhone,
		Address:      b.Address,
		LogoFileID:   b.LogoFileID,
		CoverFileID:  b.CoverFileID,
		PrimaryColor: b.PrimaryColor,
		Status:       entity.Status().String(),
		Protected:    entity.IsProtected(),
		Version:      entity.Version(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *StoreMapperImpl) ToEntities(ms []*models.StoreModel) []*store.Store {
	return mapper.MapSlice(ms, m.ToEntity)
}
