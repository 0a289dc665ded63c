package mappers

import (
	"github.com/estately/estately/internal/domain/listing"
	"github.com/estately/estately/internal/infrastructure/persistence/models"
)

// ItemToEntity rebuilds an item; amenity and file ids come from the join
// tables and are loaded by the repository.
func ItemToEntity(model *models.ItemModel, amenityIDs, fileIDs []uint) *listing.Item {
	if model == nil {
		return nil
	}
	return listing.ReconstructItem(
		model.ID,
		model.StoreID,
		listing.ItemDetails{
			MemberID:     model.MemberID,
			Title:        model.Title,
			Description:  model.Description,
			Stage:        listing.Stage(model.Stage),
			PropertyType: model.PropertyType,
			ListingType:  listing.ListingType(model.ListingType),
			Address:      model.Address,
			CityID:       model.CityID,
			Latitude:     model.Latitude,
			Longitude:    model.Longitude,
			Bedrooms:     model.Bedrooms,
			Bathrooms:    model.Bathrooms,
			Area:         model.Area,
		},
		model.DescriptionHTML,
		amenityIDs,
		fileIDs,
		model.IsDeleted,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func ItemToModel(entity *listing.Item) *models.ItemModel {
	d := entity.Details()
	return &models.ItemModel{
		ID:              entity.ID(),
		StoreID:         entity.StoreID(),
		MemberID:        d.MemberID,
		Title:           d.Title,
		Description:     d.Description,
		DescriptionHTML: entity.DescriptionHTML(),
		Stage:           string(d.Stage),
		PropertyType:    d.PropertyType,
		ListingType:     string(d.ListingType),
		Address:         d.Address,
		CityID:          d.CityID,
		Latitude:        d.Latitude,
		Longitude:       d.Longitude,
		Bedrooms:        d.Bedrooms,
		Bathrooms:       d.Bathrooms,
		Area:            d.Area,
		IsDeleted:       entity.IsDeleted(),
		Version:         entity.Version(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}
