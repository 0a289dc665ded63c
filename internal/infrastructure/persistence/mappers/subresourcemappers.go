package mappers

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/estately/estately/internal/domain/listing"
	"github.com/estately/estately/internal/infrastructure/persistence/models"
)

func record(id uint, deleted bool, createdAt, updatedAt time.Time) listing.Record {
	return listing.Record{ID: id, IsDeleted: deleted, CreatedAt: createdAt, UpdatedAt: updatedAt}
}

func RateToEntity(m *models.RateModel) *listing.Rate {
	return &listing.Rate{
		Record:   record(m.ID, m.IsDeleted, m.CreatedAt, m.UpdatedAt),
		ItemID:   m.ItemID,
		Name:     m.Name,
		Amount:   m.Amount,
		Currency: m.Currency,
		Period:   listing.RatePeriod(m.Period),
	}
}

func RateToModel(e *listing.Rate) *models.RateModel {
	return &models.RateModel{
		ID: e.ID, ItemID: e.ItemID, Name: e.Name, Amount: e.Amount, Currency: e.Currency,
		Period: string(e.Period), IsDeleted: e.IsDeleted, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
	}
}

func FeeToEntity(m *models.FeeModel) *listing.Fee {
	return &listing.Fee{
		Record:   record(m.ID, m.IsDeleted, m.CreatedAt, m.UpdatedAt),
		ItemID:   m.ItemID,
		Name:     m.Name,
		Amount:   m.Amount,
		Kind:     listing.FeeKind(m.Kind),
		Required: m.Required,
	}
}

func FeeToModel(e *listing.Fee) *models.FeeModel {
	return &models.FeeModel{
		ID: e.ID, ItemID: e.ItemID, Name: e.Name, Amount: e.Amount, Kind: string(e.Kind),
		Required: e.Required, IsDeleted: e.IsDeleted, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
	}
}

func FloorPlanToEntity(m *models.FloorPlanModel) *listing.FloorPlan {
	return &listing.FloorPlan{
		Record:      record(m.ID, m.IsDeleted, m.CreatedAt, m.UpdatedAt),
		ItemID:      m.ItemID,
		Name:        m.Name,
		ImageFileID: m.ImageFileID,
		Bedrooms:    m.Bedrooms,
		Bathrooms:   m.Bathrooms,
		Area:        m.Area,
		Position:    m.Position,
	}
}

func FloorPlanToModel(e *listing.FloorPlan) *models.FloorPlanModel {
	return &models.FloorPlanModel{
		ID: e.ID, ItemID: e.ItemID, Name: e.Name, ImageFileID: e.ImageFileID, Bedrooms: e.Bedrooms,
		Bathrooms: e.Bathrooms, Area: e.Area, Position: e.Position, IsDeleted: e.IsDeleted,
		CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
	}
}

func PlanMarkerToEntity(m *models.PlanMarkerModel) *listing.PlanMarker {
	return &listing.PlanMarker{
		Record:      record(m.ID, m.IsDeleted, m.CreatedAt, m.UpdatedAt),
		FloorPlanID: m.FloorPlanID,
		Label:       m.Label,
		X:           m.X,
		Y:           m.Y,
		FileID:      m.FileID,
	}
}

func PlanMarkerToModel(e *listing.PlanMarker) *models.PlanMarkerModel {
	return &models.PlanMarkerModel{
		ID: e.ID, FloorPlanID: e.FloorPlanID, Label: e.Label, X: e.X, Y: e.Y, FileID: e.FileID,
		IsDeleted: e.IsDeleted, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
	}
}

func BookedDateToEntity(m *models.BookedDateModel) *listing.BookedDate {
	return &listing.BookedDate{
		Record:    record(m.ID, m.IsDeleted, m.CreatedAt, m.UpdatedAt),
		ItemID:    m.ItemID,
		StartDate: m.StartDate.UTC(),
		EndDate:   m.EndDate.UTC(),
		Note:      m.Note,
	}
}

func BookedDateToModel(e *listing.BookedDate) *models.BookedDateModel {
	return &models.BookedDateModel{
		ID: e.ID, ItemID: e.ItemID, StartDate: e.StartDate, EndDate: e.EndDate, Note: e.Note,
		IsDeleted: e.IsDeleted, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
	}
}

func AmenityToEntity(m *models.AmenityModel) *listing.Amenity {
	return &listing.Amenity{
		Record:  record(m.ID, m.IsDeleted, m.CreatedAt, m.UpdatedAt),
		StoreID: m.StoreID,
		Name:    m.Name,
		Icon:    m.Icon,
	}
}

func AmenityToModel(e *listing.Amenity) *models.AmenityModel {
	return &models.AmenityModel{
		ID: e.ID, StoreID: e.StoreID, Name: e.Name, Icon: e.Icon,
		IsDeleted: e.IsDeleted, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
	}
}

func MemberToEntity(m *models.MemberModel) *listing.Member {
	return &listing.Member{
		Record:      record(m.ID, m.IsDeleted, m.CreatedAt, m.UpdatedAt),
		StoreID:     m.StoreID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Title:       m.Title,
		PhotoFileID: m.PhotoFileID,
	}
}

func MemberToModel(e *listing.Member) *models.MemberModel {
	return &models.MemberModel{
		ID: e.ID, StoreID: e.StoreID, Name: e.Name, Email: e.Email, Phone: e.Phone, Title: e.Title,
		PhotoFileID: e.PhotoFileID, IsDeleted: e.IsDeleted, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
	}
}

func LinkToEntity(m *models.LinkModel) *listing.Link {
	return &listing.Link{
		Record: record(m.ID, m.IsDeleted, m.CreatedAt, m.UpdatedAt),
		ItemID: m.ItemID,
		Title:  m.Title,
		URL:    m.URL,
		Kind:   m.Kind,
	}
}

func LinkToModel(e *listing.Link) *models.LinkModel {
	return &models.LinkModel{
		ID: e.ID, ItemID: e.ItemID, Title: e.Title, URL: e.URL, Kind: e.Kind,
		IsDeleted: e.IsDeleted, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
	}
}

func MetadataToEntity(m *models.MetadataModel) *listing.Metadata {
	return &listing.Metadata{
		Record:  record(m.ID, m.IsDeleted, m.CreatedAt, m.UpdatedAt),
		StoreID: m.StoreID,
		Key:     m.Key,
		Value:   json.RawMessage(m.Value),
	}
}

func MetadataToModel(e *listing.Metadata) *models.MetadataModel {
	return &models.MetadataModel{
		ID: e.ID, StoreID: e.StoreID, Key: e.Key, Value: datatypes.JSON(e.Value),
		IsDeleted: e.IsDeleted, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
	}
}
