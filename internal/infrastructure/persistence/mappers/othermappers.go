package mappers

import (
	"github.com/estately/estately/internal/domain/contact"
	"github.com/estately/estately/internal/domain/location"
	"github.com/estately/estately/internal/domain/media"
	"github.com/estately/estately/internal/infrastructure/persistence/models"
)

func ContactRequestToEntity(m *models.ContactRequestModel) *contact.Request {
	return contact.ReconstructRequest(
		m.ID,
		m.StoreID,
		m.ItemID,
		contact.Inquiry{Name: m.Name, Email: m.Email, Phone: m.Phone, Message: m.Message},
		contact.Status(m.Status),
		m.IsDeleted,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func ContactRequestToModel(e *contact.Request) *models.ContactRequestModel {
	q := e.Inquiry()
	return &models.ContactRequestModel{
		ID:        e.ID(),
		StoreID:   e.StoreID(),
		ItemID:    e.ItemID(),
		Name:      q.Name,
		Email:     q.Email,
		Phone:     q.Phone,
		Message:   q.Message,
		Status:    string(e.Status()),
		IsDeleted: e.IsDeleted(),
		CreatedAt: e.CreatedAt(),
		UpdatedAt: e.UpdatedAt(),
	}
}

func AdminContactRequestToEntity(m *models.AdminContactRequestModel) *contact.AdminRequest {
	return contact.ReconstructAdminRequest(
		m.ID,
		contact.Inquiry{Name: m.Name, Email: m.Email, Phone: m.Phone, Message: m.Message},
		m.Company,
		contact.Status(m.Status),
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func AdminContactRequestToModel(e *contact.AdminRequest) *models.AdminContactRequestModel {
	q := e.Inquiry()
	return &models.AdminContactRequestModel{
		ID:        e.ID(),
		Name:      q.Name,
		Email:     q.Email,
		Phone:     q.Phone,
		Company:   e.Company(),
		Message:   q.Message,
		Status:    string(e.Status()),
		CreatedAt: e.CreatedAt(),
		UpdatedAt: e.UpdatedAt(),
	}
}

func FileToEntity(m *models.FileModel) *media.File {
	return media.ReconstructFile(m.ID, m.StoreID, m.UploaderID, m.Key, m.URL, m.Name, m.ContentType,
		media.Kind(m.Kind), m.Size, m.IsDeleted, m.CreatedAt)
}

func FileToModel(e *media.File) *models.FileModel {
	return &models.FileModel{
		ID:          e.ID(),
		StoreID:     e.StoreID(),
		UploaderID:  e.UploaderID(),
		Key:         e.Key(),
		URL:         e.URL(),
		Name:        e.Name(),
		ContentType: e.ContentType(),
		Kind:        string(e.Kind()),
		Size:        e.Size(),
		IsDeleted:   e.IsDeleted(),
		CreatedAt:   e.CreatedAt(),
	}
}

func StateToEntity(m *models.StateModel) *location.State {
	return &location.State{ID: m.ID, Name: m.Name, Abbreviation: m.Abbreviation}
}

func CountyToEntity(m *models.CountyModel) *location.County {
	return &location.County{ID: m.ID, Name: m.Name, StateID: m.StateID}
}

func CityToEntity(m *models.CityModel) *location.City {
	return &location.City{ID: m.ID, Name: m.Name, CountyID: m.CountyID, Lat: m.Lat, Lng: m.Lng}
}
