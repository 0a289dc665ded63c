package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/estately/estately/internal/domain/location"
	"github.com/estately/estately/internal/infrastructure/persistence/mappers"
	"github.com/estately/estately/internal/infrastructure/persistence/models"
	"github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/logger"
)

const locationBatchSize = 500

type LocationRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewLocationRepository(db *gorm.DB, logger logger.Interface) location.Repository {
	return &LocationRepositoryImpl{db: db, logger: logger}
}

func (r *LocationRepositoryImpl) ListStates(ctx context.Context) ([]*location.State, error) {
	var rows []*models.StateModel
	if err := db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	out := make([]*location.State, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.StateToEntity(m))
	}
	return out, nil
}

func (r *LocationRepositoryImpl) GetStateByID(ctx context.Context, id uint) (*location.State, error) {
	var m models.StateModel
	if err := db.GetTxFromContext(ctx, r.db).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get state: %w", err)
	}
	return mappers.StateToEntity(&m), nil
}

func (r *LocationRepositoryImpl) ListCounties(ctx context.Context, stateID uint) ([]*location.County, error) {
	var rows []*models.CountyModel
	if err := db.GetTxFromContext(ctx, r.db).Where("state_id = ?", stateID).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list counties: %w", err)
	}
	out := make([]*location.County, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.CountyToEntity(m))
	}
	return out, nil
}

func (r *LocationRepositoryImpl) GetCountyByID(ctx context.Context, id uint) (*location.County, error) {
	var m models.CountyModel
	if err := db.GetTxFromContext(ctx, r.db).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get county: %w", err)
	}
	return mappers.CountyToEntity(&m), nil
}

func (r *LocationRepositoryImpl) ListCities(ctx context.Context, countyID uint) ([]*location.City, error) {
	var rows []*models.CityModel
	if err := db.GetTxFromContext(ctx, r.db).Where("county_id = ?", countyID).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return citiesToEntities(rows), nil
}

func (r *LocationRepositoryImpl) GetCityByID(ctx context.Context, id uint) (*location.City, error) {
	var m models.CityModel
	if err := db.GetTxFromContext(ctx, r.db).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get city: %w", err)
	}
	return mappers.CityToEntity(&m), nil
}

func (r *LocationRepositoryImpl) SearchCities(ctx context.Context, query string, limit int) ([]*location.City, error) {
	var rows []*models.CityModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("LOWER(name) LIKE ?", strings.ToLower(strings.TrimSpace(query))+"%").
		Order("name ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search cities: %w", err)
	}
	return citiesToEntities(rows), nil
}

func citiesToEntities(rows []*models.CityModel) []*location.City {
	out := make([]*location.City, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.CityToEntity(m))
	}
	return out
}

func (r *LocationRepositoryImpl) StatesByAbbreviation(ctx context.Context) (map[string]*location.State, error) {
	states, err := r.ListStates(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*location.State, len(states))
	for _, s := range states {
		out[s.Abbreviation] = s
	}
	return out, nil
}

func (r *LocationRepositoryImpl) CountiesByKey(ctx context.Context) (map[location.CountyKey]*location.County, error) {
	var rows []*models.CountyModel
	if err := db.GetTxFromContext(ctx, r.db).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load counties: %w", err)
	}
	out := make(map[location.CountyKey]*location.County, len(rows))
	for _, m := range rows {
		out[location.CountyKey{Name: m.Name, StateID: m.StateID}] = mappers.CountyToEntity(m)
	}
	return out, nil
}

func (r *LocationRepositoryImpl) CitiesByKey(ctx context.Context) (map[location.CityKey]*location.City, error) {
	var rows []*models.CityModel
	if err := db.GetTxFromContext(ctx, r.db).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load cities: %w", err)
	}
	out := make(map[location.CityKey]*location.City, len(rows))
	for _, m := range rows {
		out[location.CityKey{Name: m.Name, CountyID: m.CountyID}] = mappers.CityToEntity(m)
	}
	return out, nil
}

func (r *LocationRepositoryImpl) CreateStates(ctx context.Context, states []*location.State) error {
	if len(states) == 0 {
		return nil
	}
	rows := make([]*models.StateModel, 0, len(states))
	for _, s := range states {
		rows = append(rows, &models.StateModel{Name: s.Name, Abbreviation: s.Abbreviation})
	}
	if err := db.GetTxFromContext(ctx, r.db).CreateInBatches(rows, locationBatchSize).Error; err != nil {
		return fmt.Errorf("failed to create states: %w", err)
	}
	for i, m := range rows {
		states[i].ID = m.ID
	}
	return nil
}

func (r *LocationRepositoryImpl) CreateCounties(ctx context.Context, counties []*location.County) error {
	if len(counties) == 0 {
		return nil
	}
	rows := make([]*models.CountyModel, 0, len(counties))
	for _, c := range counties {
		rows = append(rows, &models.CountyModel{Name: c.Name, StateID: c.StateID})
	}
	if err := db.GetTxFromContext(ctx, r.db).CreateInBatches(rows, locationBatchSize).Error; err != nil {
		return fmt.Errorf("failed to create counties: %w", err)
	}
	for i, m := range rows {
		counties[i].ID = m.ID
	}
	return nil
}

func (r *LocationRepositoryImpl) CreateCities(ctx context.Context, cities []*location.City) error {
	if len(cities) == 0 {
		return nil
	}
	rows := make([]*models.CityModel, 0, len(cities))
	for _, c := range cities {
		rows = append(rows, &models.CityModel{Name: c.Name, CountyID: c.CountyID, Lat: c.Lat, Lng: c.Lng})
	}
	if err := db.GetTxFromContext(ctx, r.db).CreateInBatches(rows, locationBatchSize).Error; err != nil {
		return fmt.Errorf("failed to create cities: %w", err)
	}
	for i, m := range rows {
		cities[i].ID = m.ID
	}
	return nil
}
