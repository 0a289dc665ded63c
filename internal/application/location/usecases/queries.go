package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/estately/estately/internal/domain/location"
	"github.com/estately/estately/internal/shared/errors"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// LocationQueries serves the public geography lookups.
type LocationQueries struct {
	repo location.Repository
}

func NewLocationQueries(repo location.Repository) *LocationQueries {
	return &LocationQueries{repo: repo}
}

func (q *LocationQueries) States(ctx context.Context) ([]*location.State, error) {
	states, err := q.repo.ListStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	return states, nil
}

func (q *LocationQueries) Counties(ctx context.Context, stateID uint) ([]*location.County, error) {
	state, err := q.repo.GetStateByID(ctx, stateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get state: %w", err)
	}
	if state == nil {
		return nil, location.ErrStateNotFound
	}
	return q.repo.ListCounties(ctx, stateID)
}

func (q *LocationQueries) Cities(ctx context.Context, countyID uint) ([]*location.City, error) {
	county, err := q.repo.GetCountyByID(ctx, countyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get county: %w", err)
	}
	if county == nil {
		return nil, location.ErrCountyNotFound
	}
	return q.repo.ListCities(ctx, countyID)
}

func (q *LocationQueries) City(ctx context.Context, id uint) (*location.City, error) {
	city, err := q.repo.GetCityByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get city: %w", err)
	}
	if city == nil {
		return nil, location.ErrCityNotFound
	}
	return city, nil
}

func (q *LocationQueries) SearchCities(ctx context.Context, query string, limit int) ([]*location.City, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, errors.NewBadRequestError("search query must be at least 2 characters")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	return q.repo.SearchCities(ctx, query, limit)
}
