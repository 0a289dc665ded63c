package location

import (
	"context"
	"strings"

	"github.com/estately/estately/internal/shared/errors"
)

var (
	ErrStateNotFound  = errors.NewNotFoundError("state not found")
	ErrCountyNotFound = errors.NewNotFoundError("county not found")
	ErrCityNotFound   = errors.NewNotFoundError("city not found")
	ErrInvalidCSV     = errors.NewBadRequestError("invalid location csv")
)

type State struct {
	ID           uint
	Name         string
	Abbreviation string
}

type County struct {
	ID      uint
	Name    string
	StateID uint
}

type City struct {
	ID       uint
	Name     string
	CountyID uint
	Lat      *float64
	Lng      *float64
}

// CountyKey and CityKey are the natural keys used to de-duplicate imports.
type CountyKey struct {
	Name    string
	StateID uint
}

type CityKey struct {
	Name     string
	CountyID uint
}

// NormalizeName trims and collapses inner whitespace of a place name.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func NormalizeAbbreviation(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

type Repository interface {
	ListStates(ctx context.Context) ([]*State, error)
	GetStateByID(ctx context.Context, id uint) (*State, error)
	ListCounties(ctx context.Context, stateID uint) ([]*County, error)
	GetCountyByID(ctx context.Context, id uint) (*County, error)
	ListCities(ctx context.Context, countyID uint) ([]*City, error)
	GetCityByID(ctx context.Context, id uint) (*City, error)
	SearchCities(ctx context.Context, query string, limit int) ([]*City, error)

	// Import helpers; created rows get their IDs filled in.
	StatesByAbbreviation(ctx context.Context) (map[string]*State, error)
	CountiesByKey(ctx context.Context) (map[CountyKey]*County, error)
	CitiesByKey(ctx context.Context) (map[CityKey]*City, error)
	CreateStates(ctx context.Context, states []*State) error
	CreateCounties(ctx context.Context, counties []*County) error
	CreateCities(ctx context.Context, cities []*City) error
}
