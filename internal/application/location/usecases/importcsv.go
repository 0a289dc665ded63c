package usecases

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/estately/estately/internal/domain/location"
	"github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
)

var requiredColumns = []string{"city", "state_id", "state_name", "county_name"}

// ImportResult counts the rows created per level.
type ImportResult struct {
	States   int `json:"states"`
	Counties int `json:"counties"`
	Cities   int `json:"cities"`
	Skipped  int `json:"skipped"`
}

type csvRow struct {
	city      string
	stateAbbr string
	stateName string
	county    string
	lat       *float64
	lng       *float64
}

type ImportLocationsUseCase struct {
	repo      location.Repository
	txManager db.Transactor
	logger    logger.Interface
}

func NewImportLocationsUseCase(repo location.Repository, txManager db.Transactor, logger logger.Interface) *ImportLocationsUseCase {
	return &ImportLocationsUseCase{repo: repo, txManager: txManager, logger: logger}
}

// Execute loads states, then counties, then cities. Each level is flushed
// before the next so parent ids are known. Rows already present are skipped.
func (uc *ImportLocationsUseCase) Execute(ctx context.Context, r io.Reader) (*ImportResult, error) {
	rows, skipped, err := parseCSV(r)
	if err != nil {
		return nil, err
	}
	result := &ImportResult{Skipped: skipped}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		states, err := uc.importStates(txCtx, rows, result)
		if err != nil {
			return err
		}
		counties, err := uc.importCounties(txCtx, rows, states, result)
		if err != nil {
			return err
		}
		return uc.importCities(txCtx, rows, states, counties, result)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("locations imported",
		"states", result.States,
		"counties", result.Counties,
		"cities", result.Cities,
		"skipped", result.Skipped,
	)
	return result, nil
}

func (uc *ImportLocationsUseCase) importStates(ctx context.Context, rows []csvRow, result *ImportResult) (map[string]*location.State, error) {
	states, err := uc.repo.StatesByAbbreviation(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load states: %w", err)
	}
	var fresh []*location.State
	for _, row := range rows {
		if _, ok := states[row.stateAbbr]; ok {
			continue
		}
		s := &location.State{Name: row.stateName, Abbreviation: row.stateAbbr}
		states[row.stateAbbr] = s
		fresh = append(fresh, s)
	}
	if err := uc.repo.CreateStates(ctx, fresh); err != nil {
		return nil, err
	}
	result.States = len(fresh)
	return states, nil
}

func (uc *ImportLocationsUseCase) importCounties(ctx context.Context, rows []csvRow, states map[string]*location.State, result *ImportResult) (map[location.CountyKey]*location.County, error) {
	counties, err := uc.repo.CountiesByKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load counties: %w", err)
	}
	var fresh []*location.County
	for _, row := range rows {
		key := location.CountyKey{Name: row.county, StateID: states[row.stateAbbr].ID}
		if _, ok := counties[key]; ok {
			continue
		}
		c := &location.County{Name: row.county, StateID: key.StateID}
		counties[key] = c
		fresh = append(fresh, c)
	}
	if err := uc.repo.CreateCounties(ctx, fresh); err != nil {
		return nil, err
	}
	result.Counties = len(fresh)
	return counties, nil
}

func (uc *ImportLocationsUseCase) importCities(ctx context.Context, rows []csvRow, states map[string]*location.State, counties map[location.CountyKey]*location.County, result *ImportResult) error {
	cities, err := uc.repo.CitiesByKey(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cities: %w", err)
	}
	var fresh []*location.City
	for _, row := range rows {
		county := counties[location.CountyKey{Name: row.county, StateID: states[row.stateAbbr].ID}]
		key := location.CityKey{Name: row.city, CountyID: county.ID}
		if _, ok := cities[key]; ok {
			continue
		}
		c := &location.City{Name: row.city, CountyID: county.ID, Lat: row.lat, Lng: row.lng}
		cities[key] = c
		fresh = append(fresh, c)
	}
	if err := uc.repo.CreateCities(ctx, fresh); err != nil {
		return err
	}
	result.Cities = len(fresh)
	return nil
}

// parseCSV reads the header to locate columns and returns the usable rows.
// Rows missing a required value are counted as skipped.
func parseCSV(r io.Reader) ([]csvRow, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, 0, errors.NewBadRequestError(location.ErrInvalidCSV.Message, "missing header")
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, 0, errors.NewBadRequestError(location.ErrInvalidCSV.Message, "missing column "+name)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var (
		rows    []csvRow
		skipped int
	)
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, errors.NewBadRequestError(location.ErrInvalidCSV.Message, err.Error())
		}
		row := csvRow{
			city:      location.NormalizeName(field(rec, "city")),
			stateAbbr: location.NormalizeAbbreviation(field(rec, "state_id")),
			stateName: location.NormalizeName(field(rec, "state_name")),
			county:    location.NormalizeName(field(rec, "county_name")),
			lat:       parseCoord(field(rec, "lat")),
			lng:       parseCoord(field(rec, "lng")),
		}
		if row.city == "" || row.stateAbbr == "" || row.stateName == "" || row.county == "" {
			skipped++
			continue
		}
		rows = append(rows, row)
	}
	return rows, skipped, nil
}

func parseCoord(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
