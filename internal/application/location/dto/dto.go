package dto

import (
	"github.com/estately/estately/internal/domain/location"
	"github.com/estately/estately/internal/shared/mapper"
)

type StateDTO struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type CountyDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	StateID uint   `json:"state_id"`
}

type CityDTO struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	CountyID uint     `json:"county_id"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
}

func ToStateDTO(s *location.State) *StateDTO {
	return &StateDTO{ID: s.ID, Name: s.Name, Abbreviation: s.Abbreviation}
}

func ToCountyDTO(c *location.County) *CountyDTO {
	return &CountyDTO{ID: c.ID, Name: c.Name, StateID: c.StateID}
}

func ToCityDTO(c *location.City) *CityDTO {
	return &CityDTO{ID: c.ID, Name: c.Name, CountyID: c.CountyID, Lat: c.Lat, Lng: c.Lng}
}

func ToStateDTOs(states []*location.State) []*StateDTO {
	return mapper.MapSlice(states, ToStateDTO)
}

func ToCountyDTOs(counties []*location.County) []*CountyDTO {
	return mapper.MapSlice(counties, ToCountyDTO)
}

func ToCityDTOs(cities []*location.City) []*CityDTO {
	return mapper.MapSlice(cities, ToCityDTO)
}
