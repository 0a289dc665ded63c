package models

import "github.com/estately/estately/internal/shared/constants"

type StateModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"not null;size:100"`
	Abbreviation string `gorm:"uniqueIndex;not null;size:10"`
}

func (StateModel) TableName() string { return constants.TableStates }

type CountyModel struct {
	ID      uint   `gorm:"primarykey"`
	Name    string `gorm:"not null;size:100;uniqueIndex:idx_counties_name_state"`
	StateID uint   `gorm:"not null;uniqueIndex:idx_counties_name_state"`
}

func (CountyModel) TableName() string { return constants.TableCounties }

type CityModel struct {
	ID       uint   `gorm:"primarykey"`
	Name     string `gorm:"not null;size:100;uniqueIndex:idx_cities_name_county"`
	CountyID uint   `gorm:"not null;uniqueIndex:idx_cities_name_county"`
	Lat      *float64
	Lng      *float64
}

func (CityModel) TableName() string { return constants.TableCities }
