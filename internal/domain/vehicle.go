package domain

import "time"

type Vehicle struct {
	ID            int64      `json:"id" gorm:"primaryKey"`
	Name          string     `json:"name" gorm:"size:100;not null"`
	Model         string     `json:"model" gorm:"size:100;not null"`
	VehicleClass  string     `json:"vehicle_class" gorm:"size:100;not null"`
	Manufacturer  string     `json:"manufacturer" gorm:"size:100;not null"`
	Length        string     `json:"length" gorm:"size:100;not null"`
	CostInCredits string     `json:"cost_in_credits" gorm:"size:100;not null"`
	Crew          string     `json:"crew" gorm:"size:20;not null"`
	Passengers    string     `json:"passengers" gorm:"size:20;not null"`
	MaxAtmosSpeed string     `json:"max_atmos_speed" gorm:"size:100;not null"`
	CargoCapacity string     `json:"cargo_capacity" gorm:"size:100;not null"`
	Consumables   string     `json:"consumables" gorm:"size:100;not null"`
	URL           string     `json:"url" gorm:"size:200;uniqueIndex;not null"`
	Created       time.Time  `json:"created" gorm:"autoCreateTime;not null"`
	Edited        *time.Time `json:"edited" gorm:"autoUpdateTime"`
}

func (Vehicle) TableName() string { return "vehicles" }
