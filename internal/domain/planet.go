package domain

import "time"

type Planet struct {
	ID             int64      `json:"id" gorm:"primaryKey"`
	Name           string     `json:"name" gorm:"size:100;not null"`
	Diameter       string     `json:"diameter" gorm:"size:100;not null"`
	RotationPeriod string     `json:"rotation_period" gorm:"size:100;not null"`
	OrbitalPeriod  string     `json:"orbital_period" gorm:"size:100;not null"`
	Gravity        string     `json:"gravity" gorm:"size:100;not null"`
	Population     string     `json:"population" gorm:"size:100;not null"`
	Climate        string     `json:"climate" gorm:"size:100;not null"`
	Terrain        string     `json:"terrain" gorm:"size:100;not null"`
	SurfaceWater   string     `json:"surface_water" gorm:"size:100;not null"`
	URL            string     `json:"url" gorm:"size:100;uniqueIndex;not null"`
	Created        time.Time  `json:"created" gorm:"autoCreateTime;not null"`
	Edited         *time.Time `json:"edited" gorm:"autoUpdateTime"`
}

func (Planet) TableName() string { return "planets" }
