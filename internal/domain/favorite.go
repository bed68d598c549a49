package domain

import "time"

// One favorite table per target kind. Each carries a composite unique
// index so a user can favorite a given target at most once; the index is
// the final arbiter when two concurrent adds race past the existence
// check in the service layer.

// FavoritePeople links a user to a favorited character.
type FavoritePeople struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_people"`
	PeopleID  int64     `json:"people_id" gorm:"not null;index;uniqueIndex:idx_user_people"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;not null"`

	People *People `json:"character,omitempty" gorm:"foreignKey:PeopleID"`
}

func (FavoritePeople) TableName() string { return "favorite_people" }

// FavoritePlanet links a user to a favorited planet.
type FavoritePlanet struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_planet"`
	PlanetID  int64     `json:"planet_id" gorm:"not null;index;uniqueIndex:idx_user_planet"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;not null"`

	Planet *Planet `json:"planet,omitempty" gorm:"foreignKey:PlanetID"`
}

func (FavoritePlanet) TableName() string { return "favorite_planets" }

// FavoriteVehicle links a user to a favorited vehicle.
type FavoriteVehicle struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_vehicle"`
	VehicleID int64     `json:"vehicle_id" gorm:"not null;index;uniqueIndex:idx_user_vehicle"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;not null"`

	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
}

func (FavoriteVehicle) TableName() string { return "favorite_vehicles" }

// AllModels lists every table for AutoMigrate, parents before children.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&People{},
		&Planet{},
		&Vehicle{},
		&FavoritePeople{},
		&FavoritePlanet{},
		&FavoriteVehicle{},
	}
}
