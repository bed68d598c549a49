package domain

import "time"

// User is an account that can favorite people, planets and vehicles.
// The password hash is never serialized.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"size:40;uniqueIndex;not null"`
	Username     string    `json:"username" gorm:"size:40;uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"size:60;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	Creation     time.Time `json:"creation_date" gorm:"autoCreateTime;not null"`

	// Loaded with Preload for user payloads. All three lists always
	// serialize, empty arrays included; the people list goes out as
	// "favorite_characters" on the wire.
	FavoritePeople   []FavoritePeople  `json:"favorite_characters" gorm:"foreignKey:UserID"`
	FavoritePlanets  []FavoritePlanet  `json:"favorite_planets" gorm:"foreignKey:UserID"`
	FavoriteVehicles []FavoriteVehicle `json:"favorite_vehicles" gorm:"foreignKey:UserID"`
}

func (User) TableName() string { return "users" }
