package domain

import "time"

// People is a character record. All descriptive attributes are kept as
// strings, matching the upstream SWAPI payloads ("unknown", "41.9BBY", ...).
type People struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"size:100;not null"`
	BirthYear string     `json:"birth_year" gorm:"size:100;not null"`
	EyeColor  string     `json:"eye_color" gorm:"size:100;not null"`
	Gender    string     `json:"gender" gorm:"size:100;not null"`
	HairColor string     `json:"hair_color" gorm:"size:100;not null"`
	Height    string     `json:"height" gorm:"size:20;not null"`
	Mass      string     `json:"mass" gorm:"size:40;not null"`
	SkinColor string     `json:"skin_color" gorm:"size:20;not null"`
	Homeworld string     `json:"homeworld" gorm:"size:40;not null"`
	URL       string     `json:"url" gorm:"size:100;uniqueIndex;not null"`
	Created   time.Time  `json:"created" gorm:"autoCreateTime;not null"`
	Edited    *time.Time `json:"edited" gorm:"autoUpdateTime"`
}

func (People) TableName() string { return "people" }
