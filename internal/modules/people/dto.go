package people

import "starblog/internal/domain"

// CreateRequest uses pointer fields so an absent key can be told apart
// from an empty string; required fires only on nil.
type CreateRequest struct {
	Name      *string `json:"name" binding:"required"`
	BirthYear *string `json:"birth_year" binding:"required"`
	EyeColor  *string `json:"eye_color" binding:"required"`
	Gender    *string `json:"gender" binding:"required"`
	HairColor *string `json:"hair_color" binding:"required"`
	Height    *string `json:"height" binding:"required"`
	Mass      *string `json:"mass" binding:"required"`
	SkinColor *string `json:"skin_color" binding:"required"`
	Homeworld *string `json:"homeworld" binding:"required"`
	URL       *string `json:"url" binding:"required"`
}

func (r *CreateRequest) ToModel() *domain.People {
	return &domain.People{
		Name:      *r.Name,
		BirthYear: *r.BirthYear,
		EyeColor:  *r.EyeColor,
		Gender:    *r.Gender,
		HairColor: *r.HairColor,
		Height:    *r.Height,
		Mass:      *r.Mass,
		SkinColor: *r.SkinColor,
		Homeworld: *r.Homeworld,
		URL:       *r.URL,
	}
}

// UpdateRequest is a partial mapping: only fields present in the body are
// applied, through the explicit setters below.
type UpdateRequest struct {
	Name      *string `json:"name"`
	BirthYear *string `json:"birth_year"`
	EyeColor  *string `json:"eye_color"`
	Gender    *string `json:"gender"`
	HairColor *string `json:"hair_color"`
	Height    *string `json:"height"`
	Mass      *string `json:"mass"`
	SkinColor *string `json:"skin_color"`
	Homeworld *string `json:"homeworld"`
	URL       *string `json:"url"`
}

func (r *UpdateRequest) Apply(p *domain.People) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.BirthYear != nil {
		p.BirthYear = *r.BirthYear
	}
	if r.EyeColor != nil {
		p.EyeColor = *r.EyeColor
	}
	if r.Gender != nil {
		p.Gender = *r.Gender
	}
	if r.HairColor != nil {
		p.HairColor = *r.HairColor
	}
	if r.Height != nil {
		p.Height = *r.Height
	}
	if r.Mass != nil {
		p.Mass = *r.Mass
	}
	if r.SkinColor != nil {
		p.SkinColor = *r.SkinColor
	}
	if r.Homeworld != nil {
		p.Homeworld = *r.Homeworld
	}
	if r.URL != nil {
		p.URL = *r.URL
	}
}
