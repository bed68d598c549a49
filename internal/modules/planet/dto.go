package planet

import "starblog/internal/domain"

// CreateRequest uses pointer fields so an absent key can be told apart
// from an empty string; required fires only on nil.
type CreateRequest struct {
	Name           *string `json:"name" binding:"required"`
	Diameter       *string `json:"diameter" binding:"required"`
	RotationPeriod *string `json:"rotation_period" binding:"required"`
	OrbitalPeriod  *string `json:"orbital_period" binding:"required"`
	Gravity        *string `json:"gravity" binding:"required"`
	Population     *string `json:"population" binding:"required"`
	Climate        *string `json:"climate" binding:"required"`
	Terrain        *string `json:"terrain" binding:"required"`
	SurfaceWater   *string `json:"surface_water" binding:"required"`
	URL            *string `json:"url" binding:"required"`
}

func (r *CreateRequest) ToModel() *domain.Planet {
	return &domain.Planet{
		Name:           *r.Name,
		Diameter:       *r.Diameter,
		RotationPeriod: *r.RotationPeriod,
		OrbitalPeriod:  *r.OrbitalPeriod,
		Gravity:        *r.Gravity,
		Population:     *r.Population,
		Climate:        *r.Climate,
		Terrain:        *r.Terrain,
		SurfaceWater:   *r.SurfaceWater,
		URL:            *r.URL,
	}
}

type UpdateRequest struct {
	Name           *string `json:"name"`
	Diameter       *string `json:"diameter"`
	RotationPeriod *string `json:"rotation_period"`
	OrbitalPeriod  *string `json:"orbital_period"`
	Gravity        *string `json:"gravity"`
	Population     *string `json:"population"`
	Climate        *string `json:"climate"`
	Terrain        *string `json:"terrain"`
	SurfaceWater   *string `json:"surface_water"`
	URL            *string `json:"url"`
}

func (r *UpdateRequest) Apply(p *domain.Planet) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Diameter != nil {
		p.Diameter = *r.Diameter
	}
	if r.RotationPeriod != nil {
		p.RotationPeriod = *r.RotationPeriod
	}
	if r.OrbitalPeriod != nil {
		p.OrbitalPeriod = *r.OrbitalPeriod
	}
	if r.Gravity != nil {
		p.Gravity = *r.Gravity
	}
	if r.Population != nil {
		p.Population = *r.Population
	}
	if r.Climate != nil {
		p.Climate = *r.Climate
	}
	if r.Terrain != nil {
		p.Terrain = *r.Terrain
	}
	if r.SurfaceWater != nil {
		p.SurfaceWater = *r.SurfaceWater
	}
	if r.URL != nil {
		p.URL = *r.URL
	}
}
