package vehicle

import "starblog/internal/domain"

// CreateRequest uses pointer fields so an absent key can be told apart
// from an empty string; required fires only on nil.
type CreateRequest struct {
	Name          *string `json:"name" binding:"required"`
	Model         *string `json:"model" binding:"required"`
	VehicleClass  *string `json:"vehicle_class" binding:"required"`
	Manufacturer  *string `json:"manufacturer" binding:"required"`
	Length        *string `json:"length" binding:"required"`
	CostInCredits *string `json:"cost_in_credits" binding:"required"`
	Crew          *string `json:"crew" binding:"required"`
	Passengers    *string `json:"passengers" binding:"required"`
	MaxAtmosSpeed *string `json:"max_atmos_speed" binding:"required"`
	CargoCapacity *string `json:"cargo_capacity" binding:"required"`
	Consumables   *string `json:"consumables" binding:"required"`
	URL           *string `json:"url" binding:"required"`
}

func (r *CreateRequest) ToModel() *domain.Vehicle {
	return &domain.Vehicle{
		Name:          *r.Name,
		Model:         *r.Model,
		VehicleClass:  *r.VehicleClass,
		Manufacturer:  *r.Manufacturer,
		Length:        *r.Length,
		CostInCredits: *r.CostInCredits,
		Crew:          *r.Crew,
		Passengers:    *r.Passengers,
		MaxAtmosSpeed: *r.MaxAtmosSpeed,
		CargoCapacity: *r.CargoCapacity,
		Consumables:   *r.Consumables,
		URL:           *r.URL,
	}
}

type UpdateRequest struct {
	Name          *string `json:"name"`
	Model         *string `json:"model"`
	VehicleClass  *string `json:"vehicle_class"`
	Manufacturer  *string `json:"manufacturer"`
	Length        *string `json:"length"`
	CostInCredits *string `json:"cost_in_credits"`
	Crew          *string `json:"crew"`
	Passengers    *string `json:"passengers"`
	MaxAtmosSpeed *string `json:"max_atmos_speed"`
	CargoCapacity *string `json:"cargo_capacity"`
	Consumables   *string `json:"consumables"`
	URL           *string `json:"url"`
}

func (r *UpdateRequest) Apply(v *domain.Vehicle) {
	if r.Name != nil {
		v.Name = *r.Name
	}
	if r.Model != nil {
		v.Model = *r.Model
	}
	if r.VehicleClass != nil {
		v.VehicleClass = *r.VehicleClass
	}
	if r.Manufacturer != nil {
		v.Manufacturer = *r.Manufacturer
	}
	if r.Length != nil {
		v.Length = *r.Length
	}
	if r.CostInCredits != nil {
		v.CostInCredits = *r.CostInCredits
	}
	if r.Crew != nil {
		v.Crew = *r.Crew
	}
	if r.Passengers != nil {
		v.Passengers = *r.Passengers
	}
	if r.MaxAtmosSpeed != nil {
		v.MaxAtmosSpeed = *r.MaxAtmosSpeed
	}
	if r.CargoCapacity != nil {
		v.CargoCapacity = *r.CargoCapacity
	}
	if r.Consumables != nil {
		v.Consumables = *r.Consumables
	}
	if r.URL != nil {
		v.URL = *r.URL
	}
}
