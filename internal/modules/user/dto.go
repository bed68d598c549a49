package user

import "starblog/internal/domain"

// CreateRequest uses pointer fields so an absent key can be told apart
// from an empty string. is_active is optional and defaults to true.
type CreateRequest struct {
	Email    *string `json:"email" binding:"required"`
	Username *string `json:"username" binding:"required"`
	Name     *string `json:"name" binding:"required"`
	Password *string `json:"password" binding:"required"`
	IsActive *bool   `json:"is_active"`
}

// ToModel builds the user without the credential; the service hashes the
// password separately so a raw one never sits on the model.
func (r *CreateRequest) ToModel() *domain.User {
	u := &domain.User{
		Email:            *r.Email,
		Username:         *r.Username,
		Name:             *r.Name,
		IsActive:         true,
		FavoritePeople:   []domain.FavoritePeople{},
		FavoritePlanets:  []domain.FavoritePlanet{},
		FavoriteVehicles: []domain.FavoriteVehicle{},
	}
	if r.IsActive != nil {
		u.IsActive = *r.IsActive
	}
	return u
}

type UpdateRequest struct {
	Email    *string `json:"email"`
	Username *string `json:"username"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
	IsActive *bool   `json:"is_active"`
}

// Apply sets everything except the password, which the service re-hashes.
func (r *UpdateRequest) Apply(u *domain.User) {
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.Username != nil {
		u.Username = *r.Username
	}
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.IsActive != nil {
		u.IsActive = *r.IsActive
	}
}
