package favorite

import "starblog/internal/domain"

// UserFavorites is the payload for the all-favorites listing: the three
// link collections with nested targets, plus per-kind totals.
type UserFavorites struct {
	People   []domain.FavoritePeople
	Planets  []domain.FavoritePlanet
	Vehicles []domain.FavoriteVehicle
}

type kindLists struct {
	People   []domain.FavoritePeople  `json:"people"`
	Planets  []domain.FavoritePlanet  `json:"planets"`
	Vehicles []domain.FavoriteVehicle `json:"vehicles"`
}

type kindTotals struct {
	People   int `json:"people"`
	Planets  int `json:"planets"`
	Vehicles int `json:"vehicles"`
}

// ListResponse mirrors the envelope used everywhere else, with the
// favorites grouped by kind alongside their counts.
type ListResponse struct {
	Success   bool       `json:"success"`
	UserID    int64      `json:"user_id"`
	Favorites kindLists  `json:"favorites"`
	Totals    kindTotals `json:"totals"`
}

func toListResponse(userID int64, f *UserFavorites) ListResponse {
	// Empty collections render as [] rather than null.
	people := f.People
	if people == nil {
		people = []domain.FavoritePeople{}
	}
	planets := f.Planets
	if planets == nil {
		planets = []domain.FavoritePlanet{}
	}
	vehicles := f.Vehicles
	if vehicles == nil {
		vehicles = []domain.FavoriteVehicle{}
	}

	return ListResponse{
		Success: true,
		UserID:  userID,
		Favorites: kindLists{
			People:   people,
			Planets:  planets,
			Vehicles: vehicles,
		},
		Totals: kindTotals{
			People:   len(f.People),
			Planets:  len(f.Planets),
			Vehicles: len(f.Vehicles),
		},
	}
}
