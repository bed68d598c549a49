package favorite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"starblog/internal/domain"
	"starblog/internal/repository"
)

// Service enforces the favoriting invariants for all three target kinds:
// both endpoints must exist, the pair must be new, and every mutation
// runs in one transaction. The Add*/Remove* triples are structurally
// identical per kind.
type Service struct {
	db        *gorm.DB
	users     *repository.UserRepository
	people    *repository.PeopleRepository
	planets   *repository.PlanetRepository
	vehicles  *repository.VehicleRepository
	favorites *repository.FavoriteRepository
}

func NewService(
	db *gorm.DB,
	users *repository.UserRepository,
	people *repository.PeopleRepository,
	planets *repository.PlanetRepository,
	vehicles *repository.VehicleRepository,
	favorites *repository.FavoriteRepository,
) *Service {
	return &Service{
		db:        db,
		users:     users,
		people:    people,
		planets:   planets,
		vehicles:  vehicles,
		favorites: favorites,
	}
}

// List returns all three favorite collections for the user, targets
// included.
func (s *Service) List(ctx context.Context, userID int64) (*UserFavorites, error) {
	if ok, err := s.users.Exists(ctx, userID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrUserNotFound
	}

	people, err := s.favorites.ListPeople(ctx, userID)
	if err != nil {
		return nil, err
	}
	planets, err := s.favorites.ListPlanets(ctx, userID)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.favorites.ListVehicles(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserFavorites{People: people, Planets: planets, Vehicles: vehicles}, nil
}

func (s *Service) AddPeople(ctx context.Context, userID, peopleID int64) (*domain.FavoritePeople, error) {
	var fav *domain.FavoritePeople
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := s.users.WithTx(tx).Exists(ctx, userID); err != nil {
			return err
		} else if !ok {
			return ErrUserNotFound
		}

		person, err := s.people.WithTx(tx).GetByID(ctx, peopleID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return ErrTargetNotFound
			}
			return err
		}

		favs := s.favorites.WithTx(tx)
		exists, err := favs.ExistsPeople(ctx, userID, peopleID)
		if err != nil {
			return err
		}
		if exists {
			return &DuplicateError{Name: person.Name}
		}

		// The unique index stays authoritative: a concurrent insert
		// between the check above and here fails with ErrDuplicateKey.
		fav, err = favs.AddPeople(ctx, userID, peopleID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return fav, nil
}

func (s *Service) RemovePeople(ctx context.Context, userID, peopleID int64) (string, error) {
	var name string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := s.users.WithTx(tx).Exists(ctx, userID); err != nil {
			return err
		} else if !ok {
			return ErrUserNotFound
		}

		favs := s.favorites.WithTx(tx)
		fav, err := favs.GetPeople(ctx, userID, peopleID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return ErrFavoriteNotFound
			}
			return err
		}

		// Capture before the delete; the reference is gone afterwards.
		if fav.People != nil {
			name = fav.People.Name
		}
		return favs.RemovePeople(ctx, userID, peopleID)
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

func (s *Service) AddPlanet(ctx context.Context, userID, planetID int64) (*domain.FavoritePlanet, error) {
	var fav *domain.FavoritePlanet
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := s.users.WithTx(tx).Exists(ctx, userID); err != nil {
			return err
		} else if !ok {
			return ErrUserNotFound
		}

		planet, err := s.planets.WithTx(tx).GetByID(ctx, planetID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return ErrTargetNotFound
			}
			return err
		}

		favs := s.favorites.WithTx(tx)
		exists, err := favs.ExistsPlanet(ctx, userID, planetID)
		if err != nil {
			return err
		}
		if exists {
			return &DuplicateError{Name: planet.Name}
		}

		fav, err = favs.AddPlanet(ctx, userID, planetID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return fav, nil
}

func (s *Service) RemovePlanet(ctx context.Context, userID, planetID int64) (string, error) {
	var name string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := s.users.WithTx(tx).Exists(ctx, userID); err != nil {
			return err
		} else if !ok {
			return ErrUserNotFound
		}

		favs := s.favorites.WithTx(tx)
		fav, err := favs.GetPlanet(ctx, userID, planetID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return ErrFavoriteNotFound
			}
			return err
		}

		if fav.Planet != nil {
			name = fav.Planet.Name
		}
		return favs.RemovePlanet(ctx, userID, planetID)
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

func (s *Service) AddVehicle(ctx context.Context, userID, vehicleID int64) (*domain.FavoriteVehicle, error) {
	var fav *domain.FavoriteVehicle
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := s.users.WithTx(tx).Exists(ctx, userID); err != nil {
			return err
		} else if !ok {
			return ErrUserNotFound
		}

		vehicle, err := s.vehicles.WithTx(tx).GetByID(ctx, vehicleID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return ErrTargetNotFound
			}
			return err
		}

		favs := s.favorites.WithTx(tx)
		exists, err := favs.ExistsVehicle(ctx, userID, vehicleID)
		if err != nil {
			return err
		}
		if exists {
			return &DuplicateError{Name: vehicle.Name}
		}

		fav, err = favs.AddVehicle(ctx, userID, vehicleID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return fav, nil
}

func (s *Service) RemoveVehicle(ctx context.Context, userID, vehicleID int64) (string, error) {
	var name string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := s.users.WithTx(tx).Exists(ctx, userID); err != nil {
			return err
		} else if !ok {
			return ErrUserNotFound
		}

		favs := s.favorites.WithTx(tx)
		fav, err := favs.GetVehicle(ctx, userID, vehicleID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return ErrFavoriteNotFound
			}
			return err
		}

		if fav.Vehicle != nil {
			name = fav.Vehicle.Name
		}
		return favs.RemoveVehicle(ctx, userID, vehicleID)
	})
	if err != nil {
		return "", err
	}
	return name, nil
}
