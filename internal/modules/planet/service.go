package planet

import (
	"context"

	"gorm.io/gorm"

	"starblog/internal/domain"
	"starblog/internal/pkg/validator"
	"starblog/internal/repository"
)

type Service struct {
	db        *gorm.DB
	planets   *repository.PlanetRepository
	favorites *repository.FavoriteRepository
}

func NewService(db *gorm.DB, planets *repository.PlanetRepository, favorites *repository.FavoriteRepository) *Service {
	return &Service{db: db, planets: planets, favorites: favorites}
}

func (s *Service) List(ctx context.Context) ([]domain.Planet, error) {
	return s.planets.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Planet, error) {
	return s.planets.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Planet, error) {
	if err := validator.Check(&req); err != nil {
		return nil, err
	}

	planet := req.ToModel()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.planets.WithTx(tx).Create(ctx, planet)
	})
	if err != nil {
		return nil, err
	}
	return planet, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.Planet, error) {
	var updated *domain.Planet
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.planets.WithTx(tx)
		planet, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		req.Apply(planet)
		if err := repo.Save(ctx, planet); err != nil {
			return err
		}
		updated = planet
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.planets.WithTx(tx)
		if _, err := repo.GetByID(ctx, id); err != nil {
			return err
		}
		if err := s.favorites.WithTx(tx).DeleteAllForPlanet(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
}
