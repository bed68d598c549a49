package vehicle

import (
	"context"

	"gorm.io/gorm"

	"starblog/internal/domain"
	"starblog/internal/pkg/validator"
	"starblog/internal/repository"
)

type Service struct {
	db        *gorm.DB
	vehicles  *repository.VehicleRepository
	favorites *repository.FavoriteRepository
}

func NewService(db *gorm.DB, vehicles *repository.VehicleRepository, favorites *repository.FavoriteRepository) *Service {
	return &Service{db: db, vehicles: vehicles, favorites: favorites}
}

func (s *Service) List(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicles.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return s.vehicles.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Vehicle, error) {
	if err := validator.Check(&req); err != nil {
		return nil, err
	}

	v := req.ToModel()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.vehicles.WithTx(tx).Create(ctx, v)
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.Vehicle, error) {
	var updated *domain.Vehicle
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.vehicles.WithTx(tx)
		v, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		req.Apply(v)
		if err := repo.Save(ctx, v); err != nil {
			return err
		}
		updated = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.vehicles.WithTx(tx)
		if _, err := repo.GetByID(ctx, id); err != nil {
			return err
		}
		if err := s.favorites.WithTx(tx).DeleteAllForVehicle(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
}
