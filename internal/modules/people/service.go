package people

import (
	"context"

	"gorm.io/gorm"

	"starblog/internal/domain"
	"starblog/internal/pkg/validator"
	"starblog/internal/repository"
)

// Service owns the per-request transactional unit for character
// mutations; each mutation commits or rolls back exactly once.
type Service struct {
	db        *gorm.DB
	people    *repository.PeopleRepository
	favorites *repository.FavoriteRepository
}

func NewService(db *gorm.DB, people *repository.PeopleRepository, favorites *repository.FavoriteRepository) *Service {
	return &Service{db: db, people: people, favorites: favorites}
}

func (s *Service) List(ctx context.Context) ([]domain.People, error) {
	return s.people.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.People, error) {
	return s.people.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.People, error) {
	if err := validator.Check(&req); err != nil {
		return nil, err
	}

	person := req.ToModel()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.people.WithTx(tx).Create(ctx, person)
	})
	if err != nil {
		return nil, err
	}
	return person, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.People, error) {
	var updated *domain.People
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.people.WithTx(tx)
		person, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		req.Apply(person)
		if err := repo.Save(ctx, person); err != nil {
			return err
		}
		updated = person
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the character and, first, every favorite link pointing
// at it, in one transaction.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.people.WithTx(tx)
		if _, err := repo.GetByID(ctx, id); err != nil {
			return err
		}
		if err := s.favorites.WithTx(tx).DeleteAllForPeople(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
}
