package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"starblog/internal/domain"
	"starblog/internal/pkg/validator"
	"starblog/internal/repository"
)

type Service struct {
	db        *gorm.DB
	users     *repository.UserRepository
	favorites *repository.FavoriteRepository
}

func NewService(db *gorm.DB, users *repository.UserRepository, favorites *repository.FavoriteRepository) *Service {
	return &Service{db: db, users: users, favorites: favorites}
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.User, error) {
	if err := validator.Check(&req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := req.ToModel()
	u.PasswordHash = string(hash)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.users.WithTx(tx).Create(ctx, u)
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.User, error) {
	var hash string
	if req.Password != nil {
		h, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}

	var updated *domain.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.users.WithTx(tx)
		u, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		req.Apply(u)
		if hash != "" {
			u.PasswordHash = hash
		}
		if err := repo.Save(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the user's favorite links from all three tables, then
// the user, in one transaction. A link never outlives its owner.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		if ok, err := users.Exists(ctx, id); err != nil {
			return err
		} else if !ok {
			return domain.ErrNotFound
		}
		if err := s.favorites.WithTx(tx).DeleteAllForUser(ctx, id); err != nil {
			return err
		}
		return users.Delete(ctx, id)
	})
}
