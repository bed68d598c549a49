package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"starblog/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx rebinds the repository to a transaction handle. The caller owns
// commit and rollback.
func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{db: tx}
}

// List returns every user with all three favorite collections and their
// targets loaded, in insertion order.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).
		Preload("FavoritePeople.People").
		Preload("FavoritePlanets.Planet").
		Preload("FavoriteVehicles.Vehicle").
		Find(&users).Error
	if err != nil {
		return nil, translate(err)
	}
	for i := range users {
		normalizeFavorites(&users[i])
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Preload("FavoritePeople.People").
		Preload("FavoritePlanets.Planet").
		Preload("FavoriteVehicles.Vehicle").
		First(&u, id).Error
	if err != nil {
		return nil, translate(err)
	}
	normalizeFavorites(&u)
	return &u, nil
}

// normalizeFavorites keeps empty collections as empty arrays on the
// wire instead of null.
func normalizeFavorites(u *domain.User) {
	if u.FavoritePeople == nil {
		u.FavoritePeople = []domain.FavoritePeople{}
	}
	if u.FavoritePlanets == nil {
		u.FavoritePlanets = []domain.FavoritePlanet{}
	}
	if u.FavoriteVehicles == nil {
		u.FavoriteVehicles = []domain.FavoriteVehicle{}
	}
}

func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, translate(err)
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

// Save persists every column of an already-loaded user.
func (r *UserRepository) Save(ctx context.Context, u *domain.User) error {
	return translate(r.db.WithContext(ctx).
		Omit("FavoritePeople", "FavoritePlanets", "FavoriteVehicles").
		Save(u).Error)
}

// Delete removes the user row only. Favorite links must be removed first
// by the caller, inside the same transaction.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.User{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
