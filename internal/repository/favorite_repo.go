package repository

import (
	"context"

	"gorm.io/gorm"

	"starblog/internal/domain"
)

// FavoriteRepository covers the three favorite link tables. The method
// triples are structurally identical; only the link type and target
// column differ.
type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) WithTx(tx *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: tx}
}

// ---- people ----

func (r *FavoriteRepository) AddPeople(ctx context.Context, userID, peopleID int64) (*domain.FavoritePeople, error) {
	fav := &domain.FavoritePeople{UserID: userID, PeopleID: peopleID}
	if err := r.db.WithContext(ctx).Create(fav).Error; err != nil {
		return nil, translate(err)
	}
	if err := r.db.WithContext(ctx).Preload("People").First(fav, fav.ID).Error; err != nil {
		return nil, translate(err)
	}
	return fav, nil
}

func (r *FavoriteRepository) GetPeople(ctx context.Context, userID, peopleID int64) (*domain.FavoritePeople, error) {
	var fav domain.FavoritePeople
	err := r.db.WithContext(ctx).
		Preload("People").
		Where("user_id = ? AND people_id = ?", userID, peopleID).
		First(&fav).Error
	if err != nil {
		return nil, translate(err)
	}
	return &fav, nil
}

func (r *FavoriteRepository) ExistsPeople(ctx context.Context, userID, peopleID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.FavoritePeople{}).
		Where("user_id = ? AND people_id = ?", userID, peopleID).
		Count(&count).Error
	return count > 0, translate(err)
}

func (r *FavoriteRepository) RemovePeople(ctx context.Context, userID, peopleID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND people_id = ?", userID, peopleID).
		Delete(&domain.FavoritePeople{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *FavoriteRepository) ListPeople(ctx context.Context, userID int64) ([]domain.FavoritePeople, error) {
	var favs []domain.FavoritePeople
	err := r.db.WithContext(ctx).
		Preload("People").
		Where("user_id = ?", userID).
		Find(&favs).Error
	return favs, translate(err)
}

// ---- planets ----

func (r *FavoriteRepository) AddPlanet(ctx context.Context, userID, planetID int64) (*domain.FavoritePlanet, error) {
	fav := &domain.FavoritePlanet{UserID: userID, PlanetID: planetID}
	if err := r.db.WithContext(ctx).Create(fav).Error; err != nil {
		return nil, translate(err)
	}
	if err := r.db.WithContext(ctx).Preload("Planet").First(fav, fav.ID).Error; err != nil {
		return nil, translate(err)
	}
	return fav, nil
}

func (r *FavoriteRepository) GetPlanet(ctx context.Context, userID, planetID int64) (*domain.FavoritePlanet, error) {
	var fav domain.FavoritePlanet
	err := r.db.WithContext(ctx).
		Preload("Planet").
		Where("user_id = ? AND planet_id = ?", userID, planetID).
		First(&fav).Error
	if err != nil {
		return nil, translate(err)
	}
	return &fav, nil
}

func (r *FavoriteRepository) ExistsPlanet(ctx context.Context, userID, planetID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.FavoritePlanet{}).
		Where("user_id = ? AND planet_id = ?", userID, planetID).
		Count(&count).Error
	return count > 0, translate(err)
}

func (r *FavoriteRepository) RemovePlanet(ctx context.Context, userID, planetID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND planet_id = ?", userID, planetID).
		Delete(&domain.FavoritePlanet{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *FavoriteRepository) ListPlanets(ctx context.Context, userID int64) ([]domain.FavoritePlanet, error) {
	var favs []domain.FavoritePlanet
	err := r.db.WithContext(ctx).
		Preload("Planet").
		Where("user_id = ?", userID).
		Find(&favs).Error
	return favs, translate(err)
}

// ---- vehicles ----

func (r *FavoriteRepository) AddVehicle(ctx context.Context, userID, vehicleID int64) (*domain.FavoriteVehicle, error) {
	fav := &domain.FavoriteVehicle{UserID: userID, VehicleID: vehicleID}
	if err := r.db.WithContext(ctx).Create(fav).Error; err != nil {
		return nil, translate(err)
	}
	if err := r.db.WithContext(ctx).Preload("Vehicle").First(fav, fav.ID).Error; err != nil {
		return nil, translate(err)
	}
	return fav, nil
}

func (r *FavoriteRepository) GetVehicle(ctx context.Context, userID, vehicleID int64) (*domain.FavoriteVehicle, error) {
	var fav domain.FavoriteVehicle
	err := r.db.WithContext(ctx).
		Preload("Vehicle").
		Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).
		First(&fav).Error
	if err != nil {
		return nil, translate(err)
	}
	return &fav, nil
}

func (r *FavoriteRepository) ExistsVehicle(ctx context.Context, userID, vehicleID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.FavoriteVehicle{}).
		Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).
		Count(&count).Error
	return count > 0, translate(err)
}

func (r *FavoriteRepository) RemoveVehicle(ctx context.Context, userID, vehicleID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).
		Delete(&domain.FavoriteVehicle{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *FavoriteRepository) ListVehicles(ctx context.Context, userID int64) ([]domain.FavoriteVehicle, error) {
	var favs []domain.FavoriteVehicle
	err := r.db.WithContext(ctx).
		Preload("Vehicle").
		Where("user_id = ?", userID).
		Find(&favs).Error
	return favs, translate(err)
}

// ---- cascades ----

// DeleteAllForUser removes the user's links from all three tables. Runs
// inside the caller's transaction, before the user row itself goes.
func (r *FavoriteRepository) DeleteAllForUser(ctx context.Context, userID int64) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("user_id = ?", userID).Delete(&domain.FavoritePeople{}).Error; err != nil {
		return translate(err)
	}
	if err := db.Where("user_id = ?", userID).Delete(&domain.FavoritePlanet{}).Error; err != nil {
		return translate(err)
	}
	if err := db.Where("user_id = ?", userID).Delete(&domain.FavoriteVehicle{}).Error; err != nil {
		return translate(err)
	}
	return nil
}

// DeleteAllForPeople removes every link referencing a character, for all
// users, ahead of deleting the character itself.
func (r *FavoriteRepository) DeleteAllForPeople(ctx context.Context, peopleID int64) error {
	return translate(r.db.WithContext(ctx).
		Where("people_id = ?", peopleID).
		Delete(&domain.FavoritePeople{}).Error)
}

func (r *FavoriteRepository) DeleteAllForPlanet(ctx context.Context, planetID int64) error {
	return translate(r.db.WithContext(ctx).
		Where("planet_id = ?", planetID).
		Delete(&domain.FavoritePlanet{}).Error)
}

func (r *FavoriteRepository) DeleteAllForVehicle(ctx context.Context, vehicleID int64) error {
	return translate(r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Delete(&domain.FavoriteVehicle{}).Error)
}
