package repository

import (
	"context"

	"gorm.io/gorm"

	"starblog/internal/domain"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) WithTx(tx *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: tx}
}

func (r *VehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	err := r.db.WithContext(ctx).Find(&vehicles).Error
	return vehicles, translate(err)
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var v domain.Vehicle
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	return translate(r.db.WithContext(ctx).Create(v).Error)
}

func (r *VehicleRepository) Save(ctx context.Context, v *domain.Vehicle) error {
	return translate(r.db.WithContext(ctx).Save(v).Error)
}

func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Vehicle{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
