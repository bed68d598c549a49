package repository

import (
	"context"

	"gorm.io/gorm"

	"starblog/internal/domain"
)

type PlanetRepository struct {
	db *gorm.DB
}

func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

func (r *PlanetRepository) WithTx(tx *gorm.DB) *PlanetRepository {
	return &PlanetRepository{db: tx}
}

func (r *PlanetRepository) List(ctx context.Context) ([]domain.Planet, error) {
	var planets []domain.Planet
	err := r.db.WithContext(ctx).Find(&planets).Error
	return planets, translate(err)
}

func (r *PlanetRepository) GetByID(ctx context.Context, id int64) (*domain.Planet, error) {
	var p domain.Planet
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PlanetRepository) Create(ctx context.Context, p *domain.Planet) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *PlanetRepository) Save(ctx context.Context, p *domain.Planet) error {
	return translate(r.db.WithContext(ctx).Save(p).Error)
}

func (r *PlanetRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Planet{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
