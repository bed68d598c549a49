package repository

import (
	"context"

	"gorm.io/gorm"

	"starblog/internal/domain"
)

type PeopleRepository struct {
	db *gorm.DB
}

func NewPeopleRepository(db *gorm.DB) *PeopleRepository {
	return &PeopleRepository{db: db}
}

func (r *PeopleRepository) WithTx(tx *gorm.DB) *PeopleRepository {
	return &PeopleRepository{db: tx}
}

func (r *PeopleRepository) List(ctx context.Context) ([]domain.People, error) {
	var people []domain.People
	err := r.db.WithContext(ctx).Find(&people).Error
	return people, translate(err)
}

func (r *PeopleRepository) GetByID(ctx context.Context, id int64) (*domain.People, error) {
	var p domain.People
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PeopleRepository) Create(ctx context.Context, p *domain.People) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *PeopleRepository) Save(ctx context.Context, p *domain.People) error {
	return translate(r.db.WithContext(ctx).Save(p).Error)
}

// Delete removes the row only; inbound favorite links are removed first
// by the caller, inside the same transaction.
func (r *PeopleRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.People{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
