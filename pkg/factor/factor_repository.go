package factor

import (
	"context"

	"gorm.io/gorm"

	"Aethera-Backend/entities"
)

type (
	FactorRepository interface {
		GetFactors(ctx context.Context) ([]*entities.EmissionFactor, error)
		GetFactorByActivityType(ctx context.Context, activityType string) (*entities.EmissionFactor, error)
		CreateFactors(ctx context.Context, factors []*entities.EmissionFactor) error
		UpsertFactor(ctx context.Context, factor *entities.EmissionFactor) error
		DeleteFactor(ctx context.Context, id string) error
		CountFactors(ctx context.Context) (int64, error)
	}

	factorRepository struct {
		db *gorm.DB
	}
)

func NewFactorRepository(db *gorm.DB) FactorRepository {
	return &factorRepository{db: db}
}

func (r *factorRepository) GetFactors(ctx context.Context) ([]*entities.EmissionFactor, error) {
	var factors []*entities.EmissionFactor
	if err := r.db.WithContext(ctx).Order("activity_type asc").Find(&factors).Error; err != nil {
		return nil, err
	}
	return factors, nil
}

func (r *factorRepository) GetFactorByActivityType(ctx context.Context, activityType string) (*entities.EmissionFactor, error) {
	var factor entities.EmissionFactor
	if err := r.db.WithContext(ctx).
		Where("LOWER(activity_type) = LOWER(?)", activityType).
		First(&factor).Error; err != nil {
		return nil, err
	}
	return &factor, nil
}

func (r *factorRepository) CreateFactors(ctx context.Context, factors []*entities.EmissionFactor) error {
	if len(factors) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(factors).Error
}

func (r *factorRepository) UpsertFactor(ctx context.Context, factor *entities.EmissionFactor) error {
	return r.db.WithContext(ctx).Save(factor).Error
}

func (r *factorRepository) DeleteFactor(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.EmissionFactor{}).Error
}

func (r *factorRepository) CountFactors(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.EmissionFactor{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
