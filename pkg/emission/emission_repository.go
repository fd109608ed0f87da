package emission

import (
	"context"

	"gorm.io/gorm"

	"Aethera-Backend/entities"
)

type (
	EmissionRepository interface {
		CreateEmissionRecord(ctx context.Context, record *entities.EmissionRecord) error
		CreateEmissionRecords(ctx context.Context, records []*entities.EmissionRecord) error
		GetEmissionRecordByID(ctx context.Context, id string) (*entities.EmissionRecord, error)
		GetEmissionRecords(ctx context.Context, userID string) ([]*entities.EmissionRecord, error)
		GetEmissionRecordsPage(ctx context.Context, userID string, page, limit int) ([]*entities.EmissionRecord, int64, error)
		UpdateEmissionRecord(ctx context.Context, record *entities.EmissionRecord) error
		DeleteEmissionRecord(ctx context.Context, id string) error
	}

	emissionRepository struct {
		db *gorm.DB
	}
)

const insertBatchSize = 100

func NewEmissionRepository(db *gorm.DB) EmissionRepository {
	return &emissionRepository{db: db}
}

func (r *emissionRepository) CreateEmissionRecord(ctx context.Context, record *entities.EmissionRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *emissionRepository) CreateEmissionRecords(ctx context.Context, records []*entities.EmissionRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(records, insertBatchSize).Error
}

func (r *emissionRepository) GetEmissionRecordByID(ctx context.Context, id string) (*entities.EmissionRecord, error) {
	var record entities.EmissionRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *emissionRepository) GetEmissionRecords(ctx context.Context, userID string) ([]*entities.EmissionRecord, error) {
	var records []*entities.EmissionRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc, created_at desc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *emissionRepository) GetEmissionRecordsPage(ctx context.Context, userID string, page, limit int) ([]*entities.EmissionRecord, int64, error) {
	var records []*entities.EmissionRecord
	var count int64

	offset := (page - 1) * limit
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if err := query.Model(&entities.EmissionRecord{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).
		Order("date desc, created_at desc").
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, count, nil
}

func (r *emissionRepository) UpdateEmissionRecord(ctx context.Context, record *entities.EmissionRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *emissionRepository) DeleteEmissionRecord(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.EmissionRecord{}).Error
}
