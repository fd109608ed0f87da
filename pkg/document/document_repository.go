package document

import (
	"context"

	"gorm.io/gorm"

	"Aethera-Backend/entities"
)

type (
	DocumentRepository interface {
		CreateDocumentScan(ctx context.Context, scan *entities.DocumentScan) error
		GetDocumentScanByID(ctx context.Context, id string) (*entities.DocumentScan, error)
		UpdateDocumentScan(ctx context.Context, scan *entities.DocumentScan) error
	}

	documentRepository struct {
		db *gorm.DB
	}
)

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) CreateDocumentScan(ctx context.Context, scan *entities.DocumentScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *documentRepository) GetDocumentScanByID(ctx context.Context, id string) (*entities.DocumentScan, error) {
	var scan entities.DocumentScan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}

func (r *documentRepository) UpdateDocumentScan(ctx context.Context, scan *entities.DocumentScan) error {
	return r.db.WithContext(ctx).Save(scan).Error
}
