package company

import (
	"context"

	"gorm.io/gorm"

	"Aethera-Backend/entities"
)

type (
	CompanyRepository interface {
		GetCompanyInfoByUserID(ctx context.Context, userID string) (*entities.CompanyInfo, error)
		SaveCompanyInfo(ctx context.Context, info *entities.CompanyInfo) error
	}

	companyRepository struct {
		db *gorm.DB
	}
)

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) GetCompanyInfoByUserID(ctx context.Context, userID string) (*entities.CompanyInfo, error) {
	var info entities.CompanyInfo
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *companyRepository) SaveCompanyInfo(ctx context.Context, info *entities.CompanyInfo) error {
	return r.db.WithContext(ctx).Save(info).Error
}
