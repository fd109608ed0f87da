package company

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Aethera-Backend/domain"
	"Aethera-Backend/entities"
)

type (
	CompanyService interface {
		GetCompanyInfo(ctx context.Context, userID string) (domain.CompanyInfoResponse, error)
		SaveCompanyInfo(ctx context.Context, req domain.SaveCompanyInfoRequest, userID string) (domain.CompanyInfoResponse, error)
	}

	companyService struct {
		companyRepository CompanyRepository
	}
)

func NewCompanyService(companyRepository CompanyRepository) CompanyService {
	return &companyService{companyRepository: companyRepository}
}

func (s *companyService) GetCompanyInfo(ctx context.Context, userID string) (domain.CompanyInfoResponse, error) {
	info, err := s.companyRepository.GetCompanyInfoByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CompanyInfoResponse{}, domain.ErrCompanyInfoNotFound
		}
		return domain.CompanyInfoResponse{}, err
	}

	return toCompanyInfoResponse(info), nil
}

func (s *companyService) SaveCompanyInfo(ctx context.Context, req domain.SaveCompanyInfoRequest, userID string) (domain.CompanyInfoResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CompanyInfoResponse{}, domain.ErrParseUUID
	}

	info, err := s.companyRepository.GetCompanyInfoByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CompanyInfoResponse{}, err
		}
		info = &entities.CompanyInfo{
			ID:     uuid.New(),
			UserID: userUUID,
		}
	}

	info.CompanyName = req.CompanyName
	info.CompanyDescription = req.CompanyDescription
	info.ConsolidationApproach = req.ConsolidationApproach
	info.BusinessDescription = req.BusinessDescription
	info.ReportingPeriod = req.ReportingPeriod
	info.BaseYear = req.BaseYear
	info.BaseYearRationale = req.BaseYearRationale

	if err := s.companyRepository.SaveCompanyInfo(ctx, info); err != nil {
		return domain.CompanyInfoResponse{}, err
	}

	return toCompanyInfoResponse(info), nil
}

func toCompanyInfoResponse(info *entities.CompanyInfo) domain.CompanyInfoResponse {
	return domain.CompanyInfoResponse{
		CompanyName:           info.CompanyName,
		CompanyDescription:    info.CompanyDescription,
		ConsolidationApproach: info.ConsolidationApproach,
		BusinessDescription:   info.BusinessDescription,
		ReportingPeriod:       info.ReportingPeriod,
		BaseYear:              info.BaseYear,
		BaseYearRationale:     info.BaseYearRationale,
	}
}
