package report

import (
	"context"
	"fmt"
	"log"
	"time"

	"Aethera-Backend/domain"
	"Aethera-Backend/pkg/company"
	"Aethera-Backend/pkg/emission"
	"Aethera-Backend/pkg/factor"
	"Aethera-Backend/pkg/user"
)

type (
	ReportService interface {
		GenerateReport(ctx context.Context, identity Identity) (domain.GenerateReportResponse, error)
		GetSummary(ctx context.Context, userID string) (domain.EmissionSummaryResponse, error)
	}

	reportService struct {
		emissionRepository emission.EmissionRepository
		companyRepository  company.CompanyRepository
		userRepository     user.UserRepository
		factorService      factor.FactorService
		clock              func() time.Time
	}
)

func NewReportService(
	emissionRepository emission.EmissionRepository,
	companyRepository company.CompanyRepository,
	userRepository user.UserRepository,
	factorService factor.FactorService,
	clock func() time.Time,
) ReportService {
	if clock == nil {
		clock = time.Now
	}
	return &reportService{
		emissionRepository: emissionRepository,
		companyRepository:  companyRepository,
		userRepository:     userRepository,
		factorService:      factorService,
		clock:              clock,
	}
}

// GenerateReport fails only when the emission records themselves cannot be
// fetched. Missing company info or an unreadable user row degrade to report
// defaults instead of failing the whole report.
func (s *reportService) GenerateReport(ctx context.Context, identity Identity) (domain.GenerateReportResponse, error) {
	enriched, err := s.enrichedRecords(ctx, identity.UserID)
	if err != nil {
		return domain.GenerateReportResponse{}, err
	}

	info, err := s.companyRepository.GetCompanyInfoByUserID(ctx, identity.UserID)
	if err != nil {
		log.Printf("company info unavailable for report, using defaults: %v", err)
		info = nil
	}

	usr, err := s.userRepository.GetUserByID(ctx, identity.UserID)
	if err != nil {
		log.Printf("user unavailable for report, using defaults: %v", err)
		usr = nil
	}

	return AssembleReport(enriched, info, usr, identity, s.clock()), nil
}

func (s *reportService) GetSummary(ctx context.Context, userID string) (domain.EmissionSummaryResponse, error) {
	enriched, err := s.enrichedRecords(ctx, userID)
	if err != nil {
		return domain.EmissionSummaryResponse{}, err
	}

	totals := emission.Aggregate(enriched, emission.ModeSimple)

	byCategory := make(map[string]float64, len(totals.ByCategory))
	for category, sum := range totals.ByCategory {
		byCategory[category] = emission.Round2(sum)
	}

	return domain.EmissionSummaryResponse{
		Scope1:         emission.Round2(totals.Scope1),
		Scope2:         emission.Round2(totals.Scope2),
		Scope3:         emission.Round2(totals.Scope3),
		TotalEmissions: emission.Round2(totals.Total),
		TotalEntries:   len(enriched),
		ByCategory:     byCategory,
	}, nil
}

func (s *reportService) enrichedRecords(ctx context.Context, userID string) ([]emission.Enriched, error) {
	records, err := s.emissionRepository.GetEmissionRecords(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRecordFetchFailed, err)
	}

	table := s.factorService.Table(ctx)
	enriched := make([]emission.Enriched, 0, len(records))
	for _, record := range records {
		enriched = append(enriched, emission.Enrich(emission.RecordFromEntity(record), table))
	}
	return enriched, nil
}
