package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Aethera-Backend/domain"
	"Aethera-Backend/entities"
	"Aethera-Backend/pkg/factor"
	"Aethera-Backend/pkg/report"
)

type fakeEmissionRepository struct {
	records []*entities.EmissionRecord
	err     error
}

func (f *fakeEmissionRepository) CreateEmissionRecord(ctx context.Context, record *entities.EmissionRecord) error {
	return nil
}

func (f *fakeEmissionRepository) CreateEmissionRecords(ctx context.Context, records []*entities.EmissionRecord) error {
	return nil
}

func (f *fakeEmissionRepository) GetEmissionRecordByID(ctx context.Context, id string) (*entities.EmissionRecord, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeEmissionRepository) GetEmissionRecords(ctx context.Context, userID string) ([]*entities.EmissionRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeEmissionRepository) GetEmissionRecordsPage(ctx context.Context, userID string, page, limit int) ([]*entities.EmissionRecord, int64, error) {
	return f.records, int64(len(f.records)), f.err
}

func (f *fakeEmissionRepository) UpdateEmissionRecord(ctx context.Context, record *entities.EmissionRecord) error {
	return nil
}

func (f *fakeEmissionRepository) DeleteEmissionRecord(ctx context.Context, id string) error {
	return nil
}

type fakeCompanyRepository struct {
	info *entities.CompanyInfo
	err  error
}

func (f *fakeCompanyRepository) GetCompanyInfoByUserID(ctx context.Context, userID string) (*entities.CompanyInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

func (f *fakeCompanyRepository) SaveCompanyInfo(ctx context.Context, info *entities.CompanyInfo) error {
	return nil
}

type fakeUserRepository struct {
	user *entities.User
	err  error
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return nil
}

func (f *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return nil
}

type fakeFactorService struct{}

func (f *fakeFactorService) Table(ctx context.Context) factor.Table {
	return factor.Builtin()
}

func (f *fakeFactorService) GetFactors(ctx context.Context) ([]domain.EmissionFactorResponse, error) {
	return nil, nil
}

func (f *fakeFactorService) UpsertFactor(ctx context.Context, req *domain.UpsertFactorRequest) (domain.EmissionFactorResponse, error) {
	return domain.EmissionFactorResponse{}, nil
}

func (f *fakeFactorService) DeleteFactor(ctx context.Context, id string) error {
	return nil
}

func fixedClock() time.Time {
	return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestService(emissions *fakeEmissionRepository, companies *fakeCompanyRepository, users *fakeUserRepository) report.ReportService {
	return report.NewReportService(emissions, companies, users, &fakeFactorService{}, fixedClock)
}

func testRecord(scope int, activityType, category string, quantity float64) *entities.EmissionRecord {
	return &entities.EmissionRecord{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		ActivityType: activityType,
		Category:     category,
		Scope:        scope,
		Quantity:     quantity,
		Date:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGenerateReportFetchFailurePropagates(t *testing.T) {
	service := newTestService(
		&fakeEmissionRepository{err: errors.New("connection reset")},
		&fakeCompanyRepository{},
		&fakeUserRepository{},
	)

	_, err := service.GenerateReport(context.Background(), report.Identity{UserID: uuid.NewString()})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRecordFetchFailed)
}

func TestGenerateReportDegradesOnMissingCompanyAndUser(t *testing.T) {
	service := newTestService(
		&fakeEmissionRepository{},
		&fakeCompanyRepository{err: errors.New("not found")},
		&fakeUserRepository{err: errors.New("not found")},
	)

	res, err := service.GenerateReport(context.Background(), report.Identity{UserID: uuid.NewString()})

	require.NoError(t, err)
	assert.Equal(t, "N/A", res.CompanyInfo.Name)
	assert.Equal(t, "User", res.UserName)
	assert.Equal(t, 0, res.TotalEntries)
}

func TestGenerateReportComputesMissingTotals(t *testing.T) {
	service := newTestService(
		&fakeEmissionRepository{records: []*entities.EmissionRecord{
			testRecord(2, "Electricity", "Energy", 1000),
		}},
		&fakeCompanyRepository{info: &entities.CompanyInfo{CompanyName: "Acme Corp"}},
		&fakeUserRepository{user: &entities.User{FullName: "Jane Doe", Email: "jane@acme.example"}},
	)

	res, err := service.GenerateReport(context.Background(), report.Identity{UserID: uuid.NewString()})

	require.NoError(t, err)
	assert.Equal(t, 500.0, res.Scope2Total)
	assert.Equal(t, 500.0, res.TotalEmissions)
	assert.Equal(t, 1, res.TotalEntries)
	assert.Equal(t, "Acme Corp", res.CompanyInfo.Name)
	assert.Equal(t, "Jane Doe", res.UserName)
}

func TestGetSummarySimpleModeIncludesUnclassified(t *testing.T) {
	unclassified := testRecord(0, "mystery process", "Mystery", 40)
	service := newTestService(
		&fakeEmissionRepository{records: []*entities.EmissionRecord{
			testRecord(1, "Diesel", "Fuel", 100),
			unclassified,
		}},
		&fakeCompanyRepository{},
		&fakeUserRepository{},
	)

	res, err := service.GetSummary(context.Background(), uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, 268.0, res.Scope1)
	assert.Equal(t, 0.0, res.Scope2)
	// Diesel 100 L × 2.68 plus the unclassified 40 × 1 fallback.
	assert.Equal(t, 308.0, res.TotalEmissions)
	assert.Equal(t, 2, res.TotalEntries)
	assert.Equal(t, 268.0, res.ByCategory["Fuel"])
	assert.Equal(t, 40.0, res.ByCategory["Mystery"])
}

func TestGetSummaryFetchFailurePropagates(t *testing.T) {
	service := newTestService(
		&fakeEmissionRepository{err: errors.New("timeout")},
		&fakeCompanyRepository{},
		&fakeUserRepository{},
	)

	_, err := service.GetSummary(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrRecordFetchFailed)
}
