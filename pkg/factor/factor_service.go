package factor

import (
	"context"
	"log"
	"sync"
	"time"

	"Aethera-Backend/domain"
	"Aethera-Backend/entities"
	"gorm.io/gorm"
)

// tableTTL bounds how long a cached factor table is served before a reload
// is attempted.
const tableTTL = time.Hour

type (
	FactorService interface {
		// Table returns the current factor table snapshot. It never fails:
		// when the store is unreachable the builtin reference table (or the
		// last good snapshot) is served instead.
		Table(ctx context.Context) Table
		GetFactors(ctx context.Context) ([]domain.EmissionFactorResponse, error)
		UpsertFactor(ctx context.Context, req *domain.UpsertFactorRequest) (domain.EmissionFactorResponse, error)
		DeleteFactor(ctx context.Context, id string) error
	}

	factorService struct {
		factorRepository FactorRepository
		clock            func() time.Time

		mu         sync.Mutex
		snapshot   Table
		fetchedAt  time.Time
		refreshing bool
	}
)

func NewFactorService(factorRepository FactorRepository, clock func() time.Time) FactorService {
	if clock == nil {
		clock = time.Now
	}
	return &factorService{
		factorRepository: factorRepository,
		clock:            clock,
	}
}

func (s *factorService) Table(ctx context.Context) Table {
	now := s.clock()

	s.mu.Lock()
	if s.snapshot != nil && now.Sub(s.fetchedAt) < tableTTL {
		snapshot := s.snapshot
		s.mu.Unlock()
		return snapshot
	}

	if s.snapshot == nil {
		// First load blocks; a broken store still yields a usable table.
		s.mu.Unlock()
		table, err := s.loadTable(ctx)
		if err != nil {
			log.Printf("failed to load emission factors, serving builtin table: %v", err)
			return Builtin()
		}
		s.mu.Lock()
		s.snapshot = table
		s.fetchedAt = s.clock()
		s.mu.Unlock()
		return table
	}

	// Stale snapshot: keep serving it and refresh in the background, at most
	// one refresh in flight.
	snapshot := s.snapshot
	if !s.refreshing {
		s.refreshing = true
		go s.refresh()
	}
	s.mu.Unlock()
	return snapshot
}

func (s *factorService) refresh() {
	table, err := s.loadTable(context.Background())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshing = false
	if err != nil {
		log.Printf("failed to refresh emission factors, keeping previous snapshot: %v", err)
		return
	}
	s.snapshot = table
	s.fetchedAt = s.clock()
}

// loadTable overlays stored factors on the builtin reference table so a
// partially seeded store still resolves the common activity types.
func (s *factorService) loadTable(ctx context.Context) (Table, error) {
	stored, err := s.factorRepository.GetFactors(ctx)
	if err != nil {
		return nil, err
	}
	table := Builtin().Clone()
	for _, f := range stored {
		table.Set(f.ActivityType, Entry{Category: f.Category, Unit: f.Unit, Factor: f.Factor})
	}
	return table, nil
}

func (s *factorService) invalidate() {
	s.mu.Lock()
	s.snapshot = nil
	s.fetchedAt = time.Time{}
	s.mu.Unlock()
}

func (s *factorService) GetFactors(ctx context.Context) ([]domain.EmissionFactorResponse, error) {
	factors, err := s.factorRepository.GetFactors(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.EmissionFactorResponse, 0, len(factors))
	for _, f := range factors {
		responses = append(responses, toFactorResponse(f))
	}
	return responses, nil
}

func (s *factorService) UpsertFactor(ctx context.Context, req *domain.UpsertFactorRequest) (domain.EmissionFactorResponse, error) {
	factor, err := s.factorRepository.GetFactorByActivityType(ctx, req.ActivityType)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return domain.EmissionFactorResponse{}, err
		}
		factor = &entities.EmissionFactor{ActivityType: req.ActivityType}
	}

	factor.Category = req.Category
	factor.ScopeID = req.ScopeID
	factor.Unit = req.Unit
	factor.Factor = req.Factor
	factor.Source = req.Source
	factor.Region = req.Region

	if err := s.factorRepository.UpsertFactor(ctx, factor); err != nil {
		return domain.EmissionFactorResponse{}, err
	}
	s.invalidate()
	return toFactorResponse(factor), nil
}

func (s *factorService) DeleteFactor(ctx context.Context, id string) error {
	if err := s.factorRepository.DeleteFactor(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func toFactorResponse(f *entities.EmissionFactor) domain.EmissionFactorResponse {
	return domain.EmissionFactorResponse{
		ID:           f.ID.String(),
		ActivityType: f.ActivityType,
		Category:     f.Category,
		ScopeID:      f.ScopeID,
		Unit:         f.Unit,
		Factor:       f.Factor,
		Source:       f.Source,
		Region:       f.Region,
	}
}
