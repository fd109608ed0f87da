package factor_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Aethera-Backend/entities"
	"Aethera-Backend/pkg/factor"
)

type fakeFactorRepository struct {
	mu      sync.Mutex
	factors []*entities.EmissionFactor
	err     error
	calls   int
}

func (f *fakeFactorRepository) GetFactors(ctx context.Context) ([]*entities.EmissionFactor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.factors, nil
}

func (f *fakeFactorRepository) GetFactorByActivityType(ctx context.Context, activityType string) (*entities.EmissionFactor, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeFactorRepository) CreateFactors(ctx context.Context, factors []*entities.EmissionFactor) error {
	return nil
}

func (f *fakeFactorRepository) UpsertFactor(ctx context.Context, factor *entities.EmissionFactor) error {
	return nil
}

func (f *fakeFactorRepository) DeleteFactor(ctx context.Context, id string) error {
	return nil
}

func (f *fakeFactorRepository) CountFactors(ctx context.Context) (int64, error) {
	return int64(len(f.factors)), nil
}

func (f *fakeFactorRepository) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeFactorRepository) setFactors(factors []*entities.EmissionFactor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.factors = factors
}

// manualClock lets tests move time without sleeping.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestTableOverlaysStoredFactors(t *testing.T) {
	repo := &fakeFactorRepository{
		factors: []*entities.EmissionFactor{
			{ActivityType: "Electricity", Category: "Energy", Unit: "kWh", Factor: 0.42},
			{ActivityType: "District Heating", Category: "Energy", Unit: "kWh", Factor: 0.18},
		},
	}
	service := factor.NewFactorService(repo, newManualClock().Now)

	table := service.Table(context.Background())

	stored, ok := table.Lookup("electricity")
	require.True(t, ok)
	assert.Equal(t, 0.42, stored.Factor)

	added, ok := table.Lookup("District Heating")
	require.True(t, ok)
	assert.Equal(t, 0.18, added.Factor)

	// Builtin entries not overridden stay available.
	diesel, ok := table.Lookup("Diesel")
	require.True(t, ok)
	assert.Equal(t, 2.68, diesel.Factor)
}

func TestTableServesBuiltinWhenStoreUnavailable(t *testing.T) {
	repo := &fakeFactorRepository{err: errors.New("connection refused")}
	service := factor.NewFactorService(repo, newManualClock().Now)

	table := service.Table(context.Background())

	entry, ok := table.Lookup("Electricity")
	require.True(t, ok)
	assert.Equal(t, 0.5, entry.Factor)
}

func TestTableCachesWithinTTL(t *testing.T) {
	repo := &fakeFactorRepository{}
	clock := newManualClock()
	service := factor.NewFactorService(repo, clock.Now)

	service.Table(context.Background())
	clock.Advance(30 * time.Minute)
	service.Table(context.Background())
	service.Table(context.Background())

	assert.Equal(t, 1, repo.callCount())
}

func TestTableStaleSnapshotServedWhileRefreshing(t *testing.T) {
	repo := &fakeFactorRepository{
		factors: []*entities.EmissionFactor{
			{ActivityType: "Electricity", Category: "Energy", Unit: "kWh", Factor: 0.42},
		},
	}
	clock := newManualClock()
	service := factor.NewFactorService(repo, clock.Now)

	service.Table(context.Background())
	require.Equal(t, 1, repo.callCount())

	repo.setFactors([]*entities.EmissionFactor{
		{ActivityType: "Electricity", Category: "Energy", Unit: "kWh", Factor: 0.37},
	})
	clock.Advance(2 * time.Hour)

	// First stale read returns the previous snapshot without blocking.
	stale := service.Table(context.Background())
	entry, ok := stale.Lookup("Electricity")
	require.True(t, ok)
	assert.Equal(t, 0.42, entry.Factor)

	// The background refresh eventually swaps in the new data.
	require.Eventually(t, func() bool {
		table := service.Table(context.Background())
		entry, ok := table.Lookup("Electricity")
		return ok && entry.Factor == 0.37
	}, 2*time.Second, 10*time.Millisecond)
}

func TestTableKeepsSnapshotWhenRefreshFails(t *testing.T) {
	repo := &fakeFactorRepository{
		factors: []*entities.EmissionFactor{
			{ActivityType: "Electricity", Category: "Energy", Unit: "kWh", Factor: 0.42},
		},
	}
	clock := newManualClock()
	service := factor.NewFactorService(repo, clock.Now)

	service.Table(context.Background())

	repo.mu.Lock()
	repo.err = errors.New("store down")
	repo.mu.Unlock()
	clock.Advance(2 * time.Hour)

	before := repo.callCount()
	service.Table(context.Background())

	require.Eventually(t, func() bool {
		return repo.callCount() > before
	}, 2*time.Second, 10*time.Millisecond)

	table := service.Table(context.Background())
	entry, ok := table.Lookup("Electricity")
	require.True(t, ok)
	assert.Equal(t, 0.42, entry.Factor)
}
