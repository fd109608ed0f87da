package emission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Aethera-Backend/pkg/emission"
)

func TestAggregateEmpty(t *testing.T) {
	totals := emission.Aggregate(nil, emission.ModeSimple)

	assert.Equal(t, 0.0, totals.Scope1)
	assert.Equal(t, 0.0, totals.Scope2)
	assert.Equal(t, 0.0, totals.Scope3)
	assert.Equal(t, 0.0, totals.Total)
	assert.Empty(t, totals.ByCategory)
}

func TestAggregateBucketsByScope(t *testing.T) {
	records := []emission.Enriched{
		{Scope: 1, Category: "Fuel", TotalEmissions: 100},
		{Scope: 2, Category: "Energy", TotalEmissions: 50},
		{Scope: 2, Category: "Energy", TotalEmissions: 25},
		{Scope: 3, Category: "Transportation", TotalEmissions: 10},
	}

	totals := emission.Aggregate(records, emission.ModeSimple)

	assert.Equal(t, 100.0, totals.Scope1)
	assert.Equal(t, 75.0, totals.Scope2)
	assert.Equal(t, 10.0, totals.Scope3)
	assert.Equal(t, 185.0, totals.Total)
	assert.Equal(t, 75.0, totals.ByCategory["Energy"])
	assert.Equal(t, 100.0, totals.ByCategory["Fuel"])
}

func TestAggregateModesDifferOnUnclassified(t *testing.T) {
	records := []emission.Enriched{
		{Scope: 1, Category: "Fuel", TotalEmissions: 100},
		{Scope: 0, Category: "Mystery", TotalEmissions: 40},
	}

	simple := emission.Aggregate(records, emission.ModeSimple)
	strict := emission.Aggregate(records, emission.ModeStrict)

	assert.Equal(t, 140.0, simple.Total)
	assert.Equal(t, 100.0, strict.Total)

	// Unclassified records still show up per category in both modes.
	assert.Equal(t, 40.0, simple.ByCategory["Mystery"])
	assert.Equal(t, 40.0, strict.ByCategory["Mystery"])
}

func TestAggregateRenormalizesScope(t *testing.T) {
	// A scope that slipped through as 12 still buckets deterministically.
	records := []emission.Enriched{
		{Scope: 12, Category: "Energy", TotalEmissions: 10},
	}

	totals := emission.Aggregate(records, emission.ModeStrict)
	assert.Equal(t, 10.0, totals.Scope1)
}

func TestGasBreakdownFor(t *testing.T) {
	breakdown := emission.GasBreakdownFor(1535.0)

	assert.Equal(t, 1.54, breakdown.MtCO2e)
	assert.Equal(t, 0.0, breakdown.CO2)
	assert.Equal(t, 0.0, breakdown.CH4)
	assert.Equal(t, 0.0, breakdown.N2O)
	assert.Equal(t, 0.0, breakdown.HFCs)
	assert.Equal(t, 0.0, breakdown.PFCs)
	assert.Equal(t, 0.0, breakdown.SF6)
}
