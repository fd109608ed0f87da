package emission_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"Aethera-Backend/pkg/emission"
	"Aethera-Backend/pkg/factor"
)

func TestResolveFactor(t *testing.T) {
	table := factor.Builtin()

	t.Run("record factor wins", func(t *testing.T) {
		record := emission.Record{"activity_type": "Electricity", "emission_factor": 0.9}
		assert.Equal(t, 0.9, emission.ResolveFactor(record, table))
	})

	t.Run("zero record factor falls through to table", func(t *testing.T) {
		record := emission.Record{"activity_type": "Electricity", "emission_factor": 0}
		assert.Equal(t, 0.5, emission.ResolveFactor(record, table))
	})

	t.Run("activity type lookup is case-insensitive", func(t *testing.T) {
		record := emission.Record{"activity_type": "ELECTRICITY"}
		assert.Equal(t, 0.5, emission.ResolveFactor(record, table))
	})

	t.Run("category fallback", func(t *testing.T) {
		custom := table.Clone()
		custom.Set("Fleet Fuel", factor.Entry{Category: "Fuel", Unit: "L", Factor: 2.7})
		record := emission.Record{"activity_type": "something unknown", "category": "Fleet Fuel"}
		assert.Equal(t, 2.7, emission.ResolveFactor(record, custom))
	})

	t.Run("unknown activity resolves to one", func(t *testing.T) {
		record := emission.Record{"activity_type": "interpretive dance"}
		assert.Equal(t, 1.0, emission.ResolveFactor(record, table))
	})
}

func TestEnrichComputesTotal(t *testing.T) {
	table := factor.Builtin()

	enriched := emission.Enrich(emission.Record{
		"activity_type": "Electricity",
		"scope":         "2",
		"quantity":      "1000",
		"unit":          "kWh",
	}, table)

	assert.Equal(t, 500.0, enriched.TotalEmissions)
	assert.Equal(t, 0.5, enriched.EmissionFactor)
	assert.Equal(t, 2, enriched.Scope)
	assert.Equal(t, "Scope 2", enriched.ScopeLabel)
	assert.Equal(t, 1000.0, enriched.Quantity)
}

func TestEnrichPrecomputedTotalWins(t *testing.T) {
	table := factor.Builtin()

	enriched := emission.Enrich(emission.Record{
		"activity_type":   "Electricity",
		"scope":           2,
		"quantity":        1000,
		"total_emissions": 123.45,
	}, table)

	assert.Equal(t, 123.45, enriched.TotalEmissions)
}

func TestEnrichTotalAliasChain(t *testing.T) {
	table := factor.Builtin()

	t.Run("co2_equivalent alias", func(t *testing.T) {
		enriched := emission.Enrich(emission.Record{
			"activity_type":  "Electricity",
			"quantity":       10,
			"co2_equivalent": 99.0,
		}, table)
		assert.Equal(t, 99.0, enriched.TotalEmissions)
	})

	t.Run("camel case alias", func(t *testing.T) {
		enriched := emission.Enrich(emission.Record{
			"activity_type": "Electricity",
			"quantity":      10,
			"co2Equivalent": 88.0,
		}, table)
		assert.Equal(t, 88.0, enriched.TotalEmissions)
	})

	t.Run("first alias in order wins", func(t *testing.T) {
		enriched := emission.Enrich(emission.Record{
			"total_emissions": 1.0,
			"co2_equivalent":  2.0,
		}, table)
		assert.Equal(t, 1.0, enriched.TotalEmissions)
	})

	t.Run("zero alias values are skipped", func(t *testing.T) {
		enriched := emission.Enrich(emission.Record{
			"total_emissions": 0,
			"co2_equivalent":  55.0,
		}, table)
		assert.Equal(t, 55.0, enriched.TotalEmissions)
	})
}

func TestEnrichNoQuantityNoTotal(t *testing.T) {
	enriched := emission.Enrich(emission.Record{
		"activity_type": "Electricity",
		"scope":         2,
	}, factor.Builtin())

	assert.Equal(t, 0.0, enriched.TotalEmissions)
}

func TestEnrichUnknownActivityUsesFactorOne(t *testing.T) {
	enriched := emission.Enrich(emission.Record{
		"activity_type": "mystery process",
		"quantity":      250,
	}, factor.Builtin())

	assert.Equal(t, 1.0, enriched.EmissionFactor)
	assert.Equal(t, 250.0, enriched.TotalEmissions)
}

func TestEnrichActivityDescriptionFallbacks(t *testing.T) {
	table := factor.Builtin()

	t.Run("description wins", func(t *testing.T) {
		enriched := emission.Enrich(emission.Record{
			"activity_type": "Diesel",
			"description":   "generator fuel",
		}, table)
		assert.Equal(t, "generator fuel", enriched.ActivityDescription)
	})

	t.Run("activity type second", func(t *testing.T) {
		enriched := emission.Enrich(emission.Record{"activity_type": "Diesel"}, table)
		assert.Equal(t, "Diesel", enriched.ActivityDescription)
	})

	t.Run("dash last", func(t *testing.T) {
		enriched := emission.Enrich(emission.Record{}, table)
		assert.Equal(t, "-", enriched.ActivityDescription)
	})
}

func TestEnrichParsesDates(t *testing.T) {
	enriched := emission.Enrich(emission.Record{
		"activity_type": "Electricity",
		"quantity":      1,
		"date":          "2026-03-15",
	}, factor.Builtin())

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), enriched.Date)
}

func TestRecordFromRowDefaults(t *testing.T) {
	record := emission.RecordFromRow("Electricity", "", "100", "kWh", "")

	assert.Equal(t, "2", record["scope"])
	assert.Equal(t, "Unknown", record["category"])
	assert.Equal(t, "Electricity", record["activity_type"])
}
