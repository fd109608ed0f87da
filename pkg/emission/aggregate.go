package emission

import (
	"Aethera-Backend/domain"
)

// Mode selects how the grand total treats records whose scope could not be
// classified. Both behaviors exist in the wild and callers must pick one.
type Mode int

const (
	// ModeSimple sums every record into Total, classified or not: scope
	// classification failures never hide emissions from the headline number.
	ModeSimple Mode = iota
	// ModeStrict sets Total = Scope1 + Scope2 + Scope3, so unclassified
	// records are excluded, as GHG-style reports expect.
	ModeStrict
)

type ScopeTotals struct {
	Scope1     float64
	Scope2     float64
	Scope3     float64
	Total      float64
	ByCategory map[string]float64
}

// Aggregate buckets enriched records by canonical scope and sums kg CO2e.
// Sums stay unrounded; rounding belongs at the point of presentation.
func Aggregate(records []Enriched, mode Mode) ScopeTotals {
	totals := ScopeTotals{ByCategory: make(map[string]float64)}
	for _, record := range records {
		switch NormalizeScopeNumber(record.Scope) {
		case 1:
			totals.Scope1 += record.TotalEmissions
		case 2:
			totals.Scope2 += record.TotalEmissions
		case 3:
			totals.Scope3 += record.TotalEmissions
		}
		if mode == ModeSimple {
			totals.Total += record.TotalEmissions
		}
		totals.ByCategory[record.Category] += record.TotalEmissions
	}
	if mode == ModeStrict {
		totals.Total = totals.Scope1 + totals.Scope2 + totals.Scope3
	}
	return totals
}

// GasBreakdownFor converts a per-scope kg CO2e sum into the gas-species
// report block. Per-gas detail is always zero: the activity data model has
// no per-gas resolution, only the CO2e total in metric tons is real.
func GasBreakdownFor(scopeSumKg float64) domain.GasBreakdown {
	return domain.GasBreakdown{
		MtCO2e: Round2(ToMetricTons(scopeSumKg)),
	}
}
