package emission

import (
	"log"
	"time"

	"Aethera-Backend/pkg/factor"
)

// Enriched is a record after normalization: every numeric field is a finite
// number and the scope is canonical.
type Enriched struct {
	ID                  string
	ActivityType        string
	Category            string
	Scope               int
	ScopeLabel          string
	Quantity            float64
	Unit                string
	EmissionFactor      float64
	TotalEmissions      float64
	Date                time.Time
	Description         string
	ActivityDescription string
	CreatedAt           time.Time
}

// ResolveFactor picks the multiplier for a record: its own emission_factor
// when present and non-zero, then the table keyed by activity type, then by
// category, then the constant 1 so quantity passes through as kg CO2e.
// Resolution never fails; a fallback to 1 is logged for data-quality review.
func ResolveFactor(r Record, table factor.Table) float64 {
	if f := AsNumber(r["emission_factor"]); f != 0 {
		return f
	}
	if entry, ok := table.Lookup(stringField(r, "activity_type")); ok {
		return entry.Factor
	}
	if entry, ok := table.Lookup(stringField(r, "category")); ok {
		return entry.Factor
	}
	log.Printf("no emission factor for activity %q (category %q), using 1",
		stringField(r, "activity_type"), stringField(r, "category"))
	return 1
}

// Enrich guarantees a finite total_emissions on the way out: a precomputed
// total wins (first truthy alias), otherwise quantity × resolved factor when
// both quantity and activity type are present, otherwise 0. The input record
// is not mutated.
func Enrich(r Record, table factor.Table) Enriched {
	total, found := firstTruthy(r, totalAliases...)
	quantity := AsNumber(r["quantity"])
	activityType := stringField(r, "activity_type")
	resolvedFactor := AsNumber(r["emission_factor"])

	totalEmissions := AsNumber(total)
	if !found && quantity != 0 && activityType != "" {
		resolvedFactor = ResolveFactor(r, table)
		totalEmissions = quantity * resolvedFactor
	}

	description := stringField(r, "description")
	activityDescription := description
	if activityDescription == "" {
		activityDescription = activityType
	}
	if activityDescription == "" {
		activityDescription = "-"
	}

	scope := NormalizeScopeNumber(r["scope"])

	return Enriched{
		ID:                  stringField(r, "id"),
		ActivityType:        activityType,
		Category:            stringField(r, "category"),
		Scope:               scope,
		ScopeLabel:          NormalizeScopeLabel(scope),
		Quantity:            quantity,
		Unit:                stringField(r, "unit"),
		EmissionFactor:      resolvedFactor,
		TotalEmissions:      AsNumber(totalEmissions),
		Date:                timeField(r, "date"),
		Description:         description,
		ActivityDescription: activityDescription,
		CreatedAt:           timeField(r, "created_at"),
	}
}
