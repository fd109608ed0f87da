package emission

import (
	"fmt"
	"strings"
	"time"

	"Aethera-Backend/domain"
	"Aethera-Backend/entities"
)

// Record is the single intermediate shape every source converges on before
// the core logic runs. Keys follow the storage column names; the enricher
// never branches on where a record came from.
type Record map[string]any

// totalAliases are the field names historically used for a record's
// precomputed CO2e total, tried in order.
var totalAliases = []string{"total_emissions", "co2_equivalent", "co2Equivalent"}

// firstTruthy returns the first value under the given keys that is neither
// absent, nil, an empty string nor numeric zero.
func firstTruthy(r Record, keys ...string) (any, bool) {
	for _, key := range keys {
		value, ok := r[key]
		if !ok || value == nil {
			continue
		}
		if s, isString := value.(string); isString {
			if strings.TrimSpace(s) != "" {
				return value, true
			}
			continue
		}
		if AsNumber(value) != 0 {
			return value, true
		}
	}
	return nil, false
}

func stringField(r Record, key string) string {
	value, ok := r[key]
	if !ok || value == nil {
		return ""
	}
	if s, isString := value.(string); isString {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprintf("%v", value))
}

func timeField(r Record, key string) time.Time {
	switch v := r[key].(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{"2006-01-02", time.RFC3339} {
			if parsed, err := time.Parse(layout, strings.TrimSpace(v)); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// RecordFromEntity adapts a stored emission record.
func RecordFromEntity(e *entities.EmissionRecord) Record {
	return Record{
		"id":              e.ID.String(),
		"activity_type":   e.ActivityType,
		"category":        e.Category,
		"scope":           e.Scope,
		"quantity":        e.Quantity,
		"unit":            e.Unit,
		"emission_factor": e.EmissionFactor,
		"total_emissions": e.TotalEmissions,
		"date":            e.Date,
		"description":     e.Description,
		"created_at":      e.CreatedAt,
	}
}

// RecordFromExtraction adapts a best-effort tuple from the document
// extraction provider. Extracted data is untrusted and goes through the
// exact same normalization as manually entered records.
func RecordFromExtraction(item domain.ExtractedActivity) Record {
	return Record{
		"activity_type": item.ActivityType,
		"scope":         item.Scope,
		"quantity":      item.Quantity,
		"unit":          item.Unit,
		"date":          item.Date,
	}
}

// RecordFromRow adapts one bulk-import CSV row. Missing scope defaults to 2
// and missing category to "Unknown", matching the historical import rules.
func RecordFromRow(activityType, scope, quantity, unit, category string) Record {
	if strings.TrimSpace(scope) == "" {
		scope = "2"
	}
	if strings.TrimSpace(category) == "" {
		category = "Unknown"
	}
	return Record{
		"activity_type": strings.TrimSpace(activityType),
		"scope":         scope,
		"quantity":      strings.TrimSpace(quantity),
		"unit":          strings.TrimSpace(unit),
		"category":      category,
	}
}
