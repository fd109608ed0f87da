package factor

import (
	"strings"
)

type (
	// Entry maps one activity type to its per-unit multiplier in kg CO2e.
	Entry struct {
		Category string
		Unit     string
		Factor   float64
	}

	// Table is keyed by lowercased activity type.
	Table map[string]Entry
)

// Lookup is case-insensitive on the activity type or category key.
func (t Table) Lookup(key string) (Entry, bool) {
	entry, ok := t[strings.ToLower(strings.TrimSpace(key))]
	return entry, ok
}

func (t Table) Clone() Table {
	cloned := make(Table, len(t))
	for key, entry := range t {
		cloned[key] = entry
	}
	return cloned
}

func (t Table) Set(activityType string, entry Entry) {
	t[strings.ToLower(strings.TrimSpace(activityType))] = entry
}

// Builtin returns the static reference table used when no stored factors
// exist or the factor store is unreachable. Values are kg CO2e per unit.
func Builtin() Table {
	return Table{
		"electricity":            {Category: "Energy", Unit: "kWh", Factor: 0.5},
		"natural gas":            {Category: "Energy", Unit: "m³", Factor: 2.0},
		"diesel":                 {Category: "Fuel", Unit: "L", Factor: 2.68},
		"gasoline":               {Category: "Fuel", Unit: "L", Factor: 2.31},
		"business travel - air":  {Category: "Transportation", Unit: "km", Factor: 0.255},
		"business travel - car":  {Category: "Transportation", Unit: "km", Factor: 0.21},
		"business travel - rail": {Category: "Transportation", Unit: "km", Factor: 0.041},
		"paper":                  {Category: "Materials", Unit: "kg", Factor: 1.5},
		"water supply":           {Category: "Water", Unit: "m³", Factor: 0.5},

		// Category-level defaults, hit when an activity type has no entry of
		// its own but its category does.
		"energy":         {Category: "Energy", Unit: "kWh", Factor: 0.5},
		"transportation": {Category: "Transportation", Unit: "km", Factor: 0.2},
		"waste":          {Category: "Waste", Unit: "kg", Factor: 0.5},
		"water":          {Category: "Water", Unit: "L", Factor: 0.001},
		"materials":      {Category: "Materials", Unit: "kg", Factor: 1.5},
	}
}
