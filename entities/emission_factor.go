package entities

import (
	"github.com/google/uuid"
)

type EmissionFactor struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ActivityType string    `gorm:"uniqueIndex" json:"activity_type"`
	Category     string    `json:"category"`
	ScopeID      int       `json:"scope_id"`
	Unit         string    `json:"unit"`
	Factor       float64   `json:"factor"` // kg CO2e per unit
	Source       string    `json:"source,omitempty"`
	Region       string    `json:"region,omitempty"`

	Timestamp
}
