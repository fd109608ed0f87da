package entities

import (
	"time"

	"github.com/google/uuid"
)

type EmissionRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	ActivityType   string    `json:"activity_type"`
	Category       string    `json:"category"`
	Scope          int       `json:"scope"` // 1, 2 or 3; 0 when unclassified
	Quantity       float64   `json:"quantity"`
	Unit           string    `json:"unit"`
	EmissionFactor float64   `json:"emission_factor"` // kg CO2e per unit of quantity
	TotalEmissions float64   `json:"total_emissions"` // kg CO2e
	Date           time.Time `json:"date"`
	Description    string    `json:"description,omitempty"`
	Source         string    `json:"source"` // "manual", "bulk", "document"
	DocumentScanID *string   `json:"document_scan_id,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
