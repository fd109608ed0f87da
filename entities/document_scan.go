package entities

import (
	"github.com/google/uuid"
)

type DocumentScan struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	FileName          string    `json:"file_name"`
	FileURL           string    `json:"file_url"`
	Status            string    `json:"status"` // "Pending", "Processed", "Failed", "Completed"
	ExtractionResults string    `json:"extraction_results,omitempty" gorm:"type:text"`

	User            *User             `gorm:"foreignKey:UserID"`
	EmissionRecords []*EmissionRecord `gorm:"foreignKey:DocumentScanID"`
	Timestamp
}
