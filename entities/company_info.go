package entities

import (
	"github.com/google/uuid"
)

type CompanyInfo struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID                uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	CompanyName           string    `json:"company_name"`
	CompanyDescription    string    `json:"company_description,omitempty"`
	ConsolidationApproach string    `json:"consolidation_approach,omitempty"`
	BusinessDescription   string    `json:"business_description,omitempty"`
	ReportingPeriod       string    `json:"reporting_period,omitempty"`
	BaseYear              int       `json:"base_year"`
	BaseYearRationale     string    `json:"base_year_rationale,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
