package domain

import (
	"errors"
)

var (
	MessageSuccessGetCompanyInfo  = "company info retrieved successfully"
	MessageSuccessSaveCompanyInfo = "company info saved successfully"

	MessageFailedGetCompanyInfo  = "failed to retrieve company info"
	MessageFailedSaveCompanyInfo = "failed to save company info"

	ErrCompanyInfoNotFound = errors.New("company info not found")
)

type (
	SaveCompanyInfoRequest struct {
		CompanyName           string `json:"company_name" validate:"required"`
		CompanyDescription    string `json:"company_description"`
		ConsolidationApproach string `json:"consolidation_approach"`
		BusinessDescription   string `json:"business_description"`
		ReportingPeriod       string `json:"reporting_period"`
		BaseYear              int    `json:"base_year" validate:"omitempty,min=1900"`
		BaseYearRationale     string `json:"base_year_rationale"`
	}

	CompanyInfoResponse struct {
		CompanyName           string `json:"company_name"`
		CompanyDescription    string `json:"company_description"`
		ConsolidationApproach string `json:"consolidation_approach"`
		BusinessDescription   string `json:"business_description"`
		ReportingPeriod       string `json:"reporting_period"`
		BaseYear              int    `json:"base_year"`
		BaseYearRationale     string `json:"base_year_rationale"`
	}
)
