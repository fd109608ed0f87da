package report

import (
	"time"

	"Aethera-Backend/domain"
	"Aethera-Backend/entities"
	"Aethera-Backend/pkg/emission"
)

// Identity carries what the access token already proves about the caller, so
// a report can still name its owner when the user row cannot be read.
type Identity struct {
	UserID string
	Email  string
}

// AssembleReport builds a complete report from whatever inputs are available.
// It never fails: a nil company info or user collapses to documented defaults
// and zero records yield a valid all-zero report.
func AssembleReport(records []emission.Enriched, info *entities.CompanyInfo, usr *entities.User, identity Identity, now time.Time) domain.GenerateReportResponse {
	totals := emission.Aggregate(records, emission.ModeStrict)

	companyInfo := domain.ReportCompanyInfo{
		Name:                  "N/A",
		ConsolidationApproach: "N/A",
		ReportingPeriod:       "N/A",
		BaseYear:              now.Year(),
	}
	if info != nil {
		if info.CompanyName != "" {
			companyInfo.Name = info.CompanyName
		}
		companyInfo.Description = info.CompanyDescription
		if info.ConsolidationApproach != "" {
			companyInfo.ConsolidationApproach = info.ConsolidationApproach
		}
		companyInfo.BusinessDescription = info.BusinessDescription
		if info.ReportingPeriod != "" {
			companyInfo.ReportingPeriod = info.ReportingPeriod
		}
		if info.BaseYear != 0 {
			companyInfo.BaseYear = info.BaseYear
		}
		companyInfo.BaseYearRationale = info.BaseYearRationale
	}

	userName := "User"
	userEmail := identity.Email
	if usr != nil {
		if usr.FullName != "" {
			userName = usr.FullName
		}
		if usr.Email != "" {
			userEmail = usr.Email
		}
		if info == nil && usr.CompanyName != "" {
			companyInfo.Name = usr.CompanyName
		}
	}

	average := 0.0
	if len(records) > 0 {
		average = totals.Total / float64(len(records))
	}

	lineItems := make([]domain.ReportLineItem, 0, len(records))
	for _, record := range records {
		date := "-"
		if !record.Date.IsZero() {
			date = record.Date.Format("2006-01-02")
		}
		lineItems = append(lineItems, domain.ReportLineItem{
			Date:                date,
			ActivityDescription: record.ActivityDescription,
			Category:            record.Category,
			TotalEmissions:      emission.Round2(record.TotalEmissions),
		})
	}

	return domain.GenerateReportResponse{
		GeneratedAt:      now.Format(time.RFC3339),
		CompanyInfo:      companyInfo,
		UserName:         userName,
		UserEmail:        userEmail,
		Scope1Total:      emission.Round2(totals.Scope1),
		Scope2Total:      emission.Round2(totals.Scope2),
		Scope3Total:      emission.Round2(totals.Scope3),
		TotalEmissions:   emission.Round2(totals.Total),
		TotalEntries:     len(records),
		AverageEmissions: emission.Round2(average),
		Scope1Gases:      emission.GasBreakdownFor(totals.Scope1),
		Scope2Gases:      emission.GasBreakdownFor(totals.Scope2),
		Scope3Gases:      emission.GasBreakdownFor(totals.Scope3),
		Emissions:        lineItems,
	}
}
