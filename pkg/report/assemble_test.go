package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Aethera-Backend/entities"
	"Aethera-Backend/pkg/emission"
	"Aethera-Backend/pkg/report"
)

var reportTime = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func TestAssembleReportEmptyInputs(t *testing.T) {
	res := report.AssembleReport(nil, nil, nil, report.Identity{}, reportTime)

	assert.Equal(t, "N/A", res.CompanyInfo.Name)
	assert.Equal(t, "N/A", res.CompanyInfo.ConsolidationApproach)
	assert.Equal(t, "N/A", res.CompanyInfo.ReportingPeriod)
	assert.Equal(t, 2026, res.CompanyInfo.BaseYear)
	assert.Equal(t, "User", res.UserName)
	assert.Equal(t, 0.0, res.TotalEmissions)
	assert.Equal(t, 0, res.TotalEntries)
	assert.Equal(t, 0.0, res.AverageEmissions)
	assert.Empty(t, res.Emissions)
	assert.Equal(t, reportTime.Format(time.RFC3339), res.GeneratedAt)
}

func TestAssembleReportTotalsAreStrict(t *testing.T) {
	records := []emission.Enriched{
		{Scope: 1, Category: "Fuel", TotalEmissions: 100, ActivityDescription: "diesel"},
		{Scope: 2, Category: "Energy", TotalEmissions: 50, ActivityDescription: "grid power"},
		{Scope: 0, Category: "Mystery", TotalEmissions: 40, ActivityDescription: "-"},
	}

	res := report.AssembleReport(records, nil, nil, report.Identity{}, reportTime)

	assert.Equal(t, 100.0, res.Scope1Total)
	assert.Equal(t, 50.0, res.Scope2Total)
	assert.Equal(t, 0.0, res.Scope3Total)
	// Unclassified records are excluded from the grand total but still count
	// as entries and line items.
	assert.Equal(t, 150.0, res.TotalEmissions)
	assert.Equal(t, 3, res.TotalEntries)
	assert.Equal(t, 50.0, res.AverageEmissions)
	assert.Len(t, res.Emissions, 3)
}

func TestAssembleReportGasBreakdowns(t *testing.T) {
	records := []emission.Enriched{
		{Scope: 1, TotalEmissions: 1535},
	}

	res := report.AssembleReport(records, nil, nil, report.Identity{}, reportTime)

	assert.Equal(t, 1.54, res.Scope1Gases.MtCO2e)
	assert.Equal(t, 0.0, res.Scope1Gases.CO2)
	assert.Equal(t, 0.0, res.Scope2Gases.MtCO2e)
}

func TestAssembleReportUsesCompanyAndUser(t *testing.T) {
	info := &entities.CompanyInfo{
		CompanyName:           "Acme Corp",
		ConsolidationApproach: "Operational control",
		ReportingPeriod:       "2025",
		BaseYear:              2020,
	}
	usr := &entities.User{FullName: "Jane Doe", Email: "jane@acme.example"}

	res := report.AssembleReport(nil, info, usr, report.Identity{}, reportTime)

	assert.Equal(t, "Acme Corp", res.CompanyInfo.Name)
	assert.Equal(t, "Operational control", res.CompanyInfo.ConsolidationApproach)
	assert.Equal(t, 2020, res.CompanyInfo.BaseYear)
	assert.Equal(t, "Jane Doe", res.UserName)
	assert.Equal(t, "jane@acme.example", res.UserEmail)
}

func TestAssembleReportPartialCompanyInfoDefaults(t *testing.T) {
	info := &entities.CompanyInfo{CompanyName: "Acme Corp"}

	res := report.AssembleReport(nil, info, nil, report.Identity{}, reportTime)

	assert.Equal(t, "Acme Corp", res.CompanyInfo.Name)
	assert.Equal(t, "N/A", res.CompanyInfo.ConsolidationApproach)
	assert.Equal(t, "N/A", res.CompanyInfo.ReportingPeriod)
	assert.Equal(t, 2026, res.CompanyInfo.BaseYear)
}

func TestAssembleReportFallsBackToUserCompanyName(t *testing.T) {
	usr := &entities.User{FullName: "Jane Doe", CompanyName: "Acme Corp"}

	res := report.AssembleReport(nil, nil, usr, report.Identity{}, reportTime)

	assert.Equal(t, "Acme Corp", res.CompanyInfo.Name)
}

func TestAssembleReportIdentityEmailFallback(t *testing.T) {
	res := report.AssembleReport(nil, nil, nil, report.Identity{Email: "token@acme.example"}, reportTime)

	assert.Equal(t, "token@acme.example", res.UserEmail)
}

func TestAssembleReportLineItems(t *testing.T) {
	records := []emission.Enriched{
		{
			Scope:               2,
			Category:            "Energy",
			TotalEmissions:      500.005,
			ActivityDescription: "grid power",
			Date:                time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Scope:               1,
			Category:            "Fuel",
			TotalEmissions:      10,
			ActivityDescription: "diesel",
		},
	}

	res := report.AssembleReport(records, nil, nil, report.Identity{}, reportTime)

	require.Len(t, res.Emissions, 2)
	assert.Equal(t, "2026-03-15", res.Emissions[0].Date)
	assert.Equal(t, "grid power", res.Emissions[0].ActivityDescription)
	assert.Equal(t, 500.01, res.Emissions[0].TotalEmissions)
	assert.Equal(t, "-", res.Emissions[1].Date)
}
