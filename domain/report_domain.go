package domain

var (
	MessageSuccessGenerateReport = "emissions report generated successfully"
	MessageSuccessGetSummary     = "emissions summary retrieved successfully"

	MessageFailedGenerateReport = "failed to generate emissions report"
	MessageFailedGetSummary     = "failed to retrieve emissions summary"
)

type (
	ReportCompanyInfo struct {
		Name                  string `json:"name"`
		Description           string `json:"description"`
		ConsolidationApproach string `json:"consolidation_approach"`
		BusinessDescription   string `json:"business_description"`
		ReportingPeriod       string `json:"reporting_period"`
		BaseYear              int    `json:"base_year"`
		BaseYearRationale     string `json:"base_year_rationale"`
	}

	// GasBreakdown disaggregates a scope total by gas species, in metric
	// tons CO2e. The stored activity data carries no per-gas detail, so
	// every species stays zero and only MtCO2e is populated.
	GasBreakdown struct {
		CO2    float64 `json:"co2"`
		CH4    float64 `json:"ch4"`
		N2O    float64 `json:"n2o"`
		HFCs   float64 `json:"hfcs"`
		PFCs   float64 `json:"pfcs"`
		SF6    float64 `json:"sf6"`
		MtCO2e float64 `json:"mtco2e"`
	}

	ReportLineItem struct {
		Date                string  `json:"date"`
		ActivityDescription string  `json:"activity_description"`
		Category            string  `json:"category"`
		TotalEmissions      float64 `json:"total_emissions"`
	}

	GenerateReportResponse struct {
		GeneratedAt      string            `json:"generated_at"`
		CompanyInfo      ReportCompanyInfo `json:"company_info"`
		UserName         string            `json:"user_name"`
		UserEmail        string            `json:"user_email"`
		Scope1Total      float64           `json:"scope_1_total"`
		Scope2Total      float64           `json:"scope_2_total"`
		Scope3Total      float64           `json:"scope_3_total"`
		TotalEmissions   float64           `json:"total_emissions"`
		TotalEntries     int               `json:"total_entries"`
		AverageEmissions float64           `json:"average_emissions"`
		Scope1Gases      GasBreakdown      `json:"scope_1_gases"`
		Scope2Gases      GasBreakdown      `json:"scope_2_gases"`
		Scope3Gases      GasBreakdown      `json:"scope_3_gases"`
		Emissions        []ReportLineItem  `json:"emissions"`
	}

	EmissionSummaryResponse struct {
		Scope1         float64            `json:"scope1"`
		Scope2         float64            `json:"scope2"`
		Scope3         float64            `json:"scope3"`
		TotalEmissions float64            `json:"total_emissions"`
		TotalEntries   int                `json:"total_entries"`
		ByCategory     map[string]float64 `json:"by_category"`
	}
)
