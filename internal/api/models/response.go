package models

// ProFormaResponse represents the result of one pro forma build.
type ProFormaResponse struct {
	Status  string          `json:"status"`
	Capex   CapexBreakdown  `json:"capex"`
	Summary ScenarioSummary `json:"summary"`
	Table   []TableRow      `json:"table,omitempty"`
	NPVRow  map[string]float64 `json:"npv_row,omitempty"`
}

// CapexBreakdown itemizes CAPEX by subsystem in $M.
type CapexBreakdown struct {
	Solar             float64 `json:"solar"`
	BESS              float64 `json:"bess"`
	Generator         float64 `json:"generator"`
	SystemIntegration float64 `json:"system_integration"`
	SoftCosts         float64 `json:"soft_costs"`
	TotalHard         float64 `json:"total_hard"`
	Total             float64 `json:"total"`
}

// ScenarioSummary contains aggregated pro forma metrics.
type ScenarioSummary struct {
	EquityNPV          float64 `json:"equity_npv"`
	TotalCapex         float64 `json:"total_capex"`
	TotalEquity        float64 `json:"total_equity"`
	PaybackYear        int     `json:"payback_year"`
	MinDSCR            float64 `json:"min_dscr"`
	AvgDSCR            float64 `json:"avg_dscr"`
	TotalLoadServedMWh float64 `json:"total_load_served_mwh"`
}

// TableRow is one dated row of the pro forma, column label -> value.
// Blank cells are omitted from the map.
type TableRow struct {
	Year   int                `json:"year"`
	Values map[string]float64 `json:"values"`
}

// CompareResponse represents the response from a scenario comparison.
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation.
type ComparisonResult struct {
	Name    string          `json:"name"`
	Capex   CapexBreakdown  `json:"capex"`
	Summary ScenarioSummary `json:"summary"`
}

// ScenarioInfo describes a scenario preset on disk.
type ScenarioInfo struct {
	ID               string  `json:"id"`
	File             string  `json:"file"`
	DatacenterLoadMW float64 `json:"datacenter_load_mw"`
	SolarCapacityMW  float64 `json:"solar_capacity_mw"`
	BESSMaxPowerMW   float64 `json:"bess_max_power_mw"`
	GeneratorMW      float64 `json:"generator_capacity_mw"`
}

// ScheduleInfo describes a depreciation schedule preset.
type ScheduleInfo struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Percents    []float64 `json:"percents"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
