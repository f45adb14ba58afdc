package model

// SimulationYear is one row of the upstream powerflow model's annual summary.
// All fields are full-year totals for the given operating year.
type SimulationYear struct {
	OperatingYear      int     `json:"operating_year"`
	SolarNetMWh        float64 `json:"solar_output_net_mwh"`
	BESSNetMWh         float64 `json:"bess_net_output_mwh"`
	GeneratorMWh       float64 `json:"generator_output_mwh"`
	GeneratorFuelMMBtu float64 `json:"generator_fuel_input_mmbtu"`
	LoadServedMWh      float64 `json:"load_served_mwh"`
}

// SimulationSummary is the annual energy table the pro forma overlays onto
// its operating years. The engine treats it as read-only and copies the
// columns verbatim; years missing from the summary stay blank in the output.
type SimulationSummary struct {
	Years []SimulationYear `json:"years"`
}

// ByOperatingYear returns the row for the given operating year, if present.
// When a year appears more than once the first row wins.
func (s SimulationSummary) ByOperatingYear(year int) (SimulationYear, bool) {
	for _, y := range s.Years {
		if y.OperatingYear == year {
			return y, true
		}
	}
	return SimulationYear{}, false
}
