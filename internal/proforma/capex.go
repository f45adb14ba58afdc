package proforma

import "github.com/offgridai-us/cost-calculator/internal/model"

// Breakdown itemizes CAPEX by subsystem, each in $M.
type Breakdown struct {
	Solar             float64 `json:"solar"`
	BESS              float64 `json:"bess"`
	Generator         float64 `json:"generator"`
	SystemIntegration float64 `json:"system_integration"`
	SoftCosts         float64 `json:"soft_costs"`
}

// TotalHard returns the hard-cost subtotal in $M.
func (b Breakdown) TotalHard() float64 {
	return b.Solar + b.BESS + b.Generator + b.SystemIntegration
}

// Total returns hard plus soft costs in $M.
func (b Breakdown) Total() float64 {
	return b.TotalHard() + b.SoftCosts
}

// EstimateCapex reduces unit-cost assumptions and capacities into CAPEX
// subtotals. Pure arithmetic; range validation is the caller's job.
func EstimateCapex(cap model.Capacities, rates model.CapexRates) Breakdown {
	solar := cap.SolarCapacityMW * 1_000_000 * (rates.PVModules +
		rates.PVInverters +
		rates.PVRacking +
		rates.PVBalanceSystem +
		rates.PVLabor)

	bess := cap.BESSEnergyMWh() * 1000 * (rates.BESSUnits +
		rates.BESSBalanceOfSystem +
		rates.BESSLabor)

	generator := cap.GeneratorCapacityMW * 1000 * (rates.Gensets +
		rates.GenBalanceOfSystem +
		rates.GenLabor)

	systemIntegration := cap.DatacenterLoadMW * 1000 * (rates.SIMicrogrid +
		rates.SIControls +
		rates.SILabor)

	hard := solar + bess + generator + systemIntegration
	soft := hard * rates.SoftCostPct() / 100

	return Breakdown{
		Solar:             solar / 1_000_000,
		BESS:              bess / 1_000_000,
		Generator:         generator / 1_000_000,
		SystemIntegration: systemIntegration / 1_000_000,
		SoftCosts:         soft / 1_000_000,
	}
}
