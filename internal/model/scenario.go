package model

import (
	"errors"
	"fmt"
)

// BESSHoursStorage is the fixed battery duration. Energy capacity is always
// power * 4h; the upstream dispatch model assumes the same.
const BESSHoursStorage = 4.0

// OperatingYears is the length of the operating period in the pro forma.
const OperatingYears = 20

// Capacities defines the nameplate sizing of the plant.
// Units:
// - DatacenterLoadMW: MW of constant datacenter demand
// - SolarCapacityMW: MW-DC
// - BESSMaxPowerMW: MW (4h storage, see BESSHoursStorage)
// - GeneratorCapacityMW: MW
type Capacities struct {
	DatacenterLoadMW    float64 `yaml:"datacenter_load_mw" json:"datacenter_load_mw"`
	SolarCapacityMW     float64 `yaml:"solar_capacity_mw" json:"solar_capacity_mw"`
	BESSMaxPowerMW      float64 `yaml:"bess_max_power_mw" json:"bess_max_power_mw"`
	GeneratorCapacityMW float64 `yaml:"generator_capacity_mw" json:"generator_capacity_mw"`
}

// BESSEnergyMWh returns the battery energy capacity implied by the fixed
// 4-hour duration.
func (c Capacities) BESSEnergyMWh() float64 {
	return c.BESSMaxPowerMW * BESSHoursStorage
}

// CapexRates holds per-unit installed-cost assumptions.
// Solar rates are $/W, BESS rates $/kWh, generator and system-integration
// rates $/kW. Soft-cost entries are whole-number percents of total hard cost
// (5.0 means 5%).
type CapexRates struct {
	PVModules       float64 `yaml:"pv_modules" json:"pv_modules"`
	PVInverters     float64 `yaml:"pv_inverters" json:"pv_inverters"`
	PVRacking       float64 `yaml:"pv_racking" json:"pv_racking"`
	PVBalanceSystem float64 `yaml:"pv_balance_system" json:"pv_balance_system"`
	PVLabor         float64 `yaml:"pv_labor" json:"pv_labor"`

	BESSUnits           float64 `yaml:"bess_units" json:"bess_units"`
	BESSBalanceOfSystem float64 `yaml:"bess_balance_of_system" json:"bess_balance_of_system"`
	BESSLabor           float64 `yaml:"bess_labor" json:"bess_labor"`

	Gensets            float64 `yaml:"gensets" json:"gensets"`
	GenBalanceOfSystem float64 `yaml:"gen_balance_of_system" json:"gen_balance_of_system"`
	GenLabor           float64 `yaml:"gen_labor" json:"gen_labor"`

	SIMicrogrid float64 `yaml:"si_microgrid" json:"si_microgrid"`
	SIControls  float64 `yaml:"si_controls" json:"si_controls"`
	SILabor     float64 `yaml:"si_labor" json:"si_labor"`

	SoftCostsGeneralConditions float64 `yaml:"soft_costs_general_conditions" json:"soft_costs_general_conditions"`
	SoftCostsEPCOverhead       float64 `yaml:"soft_costs_epc_overhead" json:"soft_costs_epc_overhead"`
	SoftCostsDesignEngineering float64 `yaml:"soft_costs_design_engineering" json:"soft_costs_design_engineering"`
	SoftCostsPermitting        float64 `yaml:"soft_costs_permitting" json:"soft_costs_permitting"`
	SoftCostsStartup           float64 `yaml:"soft_costs_startup" json:"soft_costs_startup"`
	SoftCostsInsurance         float64 `yaml:"soft_costs_insurance" json:"soft_costs_insurance"`
	SoftCostsTaxes             float64 `yaml:"soft_costs_taxes" json:"soft_costs_taxes"`
}

// SoftCostPct returns the combined soft-cost percentage.
func (r CapexRates) SoftCostPct() float64 {
	return r.SoftCostsGeneralConditions +
		r.SoftCostsEPCOverhead +
		r.SoftCostsDesignEngineering +
		r.SoftCostsPermitting +
		r.SoftCostsStartup +
		r.SoftCostsInsurance +
		r.SoftCostsTaxes
}

// OMRates holds recurring-cost assumptions.
// Units:
// - fixed O&M: $/kW (BOS is $/kW of datacenter load)
// - generator variable O&M: $/kWh
// - fuel: $/MMBtu
// - SoftOMPct: % of total hard CAPEX per year
// - escalators: % p.a., compounding from the first operating year
type OMRates struct {
	GeneratorFixedPerKW     float64 `yaml:"generator_om_fixed_dollar_per_kw" json:"generator_om_fixed_dollar_per_kw"`
	GeneratorVariablePerKWh float64 `yaml:"generator_om_variable_dollar_per_kwh" json:"generator_om_variable_dollar_per_kwh"`
	FuelPricePerMMBtu       float64 `yaml:"fuel_price_dollar_per_mmbtu" json:"fuel_price_dollar_per_mmbtu"`
	FuelEscalatorPct        float64 `yaml:"fuel_escalator_pct" json:"fuel_escalator_pct"`
	SolarFixedPerKW         float64 `yaml:"solar_om_fixed_dollar_per_kw" json:"solar_om_fixed_dollar_per_kw"`
	BESSFixedPerKW          float64 `yaml:"bess_om_fixed_dollar_per_kw" json:"bess_om_fixed_dollar_per_kw"`
	BOSFixedPerKWLoad       float64 `yaml:"bos_om_fixed_dollar_per_kw_load" json:"bos_om_fixed_dollar_per_kw_load"`
	SoftOMPct               float64 `yaml:"soft_om_pct" json:"soft_om_pct"`
	OMEscalatorPct          float64 `yaml:"om_escalator_pct" json:"om_escalator_pct"`
}

// Financing holds the capital-structure and tax assumptions.
// All *Pct fields are whole-number percents (7.5 means 7.5%).
// CostOfEquityPct doubles as the NPV discount rate.
type Financing struct {
	LCOEPerMWh             float64   `yaml:"lcoe_dollar_per_mwh" json:"lcoe_dollar_per_mwh"`
	CostOfDebtPct          float64   `yaml:"cost_of_debt_pct" json:"cost_of_debt_pct"`
	LeveragePct            float64   `yaml:"leverage_pct" json:"leverage_pct"`
	DebtTermYears          int       `yaml:"debt_term_years" json:"debt_term_years"`
	CostOfEquityPct        float64   `yaml:"cost_of_equity_pct" json:"cost_of_equity_pct"`
	InvestmentTaxCreditPct float64   `yaml:"investment_tax_credit_pct" json:"investment_tax_credit_pct"`
	CombinedTaxRatePct     float64   `yaml:"combined_tax_rate_pct" json:"combined_tax_rate_pct"`
	ConstructionTimeYears  int       `yaml:"construction_time_years" json:"construction_time_years"`
	DepreciationSchedule   []float64 `yaml:"depreciation_schedule" json:"depreciation_schedule"`
}

// Scenario bundles every scalar assumption the engine consumes.
// It is constructed once per evaluation and never mutated by the engine.
type Scenario struct {
	Capacities Capacities `yaml:"capacities" json:"capacities"`
	Capex      CapexRates `yaml:"capex" json:"capex"`
	OM         OMRates    `yaml:"om" json:"om"`
	Financing  Financing  `yaml:"financing" json:"financing"`
}

// DefaultDepreciationSchedule returns the 20-year MACRS schedule used when a
// scenario does not supply its own. Percent of depreciable basis per
// operating year.
func DefaultDepreciationSchedule() []float64 {
	return []float64{
		20.0, 32.0, 19.20, 11.52, 11.52, 5.76,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
}

// Validate checks that the scenario is internally consistent. The engine
// assumes pre-validated inputs; callers should reject a scenario here before
// building a pro forma from it.
func (s *Scenario) Validate() error {
	if s == nil {
		return errors.New("scenario is nil")
	}
	c := s.Capacities
	if c.DatacenterLoadMW < 0 || c.SolarCapacityMW < 0 || c.BESSMaxPowerMW < 0 || c.GeneratorCapacityMW < 0 {
		return errors.New("capacities must be >= 0")
	}
	f := s.Financing
	if f.DebtTermYears < 1 {
		return errors.New("debt_term_years must be >= 1")
	}
	if f.ConstructionTimeYears < 1 {
		return errors.New("construction_time_years must be >= 1")
	}
	if f.CostOfDebtPct < 0 {
		return errors.New("cost_of_debt_pct must be >= 0")
	}
	if f.LeveragePct < 0 || f.LeveragePct > 100 {
		return errors.New("leverage_pct must be in [0, 100]")
	}
	if f.InvestmentTaxCreditPct < 0 || f.InvestmentTaxCreditPct > 100 {
		return errors.New("investment_tax_credit_pct must be in [0, 100]")
	}
	if f.CombinedTaxRatePct < 0 || f.CombinedTaxRatePct > 100 {
		return errors.New("combined_tax_rate_pct must be in [0, 100]")
	}
	for i, pct := range f.DepreciationSchedule {
		if pct < 0 {
			return fmt.Errorf("depreciation_schedule[%d] must be >= 0, got %v", i, pct)
		}
	}
	return nil
}
