package analysis

import (
	"math"
	"testing"

	"github.com/offgridai-us/cost-calculator/internal/model"
	"github.com/offgridai-us/cost-calculator/internal/proforma"
)

func buildTable(t *testing.T) *proforma.Table {
	t.Helper()
	caps := model.Capacities{
		DatacenterLoadMW:    100,
		SolarCapacityMW:     150,
		BESSMaxPowerMW:      50,
		GeneratorCapacityMW: 100,
	}
	rates := model.CapexRates{
		PVModules: 0.220, PVInverters: 0.050, PVRacking: 0.180,
		PVBalanceSystem: 0.120, PVLabor: 0.200,
		BESSUnits: 200, BESSBalanceOfSystem: 40, BESSLabor: 20,
		Gensets: 800, GenBalanceOfSystem: 200, GenLabor: 150,
		SIMicrogrid: 300, SIControls: 50, SILabor: 60,
		SoftCostsGeneralConditions: 0.50, SoftCostsEPCOverhead: 5.00,
		SoftCostsDesignEngineering: 0.50, SoftCostsPermitting: 0.05,
		SoftCostsStartup: 0.25, SoftCostsInsurance: 0.50, SoftCostsTaxes: 5.00,
	}
	om := model.OMRates{
		GeneratorFixedPerKW: 10, GeneratorVariablePerKWh: 0.025,
		FuelPricePerMMBtu: 5, FuelEscalatorPct: 3,
		SolarFixedPerKW: 11, BESSFixedPerKW: 2.5, BOSFixedPerKWLoad: 6,
		SoftOMPct: 0.25, OMEscalatorPct: 2.5,
	}
	fin := model.Financing{
		LCOEPerMWh: 107.35, CostOfDebtPct: 7.5, LeveragePct: 70,
		DebtTermYears: 20, CostOfEquityPct: 11, InvestmentTaxCreditPct: 30,
		CombinedTaxRatePct: 21, ConstructionTimeYears: 2,
		DepreciationSchedule: model.DefaultDepreciationSchedule(),
	}
	years := make([]model.SimulationYear, 0, model.OperatingYears)
	for y := 1; y <= model.OperatingYears; y++ {
		years = append(years, model.SimulationYear{
			OperatingYear:      y,
			SolarNetMWh:        390000,
			BESSNetMWh:         30000,
			GeneratorMWh:       450000,
			GeneratorFuelMMBtu: 4200000,
			LoadServedMWh:      850000,
		})
	}
	capex := proforma.EstimateCapex(caps, rates)
	tab, err := proforma.New().Build(model.SimulationSummary{Years: years}, capex, caps, om, fin)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return tab
}

func TestSummarizeBaseline(t *testing.T) {
	tab := buildTable(t)
	m := Summarize(tab)

	npv, _ := tab.NPV(proforma.ColAfterTaxEquityCF)
	if m.EquityNPV != npv {
		t.Errorf("equity NPV = %v, want %v", m.EquityNPV, npv)
	}

	// Two construction years of equal spend.
	capexY0, _ := tab.Value(0, proforma.ColCapitalExpenditure)
	if math.Abs(m.TotalCapex-(-2*capexY0)) > 0.03 {
		t.Errorf("total capex = %v, want %v", m.TotalCapex, -2*capexY0)
	}
	if m.TotalEquity <= 0 || m.TotalEquity >= m.TotalCapex {
		t.Errorf("total equity = %v, want in (0, %v)", m.TotalEquity, m.TotalCapex)
	}

	if m.TotalLoadServedMWh != 20*850000 {
		t.Errorf("load served = %v, want %v", m.TotalLoadServedMWh, 20*850000)
	}

	if m.MinDSCR <= 0 || m.MinDSCR > m.AvgDSCR {
		t.Errorf("DSCR: min %v, avg %v", m.MinDSCR, m.AvgDSCR)
	}
}

func TestSummarizePaybackOrdering(t *testing.T) {
	tab := buildTable(t)
	m := Summarize(tab)
	if m.PaybackYear < 0 || m.PaybackYear > model.OperatingYears {
		t.Errorf("payback year = %d, want within modeled horizon", m.PaybackYear)
	}
	if m.PaybackYear != 0 {
		// Cumulative cash flow must still be negative the year before.
		cumulative := 0.0
		for _, y := range tab.Years() {
			if y >= m.PaybackYear {
				break
			}
			cumulative += tab.ValueOrZero(y, proforma.ColAfterTaxEquityCF)
		}
		if cumulative >= 0 {
			t.Errorf("cumulative cash flow before payback = %v, want < 0", cumulative)
		}
	}
}
