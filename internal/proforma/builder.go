package proforma

import (
	"errors"
	"fmt"
	"math"

	"github.com/offgridai-us/cost-calculator/internal/model"
)

// ErrInvalidScenario marks scenario inputs the engine cannot price, such as
// a plant with zero hard CAPEX.
var ErrInvalidScenario = errors.New("invalid scenario")

// Builder computes the year-by-year pro forma. It holds no state; a single
// Builder may be shared across concurrent calls.
type Builder struct{}

func New() *Builder { return &Builder{} }

// Build produces the full pro forma table for one scenario.
//
// The simulation summary is overlaid best-effort: operating years it does not
// cover keep blank energy and derived earnings fields. Monetary cells are in
// $M and rounded to 2 decimals in the returned table only; intermediate math
// runs at full float64 precision.
func (b *Builder) Build(
	sim model.SimulationSummary,
	capex Breakdown,
	cap model.Capacities,
	om model.OMRates,
	fin model.Financing,
) (*Table, error) {
	totalHard := capex.TotalHard()
	if totalHard == 0 {
		return nil, fmt.Errorf("%w: total hard capex is zero", ErrInvalidScenario)
	}

	firstYear := -(fin.ConstructionTimeYears - 1)
	t := NewTable(firstYear, model.OperatingYears)

	// Overlay powerflow outputs onto the operating years they cover.
	for year := 1; year <= model.OperatingYears; year++ {
		row, ok := sim.ByOperatingYear(year)
		if !ok {
			continue
		}
		t.Set(year, ColOperatingYear, float64(year))
		t.Set(year, ColSolarNet, row.SolarNetMWh)
		t.Set(year, ColBESSNet, row.BESSNetMWh)
		t.Set(year, ColGeneratorOut, row.GeneratorMWh)
		t.Set(year, ColFuelInput, row.GeneratorFuelMMBtu)
		t.Set(year, ColLoadServed, row.LoadServedMWh)
	}

	totalCapex := totalHard + capex.SoftCosts
	totalDebt := totalCapex * fin.LeveragePct / 100
	interestRate := fin.CostOfDebtPct / 100
	fixedDebtPayment := AmortizedPayment(totalDebt, fin.CostOfDebtPct, fin.DebtTermYears)

	// The ITC applies to the renewable share of the project, soft costs
	// included in proportion. IRS convention: half the credit comes out of
	// the depreciable basis.
	renewableProportion := (capex.Solar + capex.BESS) / totalHard
	itcAmount := totalCapex * renewableProportion * fin.InvestmentTaxCreditPct / 100
	depreciableBasis := totalCapex - itcAmount/2

	t.Set(1, ColDebtOutstanding, totalDebt)
	t.Set(1, ColFederalITC, itcAmount)

	// Construction period: total CAPEX spread evenly, split debt vs equity.
	capexPerYear := totalCapex / float64(fin.ConstructionTimeYears)
	for year := firstYear; year <= 0; year++ {
		t.Set(year, ColCapitalExpenditure, -capexPerYear)
		t.Set(year, ColDebtContribution, capexPerYear*fin.LeveragePct/100)
		t.Set(year, ColEquityCapex, -capexPerYear*(1-fin.LeveragePct/100))
	}

	// Operating period: escalated unit rates, then costs and earnings.
	for year := 1; year <= model.OperatingYears; year++ {
		omEsc := math.Pow(1+om.OMEscalatorPct/100, float64(year-1))
		fuelEsc := math.Pow(1+om.FuelEscalatorPct/100, float64(year-1))

		t.Set(year, ColFuelUnitCost, -om.FuelPricePerMMBtu*fuelEsc)
		t.Set(year, ColSolarFixedOMRate, -om.SolarFixedPerKW*omEsc)
		t.Set(year, ColBatteryFixedOMRate, -om.BESSFixedPerKW*omEsc)
		t.Set(year, ColGeneratorFixedOMRate, -om.GeneratorFixedPerKW*omEsc)
		t.Set(year, ColGeneratorVarOMRate, -om.GeneratorVariablePerKWh*omEsc)
		t.Set(year, ColBOSFixedOMRate, -om.BOSFixedPerKWLoad*omEsc)
		t.Set(year, ColSoftOMRate, -om.SoftOMPct*omEsc)

		fixedOM := (t.ValueOrZero(year, ColSolarFixedOMRate)*cap.SolarCapacityMW*1000+
			t.ValueOrZero(year, ColBatteryFixedOMRate)*cap.BESSMaxPowerMW*1000+
			t.ValueOrZero(year, ColGeneratorFixedOMRate)*cap.GeneratorCapacityMW*1000+
			t.ValueOrZero(year, ColBOSFixedOMRate)*cap.DatacenterLoadMW*1000)/1_000_000 +
			t.ValueOrZero(year, ColSoftOMRate)/100*totalHard
		t.Set(year, ColFixedOMCost, fixedOM)

		t.Set(year, ColLCOE, fin.LCOEPerMWh)

		// Earnings need the powerflow overlay; leave them blank for years
		// the simulation does not cover.
		fuelIn, haveSim := t.Value(year, ColFuelInput)
		if !haveSim {
			continue
		}
		fuelCost := t.ValueOrZero(year, ColFuelUnitCost) * fuelIn / 1_000_000
		varOM := t.ValueOrZero(year, ColGeneratorVarOMRate) * t.ValueOrZero(year, ColGeneratorOut) * 1000 / 1_000_000
		t.Set(year, ColFuelCost, fuelCost)
		t.Set(year, ColVariableOMCost, varOM)
		t.Set(year, ColTotalOpCosts, fuelCost+fixedOM+varOM)

		revenue := fin.LCOEPerMWh * t.ValueOrZero(year, ColLoadServed) / 1_000_000
		t.Set(year, ColRevenue, revenue)
		t.Set(year, ColEBITDA, revenue+fuelCost+fixedOM+varOM)
	}

	// Debt, depreciation and tax. Strictly sequential: each year's opening
	// balance feeds the next year's interest.
	for year := 1; year <= model.OperatingYears; year++ {
		// Debt Service stays at the fixed payment for every operating year,
		// even past the debt term, while the balance stops amortizing at the
		// term. Deliberately kept; downstream models depend on these numbers.
		t.Set(year, ColDebtService, -fixedDebtPayment)

		balance, haveBalance := t.Value(year, ColDebtOutstanding)
		if haveBalance {
			interest := -balance * interestRate
			principal := -fixedDebtPayment - interest
			t.Set(year, ColInterestExpense, interest)
			t.Set(year, ColPrincipalPayment, principal)
			t.Set(year, ColInterestExpenseTax, interest)
			if year < fin.DebtTermYears && year < model.OperatingYears {
				t.Set(year+1, ColDebtOutstanding, balance+principal)
			}
		}

		depPct := 0.0
		if year <= len(fin.DepreciationSchedule) {
			depPct = fin.DepreciationSchedule[year-1]
		}
		t.Set(year, ColDepreciationSchedule, depPct)
		t.Set(year, ColDepreciationMACRS, -depPct/100*depreciableBasis)

		ebitda, haveEBITDA := t.Value(year, ColEBITDA)
		if haveEBITDA && haveBalance {
			t.Set(year, ColTaxableIncome, ebitda+t.ValueOrZero(year, ColDepreciationMACRS)+t.ValueOrZero(year, ColInterestExpense))
		}
	}

	// Tax benefit and the equity cash-flow roll-up over every dated row.
	for _, year := range t.Years() {
		if taxable, ok := t.Value(year, ColTaxableIncome); ok {
			taxOnIncome := taxable * fin.CombinedTaxRatePct / 100
			t.Set(year, ColTaxBenefit, -taxOnIncome+t.ValueOrZero(year, ColFederalITC))
		}
		t.Set(year, ColAfterTaxEquityCF,
			t.ValueOrZero(year, ColEBITDA)+
				t.ValueOrZero(year, ColDebtService)+
				t.ValueOrZero(year, ColTaxBenefit)+
				t.ValueOrZero(year, ColEquityCapex))
	}

	b.fillTerminalRow(t, fin)
	t.round(2)
	return t, nil
}

// fillTerminalRow computes the NPV row: energy columns sum undiscounted,
// rate columns stay blank, everything else discounts at the cost of equity
// shifted by the construction time.
func (b *Builder) fillTerminalRow(t *Table, fin model.Financing) {
	for _, col := range Schema() {
		switch {
		case col == ColOperatingYear:
			continue
		case calculateTotals[col]:
			sum := 0.0
			for _, year := range t.Years() {
				sum += t.ValueOrZero(year, col)
			}
			t.SetNPV(col, sum)
		case excludeFromNPV[col]:
			continue
		default:
			flows := make([]CashFlow, 0, len(t.Years()))
			for _, year := range t.Years() {
				flows = append(flows, CashFlow{Year: year, Value: t.ValueOrZero(year, col)})
			}
			t.SetNPV(col, NPV(flows, fin.CostOfEquityPct, fin.ConstructionTimeYears))
		}
	}
}
