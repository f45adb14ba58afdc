package proforma

import "math"

// Column identifies one line item of the pro forma. The string values are
// the canonical labels used in CSV output and API responses; keep them
// stable, downstream charting keys on them.
type Column string

const (
	ColOperatingYear Column = "Operating Year"

	// Powerflow pass-through (operating years only).
	ColSolarNet     Column = "Solar Output - Net (MWh)"
	ColBESSNet      Column = "BESS Net Output (MWh)"
	ColGeneratorOut Column = "Generator Output (MWh)"
	ColFuelInput    Column = "Generator Fuel Input (MMBtu)"
	ColLoadServed   Column = "Load Served (MWh)"

	// Capital structure.
	ColDebtOutstanding    Column = "Debt Outstanding, Yr Start"
	ColFederalITC         Column = "Federal ITC"
	ColCapitalExpenditure Column = "Capital Expenditure"
	ColDebtContribution   Column = "Debt Contribution"
	ColEquityCapex        Column = "Equity Capex"

	// Escalated unit rates (signed negative; informational).
	ColFuelUnitCost         Column = "Fuel Unit Cost"
	ColSolarFixedOMRate     Column = "Solar Fixed O&M Rate"
	ColBatteryFixedOMRate   Column = "Battery Fixed O&M Rate"
	ColGeneratorFixedOMRate Column = "Generator Fixed O&M Rate"
	ColGeneratorVarOMRate   Column = "Generator Variable O&M Rate"
	ColBOSFixedOMRate       Column = "BOS Fixed O&M Rate"
	ColSoftOMRate           Column = "Soft O&M Rate"

	// Operating costs and earnings ($M).
	ColFixedOMCost    Column = "Fixed O&M Cost"
	ColFuelCost       Column = "Fuel Cost"
	ColVariableOMCost Column = "Variable O&M Cost"
	ColTotalOpCosts   Column = "Total Operating Costs"
	ColLCOE           Column = "LCOE"
	ColRevenue        Column = "Revenue"
	ColEBITDA         Column = "EBITDA"

	// Debt, depreciation and tax.
	ColInterestExpense      Column = "Interest Expense"
	ColDebtService          Column = "Debt Service"
	ColPrincipalPayment     Column = "Principal Payment"
	ColDepreciationSchedule Column = "Depreciation Schedule"
	ColDepreciationMACRS    Column = "Depreciation (MACRS)"
	ColTaxableIncome        Column = "Taxable Income"
	ColInterestExpenseTax   Column = "Interest Expense (Tax)"
	ColTaxBenefit           Column = "Tax Benefit (Liability)"
	ColAfterTaxEquityCF     Column = "After-Tax Net Equity Cash Flow"
)

// Schema returns the full column set in presentation order.
func Schema() []Column {
	return []Column{
		ColOperatingYear,
		ColSolarNet,
		ColBESSNet,
		ColGeneratorOut,
		ColFuelInput,
		ColLoadServed,
		ColDebtOutstanding,
		ColFederalITC,
		ColCapitalExpenditure,
		ColDebtContribution,
		ColEquityCapex,
		ColFuelUnitCost,
		ColSolarFixedOMRate,
		ColBatteryFixedOMRate,
		ColGeneratorFixedOMRate,
		ColGeneratorVarOMRate,
		ColBOSFixedOMRate,
		ColSoftOMRate,
		ColFixedOMCost,
		ColFuelCost,
		ColVariableOMCost,
		ColTotalOpCosts,
		ColLCOE,
		ColRevenue,
		ColEBITDA,
		ColInterestExpense,
		ColDebtService,
		ColPrincipalPayment,
		ColDepreciationSchedule,
		ColDepreciationMACRS,
		ColTaxableIncome,
		ColInterestExpenseTax,
		ColTaxBenefit,
		ColAfterTaxEquityCF,
	}
}

// excludeFromNPV lists rate/unit/informational columns: the NPV row carries
// no value for these.
var excludeFromNPV = map[Column]bool{
	ColFuelUnitCost:         true,
	ColSolarFixedOMRate:     true,
	ColBatteryFixedOMRate:   true,
	ColGeneratorFixedOMRate: true,
	ColGeneratorVarOMRate:   true,
	ColBOSFixedOMRate:       true,
	ColSoftOMRate:           true,
	ColLCOE:                 true,
	ColDebtOutstanding:      true,
	ColDepreciationSchedule: true,
}

// calculateTotals lists raw energy columns: the NPV row is an undiscounted
// sum across all dated rows.
var calculateTotals = map[Column]bool{
	ColSolarNet:     true,
	ColBESSNet:      true,
	ColGeneratorOut: true,
	ColFuelInput:    true,
	ColLoadServed:   true,
}

// Table is the pro forma output: one row per year from the first
// construction year through the last operating year, plus a terminal NPV
// row. Cells are sparse; a missing cell renders blank.
type Table struct {
	years []int
	cells map[int]map[Column]float64
	npv   map[Column]float64
}

// NewTable builds an empty table spanning firstYear..lastYear inclusive.
func NewTable(firstYear, lastYear int) *Table {
	years := make([]int, 0, lastYear-firstYear+1)
	for y := firstYear; y <= lastYear; y++ {
		years = append(years, y)
	}
	return &Table{
		years: years,
		cells: make(map[int]map[Column]float64, len(years)),
		npv:   make(map[Column]float64),
	}
}

// Years returns the dated row index in order. The terminal NPV row is not
// part of it.
func (t *Table) Years() []int { return t.years }

// Set assigns a cell value.
func (t *Table) Set(year int, col Column, v float64) {
	row, ok := t.cells[year]
	if !ok {
		row = make(map[Column]float64)
		t.cells[year] = row
	}
	row[col] = v
}

// Value reads a cell. The second return reports whether the cell is set.
func (t *Table) Value(year int, col Column) (float64, bool) {
	v, ok := t.cells[year][col]
	return v, ok
}

// ValueOrZero reads a cell, treating a blank as zero.
func (t *Table) ValueOrZero(year int, col Column) float64 {
	return t.cells[year][col]
}

// SetNPV assigns the terminal-row value for a column.
func (t *Table) SetNPV(col Column, v float64) { t.npv[col] = v }

// NPV reads the terminal-row value for a column. Columns excluded from
// aggregation have no value.
func (t *Table) NPV(col Column) (float64, bool) {
	v, ok := t.npv[col]
	return v, ok
}

// round applies fixed-point rounding to every cell and NPV value. The engine
// computes at full float64 precision and rounds once, at the end.
func (t *Table) round(decimals int) {
	scale := math.Pow(10, float64(decimals))
	for _, row := range t.cells {
		for col, v := range row {
			row[col] = math.Round(v*scale) / scale
		}
	}
	for col, v := range t.npv {
		t.npv[col] = math.Round(v*scale) / scale
	}
}
