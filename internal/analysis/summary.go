// Package analysis derives summary metrics from a built pro forma table.
// It reads the table only; engine semantics live in internal/proforma.
package analysis

import (
	"math"

	"github.com/offgridai-us/cost-calculator/internal/proforma"
)

// Metrics is a scenario-level summary suitable for ranking and comparison.
type Metrics struct {
	// EquityNPV is the discounted after-tax net equity cash flow ($M).
	EquityNPV float64 `json:"equity_npv"`

	// TotalCapex and TotalEquity are construction-period magnitudes ($M).
	TotalCapex  float64 `json:"total_capex"`
	TotalEquity float64 `json:"total_equity"`

	// PaybackYear is the first operating year where cumulative after-tax
	// equity cash flow (construction included) turns non-negative; 0 when
	// the project never pays back within the modeled horizon.
	PaybackYear int `json:"payback_year"`

	// MinDSCR and AvgDSCR cover the operating years with both EBITDA and
	// debt service populated. DSCR = EBITDA / |debt service|.
	MinDSCR float64 `json:"min_dscr"`
	AvgDSCR float64 `json:"avg_dscr"`

	// TotalLoadServedMWh is lifetime energy delivered to the datacenter.
	TotalLoadServedMWh float64 `json:"total_load_served_mwh"`
}

// Summarize reduces a pro forma table into Metrics.
func Summarize(t *proforma.Table) Metrics {
	m := Metrics{MinDSCR: math.Inf(1)}

	if v, ok := t.NPV(proforma.ColAfterTaxEquityCF); ok {
		m.EquityNPV = v
	}
	if v, ok := t.NPV(proforma.ColLoadServed); ok {
		m.TotalLoadServedMWh = v
	}

	cumulative := 0.0
	dscrSum := 0.0
	dscrCount := 0
	for _, year := range t.Years() {
		if capex, ok := t.Value(year, proforma.ColCapitalExpenditure); ok {
			m.TotalCapex += -capex
		}
		if equity, ok := t.Value(year, proforma.ColEquityCapex); ok {
			m.TotalEquity += -equity
		}

		cumulative += t.ValueOrZero(year, proforma.ColAfterTaxEquityCF)
		if year > 0 && m.PaybackYear == 0 && cumulative >= 0 {
			m.PaybackYear = year
		}

		ebitda, okE := t.Value(year, proforma.ColEBITDA)
		service, okS := t.Value(year, proforma.ColDebtService)
		if okE && okS && service != 0 {
			dscr := ebitda / math.Abs(service)
			dscrSum += dscr
			dscrCount++
			if dscr < m.MinDSCR {
				m.MinDSCR = dscr
			}
		}
	}

	if dscrCount > 0 {
		m.AvgDSCR = dscrSum / float64(dscrCount)
	} else {
		m.MinDSCR = 0
	}
	return m
}
