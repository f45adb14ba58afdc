package proforma

import "math"

// CashFlow is one dated value in a discounting series.
type CashFlow struct {
	Year  int
	Value float64
}

// AmortizedPayment returns the fixed annual payment for a level-payment loan.
// ratePct is the annual interest rate in percent. A zero rate degenerates to
// straight-line repayment; the closed form divides by zero there.
func AmortizedPayment(principal, ratePct float64, termYears int) float64 {
	if ratePct == 0 {
		return principal / float64(termYears)
	}
	r := ratePct / 100
	growth := math.Pow(1+r, float64(termYears))
	return principal * r * growth / (growth - 1)
}

// NPV discounts a series of dated cash flows at ratePct. The construction
// shift is additive on the exponent: a flow at year t discounts by
// (1 + ratePct/100)^(t + constructionYears). Year -1 with a 2-year shift
// therefore discounts at exponent 1, not -1. Summation follows slice order,
// so identical inputs give bit-identical results.
func NPV(flows []CashFlow, ratePct float64, constructionYears int) float64 {
	base := 1 + ratePct/100
	sum := 0.0
	for _, f := range flows {
		sum += f.Value / math.Pow(base, float64(f.Year+constructionYears))
	}
	return sum
}
