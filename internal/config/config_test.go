package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/offgridai-us/cost-calculator/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const presetYAML = `scenario:
  capacities:
    datacenter_load_mw: 100
    solar_capacity_mw: 150
    bess_max_power_mw: 50
    generator_capacity_mw: 100
  capex:
    pv_modules: 0.22
    bess_units: 200
    gensets: 800
    si_microgrid: 300
  om:
    fuel_price_dollar_per_mmbtu: 5.0
    fuel_escalator_pct: 3.0
  financing:
    lcoe_dollar_per_mwh: 107.35
    cost_of_debt_pct: 7.5
    leverage_pct: 70
    debt_term_years: 20
    cost_of_equity_pct: 11
    investment_tax_credit_pct: 30
    combined_tax_rate_pct: 21
    construction_time_years: 2
`

func TestLoadInlineScenario(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", presetYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.Scenario.Capacities.SolarCapacityMW; got != 150 {
		t.Errorf("solar capacity = %v, want 150", got)
	}
	if got := cfg.Scenario.Financing.LCOEPerMWh; got != 107.35 {
		t.Errorf("lcoe = %v, want 107.35", got)
	}
}

func TestLoadAppliesDefaultDepreciationSchedule(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", presetYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sched := cfg.Scenario.Financing.DepreciationSchedule
	if len(sched) != model.OperatingYears {
		t.Fatalf("schedule length = %d, want %d", len(sched), model.OperatingYears)
	}
	if sched[0] != 20.0 || sched[1] != 32.0 {
		t.Errorf("schedule start = %v, %v; want MACRS 20, 32", sched[0], sched[1])
	}
}

func TestLoadResolvesScenarioFileRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, filepath.Join("scenarios", "base.yaml"), presetYAML)
	cfgPath := writeFile(t, dir, "config.yaml", `scenario_file: scenarios/base.yaml
scenario:
  financing:
    lcoe_dollar_per_mwh: 95.0
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// Override wins where set, preset fills the rest.
	if got := cfg.Scenario.Financing.LCOEPerMWh; got != 95.0 {
		t.Errorf("lcoe = %v, want override 95.0", got)
	}
	if got := cfg.Scenario.Financing.CostOfDebtPct; got != 7.5 {
		t.Errorf("cost of debt = %v, want preset 7.5", got)
	}
	if got := cfg.Scenario.Capacities.DatacenterLoadMW; got != 100 {
		t.Errorf("load = %v, want preset 100", got)
	}
}

func TestLoadRejectsInvalidScenario(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `scenario:
  financing:
    debt_term_years: 20
    construction_time_years: 2
    leverage_pct: 140
`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted leverage_pct > 100")
	}
}

func TestMergeScenario(t *testing.T) {
	base := model.Scenario{}
	base.Capacities.SolarCapacityMW = 150
	base.Financing.DebtTermYears = 20
	base.Financing.DepreciationSchedule = model.DefaultDepreciationSchedule()

	override := model.Scenario{}
	override.Capacities.SolarCapacityMW = 200
	override.Financing.DebtTermYears = 15

	merged := MergeScenario(base, override)
	if merged.Capacities.SolarCapacityMW != 200 {
		t.Errorf("solar = %v, want override 200", merged.Capacities.SolarCapacityMW)
	}
	if merged.Financing.DebtTermYears != 15 {
		t.Errorf("term = %v, want override 15", merged.Financing.DebtTermYears)
	}
	if len(merged.Financing.DepreciationSchedule) != model.OperatingYears {
		t.Errorf("schedule dropped in merge")
	}

	// Zero override leaves base untouched.
	merged = MergeScenario(base, model.Scenario{})
	if merged.Capacities.SolarCapacityMW != 150 {
		t.Errorf("zero override changed solar to %v", merged.Capacities.SolarCapacityMW)
	}
}
