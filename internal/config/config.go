package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/offgridai-us/cost-calculator/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the scenario from a separate YAML preset (e.g.
	// examples/scenarios/*.yaml). Fields set under Scenario override the
	// preset field-by-field.
	ScenarioFile string         `yaml:"scenario_file"`
	Scenario     model.Scenario `yaml:"scenario"`

	// SimulationFile points at the annual energy summary (CSV or JSON).
	SimulationFile string `yaml:"simulation_file"`
}

// Load reads, merges, defaults and validates a config file.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// An omitted depreciation schedule defaults to 20-year MACRS. This keeps
	// scenario files concise; most runs use the standard schedule.
	if len(c.Scenario.Financing.DepreciationSchedule) == 0 {
		c.Scenario.Financing.DepreciationSchedule = model.DefaultDepreciationSchedule()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer paths relative to the config file directory, falling
			// back to the path as given (relative to cwd).
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		loaded, err := LoadScenarioFile(scenarioPath)
		if err != nil {
			return nil, err
		}
		c.Scenario = MergeScenario(loaded, c.Scenario)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Scenario.Validate(); err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	return nil
}

type scenarioFileWrapper struct {
	Scenario model.Scenario `yaml:"scenario"`
}

// LoadScenarioFile reads a scenario preset YAML.
func LoadScenarioFile(path string) (model.Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Scenario{}, err
	}
	var w scenarioFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return model.Scenario{}, err
	}
	return w.Scenario, nil
}

// MergeScenario overlays non-zero fields from override onto base. Used when
// a scenario preset is loaded and then adjusted by the request or config.
func MergeScenario(base, override model.Scenario) model.Scenario {
	out := base
	mergeFloat(&out.Capacities.DatacenterLoadMW, override.Capacities.DatacenterLoadMW)
	mergeFloat(&out.Capacities.SolarCapacityMW, override.Capacities.SolarCapacityMW)
	mergeFloat(&out.Capacities.BESSMaxPowerMW, override.Capacities.BESSMaxPowerMW)
	mergeFloat(&out.Capacities.GeneratorCapacityMW, override.Capacities.GeneratorCapacityMW)

	mergeFloat(&out.Capex.PVModules, override.Capex.PVModules)
	mergeFloat(&out.Capex.PVInverters, override.Capex.PVInverters)
	mergeFloat(&out.Capex.PVRacking, override.Capex.PVRacking)
	mergeFloat(&out.Capex.PVBalanceSystem, override.Capex.PVBalanceSystem)
	mergeFloat(&out.Capex.PVLabor, override.Capex.PVLabor)
	mergeFloat(&out.Capex.BESSUnits, override.Capex.BESSUnits)
	mergeFloat(&out.Capex.BESSBalanceOfSystem, override.Capex.BESSBalanceOfSystem)
	mergeFloat(&out.Capex.BESSLabor, override.Capex.BESSLabor)
	mergeFloat(&out.Capex.Gensets, override.Capex.Gensets)
	mergeFloat(&out.Capex.GenBalanceOfSystem, override.Capex.GenBalanceOfSystem)
	mergeFloat(&out.Capex.GenLabor, override.Capex.GenLabor)
	mergeFloat(&out.Capex.SIMicrogrid, override.Capex.SIMicrogrid)
	mergeFloat(&out.Capex.SIControls, override.Capex.SIControls)
	mergeFloat(&out.Capex.SILabor, override.Capex.SILabor)
	mergeFloat(&out.Capex.SoftCostsGeneralConditions, override.Capex.SoftCostsGeneralConditions)
	mergeFloat(&out.Capex.SoftCostsEPCOverhead, override.Capex.SoftCostsEPCOverhead)
	mergeFloat(&out.Capex.SoftCostsDesignEngineering, override.Capex.SoftCostsDesignEngineering)
	mergeFloat(&out.Capex.SoftCostsPermitting, override.Capex.SoftCostsPermitting)
	mergeFloat(&out.Capex.SoftCostsStartup, override.Capex.SoftCostsStartup)
	mergeFloat(&out.Capex.SoftCostsInsurance, override.Capex.SoftCostsInsurance)
	mergeFloat(&out.Capex.SoftCostsTaxes, override.Capex.SoftCostsTaxes)

	mergeFloat(&out.OM.GeneratorFixedPerKW, override.OM.GeneratorFixedPerKW)
	mergeFloat(&out.OM.GeneratorVariablePerKWh, override.OM.GeneratorVariablePerKWh)
	mergeFloat(&out.OM.FuelPricePerMMBtu, override.OM.FuelPricePerMMBtu)
	mergeFloat(&out.OM.FuelEscalatorPct, override.OM.FuelEscalatorPct)
	mergeFloat(&out.OM.SolarFixedPerKW, override.OM.SolarFixedPerKW)
	mergeFloat(&out.OM.BESSFixedPerKW, override.OM.BESSFixedPerKW)
	mergeFloat(&out.OM.BOSFixedPerKWLoad, override.OM.BOSFixedPerKWLoad)
	mergeFloat(&out.OM.SoftOMPct, override.OM.SoftOMPct)
	mergeFloat(&out.OM.OMEscalatorPct, override.OM.OMEscalatorPct)

	mergeFloat(&out.Financing.LCOEPerMWh, override.Financing.LCOEPerMWh)
	mergeFloat(&out.Financing.CostOfDebtPct, override.Financing.CostOfDebtPct)
	mergeFloat(&out.Financing.LeveragePct, override.Financing.LeveragePct)
	mergeFloat(&out.Financing.CostOfEquityPct, override.Financing.CostOfEquityPct)
	mergeFloat(&out.Financing.InvestmentTaxCreditPct, override.Financing.InvestmentTaxCreditPct)
	mergeFloat(&out.Financing.CombinedTaxRatePct, override.Financing.CombinedTaxRatePct)
	if override.Financing.DebtTermYears != 0 {
		out.Financing.DebtTermYears = override.Financing.DebtTermYears
	}
	if override.Financing.ConstructionTimeYears != 0 {
		out.Financing.ConstructionTimeYears = override.Financing.ConstructionTimeYears
	}
	if len(override.Financing.DepreciationSchedule) != 0 {
		out.Financing.DepreciationSchedule = override.Financing.DepreciationSchedule
	}
	return out
}

// mergeFloat overlays v onto dst when v is non-zero. A true zero override is
// indistinguishable from "unset"; zeros belong in the scenario preset.
func mergeFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
