package models

import "github.com/offgridai-us/cost-calculator/internal/model"

// ProFormaRequest represents the request body for building a pro forma.
type ProFormaRequest struct {
	// ScenarioFile names a preset under the scenario directory (without
	// extension). Fields set in Scenario override the preset.
	ScenarioFile string         `json:"scenario_file,omitempty"`
	Scenario     model.Scenario `json:"scenario,omitempty"`

	// Simulation is the annual energy summary, one entry per operating year.
	Simulation []model.SimulationYear `json:"simulation" binding:"required"`

	Options ProFormaOptions `json:"options,omitempty"`
}

// ProFormaOptions contains optional request parameters.
type ProFormaOptions struct {
	IncludeTable bool `json:"include_table,omitempty"` // default: summary only
}

// CapexRequest asks for a CAPEX breakdown without running the pro forma.
type CapexRequest struct {
	ScenarioFile string         `json:"scenario_file,omitempty"`
	Scenario     model.Scenario `json:"scenario,omitempty"`
}

// CompareRequest evaluates several named scenario variations against the
// same simulation summary.
type CompareRequest struct {
	ScenarioFile string         `json:"scenario_file,omitempty"`
	BaseScenario model.Scenario `json:"base_scenario,omitempty"`

	Simulation []model.SimulationYear `json:"simulation" binding:"required"`
	Variations []ScenarioVariation    `json:"variations" binding:"required"`
}

// ScenarioVariation defines one variation to evaluate.
type ScenarioVariation struct {
	Name     string         `json:"name" binding:"required"`
	Scenario model.Scenario `json:"scenario"`
}
