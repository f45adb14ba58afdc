package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/offgridai-us/cost-calculator/internal/analysis"
	"github.com/offgridai-us/cost-calculator/internal/api/models"
	"github.com/offgridai-us/cost-calculator/internal/config"
	"github.com/offgridai-us/cost-calculator/internal/model"
	"github.com/offgridai-us/cost-calculator/internal/proforma"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ProFormaHandler handles pro forma build and compare requests.
type ProFormaHandler struct {
	scenarioDir string
	log         *logrus.Logger
}

// NewProFormaHandler creates a new pro forma handler.
func NewProFormaHandler(log *logrus.Logger) *ProFormaHandler {
	return &ProFormaHandler{
		scenarioDir: scenarioDir(),
		log:         log,
	}
}

// scenarioDir resolves the preset directory, mirroring the CLI default.
func scenarioDir() string {
	if dir := os.Getenv("SCENARIO_DIR"); dir != "" {
		return dir
	}
	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, "examples", "scenarios")
	}
	return "./examples/scenarios"
}

// RunProForma handles POST /api/v1/proforma
func (h *ProFormaHandler) RunProForma(c *gin.Context) {
	var req models.ProFormaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	scenario, err := h.resolveScenario(req.ScenarioFile, req.Scenario)
	if err != nil {
		badRequest(c, "INVALID_SCENARIO", err)
		return
	}

	sim := model.SimulationSummary{Years: req.Simulation}
	capex := proforma.EstimateCapex(scenario.Capacities, scenario.Capex)
	table, err := proforma.New().Build(sim, capex, scenario.Capacities, scenario.OM, scenario.Financing)
	if err != nil {
		if errors.Is(err, proforma.ErrInvalidScenario) {
			badRequest(c, "INVALID_SCENARIO", err)
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "PROFORMA_ERROR", Message: err.Error()},
		})
		return
	}

	resp := models.ProFormaResponse{
		Status:  "completed",
		Capex:   convertCapex(capex),
		Summary: convertSummary(analysis.Summarize(table)),
	}
	if req.Options.IncludeTable {
		resp.Table, resp.NPVRow = convertTable(table)
	}
	c.JSON(http.StatusOK, resp)
}

// CompareProFormas handles POST /api/v1/proforma/compare
func (h *ProFormaHandler) CompareProFormas(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	base, err := h.resolveScenario(req.ScenarioFile, req.BaseScenario)
	if err != nil {
		badRequest(c, "INVALID_SCENARIO", err)
		return
	}

	sim := model.SimulationSummary{Years: req.Simulation}
	builder := proforma.New()
	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		scenario := config.MergeScenario(base, variation.Scenario)
		if err := scenario.Validate(); err != nil {
			h.log.WithField("variation", variation.Name).WithError(err).Warn("skipping invalid variation")
			continue
		}
		capex := proforma.EstimateCapex(scenario.Capacities, scenario.Capex)
		table, err := builder.Build(sim, capex, scenario.Capacities, scenario.OM, scenario.Financing)
		if err != nil {
			h.log.WithField("variation", variation.Name).WithError(err).Warn("skipping failed variation")
			continue
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:    variation.Name,
			Capex:   convertCapex(capex),
			Summary: convertSummary(analysis.Summarize(table)),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// resolveScenario loads an optional preset, applies overrides, defaults the
// depreciation schedule and validates the result.
func (h *ProFormaHandler) resolveScenario(file string, override model.Scenario) (model.Scenario, error) {
	scenario := override
	if file != "" {
		// file is a preset name (e.g. "baseline"), always looked up in the
		// scenario directory.
		path := filepath.Join(h.scenarioDir, file+".yaml")
		loaded, err := config.LoadScenarioFile(path)
		if err != nil {
			h.log.WithField("path", path).WithError(err).Warn("failed to load scenario preset")
			return model.Scenario{}, err
		}
		scenario = config.MergeScenario(loaded, override)
	}
	if len(scenario.Financing.DepreciationSchedule) == 0 {
		scenario.Financing.DepreciationSchedule = model.DefaultDepreciationSchedule()
	}
	if err := scenario.Validate(); err != nil {
		return model.Scenario{}, err
	}
	return scenario, nil
}

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: err.Error()},
	})
}

func convertCapex(b proforma.Breakdown) models.CapexBreakdown {
	return models.CapexBreakdown{
		Solar:             b.Solar,
		BESS:              b.BESS,
		Generator:         b.Generator,
		SystemIntegration: b.SystemIntegration,
		SoftCosts:         b.SoftCosts,
		TotalHard:         b.TotalHard(),
		Total:             b.Total(),
	}
}

func convertSummary(m analysis.Metrics) models.ScenarioSummary {
	return models.ScenarioSummary{
		EquityNPV:          m.EquityNPV,
		TotalCapex:         m.TotalCapex,
		TotalEquity:        m.TotalEquity,
		PaybackYear:        m.PaybackYear,
		MinDSCR:            m.MinDSCR,
		AvgDSCR:            m.AvgDSCR,
		TotalLoadServedMWh: m.TotalLoadServedMWh,
	}
}

func convertTable(t *proforma.Table) ([]models.TableRow, map[string]float64) {
	rows := make([]models.TableRow, 0, len(t.Years()))
	for _, year := range t.Years() {
		values := make(map[string]float64)
		for _, col := range proforma.Schema() {
			if v, ok := t.Value(year, col); ok {
				values[string(col)] = v
			}
		}
		rows = append(rows, models.TableRow{Year: year, Values: values})
	}
	npv := make(map[string]float64)
	for _, col := range proforma.Schema() {
		if v, ok := t.NPV(col); ok {
			npv[string(col)] = v
		}
	}
	return rows, npv
}
