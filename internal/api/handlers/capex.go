package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/offgridai-us/cost-calculator/internal/api/models"
	"github.com/offgridai-us/cost-calculator/internal/config"
	"github.com/offgridai-us/cost-calculator/internal/proforma"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CapexHandler serves standalone CAPEX estimates.
type CapexHandler struct {
	scenarioDir string
	log         *logrus.Logger
}

// NewCapexHandler creates a new CAPEX handler.
func NewCapexHandler(log *logrus.Logger) *CapexHandler {
	return &CapexHandler{scenarioDir: scenarioDir(), log: log}
}

// EstimateCapex handles POST /api/v1/capex
func (h *CapexHandler) EstimateCapex(c *gin.Context) {
	var req models.CapexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	scenario := req.Scenario
	if req.ScenarioFile != "" {
		loaded, err := config.LoadScenarioFile(filepath.Join(h.scenarioDir, req.ScenarioFile+".yaml"))
		if err != nil {
			badRequest(c, "SCENARIO_LOAD_ERROR", err)
			return
		}
		scenario = config.MergeScenario(loaded, req.Scenario)
	}
	if err := scenario.Validate(); err != nil {
		badRequest(c, "INVALID_SCENARIO", err)
		return
	}

	b := proforma.EstimateCapex(scenario.Capacities, scenario.Capex)
	c.JSON(http.StatusOK, convertCapex(b))
}
