package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/offgridai-us/cost-calculator/internal/api/models"
	"github.com/offgridai-us/cost-calculator/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ScenarioHandler lists scenario presets from the scenario directory.
type ScenarioHandler struct {
	scenarioDir string
	log         *logrus.Logger
}

// NewScenarioHandler creates a new scenario handler.
func NewScenarioHandler(log *logrus.Logger) *ScenarioHandler {
	h := &ScenarioHandler{scenarioDir: scenarioDir(), log: log}
	log.WithField("dir", h.scenarioDir).Info("scenario presets")
	return h
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios := []models.ScenarioInfo{}

	entries, err := os.ReadDir(h.scenarioDir)
	if err != nil {
		h.log.WithField("dir", h.scenarioDir).WithError(err).Warn("cannot read scenario directory")
		// An absent preset directory is not an error; clients fall back to
		// inline scenarios.
		c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
		return
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.scenarioDir, e.Name())
		scenario, err := config.LoadScenarioFile(path)
		if err != nil {
			h.log.WithField("path", path).WithError(err).Warn("skipping unreadable preset")
			continue
		}
		scenarios = append(scenarios, models.ScenarioInfo{
			ID:               strings.TrimSuffix(e.Name(), ".yaml"),
			File:             e.Name(),
			DatacenterLoadMW: scenario.Capacities.DatacenterLoadMW,
			SolarCapacityMW:  scenario.Capacities.SolarCapacityMW,
			BESSMaxPowerMW:   scenario.Capacities.BESSMaxPowerMW,
			GeneratorMW:      scenario.Capacities.GeneratorCapacityMW,
		})
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios, "count": len(scenarios)})
}
