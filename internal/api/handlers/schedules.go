package handlers

import (
	"net/http"

	"github.com/offgridai-us/cost-calculator/internal/api/models"
	"github.com/offgridai-us/cost-calculator/internal/model"

	"github.com/gin-gonic/gin"
)

// ListSchedules handles GET /api/v1/schedules. It returns the depreciation
// schedule presets a client can offer; a request may always carry a custom
// schedule instead.
func ListSchedules(c *gin.Context) {
	straightLine := make([]float64, model.OperatingYears)
	for i := range straightLine {
		straightLine[i] = 100.0 / model.OperatingYears
	}

	schedules := []models.ScheduleInfo{
		{
			Name:        "macrs_20",
			Description: "Default 20-year MACRS schedule (half-year convention, front-loaded).",
			Percents:    model.DefaultDepreciationSchedule(),
		},
		{
			Name:        "straight_line_20",
			Description: "Straight-line over the 20 operating years.",
			Percents:    straightLine,
		},
	}

	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}
