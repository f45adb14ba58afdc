package main

import (
	"fmt"
	"os"

	"github.com/offgridai-us/cost-calculator/internal/api/handlers"
	"github.com/offgridai-us/cost-calculator/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler(log))

	proFormaHandler := handlers.NewProFormaHandler(log)
	capexHandler := handlers.NewCapexHandler(log)
	scenarioHandler := handlers.NewScenarioHandler(log)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/proforma", proFormaHandler.RunProForma)
		api.POST("/proforma/compare", proFormaHandler.CompareProFormas)
		api.POST("/capex", capexHandler.EstimateCapex)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.GET("/schedules", handlers.ListSchedules)
	}

	addr := fmt.Sprintf(":%s", port)
	log.WithField("addr", addr).Info("starting API server")
	if err := router.Run(addr); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
