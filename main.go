package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taxmitra/itr-engine/config"
	"github.com/taxmitra/itr-engine/handler"
	"github.com/taxmitra/itr-engine/logger"
	"github.com/taxmitra/itr-engine/service"
	"github.com/taxmitra/itr-engine/store"
)

func main() {
	logger.InitLogger()
	defer logger.Log.Sync()

	// Initialize configuration
	cfg := config.LoadConfig()
	gin.SetMode(cfg.GinMode)

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	taxService := service.NewTaxService()
	itrService := service.NewITRService(taxService, pdfProcessor)
	clientStore := store.NewClientStore()

	// Initialize handler layer
	itrHandler := handler.NewITRHandler(itrService, clientStore)
	taxHandler := handler.NewTaxHandler(taxService)
	clientHandler := handler.NewClientHandler(clientStore)

	// Setup Gin router
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "ITR Summary Engine",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		itr := api.Group("/itr")
		{
			itr.POST("/normalize", itrHandler.NormalizeITR)
		}

		tax := api.Group("/tax")
		{
			tax.POST("/compute", taxHandler.ComputeTax)
		}

		api.GET("/rules", taxHandler.ListRules)

		clients := api.Group("/clients")
		{
			clients.GET("", clientHandler.ListClients)
			clients.GET("/export/csv", clientHandler.ExportCSV)
			clients.GET("/export/xlsx", clientHandler.ExportXLSX)
			clients.GET("/:id", clientHandler.GetClient)
			clients.GET("/:id/report", clientHandler.ClientReport)
		}
	}

	// Start server
	logger.Log.Info("starting ITR summary engine", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logger.Log.Fatal("failed to start server", zap.Error(err))
	}
}
