package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"automentor/backend/internal/config"
	"automentor/backend/internal/features/generation/application"
	"automentor/backend/internal/features/generation/infrastructure"
	generation_http "automentor/backend/internal/features/generation/presentation/http"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	// Initialize the text-generation client for the configured provider
	generator, err := infrastructure.NewTextGenerator(infrastructure.ProviderConfig{
		Provider: cfg.Provider,
		APIKey:   cfg.APIKey(),
		Model:    cfg.Model,
		Timeout:  cfg.RequestTimeout(),
	})
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create text generator")
	}

	// Initialize services
	generationService := application.NewGenerationService(generator)

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// One endpoint per prompting technique demonstration
	handler := generation_http.NewGenerationHandler(generationService)
	r.POST("/generate-startup-idea", handler.GenerateStartupIdeaHandler)
	r.POST("/generate-tagline-zero-shot", handler.GenerateTaglineHandler)
	r.POST("/generate-headline-one-shot", handler.GenerateHeadlineHandler)
	r.POST("/generate-features-multi-shot", handler.GenerateFeaturesHandler)
	r.POST("/validate-idea-cot", handler.ValidateIdeaHandler)
	r.POST("/validate-idea-with-tokens", handler.ValidateIdeaWithTokensHandler)
	r.POST("/brainstorm-names-with-temperature", handler.BrainstormNamesHandler)
	r.POST("/generate-marketing-angles-with-top-p", handler.GenerateMarketingAnglesHandler)
	r.POST("/generate-faq-with-top-k", handler.GenerateFAQHandler)
	r.POST("/generate-first-step-with-stop-sequence", handler.GenerateFirstStepHandler)

	logrus.WithFields(logrus.Fields{"address": cfg.Address, "provider": cfg.Provider, "model": cfg.Model}).Info("Starting server")
	if err := r.Run(cfg.Address); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
