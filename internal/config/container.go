package config

import (
	"study-desk/internal/client"
	"study-desk/internal/domain"
	"study-desk/internal/service"
	"study-desk/internal/study"
	"study-desk/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config           domain.Config
	Logger           domain.Logger
	GenerationClient domain.GenerationClient
	Extractor        domain.DocumentExtractor
	Desk             *study.Desk
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	generationClient := client.NewClient(config, appLogger)
	extractor := service.NewExtractor(appLogger)

	desk := study.NewDesk(
		extractor,
		generationClient,
		appLogger,
		domain.PageSelector(config.GetExtractMode()),
		config.GetDefaultNumCards(),
		config.GetDefaultNumQuestions(),
	)

	return &Container{
		Config:           config,
		Logger:           appLogger,
		GenerationClient: generationClient,
		Extractor:        extractor,
		Desk:             desk,
	}
}
