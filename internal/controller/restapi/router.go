package restapi

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/BelugaDiver/foreman/config"
	v1 "github.com/BelugaDiver/foreman/internal/controller/restapi/v1"
	"github.com/BelugaDiver/foreman/internal/usecase"
	"github.com/BelugaDiver/foreman/pkg/container"
	"github.com/BelugaDiver/foreman/pkg/logger"
	"github.com/BelugaDiver/foreman/pkg/postgres"
)

// @title Foreman
// @version 0.1.0
// @description Backend for managing image-generation requests for AI models
// @host localhost:8080
// @BasePath /v1
func NewRouter(app *fiber.App, cfg *config.Config, c *container.Container, pg *postgres.Postgres, l logger.Interface) error {
	// Swagger
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	requests, err := container.Resolve[usecase.Request](c)
	if err != nil {
		return fmt.Errorf("restapi - NewRouter - container.Resolve: %w", err)
	}

	// Health
	v1.NewHealthRoutes(app, cfg, pg)

	// Routers
	apiV1Group := app.Group("/v1")
	{
		v1.NewRequestRoutes(apiV1Group, requests, l)
	}

	return nil
}
