package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BelugaDiver/foreman/config"
	"github.com/BelugaDiver/foreman/internal/controller/restapi/v1/response"
	"github.com/BelugaDiver/foreman/pkg/postgres"
)

type Health struct {
	cfg *config.Config
	pg  *postgres.Postgres
}

// NewHealthRoutes serves / and /health. The service reports healthy even when
// the database is absent; the database field tells the two states apart.
func NewHealthRoutes(app *fiber.App, cfg *config.Config, pg *postgres.Postgres) {
	h := &Health{cfg: cfg, pg: pg}

	app.Get("/", h.check)
	app.Get("/health", h.check)
}

// @Summary 	Health check
// @Tags 		health
// @Produce 	json
// @Success 	200 {object} response.Health
// @Router 		/health [get]
func (h *Health) check(ctx *fiber.Ctx) error {
	database := "unavailable"
	if h.pg.Available() {
		database = "available"
	}

	return ctx.JSON(response.Health{
		Status:   "healthy",
		Version:  h.cfg.App.Version,
		Service:  h.cfg.App.Name,
		Database: database,
	})
}
