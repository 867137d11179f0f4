package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BelugaDiver/foreman/config"
	"github.com/BelugaDiver/foreman/internal/controller/restapi"
	"github.com/BelugaDiver/foreman/internal/repo"
	"github.com/BelugaDiver/foreman/internal/repo/persistent"
	"github.com/BelugaDiver/foreman/internal/usecase"
	"github.com/BelugaDiver/foreman/internal/usecase/request"
	"github.com/BelugaDiver/foreman/pkg/container"
	"github.com/BelugaDiver/foreman/pkg/httpserver"
	"github.com/BelugaDiver/foreman/pkg/logger"
	"github.com/BelugaDiver/foreman/pkg/postgres"
)

func Run(cfg *config.Config) {
	// Logger
	l := logger.New(cfg.Log.Level)

	// Repository

	// postgres
	if cfg.DB.URL == "" {
		l.Warn("DATABASE_URL is not configured; starting with database helpers disabled")
	}

	if cfg.DB.PoolMaxSize < cfg.DB.PoolMinSize {
		l.Warn("DB_POOL_MAX_SIZE (%d) is smaller than DB_POOL_MIN_SIZE (%d); using min value",
			cfg.DB.PoolMaxSize, cfg.DB.PoolMinSize)
	}

	pg, err := postgres.New(cfg.DB.URL,
		postgres.MinPoolSize(cfg.DB.PoolMinSize),
		postgres.MaxPoolSize(cfg.DB.PoolMaxSize),
		postgres.CommandTimeout(cfg.DB.CommandTimeout),
		postgres.AcquireTimeout(cfg.DB.AcquireTimeout),
	)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pg.Close()

	// Dependency container
	requestRepo := persistent.NewRequestRepo(pg)
	requestUseCase := request.New(requestRepo, pg, l)

	c := container.New()
	container.Register[logger.Interface](c, container.Singleton, func() logger.Interface { return l })
	container.Register[repo.RequestRepo](c, container.Singleton, func() repo.RequestRepo { return requestRepo })
	container.Register[repo.Transactor](c, container.Singleton, func() repo.Transactor { return pg })
	container.Register[usecase.Request](c, container.Singleton, func() usecase.Request { return requestUseCase })

	// HTTP Server
	httpServer := httpserver.New(l, httpserver.Port(cfg.HTTP.Port), httpserver.Prefork(cfg.HTTP.UsePreforkMode))

	err = restapi.NewRouter(httpServer.App, cfg, c, pg, l)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - restapi.NewRouter: %w", err))
	}

	// Start Components
	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}
