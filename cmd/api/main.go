package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joefazee/countryconfig/app"
	"github.com/joefazee/countryconfig/app/database"
	"github.com/joefazee/countryconfig/internal/cache"
	"github.com/joefazee/countryconfig/internal/deps"
	"github.com/joefazee/countryconfig/internal/logger"
	"github.com/joefazee/countryconfig/internal/nexus"
	"github.com/joefazee/countryconfig/internal/sanitizer"
	"github.com/joefazee/countryconfig/models"

	_ "github.com/joefazee/countryconfig/docs"
)

// @title Country Configuration API
// @version 1.0
// @description Create, read and update the business configuration of each country.

// @contact.name API Support Team

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	configFile := flag.String("config", "", "optional .env or yaml configuration file")
	host := flag.String("host", "", "listen host, overrides APP_HOST")
	port := flag.String("port", "", "listen port, overrides APP_PORT")
	flag.Parse()

	opts := []nexus.LoaderOption{nexus.WithOverrides(&app.Config{AppHost: *host, AppPort: *port})}
	if *configFile != "" {
		opts = append(opts, nexus.WithFileName(*configFile))
	}

	cfg, err := app.LoadConfig(opts...)
	if err != nil {
		logger.NewZeroLogger(os.Stderr, logger.LevelInfo, nil).
			Fatal(err, map[string]interface{}{"stage": "config"})
	}

	log := logger.NewZeroLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel), logger.Fields{
		"service": "country-config",
		"env":     cfg.Env,
	})

	if err := run(cfg, log); err != nil {
		log.Fatal(err, nil)
	}
}

func run(cfg *app.Config, log logger.Logger) error {
	db, err := database.New(&cfg.DB)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error(err, map[string]interface{}{"stage": "shutdown"})
		}
	}()

	configCache, err := cache.New[models.CountryConfig](&cfg.Cache)
	if err != nil {
		return err
	}
	defer stopCache(configCache, log)

	if rc, ok := configCache.(*cache.RedisCache[models.CountryConfig]); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rc.Ping(ctx); err != nil {
			log.Error(err, map[string]interface{}{"stage": "cache", "message": "redis unreachable, continuing with database reads"})
		}
		cancel()
	}

	container := deps.NewContainer(db, sanitizer.NewHTMLStripper(), log, configCache, cfg.Cache.TTL)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newEngine(cfg, container),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]interface{}{"addr": srv.Addr, "cache": cfg.Cache.Backend})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", map[string]interface{}{"timeout": cfg.ShutdownTimeout.String()})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func stopCache(c cache.Cache[models.CountryConfig], log logger.Logger) {
	switch backend := c.(type) {
	case *cache.MemoryCache[models.CountryConfig]:
		backend.Stop()
	case io.Closer:
		if err := backend.Close(); err != nil {
			log.Error(err, map[string]interface{}{"stage": "shutdown"})
		}
	}
}
