package main

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/countryconfig/app"
	"github.com/joefazee/countryconfig/app/api"
	"github.com/joefazee/countryconfig/app/configurations"
	"github.com/joefazee/countryconfig/app/database"
	apiDoc "github.com/joefazee/countryconfig/app/doc"
	"github.com/joefazee/countryconfig/internal/deps"
	"github.com/joefazee/countryconfig/internal/router"
)

func newEngine(cfg *app.Config, container *deps.Container) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(api.RequestID(), api.RequestLogger(container.Logger), gin.Recovery(), api.CorsMiddleware())

	r.GET("/healthz", api.HealthCheck(cfg.Env, func(ctx context.Context) error {
		return database.Ping(ctx, container.DB)
	}))
	apiDoc.Init(r, cfg.Env, cfg.Addr())

	configurations.InitRepositories(container)
	router.NewMounter(container).Root(r).Mount(configurations.Mount)

	return r
}
