package configurations

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/countryconfig/internal/deps"
)

const (
	ConfigurationRepoKey = "configuration_repository"
)

// Mount mounts the country configuration routes
func Mount(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	r.POST("/create_configuration", handler.CreateConfiguration)
	r.GET("/get_configuration/:country_code", handler.GetConfiguration)
	r.POST("/update_configuration/:country_code", handler.UpdateConfiguration)
}

// InitRepositories initializes and registers repositories for this module
func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(ConfigurationRepoKey, repo)
}

func createHandler(container *deps.Container) *Handler {
	repo, ok := container.GetRepository(ConfigurationRepoKey).(Repository)
	if !ok {
		repo = NewRepository(container.DB)
		container.RegisterRepository(ConfigurationRepoKey, repo)
	}

	service := NewService(repo, container.Cache, container.CacheTTL, container.Logger)

	return NewHandler(service, container.Sanitizer, container.Logger)
}
