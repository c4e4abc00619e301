package deps

import (
	"time"

	"gorm.io/gorm"

	"github.com/joefazee/countryconfig/internal/cache"
	"github.com/joefazee/countryconfig/internal/logger"
	"github.com/joefazee/countryconfig/internal/sanitizer"
	"github.com/joefazee/countryconfig/models"
)

// Container holds all shared dependencies
type Container struct {
	DB        *gorm.DB
	Sanitizer sanitizer.HTMLStripperer
	Logger    logger.Logger
	Cache     cache.Cache[models.CountryConfig]
	CacheTTL  time.Duration

	// Store repositories as interfaces to avoid imports
	repositories map[string]interface{}
}

func NewContainer(db *gorm.DB, sanitizer sanitizer.HTMLStripperer, logger logger.Logger,
	cache cache.Cache[models.CountryConfig], cacheTTL time.Duration) *Container {
	return &Container{
		DB:           db,
		Sanitizer:    sanitizer,
		Logger:       logger,
		Cache:        cache,
		CacheTTL:     cacheTTL,
		repositories: make(map[string]interface{}),
	}
}

// RegisterRepository stores a repository with a key
func (c *Container) RegisterRepository(key string, repo interface{}) {
	c.repositories[key] = repo
}

// GetRepository retrieves a repository by key, nil when none is registered
func (c *Container) GetRepository(key string) interface{} {
	return c.repositories[key]
}
