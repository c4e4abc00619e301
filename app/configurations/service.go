package configurations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/joefazee/countryconfig/internal/cache"
	"github.com/joefazee/countryconfig/internal/logger"
	"github.com/joefazee/countryconfig/models"
)

const cacheKeyPrefix = "country_config:"

// service implements the Service interface
type service struct {
	repo     Repository
	cache    cache.Cache[models.CountryConfig]
	cacheTTL time.Duration
	logger   logger.Logger
}

// NewService creates a new country configuration service. A nil cache disables caching.
func NewService(repo Repository, c cache.Cache[models.CountryConfig], ttl time.Duration, log logger.Logger) Service {
	if c == nil {
		c = cache.NoopCache[models.CountryConfig]{}
	}
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &service{
		repo:     repo,
		cache:    c,
		cacheTTL: ttl,
		logger:   log,
	}
}

func cacheKey(code string) string {
	return cacheKeyPrefix + code
}

// CreateConfiguration stores a new configuration for the requested country
func (s *service) CreateConfiguration(ctx context.Context, req *CreateConfigurationRequest) (*ConfigurationResponse, error) {
	config := &models.CountryConfig{
		CountryCode:  models.NormalizeCountryCode(req.CountryCode),
		BusinessName: req.BusinessName,
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, config); err != nil {
		if errors.Is(err, models.ErrDuplicateCountryCode) {
			return nil, models.ErrDuplicateCountryCode
		}
		return nil, fmt.Errorf("create configuration %s: %w", config.CountryCode, err)
	}

	s.store(ctx, config)
	return ToConfigurationResponse(config), nil
}

// GetConfiguration returns the configuration of a country
func (s *service) GetConfiguration(ctx context.Context, code string) (*ConfigurationResponse, error) {
	code = models.NormalizeCountryCode(code)

	if cached, err := s.cache.Get(ctx, cacheKey(code)); err == nil {
		return ToConfigurationResponse(&cached), nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Error(err, map[string]interface{}{"op": "cache_get", "country_code": code})
	}

	config, err := s.find(ctx, code)
	if err != nil {
		return nil, err
	}

	s.store(ctx, config)
	return ToConfigurationResponse(config), nil
}

// UpdateConfiguration applies the supplied fields of req and returns the refreshed record
func (s *service) UpdateConfiguration(ctx context.Context, code string, req UpdateConfigurationRequest) (*ConfigurationResponse, error) {
	code = models.NormalizeCountryCode(code)

	config, err := s.find(ctx, code)
	if err != nil {
		return nil, err
	}

	changes := make(map[string]interface{})
	if req.BusinessName != nil {
		config.BusinessName = *req.BusinessName
		changes["business_name"] = *req.BusinessName
	}

	if len(changes) == 0 {
		return ToConfigurationResponse(config), nil
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, config, changes); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, fmt.Errorf("update configuration %s: %w", code, err)
	}

	// evict only once the row is committed so a concurrent read cannot re-cache the old value
	s.evict(ctx, code)

	refreshed, err := s.find(ctx, code)
	if err != nil {
		return nil, err
	}

	s.store(ctx, refreshed)
	return ToConfigurationResponse(refreshed), nil
}

func (s *service) find(ctx context.Context, code string) (*models.CountryConfig, error) {
	config, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, fmt.Errorf("get configuration %s: %w", code, err)
	}
	return config, nil
}

// store and evict never fail the request; the database stays authoritative.
func (s *service) store(ctx context.Context, config *models.CountryConfig) {
	if err := s.cache.Set(ctx, cacheKey(config.CountryCode), *config, s.cacheTTL); err != nil {
		s.logger.Error(err, map[string]interface{}{"op": "cache_set", "country_code": config.CountryCode})
	}
}

func (s *service) evict(ctx context.Context, code string) {
	if err := s.cache.Delete(ctx, cacheKey(code)); err != nil {
		s.logger.Error(err, map[string]interface{}{"op": "cache_delete", "country_code": code})
	}
}
