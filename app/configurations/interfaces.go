package configurations

import (
	"context"

	"github.com/joefazee/countryconfig/models"
)

// Repository defines the interface for country configuration data access
type Repository interface {
	GetByCode(ctx context.Context, code string) (*models.CountryConfig, error)
	Create(ctx context.Context, config *models.CountryConfig) error
	Update(ctx context.Context, config *models.CountryConfig, changes map[string]interface{}) error
}

// Service defines the interface for country configuration business logic
type Service interface {
	CreateConfiguration(ctx context.Context, req *CreateConfigurationRequest) (*ConfigurationResponse, error)
	GetConfiguration(ctx context.Context, code string) (*ConfigurationResponse, error)
	UpdateConfiguration(ctx context.Context, code string, req UpdateConfigurationRequest) (*ConfigurationResponse, error)
}
