package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/joefazee/countryconfig/models"
)

// MockConfigurationRepository is a testify mock of configurations.Repository
type MockConfigurationRepository struct {
	mock.Mock
}

func (m *MockConfigurationRepository) GetByCode(ctx context.Context, code string) (*models.CountryConfig, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CountryConfig), args.Error(1)
}

func (m *MockConfigurationRepository) Create(ctx context.Context, config *models.CountryConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockConfigurationRepository) Update(ctx context.Context, config *models.CountryConfig, changes map[string]interface{}) error {
	args := m.Called(ctx, config, changes)
	return args.Error(0)
}
