package configurations

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/joefazee/countryconfig/models"
)

// uniqueViolation is the postgres SQLSTATE for unique_violation
const uniqueViolation = "23505"

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new country configuration repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// GetByCode returns the configuration stored for code
func (r *repository) GetByCode(ctx context.Context, code string) (*models.CountryConfig, error) {
	var config models.CountryConfig
	err := r.db.WithContext(ctx).Where("country_code = ?", code).First(&config).Error
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create inserts config and fills in its generated columns
func (r *repository) Create(ctx context.Context, config *models.CountryConfig) error {
	err := r.db.WithContext(ctx).Create(config).Error
	if isUniqueViolation(err) {
		return models.ErrDuplicateCountryCode
	}
	return err
}

// Update writes only the columns named in changes for the row identified by config.ID
func (r *repository) Update(ctx context.Context, config *models.CountryConfig, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).Model(config).Updates(changes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
