package configurations

import (
	"strings"
	"time"

	"github.com/joefazee/countryconfig/internal/sanitizer"
	"github.com/joefazee/countryconfig/internal/validator"
	"github.com/joefazee/countryconfig/models"
)

// CreateConfigurationRequest represents the request to create a country configuration
type CreateConfigurationRequest struct {
	CountryCode  string `json:"country_code" example:"NG"`
	BusinessName string `json:"business_name" example:"Cogo Freight Nigeria"`
}

// SanitizeAndValidate normalizes the request in place and records field errors on v.
func (r *CreateConfigurationRequest) SanitizeAndValidate(v *validator.Validator, s sanitizer.HTMLStripperer) bool {
	r.CountryCode = models.NormalizeCountryCode(r.CountryCode)
	r.BusinessName = strings.TrimSpace(s.StripHTML(r.BusinessName))

	v.Check(r.CountryCode != "", "country_code", "country_code is required")
	v.Check(validator.IsCountryCode(r.CountryCode), "country_code", "country_code must be an ISO 3166-1 alpha-2 code")
	checkBusinessName(v, r.BusinessName)

	return v.Valid()
}

// UpdateConfigurationRequest represents the request to update a country configuration.
// Fields left out of the body keep their stored value.
type UpdateConfigurationRequest struct {
	BusinessName *string `json:"business_name,omitempty" example:"Cogo Freight"`
}

// SanitizeAndValidate normalizes the supplied fields and records field errors on v.
func (r *UpdateConfigurationRequest) SanitizeAndValidate(v *validator.Validator, s sanitizer.HTMLStripperer) bool {
	if r.BusinessName != nil {
		name := strings.TrimSpace(s.StripHTML(*r.BusinessName))
		r.BusinessName = &name
		checkBusinessName(v, name)
	}

	return v.Valid()
}

func checkBusinessName(v *validator.Validator, name string) {
	v.Check(validator.NotBlank(name), "business_name", "business_name must not be blank")
	v.Check(validator.MaxRunes(name, models.MaxBusinessNameLength), "business_name", "business_name must not exceed 255 characters")
}

// ConfigurationResponse represents a stored country configuration
type ConfigurationResponse struct {
	ID           uint      `json:"id" example:"1"`
	CountryCode  string    `json:"country_code" example:"NG"`
	BusinessName string    `json:"business_name" example:"Cogo Freight Nigeria"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToConfigurationResponse converts a models.CountryConfig to ConfigurationResponse
func ToConfigurationResponse(config *models.CountryConfig) *ConfigurationResponse {
	return &ConfigurationResponse{
		ID:           config.ID,
		CountryCode:  config.CountryCode,
		BusinessName: config.BusinessName,
		CreatedAt:    config.CreatedAt,
		UpdatedAt:    config.UpdatedAt,
	}
}
