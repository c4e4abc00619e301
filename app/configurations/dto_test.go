package configurations

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joefazee/countryconfig/internal/sanitizer"
	"github.com/joefazee/countryconfig/internal/validator"
	"github.com/joefazee/countryconfig/models"
)

func TestCreateConfigurationRequest_SanitizeAndValidate(t *testing.T) {
	s := sanitizer.NewHTMLStripper()

	req := &CreateConfigurationRequest{CountryCode: " vn ", BusinessName: " <i>Cogo & Co</i> "}
	v := validator.New()
	assert.True(t, req.SanitizeAndValidate(v, s))
	assert.Equal(t, "VN", req.CountryCode)
	assert.Equal(t, "Cogo & Co", req.BusinessName)

	req = &CreateConfigurationRequest{CountryCode: "QQ", BusinessName: strings.Repeat("a", 256)}
	v = validator.New()
	assert.False(t, req.SanitizeAndValidate(v, s))
	assert.Contains(t, v.Errors, "country_code")
	assert.Contains(t, v.Errors, "business_name")

	// multi-byte names are limited by characters, not bytes
	req = &CreateConfigurationRequest{CountryCode: "CN", BusinessName: strings.Repeat("货", 255)}
	assert.True(t, req.SanitizeAndValidate(validator.New(), s))

	// regions without a dialling plan are still valid country codes
	req = &CreateConfigurationRequest{CountryCode: "aq", BusinessName: "Cogo Antarctica"}
	assert.True(t, req.SanitizeAndValidate(validator.New(), s))
	assert.Equal(t, "AQ", req.CountryCode)
}

func TestCreateConfigurationRequest_SanitizeAndValidate_EncodedMarkup(t *testing.T) {
	s := sanitizer.NewHTMLStripper()

	req := &CreateConfigurationRequest{CountryCode: "NG", BusinessName: "&lt;script&gt;alert(1)&lt;/script&gt;"}
	v := validator.New()
	assert.False(t, req.SanitizeAndValidate(v, s))
	assert.NotContains(t, req.BusinessName, "<")
	assert.Equal(t, "business_name must not be blank", v.Errors["business_name"])

	req = &CreateConfigurationRequest{CountryCode: "NG", BusinessName: "Cogo &lt;b&gt;Freight&lt;/b&gt;"}
	assert.True(t, req.SanitizeAndValidate(validator.New(), s))
	assert.Equal(t, "Cogo Freight", req.BusinessName)
	assert.NotContains(t, req.BusinessName, "<")
}

func TestUpdateConfigurationRequest_SanitizeAndValidate(t *testing.T) {
	s := new(sanitizer.MockSanitizer)
	s.On("StripHTML", "<b>New</b>").Return("New")

	assert.True(t, (&UpdateConfigurationRequest{}).SanitizeAndValidate(validator.New(), s))

	name := "<b>New</b>"
	req := &UpdateConfigurationRequest{BusinessName: &name}
	assert.True(t, req.SanitizeAndValidate(validator.New(), s))
	assert.Equal(t, "New", *req.BusinessName)
	assert.Equal(t, "<b>New</b>", name)
	s.AssertExpectations(t)

	s.On("StripHTML", " ").Return(" ")
	blank := " "
	v := validator.New()
	assert.False(t, (&UpdateConfigurationRequest{BusinessName: &blank}).SanitizeAndValidate(v, s))
	assert.Equal(t, "business_name must not be blank", v.Errors["business_name"])
}

func TestToConfigurationResponse(t *testing.T) {
	now := time.Now()
	resp := ToConfigurationResponse(&models.CountryConfig{
		ID: 2, CountryCode: "IN", BusinessName: "Cogo India", CreatedAt: now, UpdatedAt: now,
	})

	assert.Equal(t, &ConfigurationResponse{
		ID: 2, CountryCode: "IN", BusinessName: "Cogo India", CreatedAt: now, UpdatedAt: now,
	}, resp)
}
