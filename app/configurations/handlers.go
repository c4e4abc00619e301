package configurations

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/countryconfig/app/api"
	"github.com/joefazee/countryconfig/internal/logger"
	"github.com/joefazee/countryconfig/internal/sanitizer"
	"github.com/joefazee/countryconfig/internal/validator"
	"github.com/joefazee/countryconfig/models"
)

// Handler handles HTTP requests for country configurations
type Handler struct {
	service   Service
	sanitizer sanitizer.HTMLStripperer
	logger    logger.Logger
}

// NewHandler creates a new configuration handler
func NewHandler(service Service, sanitizer sanitizer.HTMLStripperer, logger logger.Logger) *Handler {
	return &Handler{
		service:   service,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

// CreateConfiguration godoc
// @Summary Create a country configuration
// @Description Store the business configuration of a country that has none yet
// @Tags configurations
// @Accept json
// @Produce json
// @Param request body CreateConfigurationRequest true "Configuration creation request"
// @Success 201 {object} api.Response{data=ConfigurationResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /create_configuration [post]
func (h *Handler) CreateConfiguration(c *gin.Context) {
	var req CreateConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !req.SanitizeAndValidate(v, h.sanitizer) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	config, err := h.service.CreateConfiguration(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateCountryCode):
			api.ConflictResponse(c, fmt.Sprintf("Country configuration for %s already exists", req.CountryCode))
		case errors.Is(err, models.ErrInvalidCountryCode), errors.Is(err, models.ErrInvalidBusinessName):
			api.ValidationErrorResponse(c, err.Error())
		default:
			h.logger.Error(err, map[string]interface{}{
				"handler":      "CreateConfiguration",
				"country_code": req.CountryCode,
				"request_id":   api.GetRequestID(c),
			})
			api.InternalErrorResponse(c, "Failed to create configuration")
		}
		return
	}

	api.CreatedResponse(c, "Configuration created successfully", config)
}

// GetConfiguration godoc
// @Summary Get a country configuration
// @Description Get the business configuration stored for a country code
// @Tags configurations
// @Accept json
// @Produce json
// @Param country_code path string true "Country code (ISO 3166-1 alpha-2)"
// @Success 200 {object} api.Response{data=ConfigurationResponse}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /get_configuration/{country_code} [get]
func (h *Handler) GetConfiguration(c *gin.Context) {
	code := models.NormalizeCountryCode(c.Param("country_code"))

	config, err := h.service.GetConfiguration(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Country "+code)
			return
		}
		h.logger.Error(err, map[string]interface{}{
			"handler":      "GetConfiguration",
			"country_code": code,
			"request_id":   api.GetRequestID(c),
		})
		api.InternalErrorResponse(c, "Failed to fetch configuration")
		return
	}

	api.SuccessResponse(c, 200, "Configuration retrieved successfully", config)
}

// UpdateConfiguration godoc
// @Summary Update a country configuration
// @Description Change the supplied fields of an existing configuration; omitted fields keep their value
// @Tags configurations
// @Accept json
// @Produce json
// @Param country_code path string true "Country code (ISO 3166-1 alpha-2)"
// @Param request body UpdateConfigurationRequest true "Configuration update request"
// @Success 200 {object} api.Response{data=ConfigurationResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /update_configuration/{country_code} [post]
func (h *Handler) UpdateConfiguration(c *gin.Context) {
	code := models.NormalizeCountryCode(c.Param("country_code"))

	var req UpdateConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !req.SanitizeAndValidate(v, h.sanitizer) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	config, err := h.service.UpdateConfiguration(c.Request.Context(), code, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Country "+code)
		case errors.Is(err, models.ErrInvalidBusinessName):
			api.ValidationErrorResponse(c, err.Error())
		default:
			h.logger.Error(err, map[string]interface{}{
				"handler":      "UpdateConfiguration",
				"country_code": code,
				"request_id":   api.GetRequestID(c),
			})
			api.InternalErrorResponse(c, "Failed to update configuration")
		}
		return
	}

	api.UpdatedResponse(c, "Configuration updated successfully", config)
}
