package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// CountryCodeLength is the length of an ISO 3166-1 alpha-2 code
	CountryCodeLength = 2
	// MaxBusinessNameLength mirrors the varchar size of business_name
	MaxBusinessNameLength = 255
)

// CountryConfig holds the business configuration of a single country
type CountryConfig struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CountryCode  string    `gorm:"type:varchar(2);not null;uniqueIndex" json:"country_code"` // ISO 3166-1 alpha-2
	BusinessName string    `gorm:"type:varchar(255)" json:"business_name"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for CountryConfig model
func (*CountryConfig) TableName() string {
	return "country_config"
}

// NormalizeCountryCode trims and upper-cases a country code the way it is stored
func NormalizeCountryCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate performs validation on the country configuration model
func (c *CountryConfig) Validate() error {
	if len(c.CountryCode) != CountryCodeLength || c.CountryCode != strings.ToUpper(c.CountryCode) {
		return ErrInvalidCountryCode
	}
	for _, r := range c.CountryCode {
		if r < 'A' || r > 'Z' {
			return ErrInvalidCountryCode
		}
	}
	if strings.TrimSpace(c.BusinessName) == "" ||
		utf8.RuneCountInString(c.BusinessName) > MaxBusinessNameLength {
		return ErrInvalidBusinessName
	}
	return nil
}
