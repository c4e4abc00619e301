package models

import "errors"

var (
	ErrInvalidCountryCode   = errors.New("invalid country code")
	ErrInvalidBusinessName  = errors.New("invalid business name")
	ErrDuplicateCountryCode = errors.New("country configuration already exists")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")

	ErrRecordNotFound = errors.New("record not found")
)
