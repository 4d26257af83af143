package models

import (
	"errors"
	"strings"
)

// Brand represents a drink brand
type Brand struct {
	ID          int    `json:"id" db:"brand_id"`
	Name        string `json:"name" db:"name"`
	CountryCode string `json:"country_code" db:"country_code"`
}

// Validate validates the brand data
func (b *Brand) Validate() error {
	return validateBrandName(b.Name)
}

// validateBrandName validates a brand name
func validateBrandName(name string) error {
	if name == "" {
		return errors.New("brand name is required")
	}

	if len(name) > 100 {
		return errors.New("brand name must be less than 100 characters")
	}

	if strings.TrimSpace(name) == "" {
		return errors.New("brand name cannot be only whitespace")
	}

	return nil
}
