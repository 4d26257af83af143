package models

import (
	"errors"
	"strings"
)

// Country represents a country of origin for drinks and brands
type Country struct {
	Code string `json:"code" db:"country_code"`
	Name string `json:"name" db:"name"`
}

// Validate validates the country data
func (c *Country) Validate() error {
	if c.Code == "" {
		return errors.New("country code is required")
	}

	if len(c.Code) > 3 {
		return errors.New("country code must be at most 3 characters")
	}

	if c.Code != strings.ToUpper(c.Code) {
		return errors.New("country code must be uppercase")
	}

	if strings.TrimSpace(c.Name) == "" {
		return errors.New("country name is required")
	}

	return nil
}
