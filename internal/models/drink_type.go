package models

import (
	"errors"
	"strings"
)

// DrinkType represents a category of drinks (beer, wine, whisky, ...)
type DrinkType struct {
	ID          int    `json:"id" db:"type_id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

// Validate validates the drink type data
func (dt *DrinkType) Validate() error {
	if err := validateDrinkTypeName(dt.Name); err != nil {
		return err
	}

	if len(dt.Description) > 1000 {
		return errors.New("drink type description must be less than 1000 characters")
	}

	return nil
}

// validateDrinkTypeName validates a drink type name
func validateDrinkTypeName(name string) error {
	if name == "" {
		return errors.New("drink type name is required")
	}

	if len(name) > 100 {
		return errors.New("drink type name must be less than 100 characters")
	}

	if strings.TrimSpace(name) == "" {
		return errors.New("drink type name cannot be only whitespace")
	}

	return nil
}
