package models

import (
	"errors"
	"strings"
)

// Drink represents a sellable beverage in the catalog
type Drink struct {
	ID             int     `json:"id" db:"drink_id"`
	Name           string  `json:"name" db:"name"`
	TypeID         int     `json:"type_id" db:"type_id"`
	BrandID        int     `json:"brand_id" db:"brand_id"`
	CountryCode    string  `json:"country_code" db:"country_code"`
	AlcoholContent float64 `json:"alcohol_content" db:"alcohol_content"`
	Description    string  `json:"description" db:"description"`
	Volume         float64 `json:"volume" db:"volume"`
	Price          float64 `json:"price" db:"price"`
	Image          []byte  `json:"-" db:"image"`
}

// Validate validates the drink data
func (d *Drink) Validate() error {
	if err := validateDrinkName(d.Name); err != nil {
		return err
	}

	if err := validateDrinkPrice(d.Price); err != nil {
		return err
	}

	if err := validateDrinkVolume(d.Volume); err != nil {
		return err
	}

	if err := validateAlcoholContent(d.AlcoholContent); err != nil {
		return err
	}

	if len(d.Description) > 1000 {
		return errors.New("drink description must be less than 1000 characters")
	}

	return nil
}

// validateDrinkName validates a drink name
func validateDrinkName(name string) error {
	if name == "" {
		return errors.New("drink name is required")
	}

	if len(name) > 100 {
		return errors.New("drink name must be less than 100 characters")
	}

	if strings.TrimSpace(name) == "" {
		return errors.New("drink name cannot be only whitespace")
	}

	return nil
}

// validateDrinkPrice validates a drink unit price
func validateDrinkPrice(price float64) error {
	if price < 0 {
		return errors.New("drink price cannot be negative")
	}

	return nil
}

// validateDrinkVolume validates a drink volume
func validateDrinkVolume(volume float64) error {
	if volume < 0 {
		return errors.New("drink volume cannot be negative")
	}

	return nil
}

// validateAlcoholContent validates an alcohol content percentage
func validateAlcoholContent(content float64) error {
	if content < 0 || content > 100 {
		return errors.New("alcohol content must be between 0 and 100")
	}

	return nil
}
