package repositories

import (
	"database/sql"
	"fmt"

	"drink-retail-manager/internal/models"
)

// DrinkRepository handles drink catalog data operations
type DrinkRepository struct {
	db *sql.DB
}

// NewDrinkRepository creates a new drink repository
func NewDrinkRepository(db *sql.DB) *DrinkRepository {
	return &DrinkRepository{db: db}
}

const drinkColumns = "drink_id, name, type_id, brand_id, country_code, alcohol_content, description, volume, price, image"

// Create inserts a new drink and sets its generated ID
func (r *DrinkRepository) Create(drink *models.Drink) error {
	if err := drink.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	result, err := r.db.Exec(`
		INSERT INTO drinks (name, type_id, brand_id, country_code, alcohol_content, description, volume, price, image)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		drink.Name,
		drink.TypeID,
		drink.BrandID,
		drink.CountryCode,
		drink.AlcoholContent,
		drink.Description,
		drink.Volume,
		drink.Price,
		drink.Image,
	)
	if err != nil {
		return fmt.Errorf("failed to create drink: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get drink id: %w", err)
	}
	drink.ID = int(id)

	return nil
}

// GetByID retrieves a drink by ID
func (r *DrinkRepository) GetByID(id int) (*models.Drink, error) {
	row := r.db.QueryRow(
		"SELECT "+drinkColumns+" FROM drinks WHERE drink_id = ?",
		id,
	)

	drink, err := scanDrink(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrDrinkNotFound
		}
		return nil, fmt.Errorf("failed to get drink: %w", err)
	}

	return drink, nil
}

// GetAll retrieves all drinks ordered by name
func (r *DrinkRepository) GetAll() ([]*models.Drink, error) {
	rows, err := r.db.Query("SELECT " + drinkColumns + " FROM drinks ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to get drinks: %w", err)
	}
	defer rows.Close()

	return collectDrinks(rows)
}

// SearchByName retrieves drinks whose name contains the given substring,
// case-insensitively
func (r *DrinkRepository) SearchByName(name string) ([]*models.Drink, error) {
	rows, err := r.db.Query(
		"SELECT "+drinkColumns+" FROM drinks WHERE LOWER(name) LIKE '%' || LOWER(?) || '%' ORDER BY name",
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search drinks: %w", err)
	}
	defer rows.Close()

	return collectDrinks(rows)
}

// Update updates a drink
func (r *DrinkRepository) Update(drink *models.Drink) error {
	if err := drink.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	result, err := r.db.Exec(`
		UPDATE drinks
		SET name = ?, type_id = ?, brand_id = ?, country_code = ?, alcohol_content = ?, description = ?, volume = ?, price = ?, image = ?
		WHERE drink_id = ?`,
		drink.Name,
		drink.TypeID,
		drink.BrandID,
		drink.CountryCode,
		drink.AlcoholContent,
		drink.Description,
		drink.Volume,
		drink.Price,
		drink.Image,
		drink.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update drink: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrDrinkNotFound
	}

	return nil
}

// Delete deletes a drink
func (r *DrinkRepository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM drinks WHERE drink_id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete drink: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrDrinkNotFound
	}

	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for the drink scan helpers
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanDrink(s scanner) (*models.Drink, error) {
	drink := &models.Drink{}
	err := s.Scan(
		&drink.ID,
		&drink.Name,
		&drink.TypeID,
		&drink.BrandID,
		&drink.CountryCode,
		&drink.AlcoholContent,
		&drink.Description,
		&drink.Volume,
		&drink.Price,
		&drink.Image,
	)
	if err != nil {
		return nil, err
	}
	return drink, nil
}

func collectDrinks(rows *sql.Rows) ([]*models.Drink, error) {
	var drinks []*models.Drink
	for rows.Next() {
		drink, err := scanDrink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan drink: %w", err)
		}
		drinks = append(drinks, drink)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating drinks: %w", err)
	}

	return drinks, nil
}
