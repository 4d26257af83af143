package repositories

import (
	"database/sql"
	"fmt"

	"drink-retail-manager/internal/models"
)

// CountryRepository handles country data operations
type CountryRepository struct {
	db *sql.DB
}

// NewCountryRepository creates a new country repository
func NewCountryRepository(db *sql.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

// Create inserts a new country
func (r *CountryRepository) Create(country *models.Country) error {
	if err := country.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	_, err := r.db.Exec(
		"INSERT INTO countries (country_code, name) VALUES (?, ?)",
		country.Code, country.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to create country: %w", err)
	}

	return nil
}

// GetByCode retrieves a country by its code
func (r *CountryRepository) GetByCode(code string) (*models.Country, error) {
	country := &models.Country{}
	err := r.db.QueryRow(
		"SELECT country_code, name FROM countries WHERE country_code = ?",
		code,
	).Scan(&country.Code, &country.Name)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrCountryNotFound
		}
		return nil, fmt.Errorf("failed to get country: %w", err)
	}

	return country, nil
}

// GetAll retrieves all countries ordered by name
func (r *CountryRepository) GetAll() ([]*models.Country, error) {
	rows, err := r.db.Query("SELECT country_code, name FROM countries ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to get countries: %w", err)
	}
	defer rows.Close()

	var countries []*models.Country
	for rows.Next() {
		country := &models.Country{}
		if err := rows.Scan(&country.Code, &country.Name); err != nil {
			return nil, fmt.Errorf("failed to scan country: %w", err)
		}
		countries = append(countries, country)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating countries: %w", err)
	}

	return countries, nil
}
