package repositories

import (
	"database/sql"
	"fmt"

	"drink-retail-manager/internal/models"
)

// BrandRepository handles brand data operations
type BrandRepository struct {
	db *sql.DB
}

// NewBrandRepository creates a new brand repository
func NewBrandRepository(db *sql.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// Create inserts a new brand and sets its generated ID
func (r *BrandRepository) Create(brand *models.Brand) error {
	if err := brand.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	result, err := r.db.Exec(
		"INSERT INTO brands (name, country_code) VALUES (?, ?)",
		brand.Name, brand.CountryCode,
	)
	if err != nil {
		return fmt.Errorf("failed to create brand: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get brand id: %w", err)
	}
	brand.ID = int(id)

	return nil
}

// GetByID retrieves a brand by ID
func (r *BrandRepository) GetByID(id int) (*models.Brand, error) {
	brand := &models.Brand{}
	err := r.db.QueryRow(
		"SELECT brand_id, name, country_code FROM brands WHERE brand_id = ?",
		id,
	).Scan(&brand.ID, &brand.Name, &brand.CountryCode)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrBrandNotFound
		}
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	return brand, nil
}

// GetAll retrieves all brands ordered by name
func (r *BrandRepository) GetAll() ([]*models.Brand, error) {
	rows, err := r.db.Query("SELECT brand_id, name, country_code FROM brands ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to get brands: %w", err)
	}
	defer rows.Close()

	var brands []*models.Brand
	for rows.Next() {
		brand := &models.Brand{}
		if err := rows.Scan(&brand.ID, &brand.Name, &brand.CountryCode); err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, brand)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating brands: %w", err)
	}

	return brands, nil
}

// GetOrCreateByName resolves a brand name to its ID, inserting the brand on
// first use. A single upsert keyed on the unique name keeps the operation
// idempotent.
func (r *BrandRepository) GetOrCreateByName(name, countryCode string) (int, error) {
	if err := (&models.Brand{Name: name, CountryCode: countryCode}).Validate(); err != nil {
		return 0, fmt.Errorf("validation failed: %w", err)
	}

	var id int
	err := r.db.QueryRow(`
		INSERT INTO brands (name, country_code) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET name = excluded.name
		RETURNING brand_id`,
		name, countryCode,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to get or create brand: %w", err)
	}

	return id, nil
}

// Update updates a brand
func (r *BrandRepository) Update(brand *models.Brand) error {
	if err := brand.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	result, err := r.db.Exec(
		"UPDATE brands SET name = ?, country_code = ? WHERE brand_id = ?",
		brand.Name, brand.CountryCode, brand.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update brand: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrBrandNotFound
	}

	return nil
}

// Delete deletes a brand
func (r *BrandRepository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM brands WHERE brand_id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrBrandNotFound
	}

	return nil
}
