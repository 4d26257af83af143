package repositories

import (
	"database/sql"
	"fmt"

	"drink-retail-manager/internal/models"
)

// DrinkTypeRepository handles drink type data operations
type DrinkTypeRepository struct {
	db *sql.DB
}

// NewDrinkTypeRepository creates a new drink type repository
func NewDrinkTypeRepository(db *sql.DB) *DrinkTypeRepository {
	return &DrinkTypeRepository{db: db}
}

// Create inserts a new drink type and sets its generated ID
func (r *DrinkTypeRepository) Create(drinkType *models.DrinkType) error {
	if err := drinkType.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	result, err := r.db.Exec(
		"INSERT INTO drink_types (name, description) VALUES (?, ?)",
		drinkType.Name, drinkType.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to create drink type: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get drink type id: %w", err)
	}
	drinkType.ID = int(id)

	return nil
}

// GetByID retrieves a drink type by ID
func (r *DrinkTypeRepository) GetByID(id int) (*models.DrinkType, error) {
	drinkType := &models.DrinkType{}
	err := r.db.QueryRow(
		"SELECT type_id, name, description FROM drink_types WHERE type_id = ?",
		id,
	).Scan(&drinkType.ID, &drinkType.Name, &drinkType.Description)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrDrinkTypeNotFound
		}
		return nil, fmt.Errorf("failed to get drink type: %w", err)
	}

	return drinkType, nil
}

// GetAll retrieves all drink types ordered by name
func (r *DrinkTypeRepository) GetAll() ([]*models.DrinkType, error) {
	rows, err := r.db.Query("SELECT type_id, name, description FROM drink_types ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to get drink types: %w", err)
	}
	defer rows.Close()

	var drinkTypes []*models.DrinkType
	for rows.Next() {
		drinkType := &models.DrinkType{}
		if err := rows.Scan(&drinkType.ID, &drinkType.Name, &drinkType.Description); err != nil {
			return nil, fmt.Errorf("failed to scan drink type: %w", err)
		}
		drinkTypes = append(drinkTypes, drinkType)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating drink types: %w", err)
	}

	return drinkTypes, nil
}

// GetOrCreateByName resolves a drink type name to its ID, inserting the
// type on first use
func (r *DrinkTypeRepository) GetOrCreateByName(name string) (int, error) {
	if err := (&models.DrinkType{Name: name}).Validate(); err != nil {
		return 0, fmt.Errorf("validation failed: %w", err)
	}

	var id int
	err := r.db.QueryRow(`
		INSERT INTO drink_types (name) VALUES (?)
		ON CONFLICT(name) DO UPDATE SET name = excluded.name
		RETURNING type_id`,
		name,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to get or create drink type: %w", err)
	}

	return id, nil
}

// Update updates a drink type
func (r *DrinkTypeRepository) Update(drinkType *models.DrinkType) error {
	if err := drinkType.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	result, err := r.db.Exec(
		"UPDATE drink_types SET name = ?, description = ? WHERE type_id = ?",
		drinkType.Name, drinkType.Description, drinkType.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update drink type: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrDrinkTypeNotFound
	}

	return nil
}

// Delete deletes a drink type
func (r *DrinkTypeRepository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM drink_types WHERE type_id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete drink type: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrDrinkTypeNotFound
	}

	return nil
}
