package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drink-retail-manager/internal/models"
)

func TestBrandRepository_GetOrCreateByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBrandRepository(db)

	first, err := repo.GetOrCreateByName("Mahou", "ES")
	require.NoError(t, err)
	assert.NotZero(t, first)

	// Resolving the same name again returns the same row
	second, err := repo.GetOrCreateByName("Mahou", "ES")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := repo.GetOrCreateByName("Guinness", "IE")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)

	brands, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, brands, 2)
}

func TestBrandRepository_GetOrCreateByName_Invalid(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBrandRepository(db)

	_, err := repo.GetOrCreateByName("", "")
	assert.Error(t, err)

	_, err = repo.GetOrCreateByName("   ", "")
	assert.Error(t, err)
}

func TestDrinkTypeRepository_GetOrCreateByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDrinkTypeRepository(db)

	first, err := repo.GetOrCreateByName("Lager")
	require.NoError(t, err)

	second, err := repo.GetOrCreateByName("Lager")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	loaded, err := repo.GetByID(first)
	require.NoError(t, err)
	assert.Equal(t, "Lager", loaded.Name)
}

func TestCountryRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCountryRepository(db)

	require.NoError(t, repo.Create(&models.Country{Code: "ES", Name: "Spain"}))
	require.NoError(t, repo.Create(&models.Country{Code: "DE", Name: "Germany"}))

	country, err := repo.GetByCode("ES")
	require.NoError(t, err)
	assert.Equal(t, "Spain", country.Name)

	_, err = repo.GetByCode("XX")
	assert.ErrorIs(t, err, models.ErrCountryNotFound)

	countries, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, countries, 2)
	// Ordered by name, not code
	assert.Equal(t, "DE", countries[0].Code)
}

func TestDrinkRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDrinkRepository(db)

	drink := createTestDrink(t, db, "Voll-Damm", 2.10)
	assert.NotZero(t, drink.ID)

	loaded, err := repo.GetByID(drink.ID)
	require.NoError(t, err)
	assert.Equal(t, "Voll-Damm", loaded.Name)
	assert.InDelta(t, 2.10, loaded.Price, 0.001)

	loaded.Price = 2.40
	loaded.Description = "Doble malta"
	require.NoError(t, repo.Update(loaded))

	reloaded, err := repo.GetByID(drink.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2.40, reloaded.Price, 0.001)
	assert.Equal(t, "Doble malta", reloaded.Description)

	require.NoError(t, repo.Delete(drink.ID))
	_, err = repo.GetByID(drink.ID)
	assert.ErrorIs(t, err, models.ErrDrinkNotFound)
	assert.ErrorIs(t, repo.Delete(drink.ID), models.ErrDrinkNotFound)
}

func TestDrinkRepository_SearchByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDrinkRepository(db)

	createTestDrink(t, db, "Estrella Damm", 1.80)
	createTestDrink(t, db, "Estrella Galicia", 1.70)
	createTestDrink(t, db, "Voll-Damm", 2.10)

	// Case-insensitive substring match
	results, err := repo.SearchByName("estrella")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = repo.SearchByName("DAMM")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = repo.SearchByName("vermouth")
	require.NoError(t, err)
	assert.Empty(t, results)
}
