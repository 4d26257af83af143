package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drink-retail-manager/internal/models"
)

func TestCatalogService_CreateDrink_ResolvesNames(t *testing.T) {
	env := newTestEnv(t)

	drink, err := env.catalog.CreateDrink(env.admin, DrinkInput{
		Name:           "Estrella Damm",
		TypeName:       "Lager",
		BrandName:      "Damm",
		CountryCode:    "ES",
		AlcoholContent: 5.4,
		Volume:         0.33,
		Price:          1.80,
	})
	require.NoError(t, err)
	assert.NotZero(t, drink.ID)
	assert.NotZero(t, drink.TypeID)
	assert.NotZero(t, drink.BrandID)

	// A second drink of the same brand and type reuses the records
	other, err := env.catalog.CreateDrink(env.admin, DrinkInput{
		Name:      "Voll-Damm",
		TypeName:  "Lager",
		BrandName: "Damm",
		Price:     2.10,
	})
	require.NoError(t, err)
	assert.Equal(t, drink.TypeID, other.TypeID)
	assert.Equal(t, drink.BrandID, other.BrandID)

	brands, err := env.catalog.ListBrands()
	require.NoError(t, err)
	assert.Len(t, brands, 1)

	types, err := env.catalog.ListDrinkTypes()
	require.NoError(t, err)
	assert.Len(t, types, 1)
}

func TestCatalogService_CreateDrink_Unauthorized(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.CreateDrink(env.worker, DrinkInput{
		Name:      "Estrella Damm",
		TypeName:  "Lager",
		BrandName: "Damm",
	})
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestCatalogService_UpdateDrink(t *testing.T) {
	env := newTestEnv(t)

	drink := env.addDrink(t, "Estrella Damm", 1.80)

	updated, err := env.catalog.UpdateDrink(env.admin, drink.ID, DrinkInput{
		Name:      "Estrella Damm",
		TypeName:  "Beer",
		BrandName: "Damm",
		Price:     2.00,
	})
	require.NoError(t, err)

	loaded, err := env.catalog.GetDrink(updated.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2.00, loaded.Price, 0.001)
}

func TestCatalogService_DeleteDrink(t *testing.T) {
	env := newTestEnv(t)

	drink := env.addDrink(t, "Estrella Damm", 1.80)

	assert.ErrorIs(t, env.catalog.DeleteDrink(env.worker, drink.ID), models.ErrUnauthorized)

	require.NoError(t, env.catalog.DeleteDrink(env.admin, drink.ID))
	_, err := env.catalog.GetDrink(drink.ID)
	assert.ErrorIs(t, err, models.ErrDrinkNotFound)
}

func TestCatalogService_SearchDrinks(t *testing.T) {
	env := newTestEnv(t)

	env.addDrink(t, "Estrella Damm", 1.80)
	env.addDrink(t, "Estrella Galicia", 1.70)
	env.addDrink(t, "Rioja Crianza", 9.90)

	results, err := env.catalog.SearchDrinks("estrella")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	all, err := env.catalog.ListDrinks()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCatalogService_Countries(t *testing.T) {
	env := newTestEnv(t)

	err := env.catalog.AddCountry(env.worker, &models.Country{Code: "ES", Name: "Spain"})
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	require.NoError(t, env.catalog.AddCountry(env.admin, &models.Country{Code: "ES", Name: "Spain"}))
	require.NoError(t, env.catalog.AddCountry(env.admin, &models.Country{Code: "DE", Name: "Germany"}))

	countries, err := env.catalog.ListCountries()
	require.NoError(t, err)
	assert.Len(t, countries, 2)
}
