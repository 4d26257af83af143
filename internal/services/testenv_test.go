package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"drink-retail-manager/internal/database"
	"drink-retail-manager/internal/models"
	"drink-retail-manager/internal/repositories"
	"drink-retail-manager/internal/session"
	"drink-retail-manager/internal/utils"
)

const testSecret = "test-secret"

// testEnv wires the services over an in-memory database with one admin
// and one worker already registered.
type testEnv struct {
	auth    *AuthService
	catalog *CatalogService
	tickets *TicketService
	sales   *SalesService

	admin  *session.Session
	worker *session.Session
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.NewConnection(database.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.RunMigrations())

	userRepo := repositories.NewUserRepository(db.DB)
	drinkRepo := repositories.NewDrinkRepository(db.DB)
	brandRepo := repositories.NewBrandRepository(db.DB)
	typeRepo := repositories.NewDrinkTypeRepository(db.DB)
	countryRepo := repositories.NewCountryRepository(db.DB)
	ticketRepo := repositories.NewTicketRepository(db.DB)
	saleRepo := repositories.NewSaleRepository(db.DB)

	env := &testEnv{
		auth:    NewAuthService(userRepo, testSecret, time.Hour),
		catalog: NewCatalogService(drinkRepo, brandRepo, typeRepo, countryRepo),
		tickets: NewTicketService(ticketRepo, drinkRepo, saleRepo),
		sales:   NewSalesService(saleRepo),
	}

	env.admin = session.New(createServiceUser(t, userRepo, "boss", models.RoleAdmin))
	env.worker = session.New(createServiceUser(t, userRepo, "clerk", models.RoleWorker))

	return env
}

func createServiceUser(t *testing.T, repo *repositories.UserRepository, username string, role models.Role) *models.User {
	t.Helper()

	hash, err := utils.HashPassword("correct horse battery")
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, repo.Create(user))

	return user
}

func (env *testEnv) addDrink(t *testing.T, name string, price float64) *models.Drink {
	t.Helper()

	drink, err := env.catalog.CreateDrink(env.admin, DrinkInput{
		Name:      name,
		TypeName:  "Beer",
		BrandName: "Damm",
		Price:     price,
	})
	require.NoError(t, err)

	return drink
}
