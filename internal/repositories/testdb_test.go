package repositories

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"drink-retail-manager/internal/database"
	"drink-retail-manager/internal/models"
)

// setupTestDB opens an in-memory database with the full schema applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.NewConnection(database.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.RunMigrations())

	return db.DB
}

func createTestUser(t *testing.T, db *sql.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g",
		Role:         models.RoleWorker,
	}
	require.NoError(t, NewUserRepository(db).Create(user))

	return user
}

func createTestDrink(t *testing.T, db *sql.DB, name string, price float64) *models.Drink {
	t.Helper()

	typeID, err := NewDrinkTypeRepository(db).GetOrCreateByName("Beer")
	require.NoError(t, err)

	brandID, err := NewBrandRepository(db).GetOrCreateByName("Damm", "")
	require.NoError(t, err)

	drink := &models.Drink{
		Name:           name,
		TypeID:         typeID,
		BrandID:        brandID,
		AlcoholContent: 5.4,
		Volume:         0.33,
		Price:          price,
	}
	require.NoError(t, NewDrinkRepository(db).Create(drink))

	return drink
}
