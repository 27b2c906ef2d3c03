package products

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db/models"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/enums"
)

func newProductsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	stmts := []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'customer',
			phone TEXT,
			farm_location TEXT,
			citizenship_doc TEXT,
			payment_qr TEXT,
			is_verified BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE products (
			id TEXT PRIMARY KEY,
			farmer_id TEXT NOT NULL,
			farmer_name TEXT NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			price_paisa INTEGER NOT NULL,
			unit TEXT NOT NULL,
			image TEXT,
			description TEXT,
			created_at DATETIME,
			updated_at DATETIME
		)`,
	}
	for _, stmt := range stmts {
		require.NoError(t, conn.Exec(stmt).Error)
	}

	return conn
}

func seedFarmer(t *testing.T, conn *gorm.DB, name, email string, verified bool) uuid.UUID {
	t.Helper()
	farmer := models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         enums.UserRoleFarmer,
		IsVerified:   verified,
	}
	require.NoError(t, conn.Create(&farmer).Error)
	return farmer.ID
}

func seedProduct(t *testing.T, repo *Repo, farmerID uuid.UUID, farmerName, name string) uuid.UUID {
	t.Helper()
	product := models.Product{
		ID:         uuid.New(),
		FarmerID:   farmerID,
		FarmerName: farmerName,
		Name:       name,
		Category:   "vegetable",
		PricePaisa: 8000,
		Unit:       "kg",
	}
	require.NoError(t, repo.Create(context.Background(), &product))
	return product.ID
}

func TestRepoListJoinsFarmerVerification(t *testing.T) {
	conn := newProductsTestDB(t)
	repo := NewRepo(conn)
	ctx := context.Background()

	verified := seedFarmer(t, conn, "Ram Bahadur", "ram@example.com", true)
	unverified := seedFarmer(t, conn, "Hari Thapa", "hari@example.com", false)
	seedProduct(t, repo, verified, "Ram Bahadur", "Tomato")
	seedProduct(t, repo, unverified, "Hari Thapa", "Potato")

	rows, err := repo.List(ctx, ListFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byName := map[string]bool{}
	for _, row := range rows {
		byName[row.Product.Name] = row.FarmerVerified
	}
	assert.True(t, byName["Tomato"])
	assert.False(t, byName["Potato"])
}

func TestRepoListFiltersByFarmer(t *testing.T) {
	conn := newProductsTestDB(t)
	repo := NewRepo(conn)
	ctx := context.Background()

	mine := seedFarmer(t, conn, "Ram Bahadur", "ram@example.com", true)
	other := seedFarmer(t, conn, "Hari Thapa", "hari@example.com", true)
	seedProduct(t, repo, mine, "Ram Bahadur", "Tomato")
	seedProduct(t, repo, other, "Hari Thapa", "Potato")

	rows, err := repo.List(ctx, ListFilter{FarmerID: &mine})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Tomato", rows[0].Product.Name)
}
