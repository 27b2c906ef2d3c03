package orders

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

func newOrdersTestDB(t *testing.T) *gorm.DB {
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
		`CREATE TABLE orders (
			id TEXT PRIMARY KEY,
			buyer_id TEXT NOT NULL,
			total_paisa INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			payment_status TEXT NOT NULL DEFAULT 'pending',
			payment_screenshot TEXT,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE order_items (
			id TEXT PRIMARY KEY,
			order_id TEXT NOT NULL,
			product_id TEXT,
			name TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			unit_price_paisa INTEGER NOT NULL,
			created_at DATETIME
		)`,
	}
	for _, stmt := range stmts {
		require.NoError(t, conn.Exec(stmt).Error)
	}

	return conn
}

func seedBuyer(t *testing.T, conn *gorm.DB, name, email string) uuid.UUID {
	t.Helper()
	user := models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         enums.UserRoleCustomer,
	}
	require.NoError(t, conn.Create(&user).Error)
	return user.ID
}

func seedOrder(t *testing.T, repo *Repo, buyerID uuid.UUID, id string) *models.Order {
	t.Helper()
	productID := uuid.New()
	order := &models.Order{
		ID:            id,
		BuyerID:       buyerID,
		TotalPaisa:    16000,
		Status:        enums.OrderStatusPending,
		PaymentStatus: enums.PaymentStatusPending,
		Items: []models.OrderItem{{
			ID:             uuid.New(),
			OrderID:        id,
			ProductID:      &productID,
			Name:           "Tomato",
			Quantity:       2,
			UnitPricePaisa: 8000,
		}},
	}
	require.NoError(t, repo.Create(context.Background(), order))
	return order
}

func TestRepoCreateAndFindRoundTrip(t *testing.T) {
	conn := newOrdersTestDB(t)
	repo := NewRepo(conn)
	buyerID := seedBuyer(t, conn, "Sita Sharma", "sita@example.com")

	seedOrder(t, repo, buyerID, "ORD-A1B2C3D4E")

	got, err := repo.FindByID(context.Background(), "ORD-A1B2C3D4E")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, buyerID, got.BuyerID)
	assert.Equal(t, enums.OrderStatusPending, got.Status)
	assert.Equal(t, enums.PaymentStatusPending, got.PaymentStatus)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Tomato", got.Items[0].Name)
}

func TestRepoSubmitProofOnlyMatchesOwner(t *testing.T) {
	conn := newOrdersTestDB(t)
	repo := NewRepo(conn)
	owner := seedBuyer(t, conn, "Sita Sharma", "sita@example.com")
	stranger := seedBuyer(t, conn, "Hari Thapa", "hari@example.com")

	seedOrder(t, repo, owner, "ORD-A1B2C3D4E")

	affected, err := repo.SubmitProof(context.Background(), "ORD-A1B2C3D4E", stranger, "uploads/fake.png")
	require.NoError(t, err)
	assert.Zero(t, affected)

	got, err := repo.FindByID(context.Background(), "ORD-A1B2C3D4E")
	require.NoError(t, err)
	assert.Nil(t, got.PaymentScreenshot)

	affected, err = repo.SubmitProof(context.Background(), "ORD-A1B2C3D4E", owner, "uploads/esewa.png")
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, err = repo.FindByID(context.Background(), "ORD-A1B2C3D4E")
	require.NoError(t, err)
	require.NotNil(t, got.PaymentScreenshot)
	assert.Equal(t, "uploads/esewa.png", *got.PaymentScreenshot)
}

func TestRepoResubmitAfterRejectionResetsReview(t *testing.T) {
	conn := newOrdersTestDB(t)
	repo := NewRepo(conn)
	buyerID := seedBuyer(t, conn, "Sita Sharma", "sita@example.com")
	ctx := context.Background()

	seedOrder(t, repo, buyerID, "ORD-A1B2C3D4E")

	_, err := repo.SubmitProof(ctx, "ORD-A1B2C3D4E", buyerID, "uploads/blurry.png")
	require.NoError(t, err)

	affected, err := repo.UpdateDecision(ctx, "ORD-A1B2C3D4E", enums.PaymentStatusRejected, enums.OrderStatusPaymentFailed)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	_, err = repo.SubmitProof(ctx, "ORD-A1B2C3D4E", buyerID, "uploads/clear.png")
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, "ORD-A1B2C3D4E")
	require.NoError(t, err)
	assert.Equal(t, enums.PaymentStatusPending, got.PaymentStatus)
	assert.Equal(t, enums.OrderStatusPaymentFailed, got.Status)
	require.NotNil(t, got.PaymentScreenshot)
	assert.Equal(t, "uploads/clear.png", *got.PaymentScreenshot)
}

func TestRepoApprovalLifecycle(t *testing.T) {
	conn := newOrdersTestDB(t)
	repo := NewRepo(conn)
	buyerID := seedBuyer(t, conn, "Sita Sharma", "sita@example.com")
	ctx := context.Background()

	seedOrder(t, repo, buyerID, "ORD-A1B2C3D4E")

	_, err := repo.SubmitProof(ctx, "ORD-A1B2C3D4E", buyerID, "uploads/esewa.png")
	require.NoError(t, err)

	affected, err := repo.UpdateDecision(ctx, "ORD-A1B2C3D4E", enums.PaymentStatusApproved, enums.OrderStatusPaid)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, err := repo.FindByID(ctx, "ORD-A1B2C3D4E")
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPaid, got.Status)
	assert.Equal(t, enums.PaymentStatusApproved, got.PaymentStatus)

	// repeating the same decision lands on the same state
	affected, err = repo.UpdateDecision(ctx, "ORD-A1B2C3D4E", enums.PaymentStatusApproved, enums.OrderStatusPaid)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, err = repo.FindByID(ctx, "ORD-A1B2C3D4E")
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPaid, got.Status)
	assert.Equal(t, enums.PaymentStatusApproved, got.PaymentStatus)
}

func TestRepoListPendingPaymentsFiltersAndJoins(t *testing.T) {
	conn := newOrdersTestDB(t)
	repo := NewRepo(conn)
	buyerID := seedBuyer(t, conn, "Sita Sharma", "sita@example.com")
	ctx := context.Background()

	// with proof, still pending: should appear
	older := seedOrder(t, repo, buyerID, "ORD-OLDPROOF1")
	_, err := repo.SubmitProof(ctx, "ORD-OLDPROOF1", buyerID, "uploads/esewa.png")
	require.NoError(t, err)
	newer := seedOrder(t, repo, buyerID, "ORD-NEWPROOF1")
	_, err = repo.SubmitProof(ctx, "ORD-NEWPROOF1", buyerID, "uploads/ime.png")
	require.NoError(t, err)

	// no proof yet: should not appear
	seedOrder(t, repo, buyerID, "ORD-NOPROOF12")

	// already approved: should not appear
	seedOrder(t, repo, buyerID, "ORD-APPROVED1")
	_, err = repo.SubmitProof(ctx, "ORD-APPROVED1", buyerID, "uploads/khalti.png")
	require.NoError(t, err)
	_, err = repo.UpdateDecision(ctx, "ORD-APPROVED1", enums.PaymentStatusApproved, enums.OrderStatusPaid)
	require.NoError(t, err)

	// force distinct timestamps; sqlite datetime resolution is coarse
	require.NoError(t, conn.Exec(
		`UPDATE orders SET created_at = datetime('now', '-1 hour') WHERE id = ?`, older.ID).Error)
	require.NoError(t, conn.Exec(
		`UPDATE orders SET created_at = datetime('now') WHERE id = ?`, newer.ID).Error)

	rows, err := repo.ListPendingPayments(ctx, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ORD-NEWPROOF1", rows[0].Order.ID)
	assert.Equal(t, "ORD-OLDPROOF1", rows[1].Order.ID)
	assert.Equal(t, "Sita Sharma", rows[0].BuyerName)
	assert.Equal(t, "sita@example.com", rows[0].BuyerEmail)
	require.Len(t, rows[0].Order.Items, 1)
}

func TestRepoListByBuyerNewestFirst(t *testing.T) {
	conn := newOrdersTestDB(t)
	repo := NewRepo(conn)
	buyerID := seedBuyer(t, conn, "Sita Sharma", "sita@example.com")
	other := seedBuyer(t, conn, "Hari Thapa", "hari@example.com")
	ctx := context.Background()

	first := seedOrder(t, repo, buyerID, "ORD-FIRST1234")
	second := seedOrder(t, repo, buyerID, "ORD-SECOND123")
	seedOrder(t, repo, other, "ORD-OTHERBUYR")

	// force distinct timestamps; sqlite datetime resolution is coarse
	require.NoError(t, conn.Exec(
		`UPDATE orders SET created_at = datetime('now', '-1 hour') WHERE id = ?`, first.ID).Error)
	require.NoError(t, conn.Exec(
		`UPDATE orders SET created_at = datetime('now') WHERE id = ?`, second.ID).Error)

	rows, err := repo.ListByBuyer(ctx, buyerID, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ORD-SECOND123", rows[0].ID)
	assert.Equal(t, "ORD-FIRST1234", rows[1].ID)
}
