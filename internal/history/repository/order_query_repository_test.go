package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signcraft/internal/testutil"
)

// Unit Tests

func TestNewMySQLOrderQueryRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderQueryRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func insertTestOrder(t *testing.T, db *sql.DB, invoiceID, customer, phone, status, createdAt string) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO orders (invoice_id, customer_name, phone_number, email_address,
		                    item_type, size, quantity, rate, total, status, created_at)
		VALUES (?, ?, ?, 'test@example.com', 'Flex Banner', '6x3', 1, 100, 100, ?, ?)
	`, invoiceID, customer, phone, status, createdAt)
	require.NoError(t, err)
}

func TestOrderQueryRepository_ListPage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderQueryRepository(db)

	insertTestOrder(t, db, "INV_A", "Ravi", "111", "pending", "2025-08-01 10:00:00")
	insertTestOrder(t, db, "INV_B", "Meena", "222", "pending", "2025-08-03 10:00:00")
	insertTestOrder(t, db, "INV_C", "Arjun", "333", "completed", "2025-08-02 10:00:00")

	orders, total, err := repo.ListPage(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, orders, 2)
	assert.Equal(t, "INV_B", orders[0].InvoiceID)
	assert.Equal(t, "INV_C", orders[1].InvoiceID)

	orders, total, err = repo.ListPage(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, orders, 1)
	assert.Equal(t, "INV_A", orders[0].InvoiceID)
}

func TestOrderQueryRepository_ListPage_TieBreakOnEqualTimestamps(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderQueryRepository(db)

	insertTestOrder(t, db, "INV_A", "Ravi", "111", "pending", "2025-08-01 10:00:00")
	insertTestOrder(t, db, "INV_B", "Meena", "222", "pending", "2025-08-01 10:00:00")
	insertTestOrder(t, db, "INV_C", "Arjun", "333", "pending", "2025-08-01 10:00:00")

	first, _, err := repo.ListPage(context.Background(), 0, 10)
	require.NoError(t, err)
	second, _, err := repo.ListPage(context.Background(), 0, 10)
	require.NoError(t, err)

	// Later inserts win ties; repeated calls agree.
	require.Len(t, first, 3)
	assert.Equal(t, "INV_C", first[0].InvoiceID)
	assert.Equal(t, first, second)
}

func TestOrderQueryRepository_SearchPage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderQueryRepository(db)

	insertTestOrder(t, db, "INV_A", "Ravi Kumar", "9876500001", "pending", "2025-08-01 10:00:00")
	insertTestOrder(t, db, "INV_B", "Meena", "9876500002", "pending", "2025-08-02 10:00:00")
	insertTestOrder(t, db, "INV_RAVI", "Someone Else", "555", "pending", "2025-08-03 10:00:00")

	// Matches customer name and invoice id, case-insensitively.
	orders, total, err := repo.SearchPage(context.Background(), "ravi", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, orders, 2)

	// Matches phone number substring.
	orders, total, err = repo.SearchPage(context.Background(), "9876500002", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "INV_B", orders[0].InvoiceID)

	// No match is an empty result, not an error.
	orders, total, err = repo.SearchPage(context.Background(), "nobody", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, orders)
}

func TestOrderQueryRepository_FindByStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderQueryRepository(db)

	insertTestOrder(t, db, "INV_A", "Ravi", "111", "pending", "2025-08-01 10:00:00")
	insertTestOrder(t, db, "INV_B", "Meena", "222", "completed", "2025-08-02 10:00:00")
	insertTestOrder(t, db, "INV_C", "Arjun", "333", "pending", "2025-08-03 10:00:00")

	orders, total, err := repo.FindByStatus(context.Background(), "pending", 1000)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, "pending", o.Status)
	}
}

func TestOrderQueryRepository_FindByDay(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderQueryRepository(db)

	insertTestOrder(t, db, "INV_A", "Ravi", "111", "pending", "2025-08-25 19:00:00")
	insertTestOrder(t, db, "INV_B", "Meena", "222", "pending", "2025-08-26 10:00:00")
	insertTestOrder(t, db, "INV_C", "Arjun", "333", "pending", "2025-08-26 19:00:00")

	// IST calendar day 2025-08-26 in UTC.
	dayStart := time.Date(2025, 8, 25, 18, 30, 0, 0, time.UTC)
	dayEnd := time.Date(2025, 8, 26, 18, 30, 0, 0, time.UTC)

	orders, total, err := repo.FindByDay(context.Background(), dayStart, dayEnd, 1000)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, orders, 2)
	assert.Equal(t, "INV_B", orders[0].InvoiceID)
	assert.Equal(t, "INV_A", orders[1].InvoiceID)
}
