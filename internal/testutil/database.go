package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration test database. Expects a MySQL
// instance at localhost:3306 with a database named 'signcraft_test';
// tests are skipped when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/signcraft_test?parseTime=true&loc=UTC"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the test tables and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"orders", "users"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the tables the tests rely on.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS orders (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		invoice_id VARCHAR(64) NOT NULL UNIQUE,
		customer_name VARCHAR(150) NOT NULL,
		phone_number VARCHAR(30) NOT NULL,
		email_address VARCHAR(150) NOT NULL,
		item_type VARCHAR(100) NOT NULL,
		size VARCHAR(50) NOT NULL,
		quantity INT NOT NULL,
		rate DECIMAL(10,2) NOT NULL,
		total DECIMAL(10,2) NOT NULL,
		discount DECIMAL(5,2),
		delivery_type VARCHAR(50) NOT NULL DEFAULT '',
		payment_mode VARCHAR(50) NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		notes TEXT,
		created_at DATETIME,
		INDEX idx_created (created_at),
		INDEX idx_status (status)
	)`

	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(100) NOT NULL UNIQUE,
		full_name VARCHAR(150) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'employee',
		password_hash VARCHAR(255) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"orders", createOrdersTable},
		{"users", createUsersTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
