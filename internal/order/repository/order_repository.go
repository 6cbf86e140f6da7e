package repository

import (
	"context"
	"database/sql"
	"fmt"

	"signcraft/internal/domain"
	"signcraft/internal/errors"
)

const orderColumns = `id, invoice_id, customer_name, phone_number, email_address,
	       item_type, size, quantity, rate, total, discount,
	       delivery_type, payment_mode, status, notes, created_at`

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, order domain.Order) (uint, error) {
	query := `
		INSERT INTO orders (invoice_id, customer_name, phone_number, email_address,
		                    item_type, size, quantity, rate, total, discount,
		                    delivery_type, payment_mode, status, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		order.InvoiceID, order.CustomerName, order.PhoneNumber, order.EmailAddress,
		order.ItemType, order.Size, order.Quantity, order.Rate, order.Total, order.Discount,
		order.DeliveryType, order.PaymentMode, order.Status, order.Notes, order.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted order id: %w", err)
	}

	return uint(id), nil
}

// FindAll returns the complete order collection, newest first with the
// row id as the stable tie-break.
func (r *MySQLOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		ORDER BY created_at DESC, id DESC
	`, orderColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying all orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *MySQLOrderRepository) FindRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, orderColumns)

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *MySQLOrderRepository) FindByInvoiceID(ctx context.Context, invoiceID string) (*domain.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE invoice_id = ?
	`, orderColumns)

	row := r.db.QueryRowContext(ctx, query, invoiceID)
	order, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with invoice id %s not found", invoiceID))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by invoice id: %w", err)
	}

	return order, nil
}

func (r *MySQLOrderRepository) CountByInvoiceID(ctx context.Context, invoiceID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE invoice_id = ?`, invoiceID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting orders by invoice id: %w", err)
	}
	return count, nil
}

func (r *MySQLOrderRepository) UpdateStatusByInvoiceID(ctx context.Context, invoiceID, status string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = ? WHERE invoice_id = ?`, status, invoiceID,
	)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with invoice id %s not found", invoiceID))
	}

	return nil
}

func (r *MySQLOrderRepository) DeleteByInvoiceID(ctx context.Context, invoiceID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM orders WHERE invoice_id = ?`, invoiceID,
	)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with invoice id %s not found", invoiceID))
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanOrder tolerates NULL discount, notes and created_at. A NULL or
// unparseable created_at becomes the zero time, which downstream
// aggregation treats as a malformed record.
func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		order     domain.Order
		discount  sql.NullFloat64
		notes     sql.NullString
		createdAt sql.NullTime
	)

	err := row.Scan(
		&order.ID, &order.InvoiceID, &order.CustomerName, &order.PhoneNumber,
		&order.EmailAddress, &order.ItemType, &order.Size, &order.Quantity,
		&order.Rate, &order.Total, &discount,
		&order.DeliveryType, &order.PaymentMode, &order.Status, &notes, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if discount.Valid {
		order.Discount = &discount.Float64
	}
	if notes.Valid {
		order.Notes = &notes.String
	}
	if createdAt.Valid {
		order.CreatedAt = createdAt.Time.UTC()
	}

	return &order, nil
}

func scanOrders(rows *sql.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}
