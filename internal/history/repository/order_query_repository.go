package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"signcraft/internal/domain"
)

const orderColumns = `id, invoice_id, customer_name, phone_number, email_address,
	       item_type, size, quantity, rate, total, discount,
	       delivery_type, payment_mode, status, notes, created_at`

// MySQLOrderQueryRepository serves the read-only history projections.
// Every listing shares one total order: created_at DESC with the row id
// as tie-break, so identical filters always return identical slices.
type MySQLOrderQueryRepository struct {
	db *sql.DB
}

func NewMySQLOrderQueryRepository(db *sql.DB) *MySQLOrderQueryRepository {
	return &MySQLOrderQueryRepository{db: db}
}

func (r *MySQLOrderQueryRepository) ListPage(ctx context.Context, offset, limit int) ([]domain.Order, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting orders: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, orderColumns)

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("querying order page: %w", err)
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *MySQLOrderQueryRepository) SearchPage(ctx context.Context, term string, offset, limit int) ([]domain.Order, int, error) {
	pattern := "%" + term + "%"
	where := `WHERE customer_name LIKE ? OR invoice_id LIKE ? OR phone_number LIKE ?`

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM orders %s`, where)
	if err := r.db.QueryRowContext(ctx, countQuery, pattern, pattern, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting matching orders: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, orderColumns, where)

	rows, err := r.db.QueryContext(ctx, query, pattern, pattern, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("searching orders: %w", err)
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *MySQLOrderQueryRepository) FindByStatus(ctx context.Context, status string, limit int) ([]domain.Order, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE status = ?`, status,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting orders by status: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE status = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, orderColumns)

	rows, err := r.db.QueryContext(ctx, query, status, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("querying orders by status: %w", err)
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// FindByDay lists orders created inside [dayStart, dayEnd), both UTC.
// The caller converts the business-local calendar day to this window.
func (r *MySQLOrderQueryRepository) FindByDay(ctx context.Context, dayStart, dayEnd time.Time, limit int) ([]domain.Order, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE created_at >= ? AND created_at < ?`,
		dayStart, dayEnd,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting orders by day: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, orderColumns)

	rows, err := r.db.QueryContext(ctx, query, dayStart, dayEnd, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("querying orders by day: %w", err)
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func scanOrders(rows *sql.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		var (
			order     domain.Order
			discount  sql.NullFloat64
			notes     sql.NullString
			createdAt sql.NullTime
		)

		err := rows.Scan(
			&order.ID, &order.InvoiceID, &order.CustomerName, &order.PhoneNumber,
			&order.EmailAddress, &order.ItemType, &order.Size, &order.Quantity,
			&order.Rate, &order.Total, &discount,
			&order.DeliveryType, &order.PaymentMode, &order.Status, &notes, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
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

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}
