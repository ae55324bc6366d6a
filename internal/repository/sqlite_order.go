package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pmirek/fabops/internal/db"
	"github.com/pmirek/fabops/internal/domain"
)

const orderColumns = `id, number, customer, description, status, due_date, created_at, updated_at`
const itemColumns = `id, order_id, product_type, drawing, quantity, unit, notes, created_at, updated_at`

// SQLiteOrderRepo implements OrderRepo using a SQLite database.
type SQLiteOrderRepo struct {
	db db.DBTX
}

// NewSQLiteOrderRepo creates a new SQLiteOrderRepo.
func NewSQLiteOrderRepo(db db.DBTX) *SQLiteOrderRepo {
	return &SQLiteOrderRepo{db: db}
}

func (r *SQLiteOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	query := `INSERT INTO orders (` + orderColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		o.ID,
		o.Number,
		o.Customer,
		o.Description,
		string(o.Status),
		nullableTimeToString(o.DueDate, dateLayout),
		o.CreatedAt.Format(time.RFC3339),
		o.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}
	return nil
}

func (r *SQLiteOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`
	return r.scanOrder(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteOrderRepo) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE number = ?`
	return r.scanOrder(r.db.QueryRowContext(ctx, query, number))
}

func (r *SQLiteOrderRepo) List(ctx context.Context, includeClosed bool) ([]*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	if !includeClosed {
		query += ` WHERE status NOT IN ('closed', 'canceled')`
	}
	query += ` ORDER BY number`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		o, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}
	return orders, nil
}

func (r *SQLiteOrderRepo) Update(ctx context.Context, o *domain.Order) error {
	query := `UPDATE orders SET number = ?, customer = ?, description = ?, status = ?,
		due_date = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		o.Number,
		o.Customer,
		o.Description,
		string(o.Status),
		nullableTimeToString(o.DueDate, dateLayout),
		o.UpdatedAt.Format(time.RFC3339),
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}
	return nil
}

func (r *SQLiteOrderRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}
	return nil
}

func (r *SQLiteOrderRepo) CreateItem(ctx context.Context, i *domain.OrderItem) error {
	query := `INSERT INTO order_items (` + itemColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		i.ID,
		i.OrderID,
		i.ProductType,
		i.Drawing,
		i.Quantity,
		i.Unit,
		i.Notes,
		i.CreatedAt.Format(time.RFC3339),
		i.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting order item: %w", err)
	}
	return nil
}

func (r *SQLiteOrderRepo) GetItem(ctx context.Context, id string) (*domain.OrderItem, error) {
	query := `SELECT ` + itemColumns + ` FROM order_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var i domain.OrderItem
	var createdAtStr, updatedAtStr string
	err := row.Scan(&i.ID, &i.OrderID, &i.ProductType, &i.Drawing, &i.Quantity,
		&i.Unit, &i.Notes, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning order item: %w", err)
	}
	if err := parseTimestamps(&i.CreatedAt, &i.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *SQLiteOrderRepo) ListItems(ctx context.Context, orderID string) ([]*domain.OrderItem, error) {
	query := `SELECT ` + itemColumns + ` FROM order_items WHERE order_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("listing order items: %w", err)
	}
	defer rows.Close()

	var items []*domain.OrderItem
	for rows.Next() {
		var i domain.OrderItem
		var createdAtStr, updatedAtStr string
		err := rows.Scan(&i.ID, &i.OrderID, &i.ProductType, &i.Drawing, &i.Quantity,
			&i.Unit, &i.Notes, &createdAtStr, &updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		if err := parseTimestamps(&i.CreatedAt, &i.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		items = append(items, &i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order items: %w", err)
	}
	return items, nil
}

func (r *SQLiteOrderRepo) UpdateItem(ctx context.Context, i *domain.OrderItem) error {
	query := `UPDATE order_items SET product_type = ?, drawing = ?, quantity = ?, unit = ?,
		notes = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		i.ProductType, i.Drawing, i.Quantity, i.Unit, i.Notes,
		i.UpdatedAt.Format(time.RFC3339), i.ID,
	)
	if err != nil {
		return fmt.Errorf("updating order item: %w", err)
	}
	return nil
}

func (r *SQLiteOrderRepo) DeleteItem(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM order_items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting order item: %w", err)
	}
	return nil
}

func (r *SQLiteOrderRepo) scanOrder(row *sql.Row) (*domain.Order, error) {
	var o domain.Order
	var statusStr, createdAtStr, updatedAtStr string
	var dueDateStr sql.NullString

	err := row.Scan(&o.ID, &o.Number, &o.Customer, &o.Description, &statusStr,
		&dueDateStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning order: %w", err)
	}

	o.Status = domain.OrderStatus(statusStr)
	o.DueDate = parseNullableTime(dueDateStr, dateLayout)
	if err := parseTimestamps(&o.CreatedAt, &o.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &o, nil
}

func scanOrderRow(rows *sql.Rows) (*domain.Order, error) {
	var o domain.Order
	var statusStr, createdAtStr, updatedAtStr string
	var dueDateStr sql.NullString

	err := rows.Scan(&o.ID, &o.Number, &o.Customer, &o.Description, &statusStr,
		&dueDateStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning order row: %w", err)
	}

	o.Status = domain.OrderStatus(statusStr)
	o.DueDate = parseNullableTime(dueDateStr, dateLayout)
	if err := parseTimestamps(&o.CreatedAt, &o.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &o, nil
}

// parseTimestamps parses RFC3339 created_at/updated_at pairs.
func parseTimestamps(createdAt, updatedAt *time.Time, createdStr, updatedStr string) error {
	var err error
	*createdAt, err = time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	*updatedAt, err = time.Parse(time.RFC3339, updatedStr)
	if err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}
