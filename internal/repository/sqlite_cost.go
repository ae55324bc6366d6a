package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pmirek/fabops/internal/db"
	"github.com/pmirek/fabops/internal/domain"
)

const costColumns = `id, order_id, category, description, amount, incurred_on, created_at`

// SQLiteCostRepo implements CostRepo using a SQLite database.
type SQLiteCostRepo struct {
	db db.DBTX
}

func NewSQLiteCostRepo(db db.DBTX) *SQLiteCostRepo {
	return &SQLiteCostRepo{db: db}
}

func (r *SQLiteCostRepo) Create(ctx context.Context, c *domain.CostEntry) error {
	query := `INSERT INTO cost_entries (` + costColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.OrderID,
		string(c.Category),
		c.Description,
		c.Amount,
		c.IncurredOn.Format(dateLayout),
		c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting cost entry: %w", err)
	}
	return nil
}

func (r *SQLiteCostRepo) ListByOrder(ctx context.Context, orderID string) ([]*domain.CostEntry, error) {
	query := `SELECT ` + costColumns + ` FROM cost_entries WHERE order_id = ? ORDER BY incurred_on`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("listing cost entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.CostEntry
	for rows.Next() {
		var c domain.CostEntry
		var categoryStr, incurredOnStr, createdAtStr string
		err := rows.Scan(&c.ID, &c.OrderID, &categoryStr, &c.Description, &c.Amount,
			&incurredOnStr, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning cost entry: %w", err)
		}

		c.Category = domain.CostCategory(categoryStr)
		c.IncurredOn, err = time.Parse(dateLayout, incurredOnStr)
		if err != nil {
			return nil, fmt.Errorf("parsing incurred_on: %w", err)
		}
		c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		entries = append(entries, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cost entries: %w", err)
	}
	return entries, nil
}

// TotalsByCategory sums amounts per category. An empty orderID sums across
// all orders (dashboard view).
func (r *SQLiteCostRepo) TotalsByCategory(ctx context.Context, orderID string) (map[domain.CostCategory]float64, error) {
	query := `SELECT category, SUM(amount) FROM cost_entries`
	args := []any{}
	if orderID != "" {
		query += ` WHERE order_id = ?`
		args = append(args, orderID)
	}
	query += ` GROUP BY category`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("summing cost entries: %w", err)
	}
	defer rows.Close()

	totals := make(map[domain.CostCategory]float64)
	for rows.Next() {
		var category string
		var sum float64
		if err := rows.Scan(&category, &sum); err != nil {
			return nil, fmt.Errorf("scanning cost total: %w", err)
		}
		totals[domain.CostCategory(category)] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cost totals: %w", err)
	}
	return totals, nil
}

func (r *SQLiteCostRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cost_entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting cost entry: %w", err)
	}
	return nil
}
