package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pmirek/fabops/internal/db"
	"github.com/pmirek/fabops/internal/domain"
)

const supplierColumns = `id, name, contact, phone, email, address, notes, created_at, updated_at`

// SQLiteSupplierRepo implements SupplierRepo using a SQLite database.
type SQLiteSupplierRepo struct {
	db db.DBTX
}

func NewSQLiteSupplierRepo(db db.DBTX) *SQLiteSupplierRepo {
	return &SQLiteSupplierRepo{db: db}
}

func (r *SQLiteSupplierRepo) Create(ctx context.Context, s *domain.Supplier) error {
	query := `INSERT INTO suppliers (` + supplierColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.Contact, s.Phone, s.Email, s.Address, s.Notes,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting supplier: %w", err)
	}
	return nil
}

func (r *SQLiteSupplierRepo) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = ?`, id)

	var s domain.Supplier
	var createdAtStr, updatedAtStr string
	err := row.Scan(&s.ID, &s.Name, &s.Contact, &s.Phone, &s.Email, &s.Address, &s.Notes,
		&createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("supplier: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning supplier: %w", err)
	}
	if err := parseTimestamps(&s.CreatedAt, &s.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQLiteSupplierRepo) List(ctx context.Context) ([]*domain.Supplier, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []*domain.Supplier
	for rows.Next() {
		var s domain.Supplier
		var createdAtStr, updatedAtStr string
		err := rows.Scan(&s.ID, &s.Name, &s.Contact, &s.Phone, &s.Email, &s.Address, &s.Notes,
			&createdAtStr, &updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning supplier row: %w", err)
		}
		if err := parseTimestamps(&s.CreatedAt, &s.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating suppliers: %w", err)
	}
	return suppliers, nil
}

func (r *SQLiteSupplierRepo) Update(ctx context.Context, s *domain.Supplier) error {
	query := `UPDATE suppliers SET name = ?, contact = ?, phone = ?, email = ?,
		address = ?, notes = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		s.Name, s.Contact, s.Phone, s.Email, s.Address, s.Notes,
		s.UpdatedAt.Format(time.RFC3339), s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating supplier: %w", err)
	}
	return nil
}

func (r *SQLiteSupplierRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM suppliers WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting supplier: %w", err)
	}
	return nil
}
