package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pmirek/fabops/internal/db"
	"github.com/pmirek/fabops/internal/domain"
)

const requisitionColumns = `id, number, order_id, supplier_id, status, requested_at, created_at, updated_at`
const lineColumns = `id, requisition_id, material, spec, quantity, unit, received_qty, received_at`

// SQLiteRequisitionRepo implements RequisitionRepo using a SQLite database.
// Lines are loaded eagerly with their requisition.
type SQLiteRequisitionRepo struct {
	db db.DBTX
}

func NewSQLiteRequisitionRepo(db db.DBTX) *SQLiteRequisitionRepo {
	return &SQLiteRequisitionRepo{db: db}
}

func (r *SQLiteRequisitionRepo) Create(ctx context.Context, req *domain.Requisition) error {
	query := `INSERT INTO requisitions (` + requisitionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		req.ID,
		req.Number,
		req.OrderID,
		req.SupplierID,
		string(req.Status),
		req.RequestedAt.Format(dateLayout),
		req.CreatedAt.Format(time.RFC3339),
		req.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting requisition: %w", err)
	}

	lineQuery := `INSERT INTO requisition_lines (` + lineColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for _, l := range req.Lines {
		_, err := r.db.ExecContext(ctx, lineQuery,
			l.ID, req.ID, l.Material, l.Spec, l.Quantity, l.Unit,
			l.ReceivedQty, nullableTimeToString(l.ReceivedAt, dateLayout),
		)
		if err != nil {
			return fmt.Errorf("inserting requisition line: %w", err)
		}
	}
	return nil
}

func (r *SQLiteRequisitionRepo) GetByID(ctx context.Context, id string) (*domain.Requisition, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+requisitionColumns+` FROM requisitions WHERE id = ?`, id)

	req, err := scanRequisition(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadLines(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (r *SQLiteRequisitionRepo) List(ctx context.Context, includeClosed bool) ([]*domain.Requisition, error) {
	query := `SELECT ` + requisitionColumns + ` FROM requisitions`
	if !includeClosed {
		query += ` WHERE status NOT IN ('received', 'canceled')`
	}
	query += ` ORDER BY number`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing requisitions: %w", err)
	}
	defer rows.Close()

	var reqs []*domain.Requisition
	for rows.Next() {
		req, err := scanRequisitionRow(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating requisitions: %w", err)
	}

	for _, req := range reqs {
		if err := r.loadLines(ctx, req); err != nil {
			return nil, err
		}
	}
	return reqs, nil
}

func (r *SQLiteRequisitionRepo) Update(ctx context.Context, req *domain.Requisition) error {
	query := `UPDATE requisitions SET number = ?, order_id = ?, supplier_id = ?, status = ?,
		requested_at = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		req.Number,
		req.OrderID,
		req.SupplierID,
		string(req.Status),
		req.RequestedAt.Format(dateLayout),
		req.UpdatedAt.Format(time.RFC3339),
		req.ID,
	)
	if err != nil {
		return fmt.Errorf("updating requisition: %w", err)
	}
	return nil
}

func (r *SQLiteRequisitionRepo) UpdateLine(ctx context.Context, l *domain.RequisitionLine) error {
	query := `UPDATE requisition_lines SET material = ?, spec = ?, quantity = ?, unit = ?,
		received_qty = ?, received_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		l.Material, l.Spec, l.Quantity, l.Unit,
		l.ReceivedQty, nullableTimeToString(l.ReceivedAt, dateLayout),
		l.ID,
	)
	if err != nil {
		return fmt.Errorf("updating requisition line: %w", err)
	}
	return nil
}

func (r *SQLiteRequisitionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM requisitions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting requisition: %w", err)
	}
	return nil
}

func (r *SQLiteRequisitionRepo) loadLines(ctx context.Context, req *domain.Requisition) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+lineColumns+` FROM requisition_lines WHERE requisition_id = ? ORDER BY material`, req.ID)
	if err != nil {
		return fmt.Errorf("loading requisition lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l domain.RequisitionLine
		var receivedAtStr sql.NullString
		err := rows.Scan(&l.ID, &l.RequisitionID, &l.Material, &l.Spec, &l.Quantity,
			&l.Unit, &l.ReceivedQty, &receivedAtStr)
		if err != nil {
			return fmt.Errorf("scanning requisition line: %w", err)
		}
		l.ReceivedAt = parseNullableTime(receivedAtStr, dateLayout)
		req.Lines = append(req.Lines, &l)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating requisition lines: %w", err)
	}
	return nil
}

func scanRequisition(row *sql.Row) (*domain.Requisition, error) {
	var req domain.Requisition
	var statusStr, requestedAtStr, createdAtStr, updatedAtStr string
	var orderID, supplierID sql.NullString

	err := row.Scan(&req.ID, &req.Number, &orderID, &supplierID, &statusStr,
		&requestedAtStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("requisition: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning requisition: %w", err)
	}
	return populateRequisition(&req, statusStr, requestedAtStr, createdAtStr, updatedAtStr, orderID, supplierID)
}

func scanRequisitionRow(rows *sql.Rows) (*domain.Requisition, error) {
	var req domain.Requisition
	var statusStr, requestedAtStr, createdAtStr, updatedAtStr string
	var orderID, supplierID sql.NullString

	err := rows.Scan(&req.ID, &req.Number, &orderID, &supplierID, &statusStr,
		&requestedAtStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning requisition row: %w", err)
	}
	return populateRequisition(&req, statusStr, requestedAtStr, createdAtStr, updatedAtStr, orderID, supplierID)
}

func populateRequisition(
	req *domain.Requisition,
	statusStr, requestedAtStr, createdAtStr, updatedAtStr string,
	orderID, supplierID sql.NullString,
) (*domain.Requisition, error) {
	req.Status = domain.RequisitionStatus(statusStr)
	if orderID.Valid {
		req.OrderID = &orderID.String
	}
	if supplierID.Valid {
		req.SupplierID = &supplierID.String
	}

	var err error
	req.RequestedAt, err = time.Parse(dateLayout, requestedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing requested_at: %w", err)
	}
	if err := parseTimestamps(&req.CreatedAt, &req.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return req, nil
}
