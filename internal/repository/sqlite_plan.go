package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pmirek/fabops/internal/db"
	"github.com/pmirek/fabops/internal/domain"
)

const stageColumns = `name, status, start_date, completed_date, duration_days, use_business_days`

// SQLitePlanRepo implements PlanRepo. Plans are position-addressed stage
// lists per order item; a write deletes and reinserts the whole list so
// the stored plan is always exactly what the caller submitted.
type SQLitePlanRepo struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo. The unit of work is used
// for the delete-and-reinsert replace; pass nil when the repo itself is
// already transaction-scoped.
func NewSQLitePlanRepo(dbtx db.DBTX, uow db.UnitOfWork) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: dbtx, uow: uow}
}

func (r *SQLitePlanRepo) GetPlan(ctx context.Context, itemID string) ([]*domain.ProductionStage, error) {
	query := `SELECT ` + stageColumns + ` FROM production_stages WHERE item_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	defer rows.Close()
	return scanStages(rows)
}

func (r *SQLitePlanRepo) ReplacePlan(ctx context.Context, itemID string, stages []*domain.ProductionStage) error {
	if r.uow == nil {
		return r.replacePlanOn(ctx, r.db, itemID, stages)
	}
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return r.replacePlanOn(ctx, tx, itemID, stages)
	})
}

func (r *SQLitePlanRepo) replacePlanOn(ctx context.Context, tx db.DBTX, itemID string, stages []*domain.ProductionStage) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM production_stages WHERE item_id = ?`, itemID); err != nil {
		return fmt.Errorf("clearing plan: %w", err)
	}
	query := `INSERT INTO production_stages (item_id, position, ` + stageColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for pos, st := range stages {
		_, err := tx.ExecContext(ctx, query,
			itemID,
			pos,
			st.Name,
			string(st.Status),
			nullableTimeToString(st.StartDate, dateLayout),
			nullableTimeToString(st.CompletedDate, dateLayout),
			st.DurationDays,
			boolToInt(st.UseBusinessDays),
		)
		if err != nil {
			return fmt.Errorf("inserting stage %d: %w", pos, err)
		}
	}
	return nil
}

func (r *SQLitePlanRepo) CountStagesByStatus(ctx context.Context) (map[domain.StageStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM production_stages GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("counting stages: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.StageStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scanning stage count: %w", err)
		}
		counts[domain.StageStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stage counts: %w", err)
	}
	return counts, nil
}

// ListOverdueStages returns stages whose planned completion date has
// passed without the stage being completed. today is a YYYY-MM-DD string
// so the comparison happens in SQLite's own collation.
func (r *SQLitePlanRepo) ListOverdueStages(ctx context.Context, today string) ([]*domain.ProductionStage, error) {
	query := `SELECT ` + stageColumns + ` FROM production_stages
		WHERE completed_date IS NOT NULL AND completed_date < ? AND status != 'completed'
		ORDER BY completed_date`
	rows, err := r.db.QueryContext(ctx, query, today)
	if err != nil {
		return nil, fmt.Errorf("listing overdue stages: %w", err)
	}
	defer rows.Close()
	return scanStages(rows)
}

func scanStages(rows *sql.Rows) ([]*domain.ProductionStage, error) {
	var stages []*domain.ProductionStage
	for rows.Next() {
		var st domain.ProductionStage
		var statusStr string
		var startStr, completedStr sql.NullString
		var bizInt int

		err := rows.Scan(&st.Name, &statusStr, &startStr, &completedStr,
			&st.DurationDays, &bizInt)
		if err != nil {
			return nil, fmt.Errorf("scanning stage row: %w", err)
		}

		st.Status = domain.StageStatus(statusStr)
		st.StartDate = parseNullableTime(startStr, dateLayout)
		st.CompletedDate = parseNullableTime(completedStr, dateLayout)
		st.UseBusinessDays = intToBool(bizInt)
		stages = append(stages, &st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stages: %w", err)
	}
	return stages, nil
}
