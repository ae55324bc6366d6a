package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pmirek/fabops/internal/db"
	"github.com/pmirek/fabops/internal/domain"
)

const templateColumns = `id, product_type, name, created_at, updated_at`

// SQLiteTemplateRepo implements TemplateRepo using a SQLite database.
type SQLiteTemplateRepo struct {
	db db.DBTX
}

func NewSQLiteTemplateRepo(db db.DBTX) *SQLiteTemplateRepo {
	return &SQLiteTemplateRepo{db: db}
}

func (r *SQLiteTemplateRepo) Create(ctx context.Context, t *domain.PlanTemplate) error {
	query := `INSERT INTO plan_templates (` + templateColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ProductType,
		t.Name,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan template: %w", err)
	}

	stageQuery := `INSERT INTO template_stages (template_id, position, name, duration_days, use_business_days)
		VALUES (?, ?, ?, ?, ?)`
	for pos, st := range t.Stages {
		_, err := r.db.ExecContext(ctx, stageQuery,
			t.ID, pos, st.Name, st.DurationDays, boolToInt(st.UseBusinessDays))
		if err != nil {
			return fmt.Errorf("inserting template stage %d: %w", pos, err)
		}
	}
	return nil
}

func (r *SQLiteTemplateRepo) GetByProductType(ctx context.Context, productType string) (*domain.PlanTemplate, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+templateColumns+` FROM plan_templates WHERE product_type = ?`, productType)

	var t domain.PlanTemplate
	var createdAtStr, updatedAtStr string
	err := row.Scan(&t.ID, &t.ProductType, &t.Name, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan template for %q: %w", productType, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan template: %w", err)
	}
	if err := parseTimestamps(&t.CreatedAt, &t.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	if err := r.loadStages(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SQLiteTemplateRepo) List(ctx context.Context) ([]*domain.PlanTemplate, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+templateColumns+` FROM plan_templates ORDER BY product_type`)
	if err != nil {
		return nil, fmt.Errorf("listing plan templates: %w", err)
	}
	defer rows.Close()

	var templates []*domain.PlanTemplate
	for rows.Next() {
		var t domain.PlanTemplate
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&t.ID, &t.ProductType, &t.Name, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning plan template row: %w", err)
		}
		if err := parseTimestamps(&t.CreatedAt, &t.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		templates = append(templates, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan templates: %w", err)
	}

	for _, t := range templates {
		if err := r.loadStages(ctx, t); err != nil {
			return nil, err
		}
	}
	return templates, nil
}

func (r *SQLiteTemplateRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plan_templates WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting plan template: %w", err)
	}
	return nil
}

func (r *SQLiteTemplateRepo) loadStages(ctx context.Context, t *domain.PlanTemplate) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, duration_days, use_business_days FROM template_stages
		 WHERE template_id = ? ORDER BY position`, t.ID)
	if err != nil {
		return fmt.Errorf("loading template stages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var st domain.TemplateStage
		var bizInt int
		if err := rows.Scan(&st.Name, &st.DurationDays, &bizInt); err != nil {
			return fmt.Errorf("scanning template stage: %w", err)
		}
		st.UseBusinessDays = intToBool(bizInt)
		t.Stages = append(t.Stages, &st)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating template stages: %w", err)
	}
	return nil
}
