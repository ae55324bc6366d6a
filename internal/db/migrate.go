package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; the list
// is re-run in full on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id          TEXT PRIMARY KEY,
		number      TEXT NOT NULL UNIQUE,
		customer    TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'open'
		            CHECK(status IN ('open','in_production','delivered','closed','canceled')),
		due_date    TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS order_items (
		id           TEXT PRIMARY KEY,
		order_id     TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_type TEXT NOT NULL,
		drawing      TEXT NOT NULL DEFAULT '',
		quantity     INTEGER NOT NULL DEFAULT 1,
		unit         TEXT NOT NULL DEFAULT 'pcs',
		notes        TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,

	// The production plan is stored as the full ordered stage list per
	// item and always rewritten wholesale (no per-stage updates).
	`CREATE TABLE IF NOT EXISTS production_stages (
		item_id           TEXT NOT NULL REFERENCES order_items(id) ON DELETE CASCADE,
		position          INTEGER NOT NULL,
		name              TEXT NOT NULL,
		status            TEXT NOT NULL DEFAULT 'pending'
		                  CHECK(status IN ('pending','in_progress','completed')),
		start_date        TEXT,
		completed_date    TEXT,
		duration_days     REAL NOT NULL DEFAULT 0,
		use_business_days INTEGER NOT NULL DEFAULT 1,
		PRIMARY KEY (item_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS suppliers (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		contact    TEXT NOT NULL DEFAULT '',
		phone      TEXT NOT NULL DEFAULT '',
		email      TEXT NOT NULL DEFAULT '',
		address    TEXT NOT NULL DEFAULT '',
		notes      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS requisitions (
		id           TEXT PRIMARY KEY,
		number       TEXT NOT NULL UNIQUE,
		order_id     TEXT REFERENCES orders(id) ON DELETE SET NULL,
		supplier_id  TEXT REFERENCES suppliers(id) ON DELETE SET NULL,
		status       TEXT NOT NULL DEFAULT 'draft'
		             CHECK(status IN ('draft','ordered','partial','received','canceled')),
		requested_at TEXT NOT NULL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS requisition_lines (
		id             TEXT PRIMARY KEY,
		requisition_id TEXT NOT NULL REFERENCES requisitions(id) ON DELETE CASCADE,
		material       TEXT NOT NULL,
		spec           TEXT NOT NULL DEFAULT '',
		quantity       REAL NOT NULL,
		unit           TEXT NOT NULL DEFAULT 'pcs',
		received_qty   REAL NOT NULL DEFAULT 0,
		received_at    TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_requisition_lines_req ON requisition_lines(requisition_id)`,

	`CREATE TABLE IF NOT EXISTS cost_entries (
		id          TEXT PRIMARY KEY,
		order_id    TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		category    TEXT NOT NULL
		            CHECK(category IN ('material','labor','outsourcing','overhead','other')),
		description TEXT NOT NULL DEFAULT '',
		amount      REAL NOT NULL,
		incurred_on TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cost_entries_order ON cost_entries(order_id)`,

	`CREATE TABLE IF NOT EXISTS plan_templates (
		id           TEXT PRIMARY KEY,
		product_type TEXT NOT NULL UNIQUE,
		name         TEXT NOT NULL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS template_stages (
		template_id       TEXT NOT NULL REFERENCES plan_templates(id) ON DELETE CASCADE,
		position          INTEGER NOT NULL,
		name              TEXT NOT NULL,
		duration_days     REAL NOT NULL DEFAULT 0,
		use_business_days INTEGER NOT NULL DEFAULT 1,
		PRIMARY KEY (template_id, position)
	)`,
}
