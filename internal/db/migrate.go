package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
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
	if err := migrateBackfillRecordSeq(db); err != nil {
		return fmt.Errorf("backfilling record seq values: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS records (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		owner            TEXT NOT NULL DEFAULT '',
		department       TEXT NOT NULL,
		region           TEXT NOT NULL,
		status           TEXT NOT NULL,
		phase            TEXT NOT NULL,
		progress         REAL NOT NULL DEFAULT 0,
		efficiency       REAL NOT NULL DEFAULT 0,
		risk             REAL NOT NULL DEFAULT 0,
		reward           REAL NOT NULL DEFAULT 0,
		budget_allocated REAL NOT NULL DEFAULT 0 CHECK(budget_allocated >= 0),
		budget_spent     REAL NOT NULL DEFAULT 0 CHECK(budget_spent >= 0),
		delay_days       INTEGER NOT NULL DEFAULT 0 CHECK(delay_days >= 0),
		start_date       TEXT NOT NULL,
		seq              INTEGER NOT NULL DEFAULT 0,
		imported_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Columns added after the first release.
	`ALTER TABLE records ADD COLUMN owner TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE records ADD COLUMN seq INTEGER NOT NULL DEFAULT 0`,

	`CREATE INDEX IF NOT EXISTS idx_records_department ON records(department)`,
	`CREATE INDEX IF NOT EXISTS idx_records_start_date ON records(start_date)`,
	`CREATE INDEX IF NOT EXISTS idx_records_seq ON records(seq)`,
}

// migrateBackfillRecordSeq numbers records that predate the seq column
// (seq = 0) after the highest existing seq, in rowid order, so that list
// order stays the import order. Idempotent.
func migrateBackfillRecordSeq(db *sql.DB) error {
	ctx := context.Background()

	var pending int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records WHERE seq = 0`).Scan(&pending); err != nil {
		return fmt.Errorf("checking records seq: %w", err)
	}
	if pending == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting backfill transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var next int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM records`).Scan(&next); err != nil {
		return fmt.Errorf("reading max seq: %w", err)
	}

	rows, err := tx.QueryContext(ctx, `SELECT id FROM records WHERE seq = 0 ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("listing records without seq: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scanning record id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating records: %w", err)
	}

	for _, id := range ids {
		next++
		if _, err := tx.ExecContext(ctx, `UPDATE records SET seq = ? WHERE id = ?`, next, id); err != nil {
			return fmt.Errorf("setting seq for %s: %w", id, err)
		}
	}
	return tx.Commit()
}
