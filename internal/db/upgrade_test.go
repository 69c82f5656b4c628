package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_UpgradePath_LegacyRecordsTable simulates a database created
// before records carried an owner and a seq column. Verifies that:
// 1. Existing rows survive migration
// 2. owner is added with an empty default
// 3. seq is backfilled in insertion order
func TestMigrate_UpgradePath_LegacyRecordsTable(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	legacy := []string{
		`CREATE TABLE records (
			id               TEXT PRIMARY KEY,
			name             TEXT NOT NULL,
			department       TEXT NOT NULL,
			region           TEXT NOT NULL,
			status           TEXT NOT NULL,
			phase            TEXT NOT NULL,
			progress         REAL NOT NULL DEFAULT 0,
			efficiency       REAL NOT NULL DEFAULT 0,
			risk             REAL NOT NULL DEFAULT 0,
			reward           REAL NOT NULL DEFAULT 0,
			budget_allocated REAL NOT NULL DEFAULT 0,
			budget_spent     REAL NOT NULL DEFAULT 0,
			delay_days       INTEGER NOT NULL DEFAULT 0,
			start_date       TEXT NOT NULL,
			imported_at      TEXT NOT NULL
		)`,
		`INSERT INTO records (id, name, department, region, status, phase, start_date, imported_at)
			VALUES ('zz', 'Second', 'Sales', 'Europe', 'On Track', 'Planning', '2026-02-01', '2026-02-01T00:00:00Z')`,
		`INSERT INTO records (id, name, department, region, status, phase, start_date, imported_at)
			VALUES ('aa', 'Third', 'HR', 'Europe', 'Blocked', 'Closure', '2026-03-01', '2026-03-01T00:00:00Z')`,
	}
	for _, stmt := range legacy {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	rows, err := db.Query(`SELECT id, owner, seq FROM records ORDER BY seq`)
	require.NoError(t, err)
	defer rows.Close()

	type row struct {
		id, owner string
		seq       int
	}
	var got []row
	for rows.Next() {
		var r row
		require.NoError(t, rows.Scan(&r.id, &r.owner, &r.seq))
		got = append(got, r)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []row{{"zz", "", 1}, {"aa", "", 2}}, got)
}
