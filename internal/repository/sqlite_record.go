package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/vista/internal/db"
	"github.com/alexanderramin/vista/internal/domain"
)

// SQLiteRecordRepo implements RecordRepo over a DBTX so that it can run
// inside a unit of work.
type SQLiteRecordRepo struct {
	db db.DBTX
}

// NewSQLiteRecordRepo creates a new SQLiteRecordRepo.
func NewSQLiteRecordRepo(conn db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: conn}
}

const recordColumns = `id, name, owner, department, region, status, phase,
	progress, efficiency, risk, reward, budget_allocated, budget_spent, delay_days, start_date`

// Insert appends records after the existing ones, keeping their order.
func (r *SQLiteRecordRepo) Insert(ctx context.Context, records []domain.ProjectRecord) error {
	var seq int
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM records`).Scan(&seq); err != nil {
		return fmt.Errorf("reading record seq: %w", err)
	}
	now := nowUTC()
	query := `INSERT INTO records (` + recordColumns + `, seq, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, p := range records {
		seq++
		_, err := r.db.ExecContext(ctx, query,
			p.ID,
			p.Name,
			p.Owner,
			string(p.Department),
			string(p.Region),
			string(p.Status),
			string(p.Phase),
			p.Progress,
			p.Efficiency,
			p.Risk,
			p.Reward,
			p.BudgetAllocated,
			p.BudgetSpent,
			p.DelayDays,
			p.StartDate.Format(dateLayout),
			seq,
			now,
		)
		if err != nil {
			return fmt.Errorf("inserting record %s: %w", p.ID, err)
		}
	}
	return nil
}

func (r *SQLiteRecordRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("deleting records: %w", err)
	}
	return nil
}

func (r *SQLiteRecordRepo) List(ctx context.Context) ([]domain.ProjectRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+recordColumns+` FROM records ORDER BY seq, id`)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	records := []domain.ProjectRecord{}
	for rows.Next() {
		var (
			p                                   domain.ProjectRecord
			dept, region, status, phase, start string
		)
		err := rows.Scan(&p.ID, &p.Name, &p.Owner, &dept, &region, &status, &phase,
			&p.Progress, &p.Efficiency, &p.Risk, &p.Reward,
			&p.BudgetAllocated, &p.BudgetSpent, &p.DelayDays, &start)
		if err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		p.Department = domain.Department(dept)
		p.Region = domain.Region(region)
		p.Status = domain.ProjectStatus(status)
		p.Phase = domain.Phase(phase)
		p.StartDate, err = time.Parse(dateLayout, start)
		if err != nil {
			return nil, fmt.Errorf("parsing start_date of %s: %w", p.ID, err)
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

func (r *SQLiteRecordRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}
