package testutil

import (
	"context"
	"database/sql"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/vista/internal/db"
)

// FailingUoW runs the callback in a real transaction but returns Err from
// the FailOn-th write whose SQL starts with Verb (any write when Verb is
// empty). Reads are never counted.
type FailingUoW struct {
	DB     *sql.DB
	Verb   string
	FailOn int32
	Err    error
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingTx{DBTX: tx, uow: u})
	})
}

type failingTx struct {
	db.DBTX
	uow   *FailingUoW
	count atomic.Int32
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	verb := strings.ToUpper(strings.TrimSpace(query))
	if f.uow.Verb == "" || strings.HasPrefix(verb, strings.ToUpper(f.uow.Verb)) {
		if f.count.Add(1) == f.uow.FailOn {
			return nil, f.uow.Err
		}
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
