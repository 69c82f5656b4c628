package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/vista/internal/db"
	"github.com/alexanderramin/vista/internal/repository"
	"github.com/alexanderramin/vista/internal/testutil"
	"github.com/stretchr/testify/require"
)

// june10 is the fixed "today" for date-preset tests.
var june10 = time.Date(2026, time.June, 10, 9, 30, 0, 0, time.UTC)

func fixedNow() time.Time { return june10 }

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.events))
	for i, e := range o.events {
		out[i] = e.Name
	}
	return out
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []Notice
}

func (n *recordingNotifier) Notify(notice Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
}

func (n *recordingNotifier) errors() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []string
	for _, x := range n.notices {
		if x.Level == NoticeError {
			out = append(out, x.Message)
		}
	}
	return out
}

// seededRepo returns a record repo holding the fixed portfolio.
func seededRepo(t *testing.T) (*repository.SQLiteRecordRepo, db.UnitOfWork) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRecordRepo(database)
	require.NoError(t, repo.Insert(context.Background(), testutil.Portfolio()))
	return repo, testutil.NewTestUoW(database)
}
