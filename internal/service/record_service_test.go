package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/vista/internal/importer"
	"github.com/alexanderramin/vista/internal/repository"
	"github.com/alexanderramin/vista/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(f float64) *float64 { return &f }

func importRecord(id, name string) importer.RecordImport {
	return importer.RecordImport{
		ID:              id,
		Name:            name,
		Owner:           "Owner",
		Department:      "Sales",
		Region:          "Europe",
		Status:          "In Progress",
		Phase:           "Execution",
		Progress:        ptrFloat(10),
		Efficiency:      ptrFloat(20),
		Risk:            ptrFloat(30),
		Reward:          ptrFloat(40),
		BudgetAllocated: ptrFloat(1000),
		BudgetSpent:     ptrFloat(500),
		StartDate:       "2026-04-01",
	}
}

func validRecordFile() *importer.RecordFile {
	return &importer.RecordFile{Records: []importer.RecordImport{
		importRecord("r-1", "One"),
		importRecord("r-2", "Two"),
		importRecord("r-3", "Three"),
	}}
}

func TestRecordService_ImportAppends(t *testing.T) {
	repo, uow := seededRepo(t)
	obs := &recordingObserver{}
	svc := NewRecordService(repo, uow, obs)
	ctx := context.Background()

	res, err := svc.ImportFile(ctx, validRecordFile(), false)
	require.NoError(t, err)
	assert.Equal(t, &ImportResult{Imported: 3, Total: 11}, res)

	recs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "r-3", recs[len(recs)-1].ID)
	assert.Equal(t, []string{"import-records"}, obs.names())
}

func TestRecordService_ImportReplaces(t *testing.T) {
	repo, uow := seededRepo(t)
	svc := NewRecordService(repo, uow)

	res, err := svc.ImportFile(context.Background(), validRecordFile(), true)
	require.NoError(t, err)
	assert.Equal(t, &ImportResult{Imported: 3, Replaced: 8, Total: 3}, res)

	n, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRecordService_ValidationErrorsListed(t *testing.T) {
	repo, uow := seededRepo(t)
	svc := NewRecordService(repo, uow)

	file := validRecordFile()
	file.Records[0].Department = "Eng"
	file.Records[2].Risk = ptrFloat(140)
	_, err := svc.ImportFile(context.Background(), file, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (2 errors)")
	assert.Contains(t, err.Error(), "records[0].department")
	assert.Contains(t, err.Error(), "records[2].risk")

	// Nothing was replaced.
	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestRecordService_RollbackOnInsertFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRecordRepo(database)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, testutil.Portfolio()))

	// The delete-all goes through; the second insert fails.
	failUoW := &testutil.FailingUoW{
		DB:     database,
		Verb:   "INSERT",
		FailOn: 2,
		Err:    fmt.Errorf("injected insert failure"),
	}
	svc := NewRecordService(repo, failUoW)

	_, err := svc.ImportFile(ctx, validRecordFile(), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected insert failure")

	recs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 8, "replace must roll back with the failed insert")
	assert.Equal(t, "p-01", recs[0].ID)
}

func TestRecordService_ImportFromPath(t *testing.T) {
	repo, uow := seededRepo(t)
	svc := NewRecordService(repo, uow)

	path := filepath.Join(t.TempDir(), "records.yaml")
	doc := `- name: From YAML
  owner: Kim
  department: HR
  region: Latin America
  status: Blocked
  phase: Closure
  progress: 1
  efficiency: 2
  risk: 3
  reward: 4
  budget_allocated: 5
  budget_spent: 6
  start_date: "2026-05-05"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	res, err := svc.Import(context.Background(), path, true)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)

	_, err = svc.Import(context.Background(), filepath.Join(t.TempDir(), "missing.json"), false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
