package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/vista/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_MapsFields(t *testing.T) {
	r := validRecord()
	r.DelayDays = ptrInt(4)

	got, err := Convert(&RecordFile{Records: []RecordImport{r}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ProjectRecord{
		ID:              "p-1",
		Name:            "Apollo",
		Owner:           "Dana",
		Department:      domain.DeptEngineering,
		Region:          domain.RegionEurope,
		Status:          domain.StatusOnTrack,
		Phase:           domain.PhasePlanning,
		Progress:        50,
		Efficiency:      70,
		Risk:            30,
		Reward:          60,
		BudgetAllocated: 1000,
		BudgetSpent:     0,
		DelayDays:       4,
		StartDate:       time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
	}, got[0])
}

func TestConvert_AssignsUUIDWhenMissing(t *testing.T) {
	a, b := validRecord(), validRecord()
	a.ID, b.ID = "", ""

	got, err := Convert(&RecordFile{Records: []RecordImport{a, b}})
	require.NoError(t, err)
	require.Len(t, got, 2)
	_, err = uuid.Parse(got[0].ID)
	assert.NoError(t, err)
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

func TestParseJSON_ObjectAndArray(t *testing.T) {
	obj := `{"records":[{"name":"A","department":"HR","start_date":"2026-01-01","risk":5}]}`
	arr := `  [{"name":"A","department":"HR","start_date":"2026-01-01","risk":5}]`

	for _, doc := range []string{obj, arr} {
		file, err := ParseJSON([]byte(doc))
		require.NoError(t, err)
		require.Len(t, file.Records, 1)
		assert.Equal(t, "A", file.Records[0].Name)
		require.NotNil(t, file.Records[0].Risk)
		assert.Equal(t, 5.0, *file.Records[0].Risk)
		assert.Nil(t, file.Records[0].Reward)
	}
}

func TestParseJSON_Invalid(t *testing.T) {
	_, err := ParseJSON([]byte(`{"records": [`))
	assert.Error(t, err)
}

func TestParseYAML_Sequence(t *testing.T) {
	file, err := ParseYAML([]byte("- name: A\n  department: HR\n- name: B\n"))
	require.NoError(t, err)
	require.Len(t, file.Records, 2)
	assert.Equal(t, "B", file.Records[1].Name)
}

func TestParseYAML_Empty(t *testing.T) {
	file, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, file.Records)
}

func TestLoadRecordFile_YAMLFixture(t *testing.T) {
	file, err := LoadRecordFile(filepath.Join("testdata", "portfolio.yaml"))
	require.NoError(t, err)
	require.Empty(t, ValidateRecordFile(file))

	recs, err := Convert(file)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "p-01", recs[0].ID)
	assert.Equal(t, domain.RegionNorthAmerica, recs[0].Region)
	assert.Equal(t, 12, recs[1].DelayDays)
	assert.Zero(t, recs[0].DelayDays)
}

func TestLoadRecordFile_JSONByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Solo"}]`), 0o644))

	file, err := LoadRecordFile(path)
	require.NoError(t, err)
	require.Len(t, file.Records, 1)
	assert.Equal(t, "Solo", file.Records[0].Name)
}

func TestLoadRecordFile_Missing(t *testing.T) {
	_, err := LoadRecordFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
