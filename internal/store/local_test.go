package store

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"taqyim/internal/hr"
)

func TestMain(m *testing.M) {
	// database/sql keeps its connection opener alive until Close; every test
	// closes its store, so anything left running is a real leak.
	goleak.VerifyTestMain(m)
}

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := NewLocalStore(":memory:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNewLocalStore_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "taqyim.db")
	s, err := NewLocalStore(path, nil)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, path, s.Path())
}

func TestGetSet(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("slot", []byte(`[1,2,3]`)))

	raw, ok, err := s.Get("slot")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[1,2,3]`), raw)

	// Overwrite replaces the previous value.
	require.NoError(t, s.Set("slot", []byte(`[]`)))
	raw, ok, err = s.Get("slot")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[]`), raw)
}

func TestLoadSave_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	employees := hr.SeedEmployees()
	Save(s, SlotEmployees, employees)

	got := Load(s, SlotEmployees, []hr.Employee{})
	if diff := cmp.Diff(employees, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_AbsentSlotReturnsDefault(t *testing.T) {
	s := newTestStore(t)

	def := []hr.Evaluation{{ID: "fallback"}}
	got := Load(s, SlotEvaluations, def)
	if diff := cmp.Diff(def, got); diff != "" {
		t.Errorf("default mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_CorruptSlotReturnsDefault(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set(SlotEmployees, []byte("{not json")))

	got := Load(s, SlotEmployees, []hr.Employee{})
	assert.Empty(t, got)
}

func TestLoadSave_PreservesOrder(t *testing.T) {
	s := newTestStore(t)

	evals := []hr.Evaluation{
		{ID: "b", EmployeeID: "1", Date: "2024-05-02", Type: hr.EvaluationDaily, Score: 2},
		{ID: "a", EmployeeID: "1", Date: "2024-05-01", Type: hr.EvaluationMonthly, Score: 5},
		{ID: "c", EmployeeID: "2", Date: "2024-04-30", Type: hr.EvaluationDaily, Score: 3},
	}
	Save(s, SlotEvaluations, evals)

	got := Load(s, SlotEvaluations, []hr.Evaluation{})
	if diff := cmp.Diff(evals, got); diff != "" {
		t.Errorf("order not preserved (-want +got):\n%s", diff)
	}
}

func TestSchemaVersion_NewerFileRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taqyim.db")

	s, err := NewLocalStore(path, nil)
	require.NoError(t, err)
	_, err = s.db.Exec("PRAGMA user_version = 99")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = NewLocalStore(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer")
}
