package audit

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourneyplan/tourneyplan/internal/result"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audit.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordRunAndHistoryRoundTrip(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	admitted := []result.AdmittedResult{
		{ID: "a", Freq: "hourly", StartsAtMS: 1000, DurationMS: 60000},
		{ID: "b", Freq: "daily", StartsAtMS: 2000, DurationMS: 60000},
	}
	require.NoError(t, s.RecordRun(ctx, "scenario.yaml", admitted, 3))

	history, err := s.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "scenario.yaml", history[0].ScenarioPath)
	assert.Equal(t, 2, history[0].AdmittedCount)
	assert.Equal(t, 3, history[0].RejectedCount)
}

func TestHistoryOrdersNewestFirst(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	require.NoError(t, s.RecordRun(ctx, "first.yaml", nil, 0))
	require.NoError(t, s.RecordRun(ctx, "second.yaml", nil, 0))

	history, err := s.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "second.yaml", history[0].ScenarioPath)
	assert.Equal(t, "first.yaml", history[1].ScenarioPath)
}

func TestHistoryRespectsLimit(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.RecordRun(ctx, "scenario.yaml", nil, 0))
	}

	history, err := s.History(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
