package runstore

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/customs-cli/internal/batch"
	"github.com/sells-group/customs-cli/internal/model"
)

func TestStore_AddAndGet(t *testing.T) {
	s := New()
	started := time.Now()

	run := s.Add(started, []batch.ProductResult{
		{ID: "p1", FinalReadiness: model.ReadinessHigh, InitialScore: 40, FinalScore: 85},
	})

	require.NotNil(t, run)
	_, err := uuid.Parse(run.ID)
	assert.NoError(t, err, "run ids are uuids")
	assert.Equal(t, started, run.StartedAt)
	assert.Equal(t, 1, run.Summary.Total)
	assert.Equal(t, 1, run.Summary.High)

	got, ok := s.Get(run.ID)
	require.True(t, ok)
	assert.Equal(t, run, got)
}

func TestStore_GetUnknown(t *testing.T) {
	_, ok := New().Get("missing")
	assert.False(t, ok)
}

func TestStore_ListInsertionOrder(t *testing.T) {
	s := New()
	first := s.Add(time.Now(), nil)
	second := s.Add(time.Now(), nil)
	third := s.Add(time.Now(), nil)

	runs := s.List()
	require.Len(t, runs, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID},
		[]string{runs[0].ID, runs[1].ID, runs[2].ID})
}

func TestStore_ListEmpty(t *testing.T) {
	assert.Empty(t, New().List())
}
