package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aggMocks "github.com/kejahub/keja-match/internal/aggregator/mocks"
	storeMocks "github.com/kejahub/keja-match/internal/store/mocks"
)

func TestNewScheduler(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mp := aggMocks.NewMockProvider(t)
	eng := NewEngine(ms, mp, testHolder(), WithLogger(quietLogger()))

	s, err := NewScheduler(eng, 15*time.Minute, 6*time.Hour, quietLogger())
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Len(t, s.Entries(), 2, "one ingestion entry and one market refresh entry")
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mp := aggMocks.NewMockProvider(t)
	eng := NewEngine(ms, mp, testHolder(), WithLogger(quietLogger()))

	s, err := NewScheduler(eng, time.Hour, time.Hour, quietLogger())
	require.NoError(t, err)

	s.Start()
	for _, e := range s.Entries() {
		assert.False(t, e.Next.IsZero(), "entries scheduled after start")
	}

	done := s.Stop()
	select {
	case <-done.Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop in time")
	}
}
