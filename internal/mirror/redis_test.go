package mirror

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
	"github.com/diegoclair/cleaning-rotation-bot/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestMirror(t *testing.T) (*miniredis.Miniredis, *RedisMirror) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { client.Close() })

	return mr, New(client, "test", metrics.NewNop(), zap.NewNop())
}

func testRecord() *entity.WeeklyRecord {
	day := 0
	return &entity.WeeklyRecord{
		WeekKey:    "2026-01-19",
		Completed:  map[string]bool{"garage": true},
		PlannedDay: &day,
		Notes:      "Garage lamp is broken",
		UpdatedAt:  time.Date(2026, 1, 21, 10, 0, 0, 0, time.UTC),
	}
}

func TestRedisMirror_PublishAndFetch(t *testing.T) {
	mr, m := setupTestMirror(t)
	ctx := context.Background()

	require.NoError(t, m.Ping(ctx))
	require.NoError(t, m.Publish(ctx, testRecord()))
	assert.True(t, mr.Exists("test:week:2026-01-19"))

	got, err := m.Fetch(ctx, "2026-01-19")
	require.NoError(t, err)
	require.NotNil(t, got)

	want := testRecord()
	assert.Equal(t, want.Completed, got.Completed)
	assert.Equal(t, *want.PlannedDay, *got.PlannedDay)
	assert.Equal(t, want.Notes, got.Notes)
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt))
}

func TestRedisMirror_FetchMissing(t *testing.T) {
	_, m := setupTestMirror(t)

	got, err := m.Fetch(context.Background(), "2026-01-26")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisMirror_FetchMalformed(t *testing.T) {
	mr, m := setupTestMirror(t)
	require.NoError(t, mr.Set("test:week:2026-01-19", "{not json"))

	got, err := m.Fetch(context.Background(), "2026-01-19")
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestRedisMirror_Unavailable(t *testing.T) {
	mr, m := setupTestMirror(t)
	mr.Close()

	ctx := context.Background()
	assert.Error(t, m.Publish(ctx, testRecord()))

	_, err := m.Fetch(ctx, "2026-01-19")
	assert.Error(t, err)
}

func TestRedisMirror_Subscribe(t *testing.T) {
	mr, local := setupTestMirror(t)
	remote := New(NewRedisClient(mr.Addr(), "", 0), "test", metrics.NewNop(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan *entity.WeeklyRecord, 4)
	done := make(chan error, 1)
	go func() {
		done <- local.Subscribe(ctx, func(record *entity.WeeklyRecord) {
			received <- record
		})
	}()

	require.Eventually(t, func() bool {
		return mr.PubSubNumSub("test:weeks")["test:weeks"] == 1
	}, time.Second, 10*time.Millisecond)

	// own announcements are ignored
	require.NoError(t, local.Publish(context.Background(), testRecord()))
	mr.Publish("test:weeks", "garbage")

	require.NoError(t, remote.Publish(context.Background(), testRecord()))

	select {
	case got := <-received:
		assert.Equal(t, "2026-01-19", got.WeekKey)
		assert.True(t, got.Completed["garage"])
	case <-time.After(2 * time.Second):
		t.Fatal("record from the other instance was not received")
	}

	assert.Empty(t, received)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Subscribe did not return after cancel")
	}
}
