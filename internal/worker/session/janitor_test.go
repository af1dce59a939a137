package session

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/connectflx/discovery-service/internal/domain"
	"github.com/connectflx/discovery-service/internal/repository/memory"
	"github.com/connectflx/discovery-service/internal/worker"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) Sweep(time.Time) int {
	s.calls.Add(1)
	return 0
}

func TestJanitor_SweepOnce(t *testing.T) {
	store := memory.NewSessionRepository()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Save(ctx, domain.NewSession("old", now), time.Millisecond))
	require.NoError(t, store.Save(ctx, domain.NewSession("fresh", now), time.Hour))

	j := NewJanitor(store, time.Minute, zap.NewNop())
	j.now = func() time.Time { return now.Add(time.Second) }

	assert.Equal(t, 1, j.SweepOnce())
	assert.Equal(t, 1, store.Len())
}

func TestJanitor_RunsOnTicker(t *testing.T) {
	sweeper := &countingSweeper{}
	j := NewJanitor(sweeper, 10*time.Millisecond, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- j.Start(context.Background()) }()

	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	require.NoError(t, j.Stop())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}

	// Повторная остановка безопасна
	assert.NoError(t, j.Stop())
	assert.True(t, j.IsStopped())
}

func TestJanitor_WithManager(t *testing.T) {
	sweeper := &countingSweeper{}
	m := worker.NewWorkerManager(zap.NewNop(), time.Second)
	m.Register(NewJanitor(sweeper, 10*time.Millisecond, zap.NewNop()))
	assert.Equal(t, 1, m.Len())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, m.Start(ctx))
	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	assert.NoError(t, m.Stop())
}

func TestWorkerManager_NoWorkers(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop(), 0)
	assert.Error(t, m.Start(context.Background()))
}
