package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// loopWorker крутится до Stop или отмены контекста
type loopWorker struct {
	*BaseWorker
	started atomic.Int32
	block   bool
}

func newLoopWorker(name string) *loopWorker {
	return &loopWorker{BaseWorker: NewBaseWorker(name, "group", zap.NewNop())}
}

func (w *loopWorker) Start(ctx context.Context) error {
	w.started.Add(1)
	for {
		if w.block {
			// игнорирует Stop, завершается только по контексту
			<-ctx.Done()
			return ctx.Err()
		}
		if !w.Pause(ctx, 10*time.Millisecond) {
			return nil
		}
	}
}

func TestWorkerManager_NoWorkers(t *testing.T) {
	m := NewWorkerManager(zap.NewNop(), time.Second)
	assert.Error(t, m.Start(context.Background()))
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := NewWorkerManager(zap.NewNop(), time.Second)
	a, b := newLoopWorker("a"), newLoopWorker("b")
	m.Register(a)
	m.Register(b)
	assert.Equal(t, 2, m.Count())

	require.NoError(t, m.Start(context.Background()))

	assert.Eventually(t, func() bool {
		return a.started.Load() == 1 && b.started.Load() == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.True(t, a.IsStopped())
	assert.True(t, b.IsStopped())
}

func TestWorkerManager_StopTimeout(t *testing.T) {
	m := NewWorkerManager(zap.NewNop(), 50*time.Millisecond)
	w := newLoopWorker("stuck")
	w.block = true
	m.Register(w)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, m.Start(ctx))

	assert.Eventually(t, func() bool { return w.started.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Error(t, m.Stop())
}

func TestBaseWorker_Pause(t *testing.T) {
	w := NewBaseWorker("pause", "group", zap.NewNop())
	assert.True(t, w.Pause(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, w.Pause(ctx, time.Minute))

	require.NoError(t, w.Stop())
	assert.False(t, w.Pause(context.Background(), time.Minute))
}
