package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kmrl-docs/dochub/internal/model"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (c *countingSweeper) Sweep(_ context.Context) *model.SweepReport {
	c.calls.Add(1)
	return model.NewSweepReport()
}

func TestWorker_SweepsOnInterval(t *testing.T) {
	sweeper := &countingSweeper{}
	w := New(sweeper, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for sweeper.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("worker never swept twice")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on cancel")
	}
}

func TestWorker_StopsBeforeFirstTick(t *testing.T) {
	sweeper := &countingSweeper{}
	w := New(sweeper, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	if sweeper.calls.Load() != 0 {
		t.Errorf("sweeps = %d, want 0", sweeper.calls.Load())
	}
}
