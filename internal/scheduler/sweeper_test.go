package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeExpirer struct {
	calls chan struct{}
}

func (f *fakeExpirer) ExpireDue(ctx context.Context) (int, error) {
	f.calls <- struct{}{}
	return 1, nil
}

func TestSweeperRunsImmediately(t *testing.T) {
	exp := &fakeExpirer{calls: make(chan struct{}, 1)}
	s := NewSweeper(exp, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case <-exp.calls:
	case <-time.After(time.Second):
		t.Fatal("expected an immediate sweep")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop on cancel")
	}
}

func TestSweeperEnforcesMinimumInterval(t *testing.T) {
	s := NewSweeper(&fakeExpirer{calls: make(chan struct{}, 1)}, time.Second)
	assert.Equal(t, time.Minute, s.interval)
}
