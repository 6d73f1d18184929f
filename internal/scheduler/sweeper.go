// Package scheduler runs the periodic booking expiry sweep.
package scheduler

import (
	"context"
	"log"
	"time"
)

// Expirer is the slice of the booking service the sweeper needs.
type Expirer interface {
	ExpireDue(ctx context.Context) (int, error)
}

// Sweeper expires confirmed bookings whose end date has passed. It
// runs on a fixed ticker; the first sweep fires immediately so a
// restart catches up without waiting a full interval.
type Sweeper struct {
	bookings Expirer
	interval time.Duration
}

// NewSweeper constructs a Sweeper. Intervals under a minute are
// raised to a minute to keep the sweep from competing with request
// traffic.
func NewSweeper(bookings Expirer, interval time.Duration) *Sweeper {
	if interval < time.Minute {
		interval = time.Minute
	}
	return &Sweeper{bookings: bookings, interval: interval}
}

// Run blocks until ctx is cancelled, sweeping once per interval.
func (s *Sweeper) Run(ctx context.Context) {
	s.sweep(ctx)
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	n, err := s.bookings.ExpireDue(ctx)
	if err != nil {
		log.Printf("sweeper: expiry sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("sweeper: expired %d bookings", n)
	}
}
