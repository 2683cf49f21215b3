package pool_test

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	. "github.com/dogmatiq/wirekit/pool"
)

// guarded is a pooled type that detects being rented by two goroutines at
// once.
type guarded struct {
	State

	held atomic.Bool
	data int
}

func (g *guarded) Reset() {
	g.data = 0
}

func TestPoolConcurrency(t *testing.T) {
	t.Parallel()

	t.Run("never rents one instance to two goroutines at once", func(t *testing.T) {
		t.Parallel()

		p := New(
			func() *guarded { return &guarded{} },
			WithCapacity(4),
			WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		)

		var violations atomic.Int64
		var wg sync.WaitGroup

		for g := 0; g < 16; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				for i := 0; i < 1000; i++ {
					x := p.Rent()

					if !x.held.CompareAndSwap(false, true) {
						violations.Add(1)
					}

					x.data++

					x.held.Store(false)
					p.Return(x)
				}
			}()
		}

		wg.Wait()

		if n := violations.Load(); n != 0 {
			t.Fatalf("an instance was rented concurrently %d times", n)
		}
	})

	t.Run("never enqueues an instance twice under concurrent duplicate returns", func(t *testing.T) {
		t.Parallel()

		p := New(
			func() *guarded { return &guarded{} },
			WithCapacity(8),
			WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		)

		// Hold every pre-populated instance so the queue is empty, then
		// subject one instance to concurrent duplicate returns.
		var held []*guarded
		for i := 0; i < 8; i++ {
			held = append(held, p.Rent())
		}

		x := held[0]

		var wg sync.WaitGroup
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				p.Return(x)
			}()
		}
		wg.Wait()

		// Drain everything the pool will give us without returning; x may
		// appear at most once.
		seen := 0
		for i := 0; i < 16; i++ {
			if p.Rent() == x {
				seen++
			}
		}

		if seen != 1 {
			t.Fatalf("instance present in the pool %d times, want 1", seen)
		}
	})
}
