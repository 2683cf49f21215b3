package pool

import (
	"sync/atomic"

	"github.com/dogmatiq/wirekit/internal/x/xatomic"
)

// State tracks where a pooled instance is in its rent/return lifecycle.
//
// Pooled types gain the [Rentable] capability by embedding State; the
// embedded value must never be copied or modified directly.
//
// The lifecycle is a three-state machine over a single atomic counter:
//
//   - Available (counter == 1): the instance is in its pool's queue.
//   - Rented (counter == 0): the instance is exclusively owned by whoever
//     rented it.
//   - Protected (counter == -n): the instance has n outstanding extra
//     consumers registered via [State.Protect]; the next n calls to
//     [Pool.Return] each consume one unit of protection instead of actually
//     returning the instance.
//
// All transitions use atomic compare-and-swap or add operations, so the
// counter is safe to manipulate from concurrent goroutines.
type State struct {
	n   atomic.Int32
	reg xatomic.Value[*Registry]
}

const (
	stateRented    int32 = 0
	stateAvailable int32 = 1
)

// PoolState returns s.
//
// It exists so that embedding State satisfies the [Rentable] interface.
func (s *State) PoolState() *State {
	return s
}

// Protect registers n additional consumers of the instance.
//
// After calling Protect(n), n+1 calls to [Pool.Return] are required before
// the instance actually becomes available for rent again. It is the one
// sanctioned way to extend ownership of a rented instance to another
// consumer, such as a goroutine that reads the instance after the primary
// owner's logical scope has ended.
//
// Protect must only be called while the instance is rented, before the
// primary owner returns it.
func (s *State) Protect(n int) {
	s.n.Add(-int32(n))
}

// Registry returns the registry through which the instance was most recently
// rented, or nil if it has never been rented from a registry-managed pool.
func (s *State) Registry() *Registry {
	return s.reg.Load()
}

// markRented transitions the instance to the rented state unconditionally,
// recording the registry it was rented through.
func (s *State) markRented(reg *Registry) {
	s.n.Store(stateRented)
	if reg != nil {
		s.reg.Store(reg)
	}
}

// markAvailable transitions the instance to the available state
// unconditionally. It is used only when populating a pool.
func (s *State) markAvailable() {
	s.n.Store(stateAvailable)
}

// release attempts the rented → available transition.
//
// It reports the outcome of a single return attempt:
//
//   - releaseOK: the transition succeeded and the caller now owns the
//     instance for the purpose of resetting and re-queueing it;
//   - releaseProtected: one unit of protection was consumed and the instance
//     remains owned by its other consumers;
//   - releaseDuplicate: the instance was already available, so this return
//     is a duplicate and must be ignored.
func (s *State) release() releaseResult {
	for {
		n := s.n.Load()

		switch {
		case n < 0:
			// Consume one unit of protection. The instance only becomes
			// returnable once a subsequent return observes the rented state,
			// so Protect(n) demands n+1 returns in total.
			if s.n.CompareAndSwap(n, n+1) {
				return releaseProtected
			}

		case n == stateRented:
			if s.n.CompareAndSwap(stateRented, stateAvailable) {
				return releaseOK
			}

		default:
			return releaseDuplicate
		}
	}
}

type releaseResult uint8

const (
	releaseOK releaseResult = iota
	releaseProtected
	releaseDuplicate
)
