// Package pool provides fixed-capacity pools of reusable message instances.
//
// Pools never block and never fail: renting from an empty pool fabricates a
// new instance, and returning to a full pool simply discards the instance.
// Misuse such as a double return is detected and ignored, so pooling can
// never become a correctness hazard for the code that uses it.
package pool

import (
	"context"
	"log/slog"

	"github.com/dogmatiq/wirekit/internal/telemetry"
	"github.com/dogmatiq/wirekit/internal/x/xtelemetry"
)

// DefaultCapacity is the number of instances a pool holds when no explicit
// capacity is configured.
const DefaultCapacity = 128

// Rentable is the capability a type needs in order to be managed by a [Pool].
//
// It is satisfied by embedding [State] in a type that has a Reset method.
type Rentable interface {
	// Reset restores the instance to its default state.
	Reset()

	// PoolState returns the instance's pool lifecycle state.
	PoolState() *State
}

// A Pool is a fixed-capacity collection of reusable instances of type T.
//
// All methods are safe for concurrent use and never block.
type Pool[T Rentable] struct {
	factory func() T
	queue   chan T
	reg     *Registry
	logger  *slog.Logger

	rentedCount      telemetry.Instrument[int64]
	returnedCount    telemetry.Instrument[int64]
	fabricatedCount  telemetry.Instrument[int64]
	droppedCount     telemetry.Instrument[int64]
	outstandingCount telemetry.Instrument[int64]
}

// New returns a pool of instances produced by factory.
//
// The pool is pre-populated with capacity instances, all of which are
// immediately available for rent.
func New[T Rentable](factory func() T, options ...Option) *Pool[T] {
	return newPool(factory, nil, resolveOptions(options))
}

func newPool[T Rentable](factory func() T, reg *Registry, opts options) *Pool[T] {
	p := &Pool[T]{
		factory: factory,
		queue:   make(chan T, opts.Capacity),
		reg:     reg,
		logger:  opts.Logger,
	}

	var zero T
	rec := opts.Telemetry.Recorder(
		"github.com/dogmatiq/wirekit/pool",
		telemetry.String("handle", xtelemetry.HandleID()),
		telemetry.Type("message_type", zero),
	)

	p.rentedCount = rec.Counter("rented", "{instance}", "The number of instances that have been rented from the pool.")
	p.returnedCount = rec.Counter("returned", "{instance}", "The number of instances that have been returned to the pool.")
	p.fabricatedCount = rec.Counter("fabricated", "{instance}", "The number of instances fabricated because the pool was empty.")
	p.droppedCount = rec.Counter("dropped", "{instance}", "The number of instances discarded because the pool was full.")
	p.outstandingCount = rec.UpDownCounter("outstanding", "{instance}", "The number of rented instances that have not yet been returned.")

	for range opts.Capacity {
		x := factory()
		x.PoolState().markAvailable()
		p.queue <- x
	}

	return p
}

// Rent takes an instance from the pool, fabricating a new one if the pool is
// empty.
//
// The caller owns the instance exclusively until it passes it to
// [Pool.Return]. Rent never blocks.
func (p *Pool[T]) Rent() T {
	select {
	case x := <-p.queue:
		x.PoolState().markRented(p.reg)
		p.rentedCount(context.Background(), 1)
		p.outstandingCount(context.Background(), 1)
		return x

	default:
		x := p.factory()
		x.PoolState().markRented(p.reg)
		p.rentedCount(context.Background(), 1)
		p.fabricatedCount(context.Background(), 1)
		p.outstandingCount(context.Background(), 1)
		return x
	}
}

// Return makes a rented instance available for rent again.
//
// The instance is reset before it is re-queued. If the pool is already at
// capacity the instance is discarded. If the instance carries outstanding
// protection registered via [State.Protect], one unit of protection is
// consumed instead of returning the instance. A duplicate return is detected
// and ignored.
//
// Return never blocks and never panics.
func (p *Pool[T]) Return(x T) {
	st := x.PoolState()

	// Optimistic capacity check; a full pool discards the instance without
	// touching its state, so it remains rented and is left for the garbage
	// collector.
	if len(p.queue) == cap(p.queue) {
		p.droppedCount(context.Background(), 1)
		return
	}

	switch st.release() {
	case releaseProtected:
		return

	case releaseDuplicate:
		p.logger.Warn(
			"pooled instance returned more than once",
			slog.String("type", telemetry.TypeName(x)),
		)
		return
	}

	p.outstandingCount(context.Background(), -1)

	x.Reset()

	select {
	case p.queue <- x:
		p.returnedCount(context.Background(), 1)
	default:
		// Lost a race with concurrent returns; the pool filled up after the
		// capacity check above.
		p.droppedCount(context.Background(), 1)
	}
}
