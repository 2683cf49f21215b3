package marshaler

import (
	"github.com/dogmatiq/wirekit/pool"
	"github.com/dogmatiq/wirekit/wire"
)

// NewWire returns a marshaler for generated message types.
//
// Unmarshaled instances are rented from the pools that reg maintains, via the
// type's generated rent function. The caller owns each unmarshaled instance
// until it returns it to its pool.
func NewWire[
	T interface {
		wire.Marshaler
		UnmarshalFrom(*wire.Reader, *pool.Registry) error
	},
](reg *pool.Registry, rent func(*pool.Registry) T) Marshaler[T] {
	return marshaler[T]{
		func(v T) ([]byte, error) {
			return wire.Marshal(v)
		},
		func(data []byte) (T, error) {
			v := rent(reg)
			if err := v.UnmarshalFrom(wire.NewReader(data), reg); err != nil {
				return v, err
			}
			return v, nil
		},
	}
}
