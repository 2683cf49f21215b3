package marshaler_test

import (
	"testing"

	"github.com/dogmatiq/wirekit/example/candles"
	. "github.com/dogmatiq/wirekit/marshaler"
	"github.com/dogmatiq/wirekit/pool"
)

func TestNewJSON(t *testing.T) {
	t.Parallel()

	type record struct {
		Name  string
		Count int
	}

	m := NewJSON[record]()

	data, err := m.Marshal(record{Name: "candles", Count: 3})
	if err != nil {
		t.Fatal(err)
	}

	v, err := m.Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}

	if v.Name != "candles" || v.Count != 3 {
		t.Fatalf("unexpected value: %+v", v)
	}
}

func TestNewWire(t *testing.T) {
	t.Parallel()

	reg := pool.NewRegistry(pool.WithCapacity(2))
	m := NewWire(reg, candles.RentQuotation)

	q := candles.NewQuotation()
	q.Units = 100
	q.Nano = 500_000_000

	data, err := m.Marshal(q)
	if err != nil {
		t.Fatal(err)
	}

	v, err := m.Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}

	if v.Units != 100 || v.Nano != 500_000_000 {
		t.Fatalf("unexpected value: %+v", v)
	}

	candles.ReturnQuotation(reg, v)
}
