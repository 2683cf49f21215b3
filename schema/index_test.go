package schema_test

import (
	"testing"

	. "github.com/dogmatiq/wirekit/schema"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// testDescriptorSet builds a descriptor set with two packages:
//
//	package market:
//	  enum CandleInterval
//	  message Candle
//	  message GetCandlesResponse
//	    message Paging            (nested)
//	    enum Granularity          (nested)
//	package audit:
//	  message Candle
func testDescriptorSet() *descriptorpb.FileDescriptorSet {
	return &descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{
			{
				Name:    proto.String("market.proto"),
				Package: proto.String("market"),
				EnumType: []*descriptorpb.EnumDescriptorProto{
					{
						Name: proto.String("CandleInterval"),
						Value: []*descriptorpb.EnumValueDescriptorProto{
							{Name: proto.String("UNSPECIFIED"), Number: proto.Int32(0)},
							{Name: proto.String("CANDLE_INTERVAL_1_MIN"), Number: proto.Int32(1)},
						},
					},
				},
				MessageType: []*descriptorpb.DescriptorProto{
					{
						Name: proto.String("Candle"),
					},
					{
						Name: proto.String("GetCandlesResponse"),
						NestedType: []*descriptorpb.DescriptorProto{
							{Name: proto.String("Paging")},
						},
						EnumType: []*descriptorpb.EnumDescriptorProto{
							{
								Name: proto.String("Granularity"),
								Value: []*descriptorpb.EnumValueDescriptorProto{
									{Name: proto.String("COARSE"), Number: proto.Int32(0)},
								},
							},
						},
					},
				},
			},
			{
				Name:    proto.String("audit.proto"),
				Package: proto.String("audit"),
				MessageType: []*descriptorpb.DescriptorProto{
					{Name: proto.String("Candle")},
				},
			},
		},
	}
}

func TestIndex(t *testing.T) {
	t.Parallel()

	x := NewIndex(testDescriptorSet())

	t.Run("indexes top-level types by full name", func(t *testing.T) {
		t.Parallel()

		m, ok := x.Message(".market.Candle")
		if !ok {
			t.Fatal("expected .market.Candle to be indexed")
		}
		if m.GetName() != "Candle" {
			t.Fatalf("unexpected descriptor: got %q", m.GetName())
		}

		if _, ok := x.Enum(".market.CandleInterval"); !ok {
			t.Fatal("expected .market.CandleInterval to be indexed")
		}
	})

	t.Run("indexes nested types under their enclosing message", func(t *testing.T) {
		t.Parallel()

		if _, ok := x.Message(".market.GetCandlesResponse.Paging"); !ok {
			t.Fatal("expected the nested message to be indexed")
		}
		if _, ok := x.Enum(".market.GetCandlesResponse.Granularity"); !ok {
			t.Fatal("expected the nested enum to be indexed")
		}
	})

	t.Run("tracks the owning file of each type", func(t *testing.T) {
		t.Parallel()

		f, ok := x.File(".market.GetCandlesResponse.Paging")
		if !ok {
			t.Fatal("expected the nested message to have an owning file")
		}
		if f.GetPackage() != "market" {
			t.Fatalf("unexpected package: got %q, want %q", f.GetPackage(), "market")
		}
	})

	t.Run("flattens nested names into collision-free identifiers", func(t *testing.T) {
		t.Parallel()

		cases := map[FullName]string{
			".market.Candle":                         "Candle",
			".market.CandleInterval":                 "CandleInterval",
			".market.GetCandlesResponse":             "GetCandlesResponse",
			".market.GetCandlesResponse.Paging":      "GetCandlesResponse_Paging",
			".market.GetCandlesResponse.Granularity": "GetCandlesResponse_Granularity",
		}

		for n, want := range cases {
			got, ok := x.Identifier(n)
			if !ok {
				t.Fatalf("expected %s to have an identifier", n)
			}
			if got != want {
				t.Fatalf("unexpected identifier for %s: got %q, want %q", n, got, want)
			}
		}
	})

	t.Run("assigns identifiers deterministically across rebuilds", func(t *testing.T) {
		t.Parallel()

		y := NewIndex(testDescriptorSet())

		for _, n := range x.ListNames() {
			a, _ := x.Identifier(n)
			b, _ := y.Identifier(n)
			if a != b {
				t.Fatalf("identifier for %s differs across rebuilds: %q vs %q", n, a, b)
			}
		}
	})

	t.Run("handles files without a package", func(t *testing.T) {
		t.Parallel()

		y := NewIndex(&descriptorpb.FileDescriptorSet{
			File: []*descriptorpb.FileDescriptorProto{
				{
					Name: proto.String("bare.proto"),
					MessageType: []*descriptorpb.DescriptorProto{
						{Name: proto.String("Bare")},
					},
				},
			},
		})

		if _, ok := y.Message(".Bare"); !ok {
			t.Fatal("expected .Bare to be indexed")
		}

		id, _ := y.Identifier(".Bare")
		if id != "Bare" {
			t.Fatalf("unexpected identifier: got %q, want %q", id, "Bare")
		}
	})
}
