package frame

import (
	"math/rand"
	"testing"

	"github.com/san-kum/metaballs/internal/dynamo"
)

func TestSerializeLayout(t *testing.T) {
	for _, n := range []int{1, 7, dynamo.MaxEntities} {
		s, _ := dynamo.NewStore(n)
		s.Spawn(rand.New(rand.NewSource(int64(n))), dynamo.NewBox(100, 50, 25),
			dynamo.Range{Min: -3, Max: 3}, dynamo.Range{Min: 1, Max: 9})

		buf := NewSerializer().Serialize(s)

		if len(buf) != n*Stride {
			t.Fatalf("n=%d: len = %d, want %d", n, len(buf), n*Stride)
		}
		for i, e := range s.Entities() {
			rec := buf[i*Stride : i*Stride+Stride]
			want := [Stride]float32{e.Position.X(), e.Position.Y(), e.Position.Z(), e.Radius}
			for k := range want {
				if rec[k] != want[k] {
					t.Fatalf("n=%d record %d = %v, want %v", n, i, rec, want)
				}
			}
		}
	}
}

func TestSerializeEmpty(t *testing.T) {
	s, _ := dynamo.NewStore(0)
	buf := NewSerializer().Serialize(s)
	if len(buf) != 0 {
		t.Errorf("len = %d, want 0", len(buf))
	}
}

func TestSerializeReusesBuffer(t *testing.T) {
	s, _ := dynamo.NewStore(4)
	ser := NewSerializer()

	first := ser.Serialize(s)
	s.At(0).Radius = 5
	second := ser.Serialize(s)

	if &first[0] != &second[0] {
		t.Error("serializer allocated a new buffer between frames")
	}
	if second[3] != 5 {
		t.Errorf("radius = %f, want 5", second[3])
	}
}

func TestSerializeNoAllocs(t *testing.T) {
	s, _ := dynamo.NewStore(dynamo.MaxEntities)
	ser := NewSerializer()
	allocs := testing.AllocsPerRun(100, func() {
		ser.Serialize(s)
	})
	if allocs != 0 {
		t.Errorf("allocs per frame = %v, want 0", allocs)
	}
}

func BenchmarkSerialize(b *testing.B) {
	s, _ := dynamo.NewStore(dynamo.MaxEntities)
	ser := NewSerializer()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ser.Serialize(s)
	}
}
