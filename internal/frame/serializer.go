// Package frame flattens entity state into the layout the shaders read.
package frame

import "github.com/san-kum/metaballs/internal/dynamo"

// Stride is the number of float32 values per entity: x, y, z, radius.
const Stride = 4

// Serializer owns a scratch buffer sized for dynamo.MaxEntities that is
// reused every frame.
type Serializer struct {
	buf []float32
}

func NewSerializer() *Serializer {
	return &Serializer{buf: make([]float32, dynamo.MaxEntities*Stride)}
}

// Serialize writes the active entities as consecutive (x, y, z, radius)
// records and returns a slice of exactly Active()*Stride values. The slice is
// only valid until the next call.
func (s *Serializer) Serialize(store *dynamo.Store) []float32 {
	entities := store.Entities()
	out := s.buf[:len(entities)*Stride]
	for i, e := range entities {
		j := i * Stride
		out[j+0] = e.Position.X()
		out[j+1] = e.Position.Y()
		out[j+2] = e.Position.Z()
		out[j+3] = e.Radius
	}
	return out
}
