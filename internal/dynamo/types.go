package dynamo

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxEntities is the capacity of every Store. The shaders declare the same
// value as MAX_METABALLS; the two must change together.
const MaxEntities = 100

// Entity is a single metaball or charge.
type Entity struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Radius   float32
}

// Store is a fixed-capacity set of entities. Only the first Active entries
// are simulated and rendered.
type Store struct {
	entities [MaxEntities]Entity
	active   int
}

// NewStore returns a store with n active entities, all zeroed.
func NewStore(n int) (*Store, error) {
	if n < 0 || n > MaxEntities {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrTooManyEntities, n, MaxEntities)
	}
	return &Store{active: n}, nil
}

func (s *Store) Active() int   { return s.active }
func (s *Store) Capacity() int { return MaxEntities }

// Entities returns the active prefix. The slice aliases the store.
func (s *Store) Entities() []Entity {
	return s.entities[:s.active]
}

// At returns a pointer to the i-th active entity.
func (s *Store) At(i int) *Entity {
	if i < 0 || i >= s.active {
		panic(fmt.Sprintf("dynamo: entity index %d out of range [0,%d)", i, s.active))
	}
	return &s.entities[i]
}

// KineticEnergy is the sum of |v|²/2 over active entities, unit mass.
func (s *Store) KineticEnergy() float64 {
	var sum float64
	for _, e := range s.entities[:s.active] {
		sum += 0.5 * float64(e.Velocity.Dot(e.Velocity))
	}
	return sum
}

// Range is a closed interval used for random initialization.
type Range struct {
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
}

func (r Range) sample(rng *rand.Rand) float32 {
	return r.Min + rng.Float32()*(r.Max-r.Min)
}

// Box is an origin-centered axis-aligned bounding volume given by its
// half-extents.
type Box struct {
	Half mgl32.Vec3
}

func NewBox(x, y, z float32) Box {
	return Box{Half: mgl32.Vec3{x, y, z}}
}

// Contains reports whether p lies inside the box, boundaries included.
func (b Box) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] > b.Half[i] || p[i] < -b.Half[i] {
			return false
		}
	}
	return true
}

// Spawn fills every active entity with a random position inside box, a
// velocity drawn per axis from speed and a radius drawn from radius. Axes with
// a zero half-extent get zero position and velocity so flat layouts stay flat.
func (s *Store) Spawn(rng *rand.Rand, box Box, speed, radius Range) {
	for i := range s.entities[:s.active] {
		e := &s.entities[i]
		for a := 0; a < 3; a++ {
			h := box.Half[a]
			if h == 0 {
				e.Position[a], e.Velocity[a] = 0, 0
				continue
			}
			e.Position[a] = Range{-h, h}.sample(rng)
			e.Velocity[a] = speed.sample(rng)
		}
		e.Radius = radius.sample(rng)
	}
}

// Mode selects the shading program.
type Mode int

const (
	Mode2D Mode = iota
	Mode3D
)

func (m Mode) String() string {
	if m == Mode3D {
		return "3d"
	}
	return "2d"
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "2d", "":
		return Mode2D, nil
	case "3d":
		return Mode3D, nil
	}
	return Mode2D, fmt.Errorf("%w: unknown render mode %q", ErrInvalidConfig, s)
}

// Settings is the render configuration shared by the tick driver and the
// input handlers.
type Settings struct {
	Threshold float32
	Mode      Mode
	Paused    bool
	Frame     uint64
}
