package integrators

import "github.com/san-kum/metaballs/internal/dynamo"

// Restitution is the factor applied to a velocity component on reflection.
const Restitution = 0.99

// Bounce advances entities by one tick inside a box. Entities do not
// interact; each axis reflects independently.
type Bounce struct {
	Restitution float32
}

func NewBounce() *Bounce {
	return &Bounce{Restitution: Restitution}
}

// Step moves every active entity by its velocity and reflects it off the
// box. It returns the number of axis reflections performed.
func (b *Bounce) Step(store *dynamo.Store, box dynamo.Box) int {
	reflections := 0
	entities := store.Entities()
	for i := range entities {
		e := &entities[i]
		e.Position = e.Position.Add(e.Velocity)

		for a := 0; a < 3; a++ {
			h := box.Half[a]
			// clamp first, then damp; exact-boundary positions are left alone
			if e.Position[a] > h {
				e.Position[a] = h
				e.Velocity[a] *= -b.Restitution
				reflections++
			} else if e.Position[a] < -h {
				e.Position[a] = -h
				e.Velocity[a] *= -b.Restitution
				reflections++
			}
		}
	}
	return reflections
}
