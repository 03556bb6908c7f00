package metrics

import (
	"github.com/san-kum/metaballs/internal/sim"
)

// KineticEnergy reports the total kinetic energy at the last observed tick.
type KineticEnergy struct {
	name    string
	current float64
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (k *KineticEnergy) Name() string { return k.name }

func (k *KineticEnergy) Observe(s sim.Sample) {
	k.current = s.Store.KineticEnergy()
}

func (k *KineticEnergy) Value() float64 { return k.current }

func (k *KineticEnergy) Reset() { k.current = 0 }

// EnergyDecay is the fraction of the first observed kinetic energy lost
// since. Reflections only damp, so it never goes negative.
type EnergyDecay struct {
	name    string
	initial float64
	current float64
	samples int
}

func NewEnergyDecay() *EnergyDecay {
	return &EnergyDecay{name: "energy_decay"}
}

func (e *EnergyDecay) Name() string { return e.name }

func (e *EnergyDecay) Observe(s sim.Sample) {
	energy := s.Store.KineticEnergy()
	if e.samples == 0 {
		e.initial = energy
	}
	e.current = energy
	e.samples++
}

func (e *EnergyDecay) Value() float64 {
	if e.initial == 0 {
		return 0
	}
	return (e.initial - e.current) / e.initial
}

func (e *EnergyDecay) Reset() {
	e.initial = 0
	e.current = 0
	e.samples = 0
}
