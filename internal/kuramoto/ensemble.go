package kuramoto

import (
	"fmt"
	"math"
)

// Ensemble is a validated table of oscillator phases indexed by
// (oscillator, timestep).
type Ensemble struct {
	phases [][]float64
	freqs  []float64
}

// New validates the phase table and copies it into an Ensemble.
// freqs may be nil; when given it must hold one value per oscillator.
func New(phases [][]float64, freqs []float64) (*Ensemble, error) {
	if len(phases) == 0 {
		return nil, ErrNoOscillators
	}

	steps := len(phases[0])
	for i, traj := range phases {
		if len(traj) != steps {
			return nil, fmt.Errorf("%w: oscillator 0 has %d steps, oscillator %d has %d",
				ErrLengthMismatch, steps, i, len(traj))
		}
	}
	if steps == 0 {
		return nil, ErrEmptyTrajectory
	}

	e := &Ensemble{phases: make([][]float64, len(phases))}
	for i, traj := range phases {
		for t, v := range traj {
			if !isFinite(v) {
				return nil, &IndexError{Oscillator: i, Timestep: t, Wrapped: ErrNonFinite}
			}
		}
		e.phases[i] = append([]float64(nil), traj...)
	}

	if freqs != nil {
		if len(freqs) != len(phases) {
			return nil, fmt.Errorf("%w: got %d for %d oscillators",
				ErrFrequencyCount, len(freqs), len(phases))
		}
		for i, w := range freqs {
			if !isFinite(w) {
				return nil, &IndexError{Oscillator: i, Timestep: -1, Wrapped: ErrNonFinite}
			}
		}
		e.freqs = append([]float64(nil), freqs...)
	}

	return e, nil
}

// Oscillators returns the number of trajectories.
func (e *Ensemble) Oscillators() int { return len(e.phases) }

// Steps returns the common trajectory length.
func (e *Ensemble) Steps() int { return len(e.phases[0]) }

// Phase returns the phase of oscillator i at timestep t.
func (e *Ensemble) Phase(i, t int) float64 { return e.phases[i][t] }

// HasFrequencies reports whether natural frequencies were supplied.
func (e *Ensemble) HasFrequencies() bool { return e.freqs != nil }

// Frequencies returns a copy of the natural frequencies, or nil.
func (e *Ensemble) Frequencies() []float64 {
	if e.freqs == nil {
		return nil
	}
	return append([]float64(nil), e.freqs...)
}

// FrequencyRange returns min and max natural frequency. ok is false when
// no frequencies were supplied.
func (e *Ensemble) FrequencyRange() (lo, hi float64, ok bool) {
	if e.freqs == nil {
		return 0, 0, false
	}
	lo, hi = e.freqs[0], e.freqs[0]
	for _, w := range e.freqs {
		lo = math.Min(lo, w)
		hi = math.Max(hi, w)
	}
	return lo, hi, true
}

// Positions converts every phase to its point on the unit circle.
func (e *Ensemble) Positions() *Positions {
	p := &Positions{
		X: make([][]float64, len(e.phases)),
		Y: make([][]float64, len(e.phases)),
	}
	for i, traj := range e.phases {
		p.X[i] = make([]float64, len(traj))
		p.Y[i] = make([]float64, len(traj))
		for t, phi := range traj {
			p.Y[i][t], p.X[i][t] = math.Sincos(phi)
		}
	}
	return p
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
