package kuramoto

import "math"

// Positions holds unit-circle coordinates indexed by (oscillator, timestep).
type Positions struct {
	X [][]float64
	Y [][]float64
}

// At returns the coordinates of oscillator i at timestep t.
func (p *Positions) At(i, t int) (x, y float64) {
	return p.X[i][t], p.Y[i][t]
}

// MeanField returns the unweighted average position at every timestep.
func (p *Positions) MeanField() (xs, ys []float64) {
	n := len(p.X)
	if n == 0 {
		return nil, nil
	}
	steps := len(p.X[0])
	xs = make([]float64, steps)
	ys = make([]float64, steps)
	for i := 0; i < n; i++ {
		for t := 0; t < steps; t++ {
			xs[t] += p.X[i][t]
			ys[t] += p.Y[i][t]
		}
	}
	inv := 1.0 / float64(n)
	for t := range xs {
		xs[t] *= inv
		ys[t] *= inv
	}
	return xs, ys
}

// OrderParameter returns the Kuramoto order parameter r(t) and the mean
// phase psi(t). r is 1 when all oscillators coincide and near 0 when they
// are spread evenly.
func (p *Positions) OrderParameter() (r, psi []float64) {
	xs, ys := p.MeanField()
	r = make([]float64, len(xs))
	psi = make([]float64, len(xs))
	for t := range xs {
		r[t] = math.Hypot(xs[t], ys[t])
		psi[t] = math.Atan2(ys[t], xs[t])
	}
	return r, psi
}
