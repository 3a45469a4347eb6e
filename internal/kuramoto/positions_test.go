package kuramoto

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"
)

const eps = 1e-12

func TestPositions_OnUnitCircle(t *testing.T) {
	phases := make([]float64, 0, 200)
	for phi := -20.0; phi < 20.0; phi += 0.2 {
		phases = append(phases, phi)
	}
	ens, err := New([][]float64{phases}, nil)
	if err != nil {
		t.Fatal(err)
	}

	pos := ens.Positions()
	for ti := range phases {
		x, y := pos.At(0, ti)
		if r := x*x + y*y; math.Abs(r-1) > eps {
			t.Fatalf("phase %.3f: x²+y² = %.15f", phases[ti], r)
		}
	}
}

func TestPositions_TwoOscillators(t *testing.T) {
	ens, err := New([][]float64{
		{0, math.Pi / 2},
		{math.Pi, 3 * math.Pi / 2},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	pos := ens.Positions()

	tests := []struct {
		osc, step int
		x, y      float64
	}{
		{0, 0, 1, 0},
		{1, 0, -1, 0},
		{0, 1, 0, 1},
		{1, 1, 0, -1},
	}
	for _, tt := range tests {
		x, y := pos.At(tt.osc, tt.step)
		if math.Abs(x-tt.x) > eps || math.Abs(y-tt.y) > eps {
			t.Errorf("osc %d step %d: got (%.3f, %.3f), want (%.0f, %.0f)",
				tt.osc, tt.step, x, y, tt.x, tt.y)
		}
	}
}

func TestMeanField_IsAverage(t *testing.T) {
	g := NewWithT(t)

	ens, err := New([][]float64{
		{0.1, 0.7, 2.0},
		{1.3, -0.4, 3.1},
		{2.9, 0.0, -1.0},
	}, nil)
	g.Expect(err).NotTo(HaveOccurred())

	pos := ens.Positions()
	mx, my := pos.MeanField()
	g.Expect(mx).To(HaveLen(3))

	for ti := 0; ti < 3; ti++ {
		var sx, sy float64
		for i := 0; i < 3; i++ {
			sx += math.Cos(ens.Phase(i, ti))
			sy += math.Sin(ens.Phase(i, ti))
		}
		g.Expect(mx[ti]).To(BeNumerically("~", sx/3, eps))
		g.Expect(my[ti]).To(BeNumerically("~", sy/3, eps))
	}
}

func TestOrderParameter(t *testing.T) {
	g := NewWithT(t)

	// step 0: in phase, step 1: antiphase
	ens, _ := New([][]float64{
		{0.5, 0},
		{0.5, math.Pi},
	}, nil)

	r, psi := ens.Positions().OrderParameter()
	g.Expect(r[0]).To(BeNumerically("~", 1, eps))
	g.Expect(psi[0]).To(BeNumerically("~", 0.5, eps))
	g.Expect(r[1]).To(BeNumerically("~", 0, eps))
}
