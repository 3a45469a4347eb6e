package kuramoto

import (
	"errors"
	"math"
	"testing"

	. "github.com/onsi/gomega"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		phases [][]float64
		freqs  []float64
		want   error
	}{
		{"no oscillators", nil, nil, ErrNoOscillators},
		{"length mismatch", [][]float64{{0, 1, 2}, {0, 1}}, nil, ErrLengthMismatch},
		{"shorter first", [][]float64{{0}, {0, 1}}, nil, ErrLengthMismatch},
		{"empty trajectories", [][]float64{{}, {}}, nil, ErrEmptyTrajectory},
		{"NaN phase", [][]float64{{0, math.NaN()}}, nil, ErrNonFinite},
		{"Inf phase", [][]float64{{math.Inf(1)}}, nil, ErrNonFinite},
		{"frequency count", [][]float64{{0}, {1}}, []float64{1}, ErrFrequencyCount},
		{"NaN frequency", [][]float64{{0}}, []float64{math.NaN()}, ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.phases, tt.freqs)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error %v is not an invalid-input error", err)
			}
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	g := NewWithT(t)

	phases := [][]float64{{0, 1}, {2, 3}}
	freqs := []float64{0.5, 1.5}
	ens, err := New(phases, freqs)
	g.Expect(err).NotTo(HaveOccurred())

	phases[0][0] = 99
	freqs[0] = 99

	g.Expect(ens.Phase(0, 0)).To(Equal(0.0))
	g.Expect(ens.Frequencies()).To(Equal([]float64{0.5, 1.5}))
	g.Expect(ens.Oscillators()).To(Equal(2))
	g.Expect(ens.Steps()).To(Equal(2))
}

func TestIndexError(t *testing.T) {
	_, err := New([][]float64{{0, 0}, {0, math.NaN()}}, nil)

	var ie *IndexError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IndexError, got %T", err)
	}
	if ie.Oscillator != 1 || ie.Timestep != 1 {
		t.Errorf("got oscillator %d step %d, want 1 1", ie.Oscillator, ie.Timestep)
	}
}

func TestFrequencyRange(t *testing.T) {
	ens, err := New([][]float64{{0}, {0}, {0}}, []float64{0.3, -1.2, 2.5})
	if err != nil {
		t.Fatal(err)
	}
	lo, hi, ok := ens.FrequencyRange()
	if !ok || lo != -1.2 || hi != 2.5 {
		t.Errorf("FrequencyRange() = %v, %v, %v", lo, hi, ok)
	}

	ens, _ = New([][]float64{{0}}, nil)
	if _, _, ok := ens.FrequencyRange(); ok {
		t.Error("expected no range without frequencies")
	}
	if ens.HasFrequencies() || ens.Frequencies() != nil {
		t.Error("expected no frequencies")
	}
}
