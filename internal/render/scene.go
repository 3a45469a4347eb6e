package render

import (
	"image/color"

	"github.com/san-kum/kuramoto/internal/colormap"
	"github.com/san-kum/kuramoto/internal/kuramoto"
)

// Marker is one point drawn in a frame.
type Marker struct {
	X, Y  float64
	Color color.RGBA
}

// Scene is everything drawn in a single frame.
type Scene struct {
	Frame    int
	Timestep int
	Markers  []Marker
	// Mean is nil unless the mean field is shown.
	Mean *Marker
}

// BuildScenes derives the per-frame markers for ens.
func BuildScenes(ens *kuramoto.Ensemble, opts Options) ([]Scene, error) {
	n, err := kuramoto.FrameCount(ens.Steps(), opts.StepsPerFrame)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNoFrames
	}

	colors := markerColors(ens)
	pos := ens.Positions()

	var mx, my []float64
	if opts.ShowAverage {
		mx, my = pos.MeanField()
	}

	scenes := make([]Scene, n)
	for f := range scenes {
		ts := kuramoto.FrameTimestep(f, opts.StepsPerFrame)
		sc := Scene{
			Frame:    f,
			Timestep: ts,
			Markers:  make([]Marker, ens.Oscillators()),
		}
		for i := range sc.Markers {
			x, y := pos.At(i, ts)
			sc.Markers[i] = Marker{X: x, Y: y, Color: colors[i]}
		}
		if opts.ShowAverage {
			sc.Mean = &Marker{X: mx[ts], Y: my[ts], Color: MeanColor}
		}
		scenes[f] = sc
	}
	return scenes, nil
}

func markerColors(ens *kuramoto.Ensemble) []color.RGBA {
	if !ens.HasFrequencies() {
		out := make([]color.RGBA, ens.Oscillators())
		for i := range out {
			out[i] = DefaultMarkerColor
		}
		return out
	}
	return colormap.Coolwarm.Map(ens.Frequencies())
}
