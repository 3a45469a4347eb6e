// Package kuramoto provides the data model for rendering Kuramoto oscillators.
//
// An [Ensemble] holds one phase trajectory per oscillator, indexed by
// (oscillator, timestep), plus optional natural frequencies:
//
//   - [Ensemble]: validated phase table
//   - [Positions]: unit-circle coordinates derived from the phases
//   - [FrameCount] / [FrameTimestep]: frame-index arithmetic
//
// # Example
//
//	ens, err := kuramoto.New(phases, freqs)
//	if err != nil {
//	    return err
//	}
//	pos := ens.Positions()
//	mx, my := pos.MeanField()
//
// Ensembles are immutable after construction and safe to share.
package kuramoto
