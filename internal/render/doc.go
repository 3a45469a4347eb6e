// Package render turns a Kuramoto ensemble into an animation of points on
// the unit circle.
//
// Rendering is split in two stages:
//
//   - [BuildScenes]: per-frame marker positions and colours, no raster work
//   - [Render]: draws every scene with gonum/plot, quantises it to a palette
//     and returns an [Animation]
//
// An [Animation] can be embedded in an HTML document with [Animation.HTML]
// or written to disk with [Animation.Save]; the file format follows the
// extension (.gif, .html).
//
// # Example
//
//	opts := render.DefaultOptions()
//	opts.ShowAverage = true
//	opts.Output = "sync.gif"
//	anim, err := render.Render(ens, opts)
package render
