package render

import (
	"fmt"
	"image"

	"github.com/san-kum/kuramoto/internal/kuramoto"
)

// Render draws every frame of ens and, when opts.Output is set, writes the
// animation there before returning it.
func Render(ens *kuramoto.Ensemble, opts Options) (*Animation, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	scenes, err := BuildScenes(ens, opts)
	if err != nil {
		return nil, err
	}

	fc := newFrameCanvas(opts, buildPalette(scenes))
	anim := &Animation{
		frames:   make([]*image.Paletted, 0, len(scenes)),
		scenes:   scenes,
		interval: opts.Interval,
		delay:    opts.GIFDelay(),
	}
	for _, sc := range scenes {
		img, err := fc.frame(sc)
		if err != nil {
			return nil, fmt.Errorf("render: frame %d: %w", sc.Frame, err)
		}
		anim.frames = append(anim.frames, img)
	}

	if opts.Output != "" {
		if err := anim.Save(opts.Output); err != nil {
			return nil, err
		}
	}
	return anim, nil
}
