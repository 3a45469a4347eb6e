package render

import (
	"image/color"

	"github.com/san-kum/kuramoto/internal/colormap"
)

const (
	greyLevels    = 32
	maxPaletteLen = 256
)

// buildPalette collects the fixed drawing colours, a grey ramp for
// anti-aliased edges and the marker colours. When the marker colours do not
// fit, evenly spaced samples of the colour scale take their place.
func buildPalette(scenes []Scene) color.Palette {
	var pal color.Palette
	seen := make(map[color.RGBA]bool)
	add := func(c color.RGBA) {
		if !seen[c] {
			seen[c] = true
			pal = append(pal, c)
		}
	}

	for _, c := range []color.RGBA{BackgroundColor, EdgeColor, CircleColor, MeanColor, DefaultMarkerColor} {
		add(c)
	}
	for i := 0; i < greyLevels; i++ {
		v := uint8(i * 255 / (greyLevels - 1))
		add(color.RGBA{v, v, v, 0xff})
	}

	var markers []color.RGBA
	if len(scenes) > 0 {
		unique := make(map[color.RGBA]bool)
		for _, m := range scenes[0].Markers {
			if !seen[m.Color] && !unique[m.Color] {
				unique[m.Color] = true
				markers = append(markers, m.Color)
			}
		}
	}

	if room := maxPaletteLen - len(pal); len(markers) > room {
		markers = colormap.Coolwarm.Samples(room)
	}
	for _, c := range markers {
		add(c)
	}
	return pal
}
