package render

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const circleSegments = 256

// edgedCircle is a filled circle glyph with a thin outline.
type edgedCircle struct {
	Edge color.Color
}

func (g edgedCircle) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	draw.CircleGlyph{}.DrawGlyph(c, sty, pt)
	sty.Color = g.Edge
	draw.RingGlyph{}.DrawGlyph(c, sty, pt)
}

// frameCanvas draws scenes onto a fixed square viewport.
type frameCanvas struct {
	opts    Options
	circle  plotter.XYs
	palette color.Palette
}

func newFrameCanvas(opts Options, palette color.Palette) *frameCanvas {
	circle := make(plotter.XYs, circleSegments+1)
	for i := range circle {
		a := 2 * math.Pi * float64(i) / circleSegments
		circle[i].Y, circle[i].X = math.Sincos(a)
	}
	return &frameCanvas{opts: opts, circle: circle, palette: palette}
}

// plot builds the gonum plot for one scene.
func (fc *frameCanvas) plot(sc Scene) (*plot.Plot, error) {
	p := plot.New()
	p.HideAxes()
	p.X.Padding, p.Y.Padding = 0, 0
	p.BackgroundColor = BackgroundColor
	p.X.Min, p.X.Max = -viewExtent, viewExtent
	p.Y.Min, p.Y.Max = -viewExtent, viewExtent

	ring, err := plotter.NewLine(fc.circle)
	if err != nil {
		return nil, err
	}
	ring.LineStyle.Color = CircleColor
	ring.LineStyle.Width = vg.Points(1)
	p.Add(ring)

	if len(sc.Markers) > 0 {
		pts := make(plotter.XYs, len(sc.Markers))
		for i, m := range sc.Markers {
			pts[i].X, pts[i].Y = m.X, m.Y
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		radius := fc.opts.MarkerRadius
		markers := sc.Markers
		scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			return draw.GlyphStyle{
				Color:  markers[i].Color,
				Radius: radius,
				Shape:  edgedCircle{Edge: EdgeColor},
			}
		}
		p.Add(scatter)
	}

	if sc.Mean != nil {
		mean, err := plotter.NewScatter(plotter.XYs{{X: sc.Mean.X, Y: sc.Mean.Y}})
		if err != nil {
			return nil, err
		}
		mean.GlyphStyle = draw.GlyphStyle{
			Color:  sc.Mean.Color,
			Radius: fc.opts.MarkerRadius,
			Shape:  draw.CrossGlyph{},
		}
		p.Add(mean)
	}

	return p, nil
}

// raster draws sc and returns it as a full-colour image at the target size.
func (fc *frameCanvas) raster(sc Scene) (image.Image, error) {
	p, err := fc.plot(sc)
	if err != nil {
		return nil, err
	}

	ss := fc.opts.Supersample
	c := vgimg.NewWith(
		vgimg.UseWH(fc.opts.Size, fc.opts.Size),
		vgimg.UseDPI(fc.opts.DPI*ss),
	)
	p.Draw(draw.New(c))
	img := c.Image()
	if ss == 1 {
		return img, nil
	}

	px := fc.opts.Pixels()
	small := image.NewRGBA(image.Rect(0, 0, px, px))
	xdraw.CatmullRom.Scale(small, small.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return small, nil
}

// frame draws sc and maps it onto the shared palette.
func (fc *frameCanvas) frame(sc Scene) (*image.Paletted, error) {
	img, err := fc.raster(sc)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), fc.palette)
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst, nil
}
