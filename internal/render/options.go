package render

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
	"time"

	"gonum.org/v1/plot/vg"
)

const (
	DefaultInterval      = 50 * time.Millisecond
	DefaultStepsPerFrame = 3
	DefaultSize          = 4 * vg.Inch
	DefaultDPI           = 100
	DefaultMarkerRadius  = vg.Length(3)

	// viewExtent bounds the square viewport in both axes.
	viewExtent = 1.2
)

var (
	DefaultMarkerColor = color.RGBA{0x00, 0x00, 0x00, 0xff}
	EdgeColor          = color.RGBA{0x00, 0x00, 0x00, 0xff}
	CircleColor        = color.RGBA{0x80, 0x80, 0x80, 0xff}
	MeanColor          = color.RGBA{0x80, 0x80, 0x80, 0xff}
	BackgroundColor    = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Format is an output encoding selected by file extension.
type Format string

const (
	FormatGIF  Format = "gif"
	FormatHTML Format = "html"
)

// Options configures a render call.
type Options struct {
	Interval      time.Duration
	StepsPerFrame int
	ShowAverage   bool
	// Output is written after rendering when non-empty.
	Output string

	Size         vg.Length
	DPI          int
	MarkerRadius vg.Length
	// Supersample renders at this multiple of the target size and scales down.
	Supersample int
}

func DefaultOptions() Options {
	return Options{
		Interval:      DefaultInterval,
		StepsPerFrame: DefaultStepsPerFrame,
		Size:          DefaultSize,
		DPI:           DefaultDPI,
		MarkerRadius:  DefaultMarkerRadius,
		Supersample:   1,
	}
}

// Validate checks option ranges and the output extension.
func (o Options) Validate() error {
	if o.StepsPerFrame < 1 {
		return fmt.Errorf("%w: steps per frame %d", ErrBadOptions, o.StepsPerFrame)
	}
	if o.Interval <= 0 {
		return fmt.Errorf("%w: interval %v", ErrBadOptions, o.Interval)
	}
	if o.Size <= 0 || o.DPI <= 0 {
		return fmt.Errorf("%w: size %v at %d dpi", ErrBadOptions, o.Size, o.DPI)
	}
	if o.MarkerRadius <= 0 {
		return fmt.Errorf("%w: marker radius %v", ErrBadOptions, o.MarkerRadius)
	}
	if o.Supersample < 1 {
		return fmt.Errorf("%w: supersample %d", ErrBadOptions, o.Supersample)
	}
	if o.Output != "" {
		if _, err := FormatFor(o.Output); err != nil {
			return err
		}
	}
	return nil
}

// Pixels returns the side length of a frame in pixels.
func (o Options) Pixels() int {
	return int(float64(o.Size/vg.Inch)*float64(o.DPI) + 0.5)
}

// GIFDelay converts the interval to GIF centiseconds, at least 1.
func (o Options) GIFDelay() int {
	cs := int((o.Interval + 5*time.Millisecond) / (10 * time.Millisecond))
	if cs < 1 {
		cs = 1
	}
	return cs
}

// FormatFor picks the output format from the path extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif":
		return FormatGIF, nil
	case ".html", ".htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}
