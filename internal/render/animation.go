package render

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Animation is a rendered sequence of frames. It owns no external
// resources and can be encoded any number of times.
type Animation struct {
	frames   []*image.Paletted
	scenes   []Scene
	interval time.Duration
	delay    int
}

// FrameCount returns the number of frames.
func (a *Animation) FrameCount() int { return len(a.frames) }

// Frame returns frame i.
func (a *Animation) Frame(i int) *image.Paletted { return a.frames[i] }

// Scenes returns the marker data each frame was drawn from.
func (a *Animation) Scenes() []Scene { return a.scenes }

// Interval returns the requested delay between frames.
func (a *Animation) Interval() time.Duration { return a.interval }

// GIF assembles the frames into a looping gif.GIF.
func (a *Animation) GIF() *gif.GIF {
	anim := &gif.GIF{LoopCount: 0}
	for _, frame := range a.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, a.delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}
	return anim
}

// WriteGIF encodes the animation as an animated GIF.
func (a *Animation) WriteGIF(w io.Writer) error {
	return gif.EncodeAll(w, a.GIF())
}

// HTML returns an embeddable snippet holding the animation inline.
func (a *Animation) HTML() (string, error) {
	var buf bytes.Buffer
	if err := a.WriteGIF(&buf); err != nil {
		return "", err
	}
	b := a.frames[0].Bounds()
	return fmt.Sprintf(`<div class="kuramoto-animation"><img width="%d" height="%d" alt="kuramoto oscillators, %d frames" src="data:image/gif;base64,%s"/></div>`,
		b.Dx(), b.Dy(), len(a.frames), base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}

// WriteHTML writes a standalone page embedding the animation.
func (a *Animation) WriteHTML(w io.Writer) error {
	snippet, err := a.HTML()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>kuramoto</title></head>\n<body>\n%s\n</body>\n</html>\n", snippet)
	return err
}

// Save writes the animation to path in the format named by its extension.
func (a *Animation) Save(path string) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	switch format {
	case FormatHTML:
		return writeAtomic(path, a.WriteHTML)
	default:
		return writeAtomic(path, a.WriteGIF)
	}
}

// SaveSnippet writes the embeddable HTML snippet returned by HTML to path.
func (a *Animation) SaveSnippet(path string) error {
	return writeAtomic(path, func(w io.Writer) error {
		snippet, err := a.HTML()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, snippet)
		return err
	})
}

// writeAtomic streams write into a temporary sibling of path and renames it
// into place, so a failed write leaves nothing behind.
func writeAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &ExportError{Path: path, Wrapped: err}
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return &ExportError{Path: path, Wrapped: err}
	}

	w := bufio.NewWriter(tmp)
	if err := write(w); err != nil {
		return fail(err)
	}
	if err := w.Flush(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &ExportError{Path: path, Wrapped: err}
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return &ExportError{Path: path, Wrapped: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &ExportError{Path: path, Wrapped: err}
	}
	return nil
}
