// Package gifsink records flushed frames as an animated GIF.
//
// The sink doubles as the renderer's face.Sleeper: pauses between frames
// become GIF frame delays instead of blocking.
package gifsink

import (
	"context"
	"image"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"time"

	"github.com/srlehn/oledface/internal/errors"
	"github.com/srlehn/oledface/resize"
	"github.com/srlehn/oledface/surface"
)

// MinDelay is the display time of frames flushed without a pause,
// roughly one I2C transfer of a 128x64 panel.
const MinDelay = 30 * time.Millisecond

var _ surface.Flusher = (*Sink)(nil)

type Sink struct {
	resizer resize.Resizer
	scale   int
	frames  []*image.Paletted
	delays  []time.Duration
}

// New returns a sink that scales frames by an integer factor with rsz.
// A nil resizer or a factor below 2 keeps the panel size.
func New(rsz resize.Resizer, scale int) *Sink {
	if rsz == nil || scale < 1 {
		scale = 1
	}
	return &Sink{resizer: rsz, scale: scale}
}

// FlushFrame implements surface.Flusher.
func (s *Sink) FlushFrame(frame *image.Paletted) error {
	if err := errors.NilParam(frame); err != nil {
		return err
	}
	fr := frame
	if s.scale > 1 {
		img, err := resize.Scale(s.resizer, frame, s.scale)
		if err != nil {
			return err
		}
		fr = image.NewPaletted(img.Bounds(), surface.Palette)
		draw.Draw(fr, fr.Bounds(), img, img.Bounds().Min, draw.Src)
	} else {
		fr = image.NewPaletted(frame.Bounds(), surface.Palette)
		copy(fr.Pix, frame.Pix)
	}
	s.frames = append(s.frames, fr)
	s.delays = append(s.delays, MinDelay)
	return nil
}

// Sleep extends the display time of the last frame by d.
func (s *Sink) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n := len(s.delays); n > 0 && d > 0 {
		s.delays[n-1] += d
	}
	return nil
}

// Len is the number of recorded frames.
func (s *Sink) Len() int { return len(s.frames) }

// Delays returns the display time of each recorded frame.
func (s *Sink) Delays() []time.Duration { return append([]time.Duration(nil), s.delays...) }

// Encode writes the recorded frames as a looping GIF.
func (s *Sink) Encode(w io.Writer) error {
	if len(s.frames) == 0 {
		return errors.New(`no frames recorded`)
	}
	g := &gif.GIF{
		Image: s.frames,
		Delay: make([]int, len(s.delays)),
	}
	for i, d := range s.delays {
		// GIF delays are in 100ths of a second
		g.Delay[i] = int((d + 5*time.Millisecond) / (10 * time.Millisecond))
	}
	return errors.Wrap(gif.EncodeAll(w, g))
}

// WriteFile encodes the GIF to path.
func (s *Sink) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.New(err)
	}
	defer func() {
		if errClose := f.Close(); err == nil {
			err = errors.Wrap(errClose)
		}
	}()
	return s.Encode(f)
}
