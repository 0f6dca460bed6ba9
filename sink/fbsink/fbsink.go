// Package fbsink copies flushed frames onto a drawable target, usually the
// Linux framebuffer of a console without a window system.
package fbsink

import (
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/srlehn/oledface/internal/errors"
	"github.com/srlehn/oledface/resize"
	"github.com/srlehn/oledface/surface"
)

var _ surface.Flusher = (*Sink)(nil)
var _ io.Closer = (*Sink)(nil)

type Sink struct {
	dst     draw.Image
	closer  io.Closer
	resizer resize.Resizer
	scale   int
	at      image.Point
	palette color.Palette
}

type Option func(*Sink)

// WithScale enlarges frames by an integer factor with rsz.
func WithScale(rsz resize.Resizer, scale int) Option {
	return func(s *Sink) {
		if rsz == nil || scale < 1 {
			return
		}
		s.resizer, s.scale = rsz, scale
	}
}

// WithOffset moves the frame's top-left corner to p on the target.
func WithOffset(p image.Point) Option { return func(s *Sink) { s.at = p } }

// WithInk sets the color of lit pixels.
func WithInk(c color.Color) Option {
	return func(s *Sink) {
		if c != nil {
			s.palette = color.Palette{color.Black, c}
		}
	}
}

// New returns a sink drawing on dst.
func New(dst draw.Image, opts ...Option) *Sink {
	s := &Sink{
		dst:     dst,
		scale:   1,
		palette: surface.Palette,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// FlushFrame implements surface.Flusher.
func (s *Sink) FlushFrame(frame *image.Paletted) error {
	if err := errors.NilParam(frame, s.dst); err != nil {
		return err
	}
	var img image.Image = frame
	if s.scale > 1 {
		var err error
		img, err = resize.Scale(s.resizer, frame, s.scale)
		if err != nil {
			return err
		}
	}
	// resizers may return gray images, map back to the ink palette
	b := img.Bounds()
	out := image.NewPaletted(b.Sub(b.Min), s.palette)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y >= 0x80 {
				out.SetColorIndex(x-b.Min.X, y-b.Min.Y, 1)
			}
		}
	}
	draw.Draw(s.dst, out.Bounds().Add(s.at), out, image.Point{}, draw.Src)
	return nil
}

// Close releases the target if the sink opened it.
func (s *Sink) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}
