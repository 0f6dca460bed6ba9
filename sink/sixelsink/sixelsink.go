// Package sixelsink shows flushed frames as sixel graphics in terminals
// that support them.
package sixelsink

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/mattn/go-sixel"

	"github.com/srlehn/oledface/internal/errors"
	"github.com/srlehn/oledface/resize"
	"github.com/srlehn/oledface/surface"
)

var _ surface.Flusher = (*Sink)(nil)

type Sink struct {
	w       io.Writer
	resizer resize.Resizer
	scale   int
	at      image.Point
}

type Option func(*Sink)

// WithCell places the top-left corner of the frame at a terminal cell,
// counted from 1.
func WithCell(col, row int) Option {
	return func(s *Sink) { s.at = image.Pt(max(col, 1), max(row, 1)) }
}

// New returns a sink writing to w. Frames are enlarged by an integer
// factor with rsz; a nil resizer keeps the panel size.
func New(w io.Writer, rsz resize.Resizer, scale int, opts ...Option) *Sink {
	if rsz == nil || scale < 1 {
		scale = 1
	}
	s := &Sink{w: w, resizer: rsz, scale: scale, at: image.Pt(1, 1)}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// FlushFrame implements surface.Flusher.
func (s *Sink) FlushFrame(frame *image.Paletted) error {
	if err := errors.NilParam(frame, s.w); err != nil {
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
	var buf bytes.Buffer
	// "\033[?8452h" leaves the cursor right of the image so a frame in
	// the last row does not scroll
	fmt.Fprintf(&buf, "\033[%d;%dH\033[?8452h", s.at.Y, s.at.X)
	enc := sixel.NewEncoder(&buf)
	enc.Dither = false
	if err := enc.Encode(img); err != nil {
		return errors.New(err)
	}
	_, err := s.w.Write(buf.Bytes())
	return errors.Wrap(err)
}
