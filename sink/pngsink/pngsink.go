// Package pngsink writes every flushed frame to a numbered PNG file.
package pngsink

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/srlehn/oledface/internal/errors"
	"github.com/srlehn/oledface/resize"
	"github.com/srlehn/oledface/surface"
)

var _ surface.Flusher = (*Sink)(nil)

type Sink struct {
	dir     string
	prefix  string
	resizer resize.Resizer
	scale   int
	written []string
}

// New creates dir if needed. Files are named <prefix>-0001.png and so on.
func New(dir, prefix string, rsz resize.Resizer, scale int) (*Sink, error) {
	if len(dir) == 0 {
		dir = `.`
	}
	if len(prefix) == 0 {
		prefix = `frame`
	}
	if rsz == nil || scale < 1 {
		scale = 1
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.New(err)
	}
	return &Sink{dir: dir, prefix: prefix, resizer: rsz, scale: scale}, nil
}

// FlushFrame implements surface.Flusher.
func (s *Sink) FlushFrame(frame *image.Paletted) error {
	if err := errors.NilParam(frame); err != nil {
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
	name := filepath.Join(s.dir, fmt.Sprintf(`%s-%04d.png`, s.prefix, len(s.written)+1))
	if err := gg.SavePNG(name, img); err != nil {
		return errors.New(err)
	}
	s.written = append(s.written, name)
	return nil
}

// Files lists the written files in order.
func (s *Sink) Files() []string { return append([]string(nil), s.written...) }
