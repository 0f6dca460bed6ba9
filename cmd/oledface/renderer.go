package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/srlehn/oledface/face"
	"github.com/srlehn/oledface/internal/config"
	"github.com/srlehn/oledface/internal/errors"
	"github.com/srlehn/oledface/resize"
	_ "github.com/srlehn/oledface/resize/bild"
	_ "github.com/srlehn/oledface/resize/gift"
	_ "github.com/srlehn/oledface/resize/imaging"
	_ "github.com/srlehn/oledface/resize/nfnt"
	_ "github.com/srlehn/oledface/resize/rdefault"
	_ "github.com/srlehn/oledface/resize/xdraw"
	"github.com/srlehn/oledface/sink/fbsink"
	"github.com/srlehn/oledface/sink/sixelsink"
	"github.com/srlehn/oledface/sink/termsink"
	"github.com/srlehn/oledface/surface"
	"github.com/srlehn/oledface/surface/mono"
)

func (s *session) faceOptions(extra ...face.Option) face.Options {
	opts := face.Options{face.SetLogger(s.logger)}
	return append(opts, extra...)
}

// newRenderer draws on a panel of the configured size and flushes to sinks.
func (s *session) newRenderer(flushers []surface.Flusher, extra ...face.Option) (*face.Renderer, *mono.Surface, error) {
	sf := mono.New(s.cfg.Panel.Width, s.cfg.Panel.Height, flushers...)
	r, err := face.NewRenderer(sf, s.faceOptions(extra...))
	if err != nil {
		return nil, nil, err
	}
	if s.logger != nil {
		s.logger.Debug(`renderer ready`, slog.Int(`width`, s.cfg.Panel.Width), slog.Int(`height`, s.cfg.Panel.Height))
	}
	return r, sf, nil
}

// output returns the configured live sink. The closer restores the
// terminal or unmaps the framebuffer.
func (s *session) output() (surface.Flusher, io.Closer, error) {
	switch s.cfg.Preview.Output {
	case config.OutputSixel:
		rsz, err := s.resizer()
		if err != nil {
			return nil, nil, err
		}
		return sixelsink.New(os.Stdout, rsz, s.cfg.Preview.Scale), nil, nil
	case config.OutputFramebuffer:
		rsz, err := s.resizer()
		if err != nil {
			return nil, nil, err
		}
		opts := []fbsink.Option{fbsink.WithScale(rsz, s.cfg.Preview.Scale)}
		if len(s.cfg.Preview.Ink) > 0 {
			ink, err := colorful.Hex(s.cfg.Preview.Ink)
			if err != nil {
				return nil, nil, errors.New(err)
			}
			opts = append(opts, fbsink.WithInk(ink))
		}
		fb, err := fbsink.Open(s.cfg.Preview.Device, opts...)
		if err != nil {
			return nil, nil, err
		}
		return fb, fb, nil
	default:
		ts := termsink.New(os.Stdout,
			termsink.WithBorder(s.cfg.Preview.Border),
			termsink.WithInk(s.cfg.Preview.Ink),
		)
		return ts, ts, nil
	}
}

func (s *session) resizer() (resize.Resizer, error) {
	return resize.Get(s.cfg.Preview.Resizer)
}
