// Package termsink shows flushed frames in a terminal.
//
// Two vertically stacked pixels share one character cell, drawn with the
// upper and lower half block runes, so a 128x64 frame needs 128x32 cells.
package termsink

import (
	"image"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/srlehn/oledface/internal/errors"
	"github.com/srlehn/oledface/surface"
)

const (
	runeNone   = ' '
	runeUpper  = '▀'
	runeLower  = '▄'
	runeFull   = '█'
	defaultInk = `#7fdbff` // blue-white of a typical OLED panel
)

var _ surface.Flusher = (*Sink)(nil)

// Sink redraws the terminal at the top-left corner on every flush.
type Sink struct {
	out     *termenv.Output
	border  bool
	ink     string
	started bool
}

type Option func(*Sink)

// WithBorder frames the panel with a rounded border.
func WithBorder(border bool) Option { return func(s *Sink) { s.border = border } }

// WithInk sets the color of lit pixels. An empty string keeps the
// terminal's foreground color.
func WithInk(color string) Option { return func(s *Sink) { s.ink = color } }

func New(w io.Writer, opts ...Option) *Sink {
	s := &Sink{
		out: termenv.NewOutput(w),
		ink: defaultInk,
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
	if err := errors.NilParam(frame); err != nil {
		return err
	}
	if !s.started {
		s.out.HideCursor()
		s.out.ClearScreen()
		s.started = true
	}
	s.out.MoveCursor(1, 1)
	txt := Render(frame)
	if s.border {
		txt = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Render(txt)
	}
	if len(s.ink) > 0 {
		txt = s.out.String(txt).Foreground(s.out.Color(s.ink)).String()
	}
	_, err := io.WriteString(s.out, txt+"\n")
	return errors.Wrap(err)
}

// Close restores the cursor.
func (s *Sink) Close() error {
	if s == nil || !s.started {
		return nil
	}
	s.out.ShowCursor()
	s.started = false
	return nil
}

// Render converts a frame to lines of half block runes.
func Render(frame *image.Paletted) string {
	if frame == nil {
		return ``
	}
	b := frame.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			upper := lit(frame, x, y)
			lower := y+1 < b.Max.Y && lit(frame, x, y+1)
			switch {
			case upper && lower:
				sb.WriteRune(runeFull)
			case upper:
				sb.WriteRune(runeUpper)
			case lower:
				sb.WriteRune(runeLower)
			default:
				sb.WriteRune(runeNone)
			}
		}
	}
	return sb.String()
}

func lit(frame *image.Paletted, x, y int) bool {
	return frame.ColorIndexAt(x, y) == uint8(surface.White)
}
