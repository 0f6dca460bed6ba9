// Package mono implements an in-memory 1-bit surface.
//
// Shapes are rasterized with github.com/fogleman/gg and quantized back to
// black and white after every call, so the buffer never holds anything but
// the two panel colors.
package mono

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/srlehn/oledface/internal/errors"
	"github.com/srlehn/oledface/surface"
)

var _ surface.Surface = (*Surface)(nil)

// Surface is a monochrome frame buffer. Flushing hands a snapshot of the
// buffer to every registered surface.Flusher.
type Surface struct {
	rgba      *image.RGBA
	dc        *gg.Context
	face      font.Face
	textSize  int
	textColor surface.Color
	cursor    image.Point
	flushers  []surface.Flusher
	flushed   int
	last      *image.Paletted
}

// New returns a cleared surface of size w x h. Non-positive sizes fall back
// to the 128x64 panel.
func New(w, h int, flushers ...surface.Flusher) *Surface {
	bounds := image.Rect(0, 0, w, h)
	if w <= 0 || h <= 0 {
		bounds = surface.DefaultBounds()
	}
	rgba := image.NewRGBA(bounds)
	s := &Surface{
		rgba:      rgba,
		dc:        gg.NewContextForRGBA(rgba),
		face:      basicfont.Face7x13,
		textSize:  1,
		textColor: surface.White,
	}
	s.dc.SetFontFace(s.face)
	s.Clear()
	for _, f := range flushers {
		s.AddFlusher(f)
	}
	return s
}

// AddFlusher registers a sink for flushed frames. Nil sinks are ignored.
func (s *Surface) AddFlusher(f surface.Flusher) {
	if s == nil || f == nil {
		return
	}
	s.flushers = append(s.flushers, f)
}

func (s *Surface) Bounds() image.Rectangle { return s.rgba.Bounds() }

func (s *Surface) Clear() {
	s.dc.SetColor(surface.Black.Color())
	s.dc.Clear()
	s.cursor = image.Point{}
}

func (s *Surface) FillRect(x, y, w, h int, c surface.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	s.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	s.fill(c)
}

func (s *Surface) FillRoundRect(x, y, w, h, r int, c surface.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	// the corner radius can't exceed half the shorter side
	maxR := min(w, h) / 2
	if r > maxR {
		r = maxR
	}
	s.dc.DrawRoundedRectangle(float64(x), float64(y), float64(w), float64(h), float64(r))
	s.fill(c)
}

func (s *Surface) FillCircle(x0, y0, r int, c surface.Color) {
	if r < 0 {
		return
	}
	s.dc.DrawCircle(center(x0), center(y0), float64(r)+0.5)
	s.fill(c)
}

func (s *Surface) DrawCircle(x0, y0, r int, c surface.Color) {
	if r < 0 {
		return
	}
	if r == 0 {
		s.setPixel(x0, y0, c)
		return
	}
	s.dc.DrawCircle(center(x0), center(y0), float64(r))
	s.stroke(c)
}

func (s *Surface) FillTriangle(x0, y0, x1, y1, x2, y2 int, c surface.Color) {
	s.dc.NewSubPath()
	s.dc.MoveTo(center(x0), center(y0))
	s.dc.LineTo(center(x1), center(y1))
	s.dc.LineTo(center(x2), center(y2))
	s.dc.ClosePath()
	// include the edge pixels like the GFX scanline fill does
	s.dc.SetLineWidth(1)
	s.dc.SetColor(c.Color())
	s.dc.FillPreserve()
	s.stroke(c)
}

func (s *Surface) DrawLine(x0, y0, x1, y1 int, c surface.Color) {
	if x0 == x1 && y0 == y1 {
		s.setPixel(x0, y0, c)
		return
	}
	s.dc.DrawLine(center(x0), center(y0), center(x1), center(y1))
	s.stroke(c)
}

func (s *Surface) SetTextSize(size int) {
	if size < 1 {
		size = 1
	}
	s.textSize = size
}

func (s *Surface) SetTextColor(c surface.Color) { s.textColor = c }

func (s *Surface) SetCursor(x, y int) { s.cursor = image.Pt(x, y) }

// Print draws text with its top-left corner at the cursor and advances the
// cursor behind the last glyph.
func (s *Surface) Print(text string) {
	if len(text) == 0 {
		return
	}
	ascent := float64(s.face.Metrics().Ascent.Round())
	size := float64(s.textSize)
	s.dc.Push()
	s.dc.Translate(float64(s.cursor.X), float64(s.cursor.Y))
	s.dc.Scale(size, size)
	s.dc.SetColor(s.textColor.Color())
	s.dc.DrawString(text, 0, ascent)
	s.dc.Pop()
	w, _ := s.dc.MeasureString(text)
	s.cursor.X += int(math.Round(w * size))
	s.quantize()
}

// Flush snapshots the buffer and passes it to the registered flushers.
func (s *Surface) Flush() error {
	if err := errors.NilReceiver(s); err != nil {
		return err
	}
	frame := s.Frame()
	s.last = frame
	s.flushed++
	var errs []error
	for _, f := range s.flushers {
		if err := f.FlushFrame(frame); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Frame returns a copy of the current buffer.
func (s *Surface) Frame() *image.Paletted {
	b := s.rgba.Bounds()
	p := image.NewPaletted(b, surface.Palette)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if s.isOn(x, y) {
				p.SetColorIndex(x, y, uint8(surface.White))
			}
		}
	}
	return p
}

// LastFrame returns the frame of the most recent flush or nil.
func (s *Surface) LastFrame() *image.Paletted { return s.last }

// Flushed returns the number of flushes so far.
func (s *Surface) Flushed() int { return s.flushed }

// Pixel returns the color of the unflushed buffer at (x, y).
// Points outside the surface are Black.
func (s *Surface) Pixel(x, y int) surface.Color {
	if !image.Pt(x, y).In(s.rgba.Bounds()) || !s.isOn(x, y) {
		return surface.Black
	}
	return surface.White
}

func (s *Surface) isOn(x, y int) bool {
	return s.rgba.Pix[s.rgba.PixOffset(x, y)] >= 0x80
}

func (s *Surface) setPixel(x, y int, c surface.Color) {
	if !image.Pt(x, y).In(s.rgba.Bounds()) {
		return
	}
	s.rgba.Set(x, y, c.Color())
}

func (s *Surface) fill(c surface.Color) {
	s.dc.SetColor(c.Color())
	s.dc.Fill()
	s.quantize()
}

func (s *Surface) stroke(c surface.Color) {
	s.dc.SetColor(c.Color())
	s.dc.SetLineWidth(1)
	s.dc.Stroke()
	s.quantize()
}

// quantize snaps antialiased edge pixels to the nearer panel color.
func (s *Surface) quantize() {
	pix := s.rgba.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		var v uint8
		if pix[i] >= 0x80 {
			v = 0xff
		}
		pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, 0xff
	}
}

// pixel centers sit on half coordinates in gg's continuous space
func center(v int) float64 { return float64(v) + 0.5 }
