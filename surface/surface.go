// Package surface describes the monochrome pixel buffer the expressions are
// drawn on.
//
// The calls mirror the Adafruit GFX conventions used by SSD1306 panels:
// rectangles are given by their top-left corner plus width and height,
// circles by center and radius (covering 2r+1 pixels), and the text cursor
// marks the top-left corner of the next glyph.
package surface

import (
	"image"
	"image/color"

	"github.com/srlehn/oledface/internal/consts"
)

// Color is the binary color of a monochrome panel.
type Color uint8

const (
	Black Color = iota // background, pixel off
	White              // foreground, pixel on
)

var (
	colorBlack color.Color = color.Gray{Y: 0x00}
	colorWhite color.Color = color.Gray{Y: 0xff}
)

// Palette orders the colors so that a palette index equals the Color value.
var Palette = color.Palette{colorBlack, colorWhite}

func (c Color) Color() color.Color {
	if c == White {
		return colorWhite
	}
	return colorBlack
}

func (c Color) String() string {
	if c == White {
		return `white`
	}
	return `black`
}

// Surface is the drawing contract consumed by the expression renderer.
// Implementations own the buffer; Flush pushes it to the device or sink.
type Surface interface {
	Bounds() image.Rectangle
	Clear()
	FillRect(x, y, w, h int, c Color)
	FillRoundRect(x, y, w, h, r int, c Color)
	FillCircle(x0, y0, r int, c Color)
	DrawCircle(x0, y0, r int, c Color)
	FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color)
	DrawLine(x0, y0, x1, y1 int, c Color)
	SetTextSize(size int)
	SetTextColor(c Color)
	SetCursor(x, y int)
	Print(text string)
	Flush() error
}

// DefaultBounds is the 128x64 SSD1306 panel.
func DefaultBounds() image.Rectangle {
	return image.Rect(0, 0, consts.SurfaceWidth, consts.SurfaceHeight)
}

// Fits reports whether the surface can hold the default panel geometry.
func Fits(s Surface) bool {
	if s == nil {
		return false
	}
	sz := s.Bounds().Size()
	return sz.X >= consts.SurfaceWidth && sz.Y >= consts.SurfaceHeight
}

// Flusher receives a copy of the buffer every time a Surface is flushed.
// Palette index 0 is Black and 1 is White.
type Flusher interface {
	FlushFrame(frame *image.Paletted) error
}

var _ Flusher = (FlusherFunc)(nil)

type FlusherFunc func(frame *image.Paletted) error

func (f FlusherFunc) FlushFrame(frame *image.Paletted) error { return f(frame) }
