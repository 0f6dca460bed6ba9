package surface

import (
	"fmt"
	"image"
	"strings"
)

// OpKind names a recorded Surface call.
type OpKind string

const (
	OpClear         OpKind = `clear`
	OpFillRect      OpKind = `fillRect`
	OpFillRoundRect OpKind = `fillRoundRect`
	OpFillCircle    OpKind = `fillCircle`
	OpDrawCircle    OpKind = `drawCircle`
	OpFillTriangle  OpKind = `fillTriangle`
	OpDrawLine      OpKind = `drawLine`
	OpSetTextSize   OpKind = `setTextSize`
	OpSetTextColor  OpKind = `setTextColor`
	OpSetCursor     OpKind = `setCursor`
	OpPrint         OpKind = `print`
	OpFlush         OpKind = `flush`
)

// Op is one recorded call. Args holds the integer parameters in call order.
type Op struct {
	Kind  OpKind
	Args  []int
	Color Color
	Text  string
}

func (o Op) String() string {
	var b strings.Builder
	b.WriteString(string(o.Kind))
	b.WriteByte('(')
	for i, a := range o.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `%d`, a)
	}
	switch o.Kind {
	case OpFillRect, OpFillRoundRect, OpFillCircle, OpDrawCircle, OpFillTriangle, OpDrawLine, OpSetTextColor:
		if len(o.Args) > 0 {
			b.WriteByte(',')
		}
		b.WriteString(o.Color.String())
	case OpPrint:
		fmt.Fprintf(&b, `%q`, o.Text)
	}
	b.WriteByte(')')
	return b.String()
}

var _ Surface = (*Recorder)(nil)

// Recorder is a Surface that keeps a log of every call instead of drawing.
// It is used to inspect the frames an expression produces.
type Recorder struct {
	bounds   image.Rectangle
	ops      []Op
	FlushErr error
}

// NewRecorder returns a recorder with the given size.
// Non-positive sizes fall back to the default 128x64 panel.
func NewRecorder(w, h int) *Recorder {
	b := image.Rect(0, 0, w, h)
	if w <= 0 || h <= 0 {
		b = DefaultBounds()
	}
	return &Recorder{bounds: b}
}

func (r *Recorder) Bounds() image.Rectangle { return r.bounds }

func (r *Recorder) record(kind OpKind, c Color, args ...int) {
	r.ops = append(r.ops, Op{Kind: kind, Args: args, Color: c})
}

func (r *Recorder) Clear() { r.record(OpClear, Black) }
func (r *Recorder) FillRect(x, y, w, h int, c Color) {
	r.record(OpFillRect, c, x, y, w, h)
}
func (r *Recorder) FillRoundRect(x, y, w, h, rad int, c Color) {
	r.record(OpFillRoundRect, c, x, y, w, h, rad)
}
func (r *Recorder) FillCircle(x0, y0, rad int, c Color) {
	r.record(OpFillCircle, c, x0, y0, rad)
}
func (r *Recorder) DrawCircle(x0, y0, rad int, c Color) {
	r.record(OpDrawCircle, c, x0, y0, rad)
}
func (r *Recorder) FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	r.record(OpFillTriangle, c, x0, y0, x1, y1, x2, y2)
}
func (r *Recorder) DrawLine(x0, y0, x1, y1 int, c Color) {
	r.record(OpDrawLine, c, x0, y0, x1, y1)
}
func (r *Recorder) SetTextSize(size int) { r.record(OpSetTextSize, Black, size) }
func (r *Recorder) SetTextColor(c Color) { r.record(OpSetTextColor, c) }
func (r *Recorder) SetCursor(x, y int)   { r.record(OpSetCursor, Black, x, y) }
func (r *Recorder) Print(text string) {
	r.ops = append(r.ops, Op{Kind: OpPrint, Text: text})
}

// Flush records the flush even when FlushErr is set.
func (r *Recorder) Flush() error {
	r.record(OpFlush, Black)
	return r.FlushErr
}

// Ops returns all recorded calls.
func (r *Recorder) Ops() []Op { return r.ops }

// Reset drops the recorded calls.
func (r *Recorder) Reset() { r.ops = nil }

// Frames splits the recorded calls at each flush.
// Calls after the last flush are not part of any frame.
func (r *Recorder) Frames() [][]Op {
	var (
		frames [][]Op
		cur    []Op
	)
	for _, op := range r.ops {
		cur = append(cur, op)
		if op.Kind == OpFlush {
			frames = append(frames, cur)
			cur = nil
		}
	}
	return frames
}

// Count returns the number of recorded calls of the given kind.
func (r *Recorder) Count(kind OpKind) int {
	var n int
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
