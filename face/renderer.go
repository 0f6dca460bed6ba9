// Package face renders the hand-authored eye expressions of a small
// monochrome display.
//
// A Renderer owns the animation state and borrows a surface.Surface for
// drawing. Every expression call clears the surface, draws one or more
// frames and flushes after each frame. Three pieces of state carry over
// between calls: the time of the last blink, the happy latch and the upset
// eyelid ratchet.
//
// A Renderer must not be used from more than one goroutine at a time and
// animations must not interleave.
package face

import (
	"context"
	"log/slog"
	"time"

	"github.com/srlehn/oledface/internal/consts"
	"github.com/srlehn/oledface/internal/errors"
	"github.com/srlehn/oledface/internal/logx"
	"github.com/srlehn/oledface/surface"
)

// Clock supplies the monotonic time for the blink timer.
type Clock interface {
	Now() time.Time
}

// Sleeper pauses between frames. Implementations should return early with
// the context error once ctx is done.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

var _ Clock = (ClockFunc)(nil)

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

var _ Sleeper = (SleeperFunc)(nil)

type SleeperFunc func(ctx context.Context, d time.Duration) error

func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error { return f(ctx, d) }

var (
	wallClock Clock   = ClockFunc(time.Now)
	timer     Sleeper = SleeperFunc(sleepCtx)
)

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

var _ logx.LoggerProvider = (*Renderer)(nil)

// Renderer maps expression names to their frame sequences and keeps the
// animation state between calls.
type Renderer struct {
	surface surface.Surface
	state   *State
	clock   Clock
	sleeper Sleeper
	logger  *slog.Logger
}

// NewRenderer checks that the surface can hold the expressions and applies
// the options. A surface smaller than 128x64 is rejected here, before any
// frame is drawn.
func NewRenderer(s surface.Surface, opts ...Option) (*Renderer, error) {
	if err := errors.NilParam(s); err != nil {
		return nil, errors.New(consts.ErrNilSurface)
	}
	if !surface.Fits(s) {
		sz := s.Bounds().Size()
		return nil, errors.Errorf(`%w: %dx%d, need %dx%d`, consts.ErrSurfaceTooSmall,
			sz.X, sz.Y, consts.SurfaceWidth, consts.SurfaceHeight)
	}
	r := &Renderer{surface: s}
	if err := r.SetOptions(opts...); err != nil {
		return nil, err
	}
	if err := r.SetOptions(setDefaults); err != nil {
		return nil, err
	}
	return r, nil
}

// Surface returns the borrowed drawing surface.
func (r *Renderer) Surface() surface.Surface { return r.surface }

// State returns the live animation state.
func (r *Renderer) State() *State { return r.state }

// Logger implements logx.LoggerProvider. It is nil if logging is disabled.
func (r *Renderer) Logger() *slog.Logger {
	if r == nil {
		return nil
	}
	return r.logger
}

// Begin starts an expression without drawing anything yet.
// Gated expressions evaluate their gate here: a blink within BlinkInterval
// of the last one and an upset while happy is latched yield an animation
// without frames.
func (r *Renderer) Begin(expr Expression) (*Animation, error) {
	if r == nil {
		return nil, errors.New(consts.ErrNilReceiver)
	}
	if err := errors.NilReceiver(r.state, r.clock); err != nil {
		return nil, err
	}
	fn, ok := scripts[expr]
	if !ok {
		return nil, errors.WrapPrefix(consts.ErrUnknownExpression, `"`+expr.String()+`"`, 0)
	}
	now := r.clock.Now()
	sc := fn(*r.state, now)
	a := &Animation{
		renderer: r,
		expr:     expr,
		frames:   sc.frames,
		commit:   sc.commit,
		started:  now,
	}
	if a.Done() {
		r.debug(`expression skipped`, a)
	}
	return a, nil
}

// Play runs an expression to completion, pausing after each frame as long
// as the expression asks for. Cancelling ctx stops the animation between
// frames; an animation stopped before its last frame leaves the state
// untouched.
func (r *Renderer) Play(ctx context.Context, expr Expression) error {
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := r.Begin(expr)
	if err != nil {
		return err
	}
	for !a.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		hold, err := a.Step()
		if logx.IsErr(err, r, slog.LevelError, `expression`, expr.String(), `frame`, a.Pos()) {
			return err
		}
		if hold > 0 {
			if err := r.sleeper.Sleep(ctx, hold); err != nil {
				return err
			}
		}
	}
	return nil
}

// Frames returns the number of frames expr would draw given the current
// state, without drawing or changing anything.
func (r *Renderer) Frames(expr Expression) (int, error) {
	if r == nil {
		return 0, errors.New(consts.ErrNilReceiver)
	}
	if err := errors.NilReceiver(r.state, r.clock); err != nil {
		return 0, err
	}
	fn, ok := scripts[expr]
	if !ok {
		return 0, errors.WrapPrefix(consts.ErrUnknownExpression, `"`+expr.String()+`"`, 0)
	}
	return len(fn(*r.state, r.clock.Now()).frames), nil
}

func (r *Renderer) debug(msg string, a *Animation) {
	if r.logger == nil {
		return
	}
	logx.Debug(msg, r,
		`expression`, a.expr.String(),
		`frames`, a.Len(),
		`duration`, r.clock.Now().Sub(a.started),
		`happy_latched`, r.state.HappyLatched,
		`upset_offset`, r.state.UpsetOffset,
	)
}
