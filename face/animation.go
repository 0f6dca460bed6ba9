package face

import (
	"time"

	"github.com/srlehn/oledface/internal/consts"
	"github.com/srlehn/oledface/internal/errors"
	"github.com/srlehn/oledface/surface"
)

// Frame draws one picture onto a cleared surface. Hold is the pause the
// expression keeps after the frame was flushed.
type Frame struct {
	Draw func(s surface.Surface)
	Hold time.Duration
}

// Animation is a started expression that is advanced one frame at a time.
// The caller decides the pacing: Play sleeps for the returned hold,
// an event loop may schedule the next Step with a timer instead.
//
// State effects of the expression are applied after the last frame was
// flushed. An animation that is abandoned early leaves the state untouched.
type Animation struct {
	renderer *Renderer
	expr     Expression
	frames   []Frame
	commit   func(st *State)
	pos      int
	started  time.Time
}

// Expression returns the name of the animated expression.
func (a *Animation) Expression() Expression { return a.expr }

// Len is the total number of frames. Expressions that are gated off by the
// state at the time of Begin have none.
func (a *Animation) Len() int { return len(a.frames) }

// Pos is the number of frames already flushed.
func (a *Animation) Pos() int { return a.pos }

// Done reports whether all frames were flushed.
func (a *Animation) Done() bool { return a.pos >= len(a.frames) }

// Hold returns the pause of the frame flushed last.
func (a *Animation) Hold() time.Duration {
	if a.pos == 0 {
		return 0
	}
	return a.frames[a.pos-1].Hold
}

// Step clears the surface, draws the next frame and flushes it.
// It returns the pause the expression wants before the next frame.
// A failed flush doesn't advance the animation.
func (a *Animation) Step() (hold time.Duration, _ error) {
	if a == nil || a.renderer == nil {
		return 0, errors.New(consts.ErrNilReceiver)
	}
	if a.Done() {
		return 0, errors.New(consts.ErrAnimationDone)
	}
	fr := a.frames[a.pos]
	s := a.renderer.surface
	s.Clear()
	if fr.Draw != nil {
		fr.Draw(s)
	}
	if err := s.Flush(); err != nil {
		return 0, errors.WrapPrefix(err, `flush of `+a.expr.String()+` frame`, 0)
	}
	a.pos++
	if a.Done() {
		a.finish()
	}
	return fr.Hold, nil
}

func (a *Animation) finish() {
	if a.commit != nil {
		a.commit(a.renderer.state)
		a.commit = nil
	}
	a.renderer.debug(`expression finished`, a)
}
