package face_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/oledface/face"
	"github.com/srlehn/oledface/internal/consts"
	"github.com/srlehn/oledface/surface"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeSleeper struct{ pauses []time.Duration }

func (s *fakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.pauses = append(s.pauses, d)
	return ctx.Err()
}

type fixture struct {
	rec      *surface.Recorder
	clock    *fakeClock
	sleeper  *fakeSleeper
	renderer *face.Renderer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		rec:     surface.NewRecorder(128, 64),
		clock:   &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)},
		sleeper: &fakeSleeper{},
	}
	r, err := face.NewRenderer(f.rec, face.SetClock(f.clock), face.SetSleeper(f.sleeper))
	require.NoError(t, err)
	f.renderer = r
	return f
}

func (f *fixture) play(t *testing.T, expr face.Expression) [][]surface.Op {
	t.Helper()
	f.rec.Reset()
	require.NoError(t, f.renderer.Play(context.Background(), expr))
	return f.rec.Frames()
}

func TestNewRendererDefaults(t *testing.T) {
	r, err := face.NewRenderer(surface.NewRecorder(128, 64))
	require.NoError(t, err)
	st := r.State()
	require.NotNil(t, st)
	assert.Equal(t, face.UpsetOffsetMin, st.UpsetOffset)
	assert.False(t, st.HappyLatched)
	assert.True(t, st.LastBlink.IsZero())
	assert.Nil(t, r.Logger())
}

func TestNewRendererRejectsSmallSurface(t *testing.T) {
	_, err := face.NewRenderer(surface.NewRecorder(96, 64))
	require.Error(t, err)
	assert.ErrorIs(t, err, consts.ErrSurfaceTooSmall)

	_, err = face.NewRenderer(nil)
	assert.ErrorIs(t, err, consts.ErrNilSurface)

	_, err = face.NewRenderer(surface.NewRecorder(256, 128))
	assert.NoError(t, err)
}

func TestUnknownExpression(t *testing.T) {
	f := newFixture(t)
	err := f.renderer.Play(context.Background(), face.Expression(`grumpy`))
	assert.ErrorIs(t, err, consts.ErrUnknownExpression)
	assert.Empty(t, f.rec.Ops())
}

func TestFrameCounts(t *testing.T) {
	tests := map[face.Expression]int{
		face.Close:       1,
		face.Normal:      1,
		face.Surprised:   1,
		face.Confused:    1,
		face.Love:        1,
		face.Dizzy:       1,
		face.Thinking:    1,
		face.Mischievous: 1,
		face.Sad:         6,
		face.Angry:       6,
		face.Crying:      5,
		face.Happy:       2,
		face.Cute:        2,
		face.Sleepy:      6,
		face.Nervous:     4,
		face.Wink:        2,
	}
	for expr, want := range tests {
		t.Run(expr.String(), func(t *testing.T) {
			f := newFixture(t)
			frames := f.play(t, expr)
			require.Len(t, frames, want)
			for _, fr := range frames {
				// every frame starts on a cleared buffer and ends with a flush
				assert.Equal(t, surface.OpClear, fr[0].Kind)
				assert.Equal(t, surface.OpFlush, fr[len(fr)-1].Kind)
				assert.Greater(t, len(fr), 2)
			}
			assert.Equal(t, want, f.rec.Count(surface.OpClear))
		})
	}
}

func TestPauses(t *testing.T) {
	tests := map[face.Expression][]time.Duration{
		face.Sad:     nil,
		face.Happy:   nil,
		face.Crying:  {face.FrameHold, face.FrameHold, face.FrameHold, face.FrameHold, face.FrameHold},
		face.Nervous: {face.FrameHold, face.FrameHold, face.FrameHold, face.FrameHold},
		face.Sleepy:  {face.FrameHold, face.FrameHold, face.FrameHold, face.FrameHold, face.FrameHold, face.FrameHold},
		face.Wink:    {face.WinkHold},
		face.Blink:   {face.BlinkHold},
	}
	for expr, want := range tests {
		t.Run(expr.String(), func(t *testing.T) {
			f := newFixture(t)
			f.play(t, expr)
			assert.Equal(t, want, f.sleeper.pauses)
		})
	}
}

func TestStatelessExpressionsIgnoreState(t *testing.T) {
	for _, expr := range face.Expressions() {
		switch expr {
		case face.Blink, face.Upset:
			continue
		}
		t.Run(expr.String(), func(t *testing.T) {
			f := newFixture(t)
			fresh := f.play(t, expr)

			g := newFixture(t)
			g.renderer.State().HappyLatched = true
			g.renderer.State().UpsetOffset = -11
			latched := g.play(t, expr)

			assert.Equal(t, fresh, latched)
		})
	}
}

func TestNormalDrawsEyes(t *testing.T) {
	f := newFixture(t)
	frames := f.play(t, face.Normal)
	require.Len(t, frames, 1)
	assert.Equal(t, []surface.Op{
		{Kind: surface.OpClear, Color: surface.Black},
		{Kind: surface.OpFillRoundRect, Args: []int{8, 12, 50, 35, 9}, Color: surface.White},
		{Kind: surface.OpFillRoundRect, Args: []int{70, 12, 50, 35, 9}, Color: surface.White},
		{Kind: surface.OpFlush, Color: surface.Black},
	}, frames[0])
}

func TestSadEyebrowsDroop(t *testing.T) {
	f := newFixture(t)
	frames := f.play(t, face.Sad)
	var tips []int
	for _, fr := range frames {
		for _, op := range fr {
			if op.Kind == surface.OpFillTriangle {
				tips = append(tips, op.Args[5])
				break
			}
		}
	}
	assert.Equal(t, []int{21, 24, 27, 30, 33, 36}, tips)
}

func TestHappyCurveRises(t *testing.T) {
	f := newFixture(t)
	frames := f.play(t, face.Happy)
	var ys []int
	for _, fr := range frames {
		for _, op := range fr {
			if op.Kind == surface.OpFillCircle {
				ys = append(ys, op.Args[1])
				break
			}
		}
	}
	assert.Equal(t, []int{62, 59}, ys)
}

func TestSleepyZsFloat(t *testing.T) {
	f := newFixture(t)
	frames := f.play(t, face.Sleepy)
	require.Len(t, frames, 6)
	last := frames[5]
	var cursors [][]int
	for _, op := range last {
		switch op.Kind {
		case surface.OpSetCursor:
			cursors = append(cursors, op.Args)
		case surface.OpPrint:
			assert.Equal(t, `z`, op.Text)
		}
	}
	assert.Equal(t, [][]int{{90, 30}, {100, 20}, {110, 10}}, cursors)
}

func TestHappyLatch(t *testing.T) {
	for _, expr := range []face.Expression{face.Happy, face.Cute} {
		t.Run(expr.String(), func(t *testing.T) {
			f := newFixture(t)
			f.play(t, expr)
			assert.True(t, f.renderer.State().HappyLatched)
			f.play(t, face.Normal)
			assert.False(t, f.renderer.State().HappyLatched)
		})
	}
}

func TestWinkEndsNormal(t *testing.T) {
	f := newFixture(t)
	f.renderer.State().HappyLatched = true
	frames := f.play(t, face.Wink)
	require.Len(t, frames, 2)

	g := newFixture(t)
	normal := g.play(t, face.Normal)
	assert.Equal(t, normal[0], frames[1])
	assert.False(t, f.renderer.State().HappyLatched)
}

func TestBlinkTimer(t *testing.T) {
	f := newFixture(t)

	// the first call always blinks
	first := f.clock.now
	frames := f.play(t, face.Blink)
	require.Len(t, frames, 2)
	assert.Equal(t, first, f.renderer.State().LastBlink)

	// within the interval: nothing is drawn
	f.clock.Advance(face.BlinkInterval - time.Millisecond)
	frames = f.play(t, face.Blink)
	assert.Empty(t, frames)
	assert.Empty(t, f.rec.Ops())
	assert.Equal(t, first, f.renderer.State().LastBlink)

	// at the interval: blinks again
	f.clock.Advance(time.Millisecond)
	second := f.clock.now
	frames = f.play(t, face.Blink)
	require.Len(t, frames, 2)
	assert.Equal(t, second, f.renderer.State().LastBlink)
}

func TestBlinkFrames(t *testing.T) {
	f := newFixture(t)
	frames := f.play(t, face.Blink)

	g := newFixture(t)
	closed := g.play(t, face.Close)
	normal := g.play(t, face.Normal)

	require.Len(t, frames, 2)
	assert.Equal(t, closed[0], frames[0])
	assert.Equal(t, normal[0], frames[1])
}

func TestBlinkTwiceWithinInterval(t *testing.T) {
	f := newFixture(t)
	f.renderer.State().LastBlink = f.clock.now.Add(-time.Hour)
	var blinked int
	for i := 0; i < 2; i++ {
		if len(f.play(t, face.Blink)) > 0 {
			blinked++
		}
		f.clock.Advance(500 * time.Millisecond)
	}
	assert.Equal(t, 1, blinked)
}

func TestUpsetRatchet(t *testing.T) {
	f := newFixture(t)
	var offsets []int
	for i := 0; i < 4; i++ {
		f.play(t, face.Upset)
		offsets = append(offsets, f.renderer.State().UpsetOffset)
	}
	assert.Equal(t, []int{-17, -14, -11, -8}, offsets)

	// holds at the bound and keeps drawing the same frame
	f.play(t, face.Upset)
	held := f.play(t, face.Upset)
	again := f.play(t, face.Upset)
	assert.Equal(t, -8, f.renderer.State().UpsetOffset)
	assert.Equal(t, held, again)
	require.Len(t, held, 1)
	assert.Contains(t, held[0], surface.Op{Kind: surface.OpFillRect, Args: []int{8, -8, 50, 35}, Color: surface.Black})
}

func TestUpsetNeverExceedsBound(t *testing.T) {
	f := newFixture(t)
	prev := f.renderer.State().UpsetOffset
	for i := 0; i < 20; i++ {
		f.play(t, face.Upset)
		cur := f.renderer.State().UpsetOffset
		assert.GreaterOrEqual(t, cur, prev)
		assert.LessOrEqual(t, cur, face.UpsetOffsetMax)
		assert.GreaterOrEqual(t, cur, face.UpsetOffsetMin)
		prev = cur
	}
}

func TestUpsetGatedByHappy(t *testing.T) {
	f := newFixture(t)
	f.play(t, face.Upset)
	f.play(t, face.Upset)
	require.Equal(t, -14, f.renderer.State().UpsetOffset)

	f.play(t, face.Happy)
	frames := f.play(t, face.Upset)
	assert.Empty(t, frames)
	assert.Empty(t, f.rec.Ops())
	assert.Equal(t, -14, f.renderer.State().UpsetOffset)

	// normal unlatches but doesn't reset the eyelid
	f.play(t, face.Normal)
	frames = f.play(t, face.Upset)
	require.Len(t, frames, 1)
	assert.Contains(t, frames[0], surface.Op{Kind: surface.OpFillRect, Args: []int{70, -14, 50, 35}, Color: surface.Black})
	assert.Equal(t, -11, f.renderer.State().UpsetOffset)
}

func TestResetUpset(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 6; i++ {
		f.play(t, face.Upset)
	}
	f.renderer.State().ResetUpset()
	assert.Equal(t, face.UpsetOffsetMin, f.renderer.State().UpsetOffset)
	f.play(t, face.Upset)
	assert.Equal(t, -17, f.renderer.State().UpsetOffset)
}

func TestPlayCancelled(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := f.renderer.Play(ctx, face.Happy)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, f.rec.Ops())
	assert.False(t, f.renderer.State().HappyLatched)
}

func TestFlushError(t *testing.T) {
	f := newFixture(t)
	errDevice := errors.New(`device gone`)
	f.rec.FlushErr = errDevice
	err := f.renderer.Play(context.Background(), face.Cute)
	assert.ErrorIs(t, err, errDevice)
	assert.False(t, f.renderer.State().HappyLatched)
}

func TestSharedState(t *testing.T) {
	st := face.NewState()
	recA, recB := surface.NewRecorder(128, 64), surface.NewRecorder(128, 64)
	a, err := face.NewRenderer(recA, face.SetState(st), face.SetSleeper(&fakeSleeper{}))
	require.NoError(t, err)
	b, err := face.NewRenderer(recB, face.SetState(st), face.SetSleeper(&fakeSleeper{}))
	require.NoError(t, err)

	require.NoError(t, a.Happy(context.Background()))
	require.NoError(t, b.Upset(context.Background()))
	assert.Empty(t, recB.Ops())
	assert.Same(t, a.State(), b.State())
}

func TestParseExpression(t *testing.T) {
	e, err := face.ParseExpression(` Mischievous `)
	require.NoError(t, err)
	assert.Equal(t, face.Mischievous, e)

	_, err = face.ParseExpression(`bored`)
	assert.ErrorIs(t, err, consts.ErrUnknownExpression)

	assert.Len(t, face.Expressions(), 18)
	assert.IsIncreasing(t, face.Expressions())
}
