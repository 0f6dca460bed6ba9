package face

import (
	"time"

	"github.com/srlehn/oledface/internal/util"
	"github.com/srlehn/oledface/surface"
)

const (
	white = surface.White
	black = surface.Black
)

// script is the frame sequence of one expression call together with the
// state change applied once its last frame is flushed.
type script struct {
	frames []Frame
	commit func(st *State)
}

// scriptFunc builds a script from a copy of the state at the time of the
// call.
type scriptFunc func(st State, now time.Time) script

var scripts = map[Expression]scriptFunc{
	Close:       still(drawClose),
	Normal:      normalScript,
	Blink:       blinkScript,
	Sad:         sadScript,
	Upset:       upsetScript,
	Happy:       happyScript,
	Cute:        cuteScript,
	Angry:       angryScript,
	Sleepy:      sleepyScript,
	Wink:        winkScript,
	Surprised:   still(drawSurprised),
	Confused:    still(drawConfused),
	Love:        still(drawLove),
	Dizzy:       still(drawDizzy),
	Thinking:    still(drawThinking),
	Mischievous: still(drawMischievous),
	Crying:      cryingScript,
	Nervous:     nervousScript,
}

// still is a single frame expression without state effects.
func still(draw func(s surface.Surface)) scriptFunc {
	return func(State, time.Time) script {
		return script{frames: []Frame{{Draw: draw}}}
	}
}

func unlatch(st *State) { st.HappyLatched = false }
func latch(st *State)   { st.HappyLatched = true }

// steps returns from, from+step, ... while the value doesn't pass to.
// A negative step counts down.
func steps(from, to, step int) []int {
	var vals []int
	switch {
	case step > 0:
		for i := from; i <= to; i += step {
			vals = append(vals, i)
		}
	case step < 0:
		for i := from; i >= to; i += step {
			vals = append(vals, i)
		}
	}
	return vals
}

func progression(vals []int, hold time.Duration, draw func(s surface.Surface, i int)) []Frame {
	frames := make([]Frame, 0, len(vals))
	for _, i := range vals {
		i := i
		frames = append(frames, Frame{
			Draw: func(s surface.Surface) { draw(s, i) },
			Hold: hold,
		})
	}
	return frames
}

func normalScript(State, time.Time) script {
	return script{frames: []Frame{{Draw: drawNormal}}, commit: unlatch}
}

// blinkScript closes and reopens the eyes if the last blink is at least
// BlinkInterval ago. Otherwise it has no frames.
func blinkScript(st State, now time.Time) script {
	if !st.blinkDue(now) {
		return script{}
	}
	return script{
		frames: []Frame{
			{Draw: drawClose, Hold: BlinkHold},
			{Draw: drawNormal},
		},
		commit: func(st *State) {
			unlatch(st)
			st.LastBlink = now
		},
	}
}

func sadScript(State, time.Time) script {
	return script{frames: progression(steps(0, 15, 3), 0, drawSad)}
}

func angryScript(State, time.Time) script {
	return script{frames: progression(steps(0, 15, 3), 0, drawAngry)}
}

func happyScript(State, time.Time) script {
	// the cut-out circles rise from 62 to 59
	return script{frames: progression(steps(62, 59, -3), 0, drawHappy), commit: latch}
}

func cuteScript(State, time.Time) script {
	return script{frames: progression(steps(0, 2, 2), 0, drawCute), commit: latch}
}

func sleepyScript(State, time.Time) script {
	return script{frames: progression(steps(0, 10, 2), FrameHold, drawSleepy)}
}

func cryingScript(State, time.Time) script {
	return script{frames: progression(steps(0, 12, 3), FrameHold, drawCrying)}
}

func nervousScript(State, time.Time) script {
	return script{frames: progression(steps(0, 3, 1), FrameHold, drawNervous)}
}

func winkScript(State, time.Time) script {
	return script{
		frames: []Frame{
			{Draw: drawWink, Hold: WinkHold},
			{Draw: drawNormal},
		},
		commit: unlatch,
	}
}

// upsetScript draws the eyes under the current eyelid and advances the
// eyelid afterwards. While happy is latched it does nothing.
func upsetScript(st State, _ time.Time) script {
	if st.HappyLatched {
		return script{}
	}
	offset := util.Clamp(st.UpsetOffset, UpsetOffsetMin, UpsetOffsetMax)
	return script{
		frames: []Frame{{Draw: func(s surface.Surface) { drawUpset(s, offset) }}},
		commit: func(st *State) {
			st.UpsetOffset = offset
			st.advanceUpset()
		},
	}
}

// geometry, authored for the 128x64 panel

func drawEyes(s surface.Surface, y, h, r int) {
	s.FillRoundRect(8, y, 50, h, r, white)
	s.FillRoundRect(70, y, 50, h, r, white)
}

func drawClosedEye(s surface.Surface, x int) {
	s.FillRoundRect(x, 19, 55, 18, 6, white)
	s.FillRect(x, 1, 55, 18, black)
}

func drawClose(s surface.Surface) {
	s.FillRoundRect(5, 19, 55, 18, 6, white)
	s.FillRoundRect(67, 19, 55, 18, 6, white)
	s.FillRect(5, 1, 55, 18, black)
	s.FillRect(67, 1, 55, 18, black)
}

func drawNormal(s surface.Surface) { drawEyes(s, 12, 35, 9) }

func drawSad(s surface.Surface, i int) {
	drawEyes(s, 18, 29, 9)
	s.FillTriangle(3, 14, 64, 14, 3, 21+i, black)
	s.FillTriangle(68, 14, 124, 21+i, 124, 14, black)
}

func drawUpset(s surface.Surface, offset int) {
	drawEyes(s, 12, 35, 9)
	s.FillRect(8, offset, 50, 35, black)
	s.FillRect(70, offset, 50, 35, black)
}

func drawHappy(s surface.Surface, y int) {
	drawEyes(s, 12, 35, 11)
	s.FillCircle(33, y, 38, black)
	s.FillCircle(95, y, 38, black)
}

func drawCute(s surface.Surface, i int) {
	drawEyes(s, 12, 35, 12)
	s.FillCircle(30, 66-i, 40, black)
	s.FillCircle(98, 66-i, 40, black)
}

func drawAngry(s surface.Surface, i int) {
	drawEyes(s, 18, 29, 9)
	s.FillTriangle(3, 14, 64, 18+i, 124, 14, black)
}

func drawSleepy(s surface.Surface, i int) {
	drawEyes(s, 12+i, 25, 9)
	s.SetTextSize(1)
	s.SetTextColor(white)
	for _, z := range []struct{ x, y int }{{100, 40}, {110, 30}, {120, 20}} {
		s.SetCursor(z.x-i, z.y-i)
		s.Print(`z`)
	}
}

func drawWink(s surface.Surface) {
	s.FillRoundRect(70, 12, 50, 35, 9, white)
	drawClosedEye(s, 5)
}

func drawSurprised(s surface.Surface) {
	s.FillCircle(33, 30, 20, white)
	s.FillCircle(95, 30, 20, white)
	s.DrawLine(13, 5, 53, 5, white)
	s.DrawLine(75, 5, 115, 5, white)
}

func drawConfused(s surface.Surface) {
	s.FillRoundRect(8, 12, 50, 35, 9, white)
	s.FillCircle(95, 30, 20, white)
	s.DrawLine(75, 5, 115, 15, white)
}

func drawLove(s surface.Surface) {
	for _, x := range []int{33, 95} {
		s.FillCircle(x-7, 25, 10, white)
		s.FillCircle(x+7, 25, 10, white)
		s.FillTriangle(x-15, 30, x+15, 30, x, 45, white)
	}
}

func drawDizzy(s surface.Surface) {
	const cy = 30
	for _, cx := range []int{33, 95} {
		for r := 0; r < 15; r += 3 {
			s.DrawCircle(cx, cy, r, white)
			s.DrawLine(cx-r, cy-r, cx+r, cy+r, white)
			s.DrawLine(cx-r, cy+r, cx+r, cy-r, white)
		}
	}
}

func drawThinking(s surface.Surface) {
	drawEyes(s, 15, 25, 9)
	// thought bubble
	s.FillCircle(110, 15, 3, white)
	s.FillCircle(115, 10, 4, white)
	s.FillCircle(122, 5, 5, white)
}

func drawMischievous(s surface.Surface) {
	s.FillRoundRect(8, 12, 50, 25, 9, white)
	s.FillRoundRect(70, 18, 50, 25, 9, white)
	s.DrawLine(8, 5, 58, 15, white)
	s.DrawLine(70, 15, 120, 5, white)
}

func drawCrying(s surface.Surface, i int) {
	drawEyes(s, 18, 29, 9)
	// tears
	s.FillRoundRect(20, 45+i, 3, 5, 1, white)
	s.FillRoundRect(82, 45+i, 3, 5, 1, white)
}

func drawNervous(s surface.Surface, i int) {
	shake := (i % 2) * 2
	s.FillRoundRect(8+shake, 12, 50, 35, 9, white)
	s.FillRoundRect(70+shake, 12, 50, 35, 9, white)
	// sweat drop
	s.FillRoundRect(115, 20+i*2, 3, 5, 1, white)
}
