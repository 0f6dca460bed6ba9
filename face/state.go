package face

import (
	"time"

	"github.com/srlehn/oledface/internal/util"
)

const (
	// BlinkInterval is the minimum time between two automatic blinks.
	BlinkInterval = 2000 * time.Millisecond
	// BlinkHold keeps the eyes closed during a blink.
	BlinkHold = 50 * time.Millisecond
	// WinkHold keeps one eye closed before returning to normal.
	WinkHold = 300 * time.Millisecond
	// FrameHold paces the slow multi-frame expressions.
	FrameHold = 100 * time.Millisecond
)

// upset eyelid ratchet
const (
	UpsetOffsetMin  = -20
	UpsetOffsetMax  = -7
	UpsetOffsetStep = 3
)

// State is the animation state shared by consecutive expression calls.
// The zero value is not the initial state, use NewState.
type State struct {
	// LastBlink is the time of the last automatic blink.
	LastBlink time.Time
	// HappyLatched is set by happy and cute and cleared by normal.
	// While set, upset neither draws nor advances.
	HappyLatched bool
	// UpsetOffset is the top edge of the upset eyelid mask.
	// It only grows, up to UpsetOffsetMax.
	UpsetOffset int
}

func NewState() *State {
	return &State{UpsetOffset: UpsetOffsetMin}
}

// ResetUpset moves the upset eyelid back to its start position.
// No expression calls it; the ratchet otherwise only ends with a new State.
func (s *State) ResetUpset() {
	if s == nil {
		return
	}
	s.UpsetOffset = UpsetOffsetMin
}

// advanceUpset moves the eyelid one step as long as the step stays within
// the upper bound.
func (s *State) advanceUpset() {
	s.UpsetOffset = util.Clamp(s.UpsetOffset, UpsetOffsetMin, UpsetOffsetMax)
	if s.UpsetOffset+UpsetOffsetStep <= UpsetOffsetMax {
		s.UpsetOffset += UpsetOffsetStep
	}
}

func (s *State) blinkDue(now time.Time) bool {
	return s.LastBlink.IsZero() || now.Sub(s.LastBlink) >= BlinkInterval
}
