package surface_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/oledface/surface"
)

func TestRecorderFrames(t *testing.T) {
	r := surface.NewRecorder(0, 0)
	assert.Equal(t, surface.DefaultBounds(), r.Bounds())
	assert.True(t, surface.Fits(r))

	r.Clear()
	r.FillRect(1, 2, 3, 4, surface.White)
	require.NoError(t, r.Flush())
	r.Clear()
	r.SetCursor(5, 6)
	r.Print(`z`)
	require.NoError(t, r.Flush())
	r.DrawLine(0, 0, 1, 1, surface.White) // not flushed

	frames := r.Frames()
	require.Len(t, frames, 2)
	assert.Len(t, frames[0], 3)
	assert.Len(t, frames[1], 4)
	assert.Equal(t, 2, r.Count(surface.OpFlush))
	assert.Equal(t, `fillRect(1,2,3,4,white)`, frames[0][1].String())
	assert.Equal(t, `print("z")`, frames[1][2].String())

	r.Reset()
	assert.Empty(t, r.Ops())
}

func TestRecorderFlushErr(t *testing.T) {
	r := surface.NewRecorder(128, 64)
	r.FlushErr = errors.New(`bus error`)
	assert.Error(t, r.Flush())
	assert.Equal(t, 1, r.Count(surface.OpFlush))
}

func TestFits(t *testing.T) {
	assert.False(t, surface.Fits(nil))
	assert.False(t, surface.Fits(surface.NewRecorder(128, 32)))
	assert.True(t, surface.Fits(surface.NewRecorder(128, 64)))
}
