package fbsink_test

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/oledface/face"
	"github.com/srlehn/oledface/resize/xdraw"
	"github.com/srlehn/oledface/sink/fbsink"
	"github.com/srlehn/oledface/surface/mono"
)

func TestDrawOffsetAndInk(t *testing.T) {
	ink := color.RGBA{R: 0x7f, G: 0xdb, B: 0xff, A: 0xff}
	dst := image.NewRGBA(image.Rect(0, 0, 300, 200))
	sink := fbsink.New(dst,
		fbsink.WithOffset(image.Pt(10, 20)),
		fbsink.WithScale(xdraw.NearestNeighbor(), 2),
		fbsink.WithInk(ink),
	)
	r, err := face.NewRenderer(mono.New(128, 64, sink))
	require.NoError(t, err)
	require.NoError(t, r.Normal(context.Background()))

	// left eye centre (33,30) lands at (10+66, 20+60)
	assert.Equal(t, ink, dst.RGBAAt(76, 80))
	assert.Equal(t, color.RGBA{A: 0xff}, dst.RGBAAt(10, 20))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(5, 5), `outside the frame`)
	assert.NoError(t, sink.Close())
}

func TestNilTarget(t *testing.T) {
	sink := fbsink.New(nil)
	assert.Error(t, sink.FlushFrame(mono.New(128, 64).Frame()))
}
