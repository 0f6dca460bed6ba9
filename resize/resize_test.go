package resize_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/oledface/internal/consts"
	"github.com/srlehn/oledface/resize"
	_ "github.com/srlehn/oledface/resize/bild"
	_ "github.com/srlehn/oledface/resize/gift"
	_ "github.com/srlehn/oledface/resize/imaging"
	_ "github.com/srlehn/oledface/resize/nfnt"
	_ "github.com/srlehn/oledface/resize/rdefault"
	_ "github.com/srlehn/oledface/resize/xdraw"
	"github.com/srlehn/oledface/surface"
)

func testFrame() *image.Paletted {
	p := image.NewPaletted(image.Rect(0, 0, 128, 64), surface.Palette)
	for y := 10; y < 20; y++ {
		for x := 10; x < 20; x++ {
			p.SetColorIndex(x, y, uint8(surface.White))
		}
	}
	return p
}

func isWhite(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y >= 0x80
}

func TestResizersNearestNeighbour(t *testing.T) {
	names := resize.Names()
	assert.Equal(t, []string{`bild`, consts.ResizerDefaultName, `gift`, `imaging`, `nfnt`, `xdraw`}, names)
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			rsz, err := resize.Get(name)
			require.NoError(t, err)
			img, err := resize.Scale(rsz, testFrame(), 4)
			require.NoError(t, err)
			assert.Equal(t, image.Pt(512, 256), img.Bounds().Size())
			assert.True(t, isWhite(img.At(14*4+2, 14*4+2)))
			assert.False(t, isWhite(img.At(5*4+2, 5*4+2)))
			assert.False(t, isWhite(img.At(30*4+2, 14*4+2)))
		})
	}
}

func TestScaleArgs(t *testing.T) {
	rsz, err := resize.Get(consts.ResizerDefaultName)
	require.NoError(t, err)

	fr := testFrame()
	img, err := resize.Scale(rsz, fr, 1)
	require.NoError(t, err)
	assert.Same(t, fr, img)

	_, err = resize.Scale(rsz, fr, 0)
	assert.ErrorIs(t, err, consts.ErrInvalidScaleFactor)

	_, err = resize.Get(`caire`)
	assert.ErrorIs(t, err, consts.ErrUnknownResizer)
}
