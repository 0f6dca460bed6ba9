// Package resize scales frames for previews and exports.
//
// Frames are 1-bit pixel art, so every registered resizer uses nearest
// neighbour sampling: an upscaled frame keeps hard pixel edges and stays
// black and white.
package resize

import (
	"image"

	"github.com/srlehn/oledface/internal/consts"
	"github.com/srlehn/oledface/internal/errors"
	"github.com/srlehn/oledface/internal/util"
)

type Resizer interface {
	Resize(img image.Image, size image.Point) (image.Image, error)
}

var resizersRegistered = make(map[string]Resizer)

// Register makes a resizer available by name. Backend packages register
// themselves from init.
func Register(name string, rsz Resizer) {
	if rsz == nil || len(name) == 0 {
		return
	}
	resizersRegistered[name] = rsz
}

// Get returns a registered resizer.
func Get(name string) (Resizer, error) {
	rsz, ok := resizersRegistered[name]
	if !ok || rsz == nil {
		return nil, errors.WrapPrefix(consts.ErrUnknownResizer, `"`+name+`"`, 0)
	}
	return rsz, nil
}

// Names lists the registered resizers.
func Names() []string { return util.MapsKeysSorted(resizersRegistered) }

// Scale enlarges img by an integer factor. A factor of 1 returns img.
func Scale(rsz Resizer, img image.Image, factor int) (image.Image, error) {
	if err := errors.NilParam(rsz, img); err != nil {
		return nil, err
	}
	if factor < 1 {
		return nil, errors.Errorf(`%w: %d`, consts.ErrInvalidScaleFactor, factor)
	}
	if factor == 1 {
		return img, nil
	}
	sz := img.Bounds().Size()
	return rsz.Resize(img, image.Pt(sz.X*factor, sz.Y*factor))
}
