// Package rdefault registers the resizer used when none is configured.
package rdefault

import (
	"image"

	"github.com/srlehn/oledface/internal/consts"
	"github.com/srlehn/oledface/resize"
	"github.com/srlehn/oledface/resize/xdraw"
)

func init() { resize.Register(consts.ResizerDefaultName, &Resizer{}) }

type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img.Bounds().Size() == size {
		return img, nil
	}
	return xdraw.NearestNeighbor().Resize(img, size)
}
