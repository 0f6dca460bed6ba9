package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	rsz "github.com/srlehn/oledface/resize"
)

func init() { rsz.Register(`nfnt`, &Resizer{}) }

// Resizer uses "github.com/nfnt/resize"
type Resizer struct{}

var _ rsz.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return resize.Resize(uint(size.X), uint(size.Y), img, resize.NearestNeighbor), nil
}
