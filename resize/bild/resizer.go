package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/srlehn/oledface/resize"
)

func init() { resize.Register(`bild`, &Resizer{}) }

// Resizer uses "github.com/anthonynsimon/bild/transform"
type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return transform.Resize(img, size.X, size.Y, transform.NearestNeighbor), nil
}
