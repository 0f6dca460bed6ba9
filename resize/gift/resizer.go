package gift

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/srlehn/oledface/resize"
)

func init() { resize.Register(`gift`, &Resizer{}) }

// Resizer uses "github.com/disintegration/gift"
type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	m := image.NewGray(image.Rectangle{Max: size})
	gift.Resize(size.X, size.Y, gift.NearestNeighborResampling).Draw(m, img, &gift.Options{Parallelization: true})
	return m, nil
}
