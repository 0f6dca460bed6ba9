// Package xdraw provides a resizer implementation using golang.org/x/image/draw.
package xdraw

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/oledface/resize"
)

func init() { resize.Register(`xdraw`, NearestNeighbor()) }

// resizer uses "golang.org/x/image/draw"
type resizer struct {
	scaler draw.Scaler
}

var _ resize.Resizer = (*resizer)(nil)

// NearestNeighbor keeps hard pixel edges.
func NearestNeighbor() resize.Resizer {
	return &resizer{scaler: draw.NearestNeighbor}
}

func (r *resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	dst := image.NewGray(image.Rectangle{Max: size})
	r.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
