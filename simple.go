// Package oledface draws animated eye expressions on a 128x64 monochrome
// panel.
//
// The face package holds the renderer; this package wires it to an
// in-memory panel with chosen defaults.
package oledface

import (
	"context"

	"github.com/srlehn/oledface/face"
	"github.com/srlehn/oledface/internal/consts"
	"github.com/srlehn/oledface/surface"
	"github.com/srlehn/oledface/surface/mono"
)

// NewDefault returns a renderer on a fresh 128x64 panel that hands every
// flushed frame to the given flushers.
func NewDefault(flushers []surface.Flusher, opts ...face.Option) (*face.Renderer, *mono.Surface, error) {
	sf := mono.New(consts.SurfaceWidth, consts.SurfaceHeight, flushers...)
	r, err := face.NewRenderer(sf, opts...)
	if err != nil {
		return nil, nil, err
	}
	return r, sf, nil
}

// Play runs the named expressions one after another on r.
func Play(ctx context.Context, r *face.Renderer, names ...string) error {
	for _, name := range names {
		expr, err := face.ParseExpression(name)
		if err != nil {
			return err
		}
		if err := r.Play(ctx, expr); err != nil {
			return err
		}
	}
	return nil
}
