package consts

import (
	"errors"
)

var (
	ErrNilReceiver          = errors.New(`nil receiver`)
	ErrNilParam             = errors.New(`nil parameter`)
	ErrNilSurface           = errors.New(`nil surface`)
	ErrSurfaceTooSmall      = errors.New(`surface smaller than the expression geometry`)
	ErrUnknownExpression    = errors.New(`unknown expression`)
	ErrAnimationDone        = errors.New(`animation already completed`)
	ErrUnknownResizer       = errors.New(`unknown resizer`)
	ErrInvalidScaleFactor   = errors.New(`invalid scale factor`)
	ErrPlatformNotSupported = errors.New(`platform not supported`)
)

const (
	LibraryName = `oledface`

	// geometry of the SSD1306 panel the expressions are authored for
	SurfaceWidth  = 128
	SurfaceHeight = 64

	ResizerDefaultName = `default`
)
