//go:build !linux || android

package fbsink

import (
	"github.com/srlehn/oledface/internal/consts"
	"github.com/srlehn/oledface/internal/errors"
)

const DefaultDevice = ``

// Open is only available on Linux.
func Open(dev string, opts ...Option) (*Sink, error) {
	return nil, errors.New(consts.ErrPlatformNotSupported)
}
