package pngsink_test

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/oledface/face"
	"github.com/srlehn/oledface/resize/gift"
	"github.com/srlehn/oledface/sink/pngsink"
	"github.com/srlehn/oledface/surface/mono"
)

func TestWritesFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), `frames`)
	sink, err := pngsink.New(dir, `happy`, &gift.Resizer{}, 3)
	require.NoError(t, err)
	r, err := face.NewRenderer(mono.New(128, 64, sink))
	require.NoError(t, err)

	require.NoError(t, r.Happy(context.Background()))
	files := sink.Files()
	require.Equal(t, []string{
		filepath.Join(dir, `happy-0001.png`),
		filepath.Join(dir, `happy-0002.png`),
	}, files)

	f, err := os.Open(files[1])
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 384, cfg.Width)
	assert.Equal(t, 192, cfg.Height)
}
