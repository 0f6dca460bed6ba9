package sixelsink_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/oledface/face"
	"github.com/srlehn/oledface/resize/xdraw"
	"github.com/srlehn/oledface/sink/sixelsink"
	"github.com/srlehn/oledface/surface/mono"
)

func TestFlushWritesSixel(t *testing.T) {
	var buf bytes.Buffer
	sink := sixelsink.New(&buf, xdraw.NearestNeighbor(), 2, sixelsink.WithCell(3, 2))
	r, err := face.NewRenderer(mono.New(128, 64, sink))
	require.NoError(t, err)
	require.NoError(t, r.Normal(context.Background()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\033[2;3H\033[?8452h"))
	assert.Contains(t, out, "\033P")
	assert.True(t, strings.HasSuffix(out, "\033\\"))
}

func TestNilWriter(t *testing.T) {
	sink := sixelsink.New(nil, nil, 1)
	assert.Error(t, sink.FlushFrame(mono.New(128, 64).Frame()))
}
