package termsink_test

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/oledface/sink/termsink"
	"github.com/srlehn/oledface/surface"
)

func frameFromRows(rows ...string) *image.Paletted {
	p := image.NewPaletted(image.Rect(0, 0, len(rows[0]), len(rows)), surface.Palette)
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				p.SetColorIndex(x, y, uint8(surface.White))
			}
		}
	}
	return p
}

func TestRender(t *testing.T) {
	fr := frameFromRows(
		`#.#.`,
		`##..`,
		`...#`,
	)
	assert.Equal(t, "█▄▀ \n   ▀", termsink.Render(fr))
	assert.Empty(t, termsink.Render(nil))
}

func TestSinkWrites(t *testing.T) {
	var buf bytes.Buffer
	s := termsink.New(&buf, termsink.WithBorder(true), termsink.WithInk(``))
	fr := frameFromRows(`##`, `##`)
	require.NoError(t, s.FlushFrame(fr))
	require.NoError(t, s.FlushFrame(fr))
	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, `██`))
	assert.Contains(t, out, `╭`)
	require.NoError(t, s.Close())

	assert.Error(t, s.FlushFrame(nil))
}
