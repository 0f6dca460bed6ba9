package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/oledface/internal/config"
	"github.com/srlehn/oledface/internal/consts"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), `config.toml`)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(`HOME`, t.TempDir())
	t.Setenv(`OLEDFACE_CONFIG`, ``)
	c, err := config.Load(``)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
[panel]
width = 256
height = 128

[preview]
output = "sixel"
scale = 2
resizer = "gift"
border = false

[idle]
poll = "50ms"
mood = ["sleepy", "thinking"]
`)
	t.Setenv(`OLEDFACE_PREVIEW_SCALE`, `3`)
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 256, c.Panel.Width)
	assert.Equal(t, 128, c.Panel.Height)
	assert.Equal(t, config.OutputSixel, c.Preview.Output)
	assert.Equal(t, 3, c.Preview.Scale)
	assert.Equal(t, `gift`, c.Preview.Resizer)
	assert.False(t, c.Preview.Border)
	assert.Equal(t, 50*time.Millisecond, c.Idle.Poll)
	assert.Equal(t, 10*time.Second, c.Idle.Every)
	assert.Equal(t, []string{`sleepy`, `thinking`}, c.Idle.Mood)
}

func TestLoadRejects(t *testing.T) {
	path := writeConfig(t, "[panel]\nwidth = 64\n")
	_, err := config.Load(path)
	assert.ErrorIs(t, err, consts.ErrSurfaceTooSmall)

	path = writeConfig(t, "[preview]\noutput = \"kitty\"\n")
	_, err = config.Load(path)
	assert.ErrorContains(t, err, `kitty`)

	path = writeConfig(t, "[preview]\nink = \"blue-ish\"\n")
	_, err = config.Load(path)
	assert.ErrorContains(t, err, `blue-ish`)

	_, err = config.Load(filepath.Join(t.TempDir(), `missing.toml`))
	assert.Error(t, err)
}

func TestValidateInk(t *testing.T) {
	c := config.Default()
	c.Preview.Ink = ``
	assert.NoError(t, c.Validate(), `empty ink keeps the terminal color`)
	c.Preview.Ink = `#fff`
	assert.NoError(t, c.Validate())
	c.Preview.Ink = `#zzzzzz`
	assert.Error(t, c.Validate())
}
