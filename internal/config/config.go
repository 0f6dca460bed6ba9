// Package config loads the settings of the oledface command.
//
// Values come from defaults, an optional TOML file and OLEDFACE_ prefixed
// environment variables, in increasing priority. Nested keys use an
// underscore in the variable name: OLEDFACE_PREVIEW_SCALE.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"

	"github.com/srlehn/oledface/internal/consts"
	"github.com/srlehn/oledface/internal/errors"
)

type Config struct {
	Panel   PanelConfig   `mapstructure:"panel"`
	Preview PreviewConfig `mapstructure:"preview"`
	Idle    IdleConfig    `mapstructure:"idle"`
	Log     LogConfig     `mapstructure:"log"`
}

// PanelConfig is the size of the drawing surface.
type PanelConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Preview outputs.
const (
	OutputTerminal    = `term`
	OutputSixel       = `sixel`
	OutputFramebuffer = `fb`
)

// PreviewConfig controls live output and exports.
type PreviewConfig struct {
	Output  string `mapstructure:"output"`
	Device  string `mapstructure:"device"`
	Scale   int    `mapstructure:"scale"`
	Resizer string `mapstructure:"resizer"`
	Border  bool   `mapstructure:"border"`
	Ink     string `mapstructure:"ink"`
}

// IdleConfig drives the idle host loop.
type IdleConfig struct {
	Poll  time.Duration `mapstructure:"poll"`
	Every time.Duration `mapstructure:"every"`
	Mood  []string      `mapstructure:"mood"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Default returns the settings used without a config file.
func Default() Config {
	return Config{
		Panel:   PanelConfig{Width: consts.SurfaceWidth, Height: consts.SurfaceHeight},
		Preview: PreviewConfig{Output: OutputTerminal, Scale: 4, Resizer: consts.ResizerDefaultName, Border: true, Ink: `#7fdbff`},
		Idle:    IdleConfig{Poll: 100 * time.Millisecond, Every: 10 * time.Second},
		Log:     LogConfig{Level: `info`},
	}
}

// Load reads path, or $OLEDFACE_CONFIG, or ~/.config/oledface/config.toml.
// A missing default file is not an error, a missing explicit one is.
func Load(path string) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault(`panel.width`, def.Panel.Width)
	v.SetDefault(`panel.height`, def.Panel.Height)
	v.SetDefault(`preview.output`, def.Preview.Output)
	v.SetDefault(`preview.device`, def.Preview.Device)
	v.SetDefault(`preview.scale`, def.Preview.Scale)
	v.SetDefault(`preview.resizer`, def.Preview.Resizer)
	v.SetDefault(`preview.border`, def.Preview.Border)
	v.SetDefault(`preview.ink`, def.Preview.Ink)
	v.SetDefault(`idle.poll`, def.Idle.Poll)
	v.SetDefault(`idle.every`, def.Idle.Every)
	v.SetDefault(`log.file`, def.Log.File)
	v.SetDefault(`log.level`, def.Log.Level)

	v.SetConfigType(`toml`)
	if len(path) == 0 {
		path = os.Getenv(`OLEDFACE_CONFIG`)
	}
	explicit := len(path) > 0
	if explicit {
		v.SetConfigFile(path)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, `.config`, consts.LibraryName))
		v.SetConfigName(`config`)
	}

	v.SetEnvPrefix(`OLEDFACE`)
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, errors.WrapPrefix(err, `read config`, 0)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.WrapPrefix(err, `unmarshal config`, 0)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the renderer can't work with.
func (c Config) Validate() error {
	if c.Panel.Width < consts.SurfaceWidth || c.Panel.Height < consts.SurfaceHeight {
		return errors.Errorf(`%w: panel %dx%d`, consts.ErrSurfaceTooSmall, c.Panel.Width, c.Panel.Height)
	}
	if c.Preview.Scale < 1 {
		return errors.Errorf(`%w: %d`, consts.ErrInvalidScaleFactor, c.Preview.Scale)
	}
	switch c.Preview.Output {
	case OutputTerminal, OutputSixel, OutputFramebuffer:
	default:
		return errors.Errorf(`unknown preview output %q`, c.Preview.Output)
	}
	if len(c.Preview.Ink) > 0 {
		if _, err := colorful.Hex(c.Preview.Ink); err != nil {
			return errors.Errorf(`invalid preview ink %q: %w`, c.Preview.Ink, err)
		}
	}
	if c.Idle.Poll <= 0 {
		return errors.New(`idle poll interval must be positive`)
	}
	return nil
}
