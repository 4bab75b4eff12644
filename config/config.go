// Package config loads the engine's TOML configuration
package config

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type Vulkan struct {
	// Validation enables VK_LAYER_KHRONOS_validation and a debug messenger
	Validation      bool   `toml:"validation"`
	ApplicationName string `toml:"application_name"`
}

type Render struct {
	ClearColor    [4]float32 `toml:"clear_color"`
	LinkedShaders bool       `toml:"linked_shaders"`
}

type Shaders struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
	// Watch rebuilds the material whenever either file changes on disk
	Watch bool `toml:"watch"`
}

type Log struct {
	Level string `toml:"level"`
}

type Config struct {
	Window  Window  `toml:"window"`
	Vulkan  Vulkan  `toml:"vulkan"`
	Render  Render  `toml:"render"`
	Shaders Shaders `toml:"shaders"`
	Log     Log     `toml:"log"`
}

// Default is the configuration used for any value a file leaves out
func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "easel",
		},
		Vulkan: Vulkan{
			ApplicationName: "easel",
		},
		Render: Render{
			ClearColor:    [4]float32{1, 0, 0, 1},
			LinkedShaders: true,
		},
		Shaders: Shaders{
			Vertex:   "shaders/triangle.vert.spv",
			Fragment: "shaders/triangle.frag.spv",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads the file at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	} else if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config %s", path)
	}

	config, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return config, nil
}

// Parse decodes TOML over the defaults and validates the result. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	config := Default()

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	err := decoder.Decode(&config)
	if err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, errors.Newf("unknown configuration keys:\n%s", strict.String())
		}
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	err = config.Validate()
	if err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Newf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}

	for i, channel := range c.Render.ClearColor {
		if channel < 0 || channel > 1 {
			return errors.Newf("clear color channel %d is %f, outside [0, 1]", i, channel)
		}
	}

	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return errors.New("both vertex and fragment shader paths are required")
	}

	_, err := c.Log.SlogLevel()
	return err
}

// SlogLevel parses Level as one of debug, info, warn or error
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level)))
	if err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "invalid log level %q", l.Level)
	}
	return level, nil
}

// Marshal encodes the configuration as TOML
func (c Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode config")
	}
	return data, nil
}
