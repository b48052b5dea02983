package editor

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vsariola/gramocut"
	"gopkg.in/yaml.v3"
)

// Config holds the user tunable settings of the editor.
type Config struct {
	Palette        gramocut.Palette `yaml:"palette"`
	ZoomIn         float64          `yaml:"zoomin"`
	ZoomOut        float64          `yaml:"zoomout"`
	NewTrackLength int              `yaml:"newtracklength"`
	Label          string           `yaml:"label"`
}

//go:embed config.yml
var defaultConfigYaml []byte

// DefaultConfig returns the configuration embedded in the binary.
func DefaultConfig() Config {
	var c Config
	if err := decodeConfig(defaultConfigYaml, &c); err != nil {
		panic(fmt.Errorf("failed to unmarshal default config: %w", err))
	}
	return c
}

// ParseConfig overlays the yaml in data on top of the default configuration.
// Keys missing from data keep their default values.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := decodeConfig(data, &c); err != nil {
		return DefaultConfig(), err
	}
	return c.sanitized(), nil
}

// LoadConfig reads config.yml from the gramocut directory under the user
// config dir. A missing file is not an error; the defaults are returned.
func LoadConfig() (Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfigFile(filepath.Join(configDir, "gramocut", "config.yml"))
}

// LoadConfigFile is LoadConfig with an explicit path.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("could not read config: %w", err)
	}
	c, err := ParseConfig(data)
	if err != nil {
		return c, fmt.Errorf("could not parse %s: %w", path, err)
	}
	return c, nil
}

func decodeConfig(data []byte, c *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(c)
	if errors.Is(err, io.EOF) {
		return nil // empty document
	}
	return err
}

func (c Config) sanitized() Config {
	d := DefaultConfig()
	if !(c.ZoomIn > 0 && c.ZoomIn < 1) {
		c.ZoomIn = d.ZoomIn
	}
	if !(c.ZoomOut > 1) {
		c.ZoomOut = d.ZoomOut
	}
	if c.NewTrackLength <= 0 {
		c.NewTrackLength = d.NewTrackLength
	}
	if len(c.Palette) == 0 {
		c.Palette = d.Palette
	}
	return c
}
