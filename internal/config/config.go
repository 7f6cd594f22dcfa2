package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"transfuse/internal/logging"
)

const (
	OutputText = "text"
	OutputYAML = "yaml"
)

var ErrInvalidConfig = errors.New("invalid config")

type Log struct {
	Level string `yaml:"level"`
}

type Config struct {
	Log    Log    `yaml:"log"`
	Output string `yaml:"output"`
}

// Default returns the configuration described by the embedded template.
func Default() (Config, error) {
	b, err := GetTemplate()
	if err != nil {
		return Config{}, err
	}
	return parse(b)
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	c, err := parse(b)
	if err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func parse(b []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, err
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Output == "" {
		c.Output = OutputText
	}
	return c, c.validate()
}

func (c Config) validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("%w: unknown output %q", ErrInvalidConfig, c.Output)
	}
	return nil
}
