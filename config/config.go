// Package config reads optional YAML defaults for the sgdl command.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File mirrors the command-line flags. Zero values mean "not set".
type File struct {
	Segments         int               `yaml:"segments"`
	Concurrency      int               `yaml:"concurrency"`
	Timeout          time.Duration     `yaml:"timeout"`
	KeepAliveTimeout time.Duration     `yaml:"keep_alive_timeout"`
	UserAgent        string            `yaml:"user_agent"`
	Headers          map[string]string `yaml:"headers"`
	Verify           bool              `yaml:"verify"`
	KeepBaseline     bool              `yaml:"keep_baseline"`
	AWSProfile       string            `yaml:"aws_profile"`
	Debug            bool              `yaml:"debug"`
}

// Load parses the YAML file at path.
func Load(path string) (File, error) {
	var f File

	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("error parsing config file: %w", err)
	}

	if f.Segments < 0 {
		return f, fmt.Errorf("segments must be positive, got %d", f.Segments)
	}
	if f.Concurrency < 0 {
		return f, fmt.Errorf("concurrency must not be negative, got %d", f.Concurrency)
	}

	return f, nil
}
