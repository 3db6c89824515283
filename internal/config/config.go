// Package config holds the settings of a generation run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultInput             = "crudapi.cpp"
	DefaultOutput            = "openapi.json"
	DefaultTitle             = "C++ Crow CRUD API"
	DefaultVersion           = "1.0.0"
	DefaultDescription       = "Auto-generated OpenAPI spec from C++ Doxygen comments."
	DefaultServerURL         = "https://api.example.com/v1"
	DefaultServerDescription = "Main (production) server"
)

type Config struct {
	Inputs            []string `json:"inputs" yaml:"inputs" validate:"required,min=1,dive,required"`
	Output            string   `json:"output" yaml:"output" validate:"required"`
	Format            string   `json:"format" yaml:"format" validate:"omitempty,oneof=json yaml yml"`
	Title             string   `json:"title" yaml:"title" validate:"required"`
	Version           string   `json:"version" yaml:"version" validate:"required"`
	Description       string   `json:"description" yaml:"description"`
	ServerURL         string   `json:"server_url" yaml:"server_url" validate:"omitempty,url"`
	ServerDescription string   `json:"server_description" yaml:"server_description"`
}

func Default() Config {
	return Config{
		Inputs:            []string{DefaultInput},
		Output:            DefaultOutput,
		Title:             DefaultTitle,
		Version:           DefaultVersion,
		Description:       DefaultDescription,
		ServerURL:         DefaultServerURL,
		ServerDescription: DefaultServerDescription,
	}
}

// Load reads a YAML or JSON config file on top of the defaults. Fields the
// file leaves empty keep their default values.
func Load(path string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return config, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.Merge(file)
	return config, nil
}

// Merge copies every non-empty field of other into c.
func (c *Config) Merge(other Config) {
	if len(other.Inputs) > 0 {
		c.Inputs = other.Inputs
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.Format != "" {
		c.Format = other.Format
	}
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Version != "" {
		c.Version = other.Version
	}
	if other.Description != "" {
		c.Description = other.Description
	}
	if other.ServerURL != "" {
		c.ServerURL = other.ServerURL
	}
	if other.ServerDescription != "" {
		c.ServerDescription = other.ServerDescription
	}
}

// OutputFormat returns the explicit format, or the one implied by the
// output file extension, falling back to json.
func (c Config) OutputFormat() string {
	if c.Format != "" {
		if c.Format == "yml" {
			return "yaml"
		}
		return c.Format
	}
	switch strings.ToLower(filepath.Ext(c.Output)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

var validate = validator.New()

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
