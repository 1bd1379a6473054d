package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// FileName is the name of the project configuration file.
	FileName = "trellis.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultManifest is the default component manifest path.
	DefaultManifest = "app.yaml"

	// DefaultPollInterval is the default manifest watch interval.
	DefaultPollInterval = "500ms"
)

// ErrNotFound is returned when no project file exists at the load path.
var ErrNotFound = errors.New("config: trellis.json not found")

// Config represents the complete trellis.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Manifest is the path to the component manifest, relative to the
	// config file's directory.
	Manifest string `json:"manifest,omitempty"`

	// Serve contains preview server configuration.
	Serve ServeConfig `json:"serve,omitempty"`

	// Render contains HTML output configuration.
	Render RenderConfig `json:"render,omitempty"`

	// Publish contains snapshot publishing configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// ServeConfig contains preview server settings.
type ServeConfig struct {
	// Port is the port to run the preview server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Watch enables live reload on manifest changes.
	Watch bool `json:"watch,omitempty"`

	// PollInterval is how often the manifest is checked for changes
	// (a duration string, e.g. "500ms").
	PollInterval string `json:"pollInterval,omitempty"`
}

// RenderConfig contains HTML output settings.
type RenderConfig struct {
	// Pretty enables indented output.
	Pretty bool `json:"pretty,omitempty"`

	// Indent is the indentation string in pretty mode.
	Indent string `json:"indent,omitempty"`

	// Output is the file the render command writes to. Empty means stdout.
	Output string `json:"output,omitempty"`
}

// PublishConfig contains snapshot publishing settings.
type PublishConfig struct {
	// Bucket is the S3 bucket snapshots upload to.
	Bucket string `json:"bucket,omitempty"`

	// Region overrides the ambient AWS region.
	Region string `json:"region,omitempty"`

	// Prefix is the object key prefix for snapshots.
	Prefix string `json:"prefix,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Version:  "0.1.0",
		Manifest: DefaultManifest,
		Serve: ServeConfig{
			Port:         DefaultPort,
			Host:         DefaultHost,
			Watch:        true,
			PollInterval: DefaultPollInterval,
		},
		Render: RenderConfig{
			Indent: "  ",
		},
	}
}

// Load reads configuration from the specified directory. It looks for
// trellis.json in the directory; a missing file yields defaults plus
// ErrNotFound so callers can run configless.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := New()
			cfg.configPath = path
			return cfg, ErrNotFound
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config: no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// ManifestPath returns the manifest path resolved against the config
// file's directory.
func (c *Config) ManifestPath() string {
	if filepath.IsAbs(c.Manifest) || c.Dir() == "" {
		return c.Manifest
	}
	return filepath.Join(c.Dir(), c.Manifest)
}

// Interval parses the serve watch interval, falling back to the default
// on absent or malformed values.
func (s ServeConfig) Interval() time.Duration {
	d, err := time.ParseDuration(s.PollInterval)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultPollInterval)
	}
	return d
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Manifest == "" {
		c.Manifest = DefaultManifest
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.PollInterval == "" {
		c.Serve.PollInterval = DefaultPollInterval
	}
	if c.Render.Indent == "" {
		c.Render.Indent = "  "
	}
}
