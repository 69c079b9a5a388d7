// Package config loads and saves the tagtree.json project file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "tagtree.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultDocument is the default document definition path.
	DefaultDocument = "document.yaml"

	// DefaultOutput is the default rendered output path.
	DefaultOutput = "index.html"
)

// Config represents the complete tagtree.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Document is the path to the document definition file.
	Document string `json:"document,omitempty"`

	// Output is the path the rendered document is written to.
	Output string `json:"output,omitempty"`

	// Separator is the token inserted between rendered fragments.
	Separator string `json:"separator"`

	// Server contains preview server settings.
	Server ServerConfig `json:"server,omitempty"`

	// Publish contains S3 publish settings.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains preview server settings.
type ServerConfig struct {
	// Host is the interface the preview server binds to.
	Host string `json:"host,omitempty"`

	// Port is the preview server port.
	Port int `json:"port,omitempty"`
}

// PublishConfig contains S3 publish settings.
type PublishConfig struct {
	// Bucket is the S3 bucket name.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the key prefix for published documents.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Document:  DefaultDocument,
		Output:    DefaultOutput,
		Separator: "\n",
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
	}
}

// Load reads configuration from tagtree.json in the given directory. A
// missing file yields the defaults, not an error.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	cfg := New()
	cfg.configPath = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the configuration back to the path it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return fmt.Errorf("config: no path to save to")
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

// Path returns the path the configuration was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyDefaults() {
	if c.Document == "" {
		c.Document = DefaultDocument
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid server port %d", c.Server.Port)
	}
	if c.Publish.Bucket == "" && c.Publish.Prefix != "" {
		return fmt.Errorf("config: publish.prefix set without publish.bucket")
	}
	return nil
}

// ServerAddress returns the host:port the preview server listens on.
func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}
