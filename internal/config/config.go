package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// FileName is the name of the configuration file.
	FileName = "weft.yaml"

	// DefaultPort is the default preview server port.
	DefaultPort = 8080

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"
)

// ErrNotFound is returned when no weft.yaml can be located.
var ErrNotFound = errors.New("no weft.yaml found")

// Config represents the complete weft.yaml configuration.
type Config struct {
	// Name is the project name.
	Name string `yaml:"name,omitempty"`

	// Serve contains preview server configuration.
	Serve ServeConfig `yaml:"serve,omitempty"`

	// Build contains build output configuration.
	Build BuildConfig `yaml:"build,omitempty"`

	// Publish contains publishing configuration.
	Publish PublishConfig `yaml:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServeConfig contains preview server settings.
type ServeConfig struct {
	// Host is the host to bind to.
	Host string `yaml:"host,omitempty"`

	// Port is the port to run the preview server on.
	Port int `yaml:"port,omitempty"`

	// Dir is the directory to serve, relative to the project root.
	Dir string `yaml:"dir,omitempty"`

	// Watch enables live reload on file changes.
	Watch bool `yaml:"watch"`
}

// BuildConfig contains build output settings.
type BuildConfig struct {
	// Output is the output directory for builds.
	Output string `yaml:"output,omitempty"`
}

// PublishConfig contains S3 publishing settings.
type PublishConfig struct {
	// Bucket is the target S3 bucket.
	Bucket string `yaml:"bucket,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `yaml:"region,omitempty"`

	// Prefix is the key prefix under which objects are stored.
	Prefix string `yaml:"prefix,omitempty"`

	// Prune deletes remote objects that no longer exist locally.
	Prune bool `yaml:"prune,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Serve: ServeConfig{
			Host:  DefaultHost,
			Port:  DefaultPort,
			Dir:   DefaultOutput,
			Watch: true,
		},
		Build: BuildConfig{
			Output: DefaultOutput,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for weft.yaml in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile reads configuration from the specified file path. Fields
// absent from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w in %s", ErrNotFound, filepath.Dir(path))
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromWorkingDir loads configuration from the nearest project root
// above the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config: no path set, use SaveTo")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
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

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Build.Output == "" {
		c.Build.Output = DefaultOutput
	}
	if c.Serve.Dir == "" {
		c.Serve.Dir = c.Build.Output
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve.port %d out of range", c.Serve.Port)
	}
	if c.Publish.Bucket != "" && c.Publish.Region == "" {
		return errors.New("publish.region is required when publish.bucket is set")
	}
	return nil
}

// Address returns the listen address for the preview server.
func (c *Config) Address() string {
	return c.Serve.Host + ":" + strconv.Itoa(c.Serve.Port)
}

// URL returns the full URL for the preview server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// OutputPath returns the absolute path to the build output directory.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.Build.Output) {
		return c.Build.Output
	}
	return filepath.Join(c.Dir(), c.Build.Output)
}

// ServePath returns the absolute path to the directory being served.
func (c *Config) ServePath() string {
	if filepath.IsAbs(c.Serve.Dir) {
		return c.Serve.Dir
	}
	return filepath.Join(c.Dir(), c.Serve.Dir)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, FileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing weft.yaml, or ErrNotFound.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w in %s or any parent directory", ErrNotFound, startDir)
		}
		dir = parent
	}
}
