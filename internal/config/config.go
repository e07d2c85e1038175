package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	cerrors "git.home.luguber.info/inful/linkcheck/internal/errors"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = ".linkcheck.yaml"

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the link checker configuration.
type Config struct {
	Root       string        `yaml:"root"`
	Extensions []string      `yaml:"extensions"`
	Exclude    []string      `yaml:"exclude,omitempty"`
	Format     string        `yaml:"format"`
	Metrics    MetricsConfig `yaml:"metrics"`
}

// MetricsConfig controls metrics export.
type MetricsConfig struct {
	// Textfile, when set, receives the scan metrics in Prometheus text format.
	Textfile string `yaml:"textfile"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration file at configPath. Variables from a .env or
// .env.local file next to it are loaded first (existing environment wins),
// then ${VAR} references in the YAML are expanded.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, cerrors.ConfigNotFound(configPath)
	}

	if _, err := loadEnvFile(filepath.Dir(configPath)); err != nil {
		return nil, cerrors.ConfigInvalid(configPath, err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, cerrors.ConfigInvalid(configPath, fmt.Errorf("failed to read config file: %w", err))
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(expanded))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, cerrors.ConfigInvalid(configPath, fmt.Errorf("failed to unmarshal config: %w", err))
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when configPath does not exist.
func LoadOrDefault(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(configPath)
}

func (c *Config) applyDefaults() {
	if c.Root == "" {
		c.Root = "."
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".md", ".qmd"}
	}
	if c.Format == "" {
		c.Format = FormatText
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return cerrors.ValidationFailed("format", fmt.Sprintf("unsupported value %q (want text or json)", c.Format))
	}
	for _, ext := range c.Extensions {
		if strings.TrimSpace(ext) == "" {
			return cerrors.ValidationFailed("extensions", "empty extension")
		}
	}
	for _, dir := range c.Exclude {
		if dir == "" || strings.ContainsRune(dir, '/') {
			return cerrors.ValidationFailed("exclude", fmt.Sprintf("%q is not a directory name", dir))
		}
	}
	return nil
}

// Init writes a default configuration file to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return cerrors.New(cerrors.CategoryConfig, cerrors.SeverityFatal,
			fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath))
	}

	example := Default()
	example.Exclude = []string{".git", "node_modules"}

	var buf bytes.Buffer
	buf.WriteString("# linkcheck configuration\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(example); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, buf.Bytes(), 0o600); err != nil {
		return cerrors.Wrap(err, cerrors.CategoryFileSystem, cerrors.SeverityFatal, "failed to write config file").
			WithContext("path", configPath)
	}
	return nil
}
