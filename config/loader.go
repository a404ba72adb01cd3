// Package config provides configuration loading and parsing functionality
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/najoast/swarm/core"
)

// ConfigFormat represents the configuration file format
type ConfigFormat string

const (
	FormatYAML ConfigFormat = "yaml"
	FormatJSON ConfigFormat = "json"
)

// Loader handles configuration loading from various sources
type Loader struct {
	// Configuration search paths
	searchPaths []string

	// Environment variable prefix
	envPrefix string

	// Default configuration
	defaultConfig *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		searchPaths: []string{
			".",
			"./config",
			"./configs",
			"/etc/swarm",
			os.Getenv("HOME") + "/.swarm",
		},
		envPrefix:     "SWARM",
		defaultConfig: DefaultConfig(),
	}
}

// SetSearchPaths sets the configuration file search paths
func (l *Loader) SetSearchPaths(paths []string) *Loader {
	l.searchPaths = paths
	return l
}

// SetEnvPrefix sets the environment variable prefix
func (l *Loader) SetEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// SetDefaultConfig sets the default configuration
func (l *Loader) SetDefaultConfig(config *Config) *Loader {
	l.defaultConfig = config
	return l
}

// Load loads configuration from the specified file, or from defaults and
// the environment when filename is empty
func (l *Loader) Load(filename string) (*Config, error) {
	if filename != "" {
		config, err := l.loadFromFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file %s: %w", filename, err)
		}
		return config, nil
	}
	return l.finish(l.defaults())
}

// LoadFromFile loads configuration from a specific file
func (l *Loader) LoadFromFile(filename string) (*Config, error) {
	return l.loadFromFile(filename)
}

// LoadFromReader loads configuration from an io.Reader
func (l *Loader) LoadFromReader(reader io.Reader, format ConfigFormat) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration data: %w", err)
	}

	config, err := l.parseConfig(data, format)
	if err != nil {
		return nil, err
	}
	return l.finish(l.mergeConfig(l.defaults(), config))
}

// AutoLoad automatically discovers and loads configuration
func (l *Loader) AutoLoad() (*Config, error) {
	configFile, _, err := l.findConfigFile()
	if err != nil {
		if errors.Is(err, ErrConfigFileNotFound) {
			// no file, defaults plus environment
			return l.finish(l.defaults())
		}
		return nil, err
	}

	return l.loadFromFile(configFile)
}

// findConfigFile searches for configuration files in search paths
func (l *Loader) findConfigFile() (string, ConfigFormat, error) {
	filenames := []string{
		"swarm.yaml", "swarm.yml",
		"config.yaml", "config.yml",
		"swarm.json", "config.json",
	}

	for _, searchPath := range l.searchPaths {
		for _, filename := range filenames {
			fullPath := filepath.Join(searchPath, filename)
			if _, err := os.Stat(fullPath); err == nil {
				format, err := formatOf(filename)
				if err != nil {
					continue
				}
				return fullPath, format, nil
			}
		}
	}

	return "", "", ErrConfigFileNotFound
}

// formatOf determines the format from a file extension
func formatOf(filename string) (ConfigFormat, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported config file format: %s", filepath.Ext(filename))
	}
}

// loadFromFile loads configuration from a file
func (l *Loader) loadFromFile(filename string) (*Config, error) {
	format, err := formatOf(filename)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := l.parseConfig(data, format)
	if err != nil {
		return nil, err
	}

	// Merge with default config to fill missing fields
	return l.finish(l.mergeConfig(l.defaults(), config))
}

// defaults returns a copy of the loader's default configuration
func (l *Loader) defaults() *Config {
	if l.defaultConfig == nil {
		return DefaultConfig()
	}
	config := *l.defaultConfig
	config.Swarm.Types = append([]TypeConfig(nil), l.defaultConfig.Swarm.Types...)
	return &config
}

// finish applies environment overrides and validates
func (l *Loader) finish(config *Config) (*Config, error) {
	if err := l.loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// parseConfig parses configuration data based on format
func (l *Loader) parseConfig(data []byte, format ConfigFormat) (*Config, error) {
	config := &Config{}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%w: YAML: %v", ErrConfigParseError, err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%w: JSON: %v", ErrConfigParseError, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	return config, nil
}

// loadFromEnv loads configuration overrides from environment variables
func (l *Loader) loadFromEnv(config *Config) error {
	// App configuration
	if val := os.Getenv(l.envPrefix + "_APP_NAME"); val != "" {
		config.App.Name = val
	}
	if val := os.Getenv(l.envPrefix + "_APP_ENVIRONMENT"); val != "" {
		config.App.Environment = Environment(val)
	}
	if val := os.Getenv(l.envPrefix + "_APP_DEBUG"); val != "" {
		config.App.Debug = strings.ToLower(val) == "true"
	}

	// Log configuration
	if val := os.Getenv(l.envPrefix + "_LOG_LEVEL"); val != "" {
		config.Log.Level = LogLevel(val)
	}
	if val := os.Getenv(l.envPrefix + "_LOG_FORMAT"); val != "" {
		config.Log.Format = val
	}
	if val := os.Getenv(l.envPrefix + "_LOG_OUTPUT"); val != "" {
		config.Log.Output = val
	}

	// Node configuration
	if val := os.Getenv(l.envPrefix + "_NODE_MACHINE"); val != "" {
		machine, err := strconv.ParseUint(val, 10, 8)
		if err != nil {
			return fmt.Errorf("%w: %s_NODE_MACHINE=%q: %v", ErrEnvironmentVarError, l.envPrefix, val, err)
		}
		config.Node.Machine = core.MachineID(machine)
	}
	if val := os.Getenv(l.envPrefix + "_NODE_NAME"); val != "" {
		config.Node.Name = val
	}

	// Swarm configuration
	if val := os.Getenv(l.envPrefix + "_SWARM_DEFAULT_CAPACITY"); val != "" {
		capacity, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%w: %s_SWARM_DEFAULT_CAPACITY=%q: %v", ErrEnvironmentVarError, l.envPrefix, val, err)
		}
		config.Swarm.DefaultCapacity = capacity
	}

	return nil
}

// mergeConfig merges user config with default config
func (l *Loader) mergeConfig(defaultConfig, userConfig *Config) *Config {
	// Start with default config
	merged := *defaultConfig

	// Override with user config values where specified
	if userConfig.App.Name != "" {
		merged.App.Name = userConfig.App.Name
	}
	if userConfig.App.Version != "" {
		merged.App.Version = userConfig.App.Version
	}
	if userConfig.App.Environment != "" {
		merged.App.Environment = userConfig.App.Environment
	}
	merged.App.Debug = userConfig.App.Debug

	// Log config
	if userConfig.Log.Level != "" {
		merged.Log.Level = userConfig.Log.Level
	}
	if userConfig.Log.Format != "" {
		merged.Log.Format = userConfig.Log.Format
	}
	if userConfig.Log.Output != "" {
		merged.Log.Output = userConfig.Log.Output
	}
	merged.Log.Color = userConfig.Log.Color

	// Node config, machine 0 is a real machine so it always comes from the file
	merged.Node.Machine = userConfig.Node.Machine
	if userConfig.Node.Name != "" {
		merged.Node.Name = userConfig.Node.Name
	}

	// Swarm config
	if userConfig.Swarm.DefaultCapacity != 0 {
		merged.Swarm.DefaultCapacity = userConfig.Swarm.DefaultCapacity
	}
	if userConfig.Swarm.Types != nil {
		merged.Swarm.Types = userConfig.Swarm.Types
	}

	return &merged
}
