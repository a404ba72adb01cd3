// Package config provides configuration management for swarm nodes
package config

import (
	"fmt"

	"github.com/rs/xid"

	"github.com/najoast/swarm/core"
	"github.com/najoast/swarm/swarm"
)

// Environment represents the deployment environment
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// String returns the string representation of Environment
func (e Environment) String() string {
	return string(e)
}

// IsValid checks if the environment is valid
func (e Environment) IsValid() bool {
	switch e {
	case EnvDevelopment, EnvTesting, EnvStaging, EnvProduction:
		return true
	default:
		return false
	}
}

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
	LogLevelFatal LogLevel = "fatal"
)

// String returns the string representation of LogLevel
func (l LogLevel) String() string {
	return string(l)
}

// IsValid checks if the log level is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError, LogLevelFatal:
		return true
	default:
		return false
	}
}

// Config represents the complete node configuration
type Config struct {
	// Application configuration
	App AppConfig `yaml:"app" json:"app"`

	// Logging configuration
	Log LogConfig `yaml:"log" json:"log"`

	// Identity of this machine in the cluster
	Node NodeConfig `yaml:"node" json:"node"`

	// Swarms hosted on this machine
	Swarm SwarmConfig `yaml:"swarm" json:"swarm"`
}

// AppConfig contains application-level configuration
type AppConfig struct {
	// Application name
	Name string `yaml:"name" json:"name"`

	// Application version
	Version string `yaml:"version" json:"version"`

	// Deployment environment
	Environment Environment `yaml:"environment" json:"environment"`

	// Debug mode
	Debug bool `yaml:"debug" json:"debug"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	// Log level
	Level LogLevel `yaml:"level" json:"level"`

	// Log format (json, text)
	Format string `yaml:"format" json:"format"`

	// Output destination (stdout, stderr, file path)
	Output string `yaml:"output" json:"output"`

	// Enable colored output for the text format
	Color bool `yaml:"color" json:"color"`
}

// NodeConfig identifies the local machine.
type NodeConfig struct {
	// Machine tag stamped into every ID minted on this node.
	// 255 is reserved for global broadcast and rejected.
	Machine core.MachineID `yaml:"machine" json:"machine"`

	// Human-readable node name, generated when empty
	Name string `yaml:"name" json:"name"`
}

// SwarmConfig lists the swarms this node hosts.
type SwarmConfig struct {
	// Capacity applied to types that do not set their own
	DefaultCapacity int `yaml:"default_capacity" json:"default_capacity"`

	// Statically assigned type tags
	Types []TypeConfig `yaml:"types,omitempty" json:"types,omitempty"`
}

// TypeConfig assigns a type tag to a named actor type.
type TypeConfig struct {
	Name     string      `yaml:"name" json:"name"`
	Tag      core.TypeID `yaml:"tag" json:"tag"`
	Capacity int         `yaml:"capacity,omitempty" json:"capacity,omitempty"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "swarm-node",
			Version:     "1.0.0",
			Environment: EnvDevelopment,
			Debug:       true,
		},
		Log: LogConfig{
			Level:  LogLevelInfo,
			Format: "text",
			Output: "stdout",
			Color:  true,
		},
		Node: NodeConfig{
			Machine: 0,
			Name:    xid.New().String(),
		},
		Swarm: SwarmConfig{
			DefaultCapacity: swarm.DefaultCapacity,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate app config
	if c.App.Name == "" {
		return ErrInvalidAppName
	}
	if !c.App.Environment.IsValid() {
		return ErrInvalidEnvironment
	}

	// Validate log config
	if !c.Log.Level.IsValid() {
		return ErrInvalidLogLevel
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format)
	}

	// Validate node config
	if c.Node.Machine.IsBroadcast() {
		return fmt.Errorf("%w: %d is reserved for broadcast", ErrInvalidMachine, uint8(c.Node.Machine))
	}

	// Validate swarm config
	if !validCapacity(c.Swarm.DefaultCapacity) {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, c.Swarm.DefaultCapacity)
	}
	names := make(map[string]bool, len(c.Swarm.Types))
	tags := make(map[core.TypeID]string, len(c.Swarm.Types))
	for _, tc := range c.Swarm.Types {
		if tc.Name == "" {
			return fmt.Errorf("%w: type with tag %d has no name", ErrInvalidTypeConfig, tc.Tag)
		}
		if names[tc.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateTypeName, tc.Name)
		}
		if other, exists := tags[tc.Tag]; exists {
			return fmt.Errorf("%w: %d used by %q and %q", ErrDuplicateTypeTag, tc.Tag, other, tc.Name)
		}
		if tc.Capacity != 0 && !validCapacity(tc.Capacity) {
			return fmt.Errorf("%w: %d for type %q", ErrInvalidCapacity, tc.Capacity, tc.Name)
		}
		names[tc.Name] = true
		tags[tc.Tag] = tc.Name
	}

	return nil
}

func validCapacity(n int) bool {
	return n > 0 && n <= swarm.MaxCapacity
}

// CapacityFor returns the slot capacity for a configured type
func (c *Config) CapacityFor(tc TypeConfig) int {
	if tc.Capacity > 0 {
		return tc.Capacity
	}
	return c.Swarm.DefaultCapacity
}

// TypeTag looks up the tag assigned to a type name
func (c *Config) TypeTag(name string) (core.TypeID, bool) {
	for _, tc := range c.Swarm.Types {
		if tc.Name == name {
			return tc.Tag, true
		}
	}
	return 0, false
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}

// IsDebugEnabled returns true if debug mode is enabled
func (c *Config) IsDebugEnabled() bool {
	return c.App.Debug || c.App.Environment == EnvDevelopment
}
