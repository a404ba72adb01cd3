// Package config provides error definitions for configuration management
package config

import "errors"

// Configuration validation errors
var (
	ErrInvalidAppName     = errors.New("invalid application name")
	ErrInvalidEnvironment = errors.New("invalid environment")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidLogFormat   = errors.New("invalid log format")
	ErrInvalidMachine     = errors.New("invalid machine id")
	ErrInvalidCapacity    = errors.New("invalid swarm capacity")
	ErrInvalidTypeConfig  = errors.New("invalid type configuration")
	ErrDuplicateTypeName  = errors.New("duplicate type name")
	ErrDuplicateTypeTag   = errors.New("duplicate type tag")
)

// Configuration loading errors
var (
	ErrConfigFileNotFound  = errors.New("configuration file not found")
	ErrConfigParseError    = errors.New("configuration parse error")
	ErrEnvironmentVarError = errors.New("environment variable error")
	ErrConfigWatchError    = errors.New("configuration watch error")
)
