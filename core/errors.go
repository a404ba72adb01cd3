package core

import "errors"

// Encoding errors
var (
	ErrInvalidLength = errors.New("invalid encoded id length")
	ErrInvalidFormat = errors.New("invalid id text format")
	ErrInvalidWire   = errors.New("invalid protobuf id field")
)

// Addressing errors
var (
	ErrInvalidTarget = errors.New("target cannot be encoded in an id")
)
