package config

import (
	"fmt"
	"io"
	"os"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
)

// NewLogger builds a structured logger writing to w according to cfg.
func NewLogger(cfg LogConfig, w io.Writer) (log.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level.String())
	if err != nil || !cfg.Level.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Level)
	}

	opts := []log.Option{log.LevelOption(level)}
	switch cfg.Format {
	case "json":
		opts = append(opts, log.OutputJSONOption())
	case "text", "":
		opts = append(opts, log.ColorOption(cfg.Color))
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogFormat, cfg.Format)
	}

	return log.NewLogger(w, opts...), nil
}

// OpenOutput opens the destination named by cfg.Output. Closing the
// returned writer is a no-op for stdout and stderr.
func OpenOutput(cfg LogConfig) (io.WriteCloser, error) {
	switch cfg.Output {
	case "", "stdout":
		return nopCloser{os.Stdout}, nil
	case "stderr":
		return nopCloser{os.Stderr}, nil
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log output %s: %w", cfg.Output, err)
		}
		return f, nil
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
