package swarm

import (
	"fmt"

	"cosmossdk.io/log"
	"github.com/rs/xid"
)

const (
	// DefaultCapacity is the number of sub-actor slots an allocator manages
	// unless told otherwise.
	DefaultCapacity = 1024

	// MaxCapacity bounds the slot table. It stays far below the broadcast
	// sentinel so a real slot can never collide with it.
	MaxCapacity = 1 << 20
)

// Options configures an Allocator.
type Options struct {
	// Name labels the allocator in logs
	Name string

	// Capacity is the maximum number of live sub-actors
	Capacity int

	// Logger receives allocation events
	Logger log.Logger
}

// DefaultOptions returns options with a generated name, the default capacity
// and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Name:     xid.New().String(),
		Capacity: DefaultCapacity,
		Logger:   log.NewNopLogger(),
	}
}

func (o *Options) check() error {
	if o.Name == "" {
		o.Name = xid.New().String()
	}
	if o.Logger == nil {
		o.Logger = log.NewNopLogger()
	}
	if o.Capacity <= 0 || o.Capacity > MaxCapacity {
		return fmt.Errorf("%w: %d (max %d)", ErrInvalidCapacity, o.Capacity, MaxCapacity)
	}
	return nil
}
