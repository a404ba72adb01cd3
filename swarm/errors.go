package swarm

import "errors"

// Construction errors
var (
	ErrBroadcastMachine = errors.New("allocator cannot live on the broadcast machine")
	ErrInvalidCapacity  = errors.New("invalid swarm capacity")
)

// Allocation errors
var (
	ErrExhausted   = errors.New("swarm has no free slots")
	ErrForeign     = errors.New("id belongs to another type or machine")
	ErrBroadcastID = errors.New("broadcast id does not name a slot")
	ErrUnknownSlot = errors.New("slot was never allocated")
	ErrStale       = errors.New("id is stale")
)
