// Package swarm allocates sub-actor slots and mints their IDs.
//
// An Allocator owns the slot table of one actor type on one machine. It is
// the only place versions change: releasing a slot bumps its version so IDs
// handed out for the previous occupant stop matching.
package swarm

import (
	"fmt"
	"sync"

	"cosmossdk.io/log"
	"github.com/Workiva/go-datastructures/queue"

	"github.com/najoast/swarm/core"
)

type slot struct {
	version core.Version
	live    bool
}

// Allocator hands out sub-actor IDs for one type on one machine.
// It is safe for concurrent use.
type Allocator struct {
	typeID  core.TypeID
	machine core.MachineID
	name    string
	logger  log.Logger

	mu       sync.Mutex
	slots    []slot
	capacity int
	live     int

	// released slots, reused oldest first
	free *queue.RingBuffer
}

// NewAllocator creates an allocator minting IDs of type typeID on machine.
// The broadcast machine is rejected since it never hosts actors.
func NewAllocator(typeID core.TypeID, machine core.MachineID, opts Options) (*Allocator, error) {
	if machine.IsBroadcast() {
		return nil, ErrBroadcastMachine
	}
	if err := opts.check(); err != nil {
		return nil, err
	}

	a := &Allocator{
		typeID:   typeID,
		machine:  machine,
		name:     opts.Name,
		capacity: opts.Capacity,
		free:     queue.NewRingBuffer(uint64(opts.Capacity)),
	}
	a.logger = opts.Logger.With("module", "swarm", "swarm", a.name, "type", uint16(typeID), "machine", uint8(machine))
	return a, nil
}

// Name returns the allocator's label.
func (a *Allocator) Name() string {
	return a.name
}

// TypeID returns the type tag of every ID this allocator mints.
func (a *Allocator) TypeID() core.TypeID {
	return a.typeID
}

// Machine returns the machine tag of every ID this allocator mints.
func (a *Allocator) Machine() core.MachineID {
	return a.machine
}

// Cap returns the maximum number of live sub-actors.
func (a *Allocator) Cap() int {
	return a.capacity
}

// Len returns the number of live sub-actors.
func (a *Allocator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.live
}

// Allocate reserves a slot and returns the ID of its new occupant.
// Released slots are reused before fresh ones.
func (a *Allocator) Allocate() (core.ID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var n uint32
	switch {
	case a.free.Len() > 0:
		// only Allocate consumes the ring and it holds mu, so Get cannot block
		item, err := a.free.Get()
		if err != nil {
			return core.ID{}, fmt.Errorf("failed to take free slot: %w", err)
		}
		n = item.(uint32)
	case len(a.slots) < a.capacity:
		n = uint32(len(a.slots))
		a.slots = append(a.slots, slot{})
	default:
		return core.ID{}, fmt.Errorf("%w: %d live of %d", ErrExhausted, a.live, a.capacity)
	}

	s := &a.slots[n]
	s.live = true
	a.live++

	id := core.New(a.typeID, core.SubActorID(n), a.machine, s.version)
	a.logger.Debug("sub-actor allocated", "id", id.String())
	return id, nil
}

// Release frees the slot named by id and bumps its version. Releasing an ID
// that no longer names the current occupant returns ErrStale.
func (a *Allocator) Release(id core.ID) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, err := a.lookup(id)
	if err != nil {
		return err
	}
	if !s.live || s.version != id.Version {
		return fmt.Errorf("%w: %s", ErrStale, id)
	}

	// the ring is sized to the slot table so Put never waits for space
	if err := a.free.Put(uint32(id.SubActor)); err != nil {
		return fmt.Errorf("failed to recycle slot %d: %w", uint32(id.SubActor), err)
	}

	s.live = false
	s.version = s.version.Next()
	a.live--

	a.logger.Debug("sub-actor released", "id", id.String(), "next_version", uint8(s.version))
	return nil
}

// IsLive reports whether id names the current, live occupant of its slot.
func (a *Allocator) IsLive(id core.ID) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, err := a.lookup(id)
	return err == nil && s.live && s.version == id.Version
}

// Current returns the ID of the live occupant of slot n.
func (a *Allocator) Current(n core.SubActorID) (core.ID, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n.IsBroadcast() || int64(n) >= int64(len(a.slots)) {
		return core.ID{}, false
	}
	s := a.slots[n]
	if !s.live {
		return core.ID{}, false
	}
	return core.New(a.typeID, n, a.machine, s.version), true
}

// Expand returns the live IDs that target addresses within this allocator,
// ordered by slot. Broadcast targets reach every live occupant regardless of
// their version. A single target is returned only if it is live. Targets of
// another type, another machine, or without a valid addressing scope yield nil.
func (a *Allocator) Expand(target core.ID) []core.ID {
	if target.TypeID != a.typeID {
		return nil
	}
	t, ok := target.Target()
	if !ok {
		return nil
	}

	switch t.Scope {
	case core.ScopeSingle:
		if a.IsLive(target) {
			return []core.ID{target}
		}
		return nil
	case core.ScopeLocal:
		if target.Machine != a.machine {
			return nil
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	ids := make([]core.ID, 0, a.live)
	for n, s := range a.slots {
		if s.live {
			ids = append(ids, core.New(a.typeID, core.SubActorID(n), a.machine, s.version))
		}
	}
	return ids
}

// Dispose releases the free-slot ring. The allocator must not be used after.
func (a *Allocator) Dispose() {
	a.free.Dispose()
}

// lookup returns the slot id refers to. Callers must hold mu.
func (a *Allocator) lookup(id core.ID) (*slot, error) {
	if id.TypeID != a.typeID || id.Machine != a.machine {
		return nil, fmt.Errorf("%w: %s in swarm %s", ErrForeign, id, a.name)
	}
	if id.IsBroadcast() {
		return nil, fmt.Errorf("%w: %s", ErrBroadcastID, id)
	}
	if int64(id.SubActor) >= int64(len(a.slots)) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSlot, id)
	}
	return &a.slots[id.SubActor], nil
}
