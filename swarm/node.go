package swarm

import (
	"fmt"
	"sort"
	"sync"

	"cosmossdk.io/log"

	"github.com/najoast/swarm/core"
)

// Node groups the allocators of every swarm hosted on one machine.
type Node struct {
	machine core.MachineID
	logger  log.Logger

	mu         sync.RWMutex
	allocators map[core.TypeID]*Allocator
}

// NewNode creates an empty node for machine.
func NewNode(machine core.MachineID, logger log.Logger) (*Node, error) {
	if machine.IsBroadcast() {
		return nil, ErrBroadcastMachine
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Node{
		machine:    machine,
		logger:     logger,
		allocators: make(map[core.TypeID]*Allocator),
	}, nil
}

// Machine returns the machine tag of the node.
func (n *Node) Machine() core.MachineID {
	return n.machine
}

// AddSwarm creates the allocator for typeID. Each type can be hosted once.
// A nil opts.Logger inherits the node's logger.
func (n *Node) AddSwarm(typeID core.TypeID, opts Options) (*Allocator, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.allocators[typeID]; exists {
		return nil, fmt.Errorf("swarm for type %d already exists on machine %d", typeID, n.machine)
	}
	if opts.Logger == nil {
		opts.Logger = n.logger
	}

	a, err := NewAllocator(typeID, n.machine, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create swarm for type %d: %w", typeID, err)
	}
	n.allocators[typeID] = a

	n.logger.Info("swarm added", "swarm", a.Name(), "type", uint16(typeID), "capacity", a.Cap())
	return a, nil
}

// Swarm returns the allocator for typeID.
func (n *Node) Swarm(typeID core.TypeID) (*Allocator, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	a, ok := n.allocators[typeID]
	return a, ok
}

// Types returns the hosted type tags in ascending order.
func (n *Node) Types() []core.TypeID {
	n.mu.RLock()
	defer n.mu.RUnlock()

	types := make([]core.TypeID, 0, len(n.allocators))
	for t := range n.allocators {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Resolve returns the live sub-actors on this node that target addresses.
// Targets of unhosted types, or naming only other machines, resolve to nil.
func (n *Node) Resolve(target core.ID) []core.ID {
	if !target.IsGlobalBroadcast() && target.Machine != n.machine {
		return nil
	}

	a, ok := n.Swarm(target.TypeID)
	if !ok {
		return nil
	}
	return a.Expand(target)
}

// Close disposes every allocator.
func (n *Node) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for t, a := range n.allocators {
		a.Dispose()
		delete(n.allocators, t)
	}
}
