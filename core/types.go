package core

import "strconv"

// TypeID identifies the concrete type of an actor. It is assigned once per
// type by the type registry and selects the message handler table.
type TypeID uint16

// MachineID identifies the node (cluster machine or multiplayer peer) that
// hosts an actor.
type MachineID uint8

// Version distinguishes an ID from stale IDs that previously named a dead
// occupant of the same sub-actor slot.
type Version uint8

// SubActorID identifies one sub-actor within a swarm.
type SubActorID uint32

// Reserved tag values. Neither is ever a real machine or slot number.
const (
	// BroadcastMachine addresses every machine
	BroadcastMachine MachineID = 1<<8 - 1

	// BroadcastSubActor addresses every sub-actor of a type on the addressed machine(s)
	BroadcastSubActor SubActorID = 1<<32 - 1
)

// IsBroadcast reports whether m is the every-machine sentinel.
func (m MachineID) IsBroadcast() bool {
	return m == BroadcastMachine
}

// String returns the decimal machine number, or "*" for the sentinel.
func (m MachineID) String() string {
	if m.IsBroadcast() {
		return "*"
	}
	return strconv.FormatUint(uint64(m), 10)
}

// IsBroadcast reports whether s is the every-sub-actor sentinel.
func (s SubActorID) IsBroadcast() bool {
	return s == BroadcastSubActor
}

// String returns the decimal slot number, or "*" for the sentinel.
func (s SubActorID) String() string {
	if s.IsBroadcast() {
		return "*"
	}
	return strconv.FormatUint(uint64(s), 10)
}

// Next returns the version that follows v. Versions wrap from 255 to 0.
func (v Version) Next() Version {
	return v + 1
}
