package core

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ID uniquely identifies an actor, or a sub-actor within a swarm.
//
// ID is a plain comparable value: two IDs are equal exactly when all four
// fields are equal, so an ID can be used directly as a map key. None of its
// methods mutate the receiver; broadcast forms are returned as new values.
type ID struct {
	// TypeID selects the handler table registered for the actor's type
	TypeID TypeID

	// Machine is the node hosting the actor
	Machine MachineID

	// Version tells a reused slot apart from its previous occupants
	Version Version

	// SubActor is the slot within the swarm
	SubActor SubActorID
}

// New creates an ID from its four tags. No validation is performed; the
// allocator minting the ID must not hand out sentinel machine or slot values.
func New(typeID TypeID, subActor SubActorID, machine MachineID, version Version) ID {
	return ID{
		TypeID:   typeID,
		Machine:  machine,
		Version:  version,
		SubActor: subActor,
	}
}

// LocalBroadcast returns a copy of id addressing every live sub-actor of its
// type on its machine.
func (id ID) LocalBroadcast() ID {
	id.SubActor = BroadcastSubActor
	return id
}

// GlobalBroadcast returns a copy of id addressing every live sub-actor of its
// type on every machine.
func (id ID) GlobalBroadcast() ID {
	id = id.LocalBroadcast()
	id.Machine = BroadcastMachine
	return id
}

// IsBroadcast reports whether id addresses all sub-actors, locally or globally.
func (id ID) IsBroadcast() bool {
	return id.SubActor.IsBroadcast()
}

// IsGlobalBroadcast reports whether id addresses every machine. It only looks
// at the machine tag; combine with IsBroadcast, or use Target, to reject IDs
// that name a concrete slot on every machine.
func (id ID) IsGlobalBroadcast() bool {
	return id.Machine.IsBroadcast()
}

// IsRemote reports whether delivering to id from machine local has to cross
// a network boundary.
func (id ID) IsRemote(local MachineID) bool {
	return id.IsGlobalBroadcast() || id.Machine != local
}

// Hash returns a hash of the four tags. Equal IDs always hash equal.
func (id ID) Hash() uint64 {
	var buf [Size]byte
	binary.BigEndian.PutUint64(buf[:], id.Uint64())
	return xxhash.Sum64(buf[:])
}

// String returns the diagnostic form ID @<machine>_?<type>_#<sub>_v<version>.
func (id ID) String() string {
	return fmt.Sprintf("ID @%d_?%d_#%d_v%d",
		uint8(id.Machine), uint16(id.TypeID), uint32(id.SubActor), uint8(id.Version))
}
