package core

import "fmt"

// Scope says which sub-actors, on which machines, an ID addresses.
type Scope uint8

const (
	// ScopeSingle addresses one sub-actor slot on one machine
	ScopeSingle Scope = iota

	// ScopeLocal addresses every sub-actor of a type on one machine
	ScopeLocal

	// ScopeGlobal addresses every sub-actor of a type on every machine
	ScopeGlobal
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeSingle:
		return "single"
	case ScopeLocal:
		return "local"
	case ScopeGlobal:
		return "global"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Target is the explicit form of the sentinel-encoded addressing in an ID.
// Slot is only meaningful for ScopeSingle.
type Target struct {
	Scope Scope
	Slot  SubActorID
}

// Single targets one sub-actor slot.
func Single(slot SubActorID) Target {
	return Target{Scope: ScopeSingle, Slot: slot}
}

// AllLocal targets every sub-actor on the addressed machine.
func AllLocal() Target {
	return Target{Scope: ScopeLocal}
}

// AllMachines targets every sub-actor on every machine.
func AllMachines() Target {
	return Target{Scope: ScopeGlobal}
}

// String returns a short form of the target.
func (t Target) String() string {
	if t.Scope == ScopeSingle {
		return fmt.Sprintf("single(%d)", uint32(t.Slot))
	}
	return t.Scope.String()
}

// Target classifies id. It returns false for IDs that carry the every-machine
// sentinel together with a concrete sub-actor slot, which name no valid set
// of recipients.
func (id ID) Target() (Target, bool) {
	switch {
	case id.IsBroadcast() && id.IsGlobalBroadcast():
		return AllMachines(), true
	case id.IsBroadcast():
		return AllLocal(), true
	case id.IsGlobalBroadcast():
		return Target{}, false
	default:
		return Single(id.SubActor), true
	}
}

// Valid reports whether id has a well-defined Target.
func (id ID) Valid() bool {
	_, ok := id.Target()
	return ok
}

// Address builds an ID from an explicit target. For ScopeGlobal the machine
// argument is ignored. Targets that cannot be encoded, a sentinel slot in a
// ScopeSingle target or the every-machine sentinel outside ScopeGlobal, return
// ErrInvalidTarget.
func Address(typeID TypeID, machine MachineID, version Version, t Target) (ID, error) {
	id := New(typeID, t.Slot, machine, version)
	switch t.Scope {
	case ScopeGlobal:
		return id.GlobalBroadcast(), nil
	case ScopeLocal:
		if machine.IsBroadcast() {
			return ID{}, fmt.Errorf("%w: local broadcast on machine %s", ErrInvalidTarget, machine)
		}
		return id.LocalBroadcast(), nil
	case ScopeSingle:
		if machine.IsBroadcast() || t.Slot.IsBroadcast() {
			return ID{}, fmt.Errorf("%w: slot %s on machine %s", ErrInvalidTarget, t.Slot, machine)
		}
		return id, nil
	default:
		return ID{}, fmt.Errorf("%w: scope %s", ErrInvalidTarget, t.Scope)
	}
}
