package core

import (
	"encoding/binary"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Size is the length of the fixed-width encoding of an ID.
const Size = 8

// Layout of the packed form, most significant bits first:
// type tag (16) | machine (8) | version (8) | sub-actor (32).
const (
	typeShift    = 48
	machineShift = 40
	versionShift = 32
)

// Uint64 packs id into a single integer using the wire layout.
func (id ID) Uint64() uint64 {
	return uint64(id.TypeID)<<typeShift |
		uint64(id.Machine)<<machineShift |
		uint64(id.Version)<<versionShift |
		uint64(id.SubActor)
}

// FromUint64 is the inverse of ID.Uint64.
func FromUint64(v uint64) ID {
	return ID{
		TypeID:   TypeID(v >> typeShift),
		Machine:  MachineID(v >> machineShift),
		Version:  Version(v >> versionShift),
		SubActor: SubActorID(v),
	}
}

// AppendBinary appends the 8-byte big-endian encoding of id to b.
func (id ID) AppendBinary(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, id.Uint64())
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (id ID) MarshalBinary() ([]byte, error) {
	return id.AppendBinary(make([]byte, 0, Size)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(data), Size)
	}
	*id = FromUint64(binary.BigEndian.Uint64(data))
	return nil
}

// MarshalText implements encoding.TextMarshaler using the diagnostic form.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses the form produced by ID.String.
func (id *ID) UnmarshalText(text []byte) error {
	var (
		machine  uint8
		typeID   uint16
		subActor uint32
		version  uint8
	)
	n, err := fmt.Sscanf(string(text), "ID @%d_?%d_#%d_v%d", &machine, &typeID, &subActor, &version)
	if err != nil || n != 4 {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}
	*id = New(TypeID(typeID), SubActorID(subActor), MachineID(machine), Version(version))
	if id.String() != string(text) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}
	return nil
}

// AppendProto appends id to b as protobuf field num with fixed64 wire type,
// so messages carrying IDs keep the canonical layout.
func AppendProto(b []byte, num protowire.Number, id ID) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, id.Uint64())
}

// ConsumeProto parses a field written by AppendProto. It returns the field
// number, the ID and the number of bytes consumed.
func ConsumeProto(b []byte) (protowire.Number, ID, int, error) {
	num, typ, n := protowire.ConsumeTag(b)
	if n < 0 {
		return 0, ID{}, 0, fmt.Errorf("%w: %v", ErrInvalidWire, protowire.ParseError(n))
	}
	if typ != protowire.Fixed64Type {
		return 0, ID{}, 0, fmt.Errorf("%w: field %d has wire type %d", ErrInvalidWire, num, typ)
	}
	v, m := protowire.ConsumeFixed64(b[n:])
	if m < 0 {
		return 0, ID{}, 0, fmt.Errorf("%w: %v", ErrInvalidWire, protowire.ParseError(m))
	}
	return num, FromUint64(v), n + m, nil
}
