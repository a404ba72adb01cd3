package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestWireLayout(t *testing.T) {
	id := New(0x0102, 0x05060708, 0x03, 0x04)

	assert.Equal(t, uint64(0x0102030405060708), id.Uint64())

	data, err := id.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, data)

	var decoded ID
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, id, decoded)
	assert.Equal(t, id, FromUint64(id.Uint64()))
}

func TestBroadcastWireForm(t *testing.T) {
	global := New(5, 42, 1, 0).GlobalBroadcast()
	assert.Equal(t, []byte{0x00, 0x05, 0xff, 0x00, 0xff, 0xff, 0xff, 0xff}, global.AppendBinary(nil))
}

func TestUnmarshalBinaryLength(t *testing.T) {
	var id ID
	assert.ErrorIs(t, id.UnmarshalBinary([]byte{1, 2, 3}), ErrInvalidLength)
	assert.ErrorIs(t, id.UnmarshalBinary(make([]byte, 9)), ErrInvalidLength)
}

func TestTextRoundTrip(t *testing.T) {
	for _, id := range []ID{
		New(5, 42, 1, 0),
		New(5, 42, 1, 0).GlobalBroadcast(),
		New(65535, 0, 0, 255),
	} {
		text, err := id.MarshalText()
		require.NoError(t, err)

		var decoded ID
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, id, decoded)
	}
}

func TestUnmarshalTextRejectsMalformed(t *testing.T) {
	for _, text := range []string{
		"",
		"ID 1_?5_#42_v0",
		"ID @1_?5_#42",
		"ID @256_?5_#42_v0",
		"ID @1_?5_#42_v0 trailing",
		"ID @01_?5_#42_v0",
	} {
		var id ID
		assert.ErrorIs(t, id.UnmarshalText([]byte(text)), ErrInvalidFormat, text)
	}
}

func TestProtoField(t *testing.T) {
	id := New(5, 42, 1, 0)

	b := AppendProto(nil, 3, id)
	b = protowire.AppendTag(b, 4, protowire.VarintType)
	b = protowire.AppendVarint(b, 99)

	num, got, n, err := ConsumeProto(b)
	require.NoError(t, err)
	assert.Equal(t, protowire.Number(3), num)
	assert.Equal(t, id, got)
	assert.Equal(t, 1+Size, n)
}

func TestConsumeProtoErrors(t *testing.T) {
	_, _, _, err := ConsumeProto(nil)
	assert.ErrorIs(t, err, ErrInvalidWire)

	varint := protowire.AppendVarint(protowire.AppendTag(nil, 1, protowire.VarintType), 5)
	_, _, _, err = ConsumeProto(varint)
	assert.ErrorIs(t, err, ErrInvalidWire)

	truncated := AppendProto(nil, 1, New(1, 2, 3, 4))[:5]
	_, _, _, err = ConsumeProto(truncated)
	assert.ErrorIs(t, err, ErrInvalidWire)
}
