package swarm

import (
	"testing"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/najoast/swarm/core"
)

func TestNodeSwarms(t *testing.T) {
	_, err := NewNode(core.BroadcastMachine, nil)
	assert.ErrorIs(t, err, ErrBroadcastMachine)

	node, err := NewNode(2, log.NewNopLogger())
	require.NoError(t, err)
	defer node.Close()

	_, err = node.AddSwarm(7, Options{Capacity: 4})
	require.NoError(t, err)
	_, err = node.AddSwarm(3, Options{Capacity: 4})
	require.NoError(t, err)

	_, err = node.AddSwarm(7, Options{Capacity: 4})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = node.AddSwarm(8, Options{Capacity: 0})
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	assert.Equal(t, []core.TypeID{3, 7}, node.Types())
	assert.Equal(t, core.MachineID(2), node.Machine())

	a, ok := node.Swarm(7)
	require.True(t, ok)
	assert.Equal(t, core.MachineID(2), a.Machine())

	_, ok = node.Swarm(99)
	assert.False(t, ok)
}

func TestNodeResolve(t *testing.T) {
	node, err := NewNode(2, nil)
	require.NoError(t, err)
	defer node.Close()

	a, err := node.AddSwarm(7, Options{Capacity: 4})
	require.NoError(t, err)

	first, err := a.Allocate()
	require.NoError(t, err)
	second, err := a.Allocate()
	require.NoError(t, err)

	assert.Equal(t, []core.ID{first}, node.Resolve(first))
	assert.Equal(t, []core.ID{first, second}, node.Resolve(first.LocalBroadcast()))
	assert.Equal(t, []core.ID{first, second}, node.Resolve(core.New(7, 0, 9, 0).GlobalBroadcast()))

	assert.Nil(t, node.Resolve(core.New(7, 0, 9, 0)))
	assert.Nil(t, node.Resolve(core.New(7, 0, 9, 0).LocalBroadcast()))
	assert.Nil(t, node.Resolve(core.New(8, 0, 2, 0).LocalBroadcast()))
}
