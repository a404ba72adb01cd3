package swarm

import (
	"sync"
	"testing"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/najoast/swarm/core"
)

func newTestAllocator(t *testing.T, capacity int) *Allocator {
	t.Helper()

	opts := DefaultOptions()
	opts.Name = "test"
	opts.Capacity = capacity
	a, err := NewAllocator(5, 1, opts)
	require.NoError(t, err)
	t.Cleanup(a.Dispose)
	return a
}

func TestNewAllocatorValidation(t *testing.T) {
	_, err := NewAllocator(5, core.BroadcastMachine, DefaultOptions())
	assert.ErrorIs(t, err, ErrBroadcastMachine)

	for _, capacity := range []int{0, -1, MaxCapacity + 1} {
		opts := DefaultOptions()
		opts.Capacity = capacity
		_, err := NewAllocator(5, 1, opts)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	}

	a, err := NewAllocator(5, 1, Options{Capacity: 4})
	require.NoError(t, err)
	defer a.Dispose()
	assert.NotEmpty(t, a.Name())
}

func TestAllocateMintsSequentialSlots(t *testing.T) {
	a := newTestAllocator(t, 8)

	for i := 0; i < 3; i++ {
		id, err := a.Allocate()
		require.NoError(t, err)
		assert.Equal(t, core.New(5, core.SubActorID(i), 1, 0), id)
		assert.True(t, a.IsLive(id))
	}
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 8, a.Cap())
	assert.Equal(t, core.TypeID(5), a.TypeID())
	assert.Equal(t, core.MachineID(1), a.Machine())
}

func TestReleaseBumpsVersion(t *testing.T) {
	a := newTestAllocator(t, 8)

	first, err := a.Allocate()
	require.NoError(t, err)
	require.NoError(t, a.Release(first))
	assert.False(t, a.IsLive(first))
	assert.Equal(t, 0, a.Len())

	second, err := a.Allocate()
	require.NoError(t, err)
	assert.Equal(t, first.SubActor, second.SubActor)
	assert.Equal(t, core.Version(1), second.Version)
	assert.NotEqual(t, first, second)

	assert.True(t, a.IsLive(second))
	assert.False(t, a.IsLive(first))

	current, ok := a.Current(second.SubActor)
	require.True(t, ok)
	assert.Equal(t, second, current)
}

func TestReleaseErrors(t *testing.T) {
	a := newTestAllocator(t, 8)

	id, err := a.Allocate()
	require.NoError(t, err)

	assert.ErrorIs(t, a.Release(core.New(6, id.SubActor, 1, 0)), ErrForeign)
	assert.ErrorIs(t, a.Release(core.New(5, id.SubActor, 2, 0)), ErrForeign)
	assert.ErrorIs(t, a.Release(id.LocalBroadcast()), ErrBroadcastID)
	assert.ErrorIs(t, a.Release(core.New(5, 7, 1, 0)), ErrUnknownSlot)
	assert.ErrorIs(t, a.Release(core.New(5, id.SubActor, 1, 3)), ErrStale)

	require.NoError(t, a.Release(id))
	assert.ErrorIs(t, a.Release(id), ErrStale)
}

func TestFreedSlotsReusedOldestFirst(t *testing.T) {
	a := newTestAllocator(t, 4)

	ids := make([]core.ID, 4)
	for i := range ids {
		var err error
		ids[i], err = a.Allocate()
		require.NoError(t, err)
	}

	_, err := a.Allocate()
	assert.ErrorIs(t, err, ErrExhausted)

	require.NoError(t, a.Release(ids[2]))
	require.NoError(t, a.Release(ids[0]))

	next, err := a.Allocate()
	require.NoError(t, err)
	assert.Equal(t, core.SubActorID(2), next.SubActor)

	next, err = a.Allocate()
	require.NoError(t, err)
	assert.Equal(t, core.SubActorID(0), next.SubActor)
}

func TestVersionWrapsAfterManyRecycles(t *testing.T) {
	a := newTestAllocator(t, 1)

	first, err := a.Allocate()
	require.NoError(t, err)

	id := first
	for i := 0; i < 256; i++ {
		require.NoError(t, a.Release(id))
		id, err = a.Allocate()
		require.NoError(t, err)
	}

	// 8-bit versions come back around after 256 recycles
	assert.Equal(t, first, id)
}

func TestCurrent(t *testing.T) {
	a := newTestAllocator(t, 4)

	_, ok := a.Current(0)
	assert.False(t, ok)

	id, err := a.Allocate()
	require.NoError(t, err)

	got, ok := a.Current(id.SubActor)
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = a.Current(core.BroadcastSubActor)
	assert.False(t, ok)

	require.NoError(t, a.Release(id))
	_, ok = a.Current(id.SubActor)
	assert.False(t, ok)
}

func TestExpand(t *testing.T) {
	a := newTestAllocator(t, 8)

	var ids []core.ID
	for i := 0; i < 4; i++ {
		id, err := a.Allocate()
		require.NoError(t, err)
		ids = append(ids, id)
	}
	require.NoError(t, a.Release(ids[1]))
	live := []core.ID{ids[0], ids[2], ids[3]}

	tests := []struct {
		name   string
		target core.ID
		want   []core.ID
	}{
		{"single live", ids[0], []core.ID{ids[0]}},
		{"single released", ids[1], nil},
		{"local broadcast", ids[0].LocalBroadcast(), live},
		{"local broadcast with old version", core.New(5, 0, 1, 9).LocalBroadcast(), live},
		{"global broadcast", ids[0].GlobalBroadcast(), live},
		{"local broadcast elsewhere", core.New(5, 0, 2, 0).LocalBroadcast(), nil},
		{"other type", core.New(6, 0, 1, 0).GlobalBroadcast(), nil},
		{"degenerate", core.New(5, 0, core.BroadcastMachine, 0), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Expand(tt.target)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConcurrentAllocateRelease(t *testing.T) {
	a := newTestAllocator(t, 64)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				id, err := a.Allocate()
				if err != nil {
					continue
				}
				assert.True(t, a.IsLive(id))
				assert.NoError(t, a.Release(id))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, a.Len())
}

func TestAllocatorLogsWithLogger(t *testing.T) {
	opts := Options{Name: "logged", Capacity: 2, Logger: log.NewNopLogger()}
	a, err := NewAllocator(9, 3, opts)
	require.NoError(t, err)
	defer a.Dispose()

	id, err := a.Allocate()
	require.NoError(t, err)
	assert.Equal(t, "ID @3_?9_#0_v0", id.String())
	assert.Equal(t, "logged", a.Name())
}
