package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_New(t *testing.T) {
	t.Run("default chunk size", func(t *testing.T) {
		a := New(0)
		assert.Equal(t, DefaultChunkSize, a.chunkSize)
		assert.Equal(t, 0, a.Len())
	})

	t.Run("custom chunk size", func(t *testing.T) {
		a := New(4)
		assert.Equal(t, 4, a.chunkSize)
	})
}

func TestArena_AllocLoadStore(t *testing.T) {
	a := New(2)

	ids := make([]uint32, 0, 5)
	for i := 0; i < 5; i++ {
		id, err := a.Alloc(float64(i) * 1.5)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	assert.Equal(t, []uint32{0, 1, 2, 3, 4}, ids)
	assert.Equal(t, 5, a.Len())
	assert.Len(t, a.chunks, 3)

	for i, id := range ids {
		assert.Equal(t, float64(i)*1.5, a.Load(id))
	}

	a.Store(3, -7)
	assert.Equal(t, -7.0, a.Load(3))

	// out of range
	a.Store(99, 1)
	assert.Equal(t, 0.0, a.Load(99))
}

func TestArena_StableAcrossGrowth(t *testing.T) {
	a := New(1)
	first, err := a.Alloc(42)
	require.NoError(t, err)
	chunk := a.chunks[0]

	for i := 0; i < 100; i++ {
		_, err := a.Alloc(0)
		require.NoError(t, err)
	}

	chunk[0] = 43
	assert.Equal(t, 43.0, a.Load(first))
}
