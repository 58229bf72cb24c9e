package arena

import (
	"errors"
	"math"
)

const (
	// DefaultChunkSize is the number of slots per chunk.
	DefaultChunkSize = 256
)

var (
	// ErrArenaFull is returned when the slot index space is exhausted.
	ErrArenaFull = errors.New("arena is full")
)

// Arena is a chunked float64 slot allocator.
type Arena struct {
	chunks    [][]float64
	chunkSize int
	n         uint32
}

// New creates a new Arena. A non-positive chunkSize selects DefaultChunkSize.
func New(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Arena{chunkSize: chunkSize}
}

// Alloc stores v in a fresh slot and returns its index.
func (a *Arena) Alloc(v float64) (uint32, error) {
	if a.n == math.MaxUint32 {
		return 0, ErrArenaFull
	}

	idx := a.n
	chunk := int(idx) / a.chunkSize
	if chunk == len(a.chunks) {
		a.chunks = append(a.chunks, make([]float64, a.chunkSize))
	}
	a.chunks[chunk][int(idx)%a.chunkSize] = v
	a.n++
	return idx, nil
}

// Load returns the value in slot i. Out-of-range slots read as zero.
func (a *Arena) Load(i uint32) float64 {
	if i >= a.n {
		return 0
	}
	return a.chunks[int(i)/a.chunkSize][int(i)%a.chunkSize]
}

// Store writes v into slot i. Out-of-range slots are ignored.
func (a *Arena) Store(i uint32, v float64) {
	if i >= a.n {
		return
	}
	a.chunks[int(i)/a.chunkSize][int(i)%a.chunkSize] = v
}

// Len returns the number of allocated slots.
func (a *Arena) Len() int {
	return int(a.n)
}
