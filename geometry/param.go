package geometry

import (
	"github.com/hupe1980/geosolve/internal/arena"
)

// ParamID is the stable index of a parameter within its Arena.
type ParamID uint32

// Arena owns the storage of a set of parameters.
// An Arena is not safe for concurrent mutation.
type Arena struct {
	slots *arena.Arena
}

// NewArena creates an empty Arena.
func NewArena() *Arena {
	return &Arena{slots: arena.New(0)}
}

// Alloc creates a new parameter holding v.
func (a *Arena) Alloc(v float64) (Param, error) {
	id, err := a.slots.Alloc(v)
	if err != nil {
		return Param{}, err
	}
	return Param{arena: a, id: ParamID(id)}, nil
}

// NewParam is like Alloc but panics if the arena is exhausted.
func (a *Arena) NewParam(v float64) Param {
	p, err := a.Alloc(v)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPoint creates a point whose coordinates are two new parameters.
func (a *Arena) NewPoint(x, y float64) Point {
	return Point{X: a.NewParam(x), Y: a.NewParam(y)}
}

// Len returns the number of parameters allocated in the arena.
func (a *Arena) Len() int {
	return a.slots.Len()
}

// Param is a handle to a single scalar free variable.
//
// Params are comparable; == is identity. The zero Param is invalid and reads
// as zero.
type Param struct {
	arena *Arena
	id    ParamID
}

// Valid reports whether p refers to an arena slot.
func (p Param) Valid() bool {
	return p.arena != nil
}

// Arena returns the arena owning p.
func (p Param) Arena() *Arena {
	return p.arena
}

// ID returns the index of p within its arena.
func (p Param) ID() ParamID {
	return p.id
}

// Value returns the live value of p.
func (p Param) Value() float64 {
	if p.arena == nil {
		return 0
	}
	return p.arena.slots.Load(uint32(p.id))
}

// Set writes v into p. Writes through an invalid Param are dropped.
func (p Param) Set(v float64) {
	if p.arena == nil {
		return
	}
	p.arena.slots.Store(uint32(p.id), v)
}

// Valuer resolves parameter values.
//
// Live reads the arena directly. Solvers that evaluate candidate vectors
// concurrently supply their own Valuer over a private copy so that shared
// parameters are never written mid-evaluation.
type Valuer interface {
	Value(p Param) float64
}

type liveValuer struct{}

func (liveValuer) Value(p Param) float64 { return p.Value() }

// Live is the Valuer that reads current arena values.
var Live Valuer = liveValuer{}
