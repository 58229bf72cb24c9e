package bitmap

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// IDSet is a set of uint32 identifiers backed by a Roaring bitmap.
// It is not safe for concurrent use.
type IDSet struct {
	rb *roaring.Bitmap
}

// New creates a new empty IDSet.
func New() *IDSet {
	return &IDSet{
		rb: roaring.New(),
	}
}

// AddNew inserts id and reports whether it was absent before the call.
func (s *IDSet) AddNew(id uint32) bool {
	return s.rb.CheckedAdd(id)
}
