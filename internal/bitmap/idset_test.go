package bitmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDSet_AddNew(t *testing.T) {
	s := New()

	assert.True(t, s.AddNew(7))
	assert.False(t, s.AddNew(7))
	assert.True(t, s.AddNew(3))
	assert.True(t, s.AddNew(1<<31))
	assert.False(t, s.AddNew(3))
}
