package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionOverwritesWithinCategory(t *testing.T) {
	sess := NewSession("s1")
	sess.Set("colour", "red")
	sess.Set("colour", "blue")

	v, ok := sess.Get("colour")
	assert.True(t, ok)
	assert.Equal(t, "blue", v)
	assert.Equal(t, 1, sess.Len())
}

func TestSessionSnapshotIsDefensive(t *testing.T) {
	sess := NewSession("s1")
	sess.Set("animal", "cat")

	snap := sess.Snapshot()
	snap["animal"] = "dog"

	v, _ := sess.Get("animal")
	assert.Equal(t, "cat", v)
}

func TestSessionReset(t *testing.T) {
	sess := NewSession("s1")
	sess.Set("city", "cracow")
	sess.Reset()

	assert.Equal(t, 0, sess.Len())
	assert.False(t, sess.Has("city"))
}
