package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBurstThenDeny(t *testing.T) {
	l := New(0.001, 2, 0)
	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
}

func TestKeysAreIndependent(t *testing.T) {
	l := New(0.001, 1, 0)
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"))
}

func TestResetWhenFull(t *testing.T) {
	l := New(0.001, 1, 1)
	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("b"))
	// "a" was dropped with the reset and starts with a fresh bucket
	assert.True(t, l.Allow("a"))
}
