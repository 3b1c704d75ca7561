package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyboard(t *testing.T) {
	s := newSession(t, false, "speed")
	_, err := s.Submit("geese")
	require.NoError(t, err)

	kb := s.Keyboard()
	assert.Equal(t, Exact, kb['e'], "best verdict wins over the absent third E")
	assert.Equal(t, Present, kb['s'])
	assert.Equal(t, Absent, kb['g'])
	assert.True(t, kb.Eliminated('g'))
	assert.False(t, kb.Eliminated('e'))

	_, seen := kb['z']
	assert.False(t, seen)
	assert.False(t, kb.Eliminated('z'))
}
