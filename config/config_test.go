package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := New()
	require.NoError(t, c.Load(nil))
	assert.False(t, c.GetBool("debug"))
	assert.Greater(t, c.GetInt("threads"), 0)
	assert.Empty(t, c.GetString("cpu-profile"))
}

func TestLoadFlagsAndPositionals(t *testing.T) {
	c := New()
	err := c.Load([]string{"--debug", "--threads", "2", "5d", "6h", "7c", "8s"})
	require.NoError(t, err)
	assert.True(t, c.GetBool("debug"))
	assert.Equal(t, 2, c.GetInt("threads"))
	assert.Equal(t, []string{"5d", "6h", "7c", "8s"}, c.Args())
}

func TestLoadBadFlag(t *testing.T) {
	c := New()
	assert.Error(t, c.Load([]string{"--no-such-flag"}))
}
