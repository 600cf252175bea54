package stress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettings(t *testing.T) {
	settings := NewSettings()

	_, ok := settings.GetString("memcpy-method")
	assert.False(t, ok)

	settings.SetString("memcpy-method", "naive")
	value, ok := settings.GetString("memcpy-method")
	assert.True(t, ok)
	assert.Equal(t, "naive", value)

	settings.SetUint64("memcpy-ops", 42)
	ops, ok := settings.GetUint64("memcpy-ops")
	assert.True(t, ok)
	assert.Equal(t, uint64(42), ops)

	// type mismatch reads report absence, not garbage.
	_, ok = settings.GetUint64("memcpy-method")
	assert.False(t, ok)
}
