package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigured(t *testing.T) {
	max := Configured()
	if max == -1 {
		t.Skip("cannot determine configured CPUs on this host")
	}
	assert.Greater(t, max, int32(0))
}

func TestCurrent(t *testing.T) {
	cur := Current()
	assert.GreaterOrEqual(t, cur, 0)
	if max := Configured(); max > 0 {
		assert.Less(t, int32(cur), max)
	}
}
