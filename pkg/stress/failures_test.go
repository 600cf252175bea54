package stress

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailf(t *testing.T) {
	ResetFailures()
	defer ResetFailures()

	Failf("memcpy", "naive: memcpy content is different than expected")
	Failf("memcpy", "naive: memcpy return was %p and not %p as expected", (*byte)(nil), (*byte)(nil))

	assert.Equal(t, uint64(2), FailureCount())

	records := RecentFailures()
	require.Len(t, records, 2)
	assert.Equal(t, "memcpy", records[0].Name)
	assert.Contains(t, records[0].Msg, "content is different")

	// draining leaves the total intact.
	assert.Empty(t, RecentFailures())
	assert.Equal(t, uint64(2), FailureCount())
}

func TestFailf_Backlog(t *testing.T) {
	ResetFailures()
	defer ResetFailures()

	for i := 0; i < failureBacklog+10; i++ {
		Failf("memcpy", "mismatch %d", i)
	}

	assert.Equal(t, uint64(failureBacklog+10), FailureCount())

	records := RecentFailures()
	require.Len(t, records, failureBacklog)
	// oldest records were dropped.
	assert.Equal(t, fmt.Sprintf("mismatch %d", 10), records[0].Msg)
}
