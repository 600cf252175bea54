package stress

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewReport(t *testing.T) {
	ResetFailures()
	defer ResetFailures()

	first := NewArgs("memcpy", 0, 0)
	second := NewArgs("memcpy", 1, 0)
	for i := 0; i < 3; i++ {
		first.IncCounter()
	}
	second.IncCounter()

	report := NewReport("testrun", []*Args{first, second}, 2*time.Second)
	require.Len(t, report.Metrics, 2)
	assert.Equal(t, uint64(4), report.TotalOps())
	assert.Equal(t, uint64(3), report.Metrics[0].BogoOps)
	assert.Equal(t, 1.5, report.Metrics[0].Rate)
	assert.Equal(t, uint64(0), report.Failures)
}

func TestReport_WriteYAML(t *testing.T) {
	args := NewArgs("memcpy", 0, 0)
	args.IncCounter()

	report := NewReport("testrun", []*Args{args}, time.Second)
	path := filepath.Join(t.TempDir(), "metrics.yaml")
	require.NoError(t, report.WriteYAML(path))

	out, err := ioutil.ReadFile(path)
	require.NoError(t, err)

	var parsed Report
	require.NoError(t, yaml.Unmarshal(out, &parsed))
	assert.Equal(t, "testrun", parsed.Session)
	require.Len(t, parsed.Metrics, 1)
	assert.Equal(t, uint64(1), parsed.Metrics[0].BogoOps)
}
