package affinity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList_Valid(t *testing.T) {
	testCases := []struct {
		in  string
		max int32
		out []int
	}{
		{in: "0", max: 4, out: []int{0}},
		{in: "3", max: 4, out: []int{3}},
		{in: "0,2-3", max: 4, out: []int{0, 2, 3}},
		{in: "0-3", max: 4, out: []int{0, 1, 2, 3}},
		{in: "2,2,3-5,4", max: 8, out: []int{2, 3, 4, 5}},
		{in: "7,0", max: 8, out: []int{0, 7}},
		{in: "1-1", max: 2, out: []int{1}},
		// -1 disables the upper bound.
		{in: "100", max: -1, out: []int{100}},
		{in: "0-129", max: -1, out: mkRange(0, 129)},
	}

	for _, tc := range testCases {
		cpus, err := parseList(tc.in, tc.max)
		require.NoErrorf(t, err, "input %q", tc.in)
		assert.Equalf(t, tc.out, cpus, "input %q", tc.in)
	}
}

func TestParseList_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		",",
		"1,,2",
		"-3",
		"3-",
		"3-1",
		"a",
		"3 ",
		" 3",
		"1 - 2",
		"1-2-3",
		"4", // max is 4, so only 0..3 are allowed
		"0-4",
	} {
		cpus, err := parseList(in, 4)
		require.Errorf(t, err, "input %q", in)
		assert.Nil(t, cpus)
		assert.IsType(t, &ParseError{}, err)
	}
}

func TestParseList_Diagnostics(t *testing.T) {
	_, err := parseList("5", 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "taskset")
	assert.Contains(t, err.Error(), "5 is not allowed")
	assert.Contains(t, err.Error(), "allowed range: 0 to 3")

	_, err = parseList("3-1", 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid range in '3-1'")

	_, err = parseList("3-", 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expecting number following '-'")

	_, err = parseList("a", 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid number 'a'")
}

func TestFormatList(t *testing.T) {
	testCases := []struct {
		in  []int
		out string
	}{
		{in: nil, out: ""},
		{in: []int{0}, out: "0"},
		{in: []int{0, 1, 2, 3}, out: "0-3"},
		{in: []int{0, 2, 3, 4, 7}, out: "0,2-4,7"},
		{in: []int{1, 3, 5}, out: "1,3,5"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.out, FormatList(tc.in))
	}
}

// FormatList output must parse back to the same set.
func TestFormatList_RoundTrip(t *testing.T) {
	for _, cpus := range [][]int{
		{0},
		{0, 1, 2},
		{2, 4, 5, 6, 9},
	} {
		parsed, err := parseList(FormatList(cpus), -1)
		require.NoError(t, err)
		assert.Equal(t, cpus, parsed)
	}
}

func mkRange(lo, hi int) []int {
	cpus := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		cpus = append(cpus, i)
	}
	return cpus
}
