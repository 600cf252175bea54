// Package affinity parses human-readable CPU lists like "0,2-5" and pins
// the process to them through the kernel scheduler mask. The parser is
// platform-neutral; the bind and migrate operations live in the
// platform-specific files.
package affinity

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"weike.sh/stressbox/pkg/cpu"
)

// option names the CLI option in diagnostics, matching the flag users
// actually typed.
const option = "taskset"

// ParseError describes a malformed or out-of-range CPU list.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", option, e.Reason)
}

// Parse validates a comma-separated CPU list against the CPUs configured
// on the host and returns the indices it names, in ascending order and
// deduplicated. Each item is either a single decimal index or a closed
// range LO-HI.
func Parse(list string) ([]int, error) {
	return parseList(list, cpu.Configured())
}

// parseList is Parse with an explicit upper bound; maxCPUs -1 disables
// the bound.
func parseList(list string, maxCPUs int32) ([]int, error) {
	if list == "" {
		return nil, &ParseError{Token: list, Reason: "empty CPU list"}
	}

	set := make(map[int]struct{})
	for _, token := range strings.Split(list, ",") {
		if token == "" {
			return nil, &ParseError{
				Token:  token,
				Reason: fmt.Sprintf("empty item in CPU list '%s'", list),
			}
		}

		var lo, hi int
		var err error
		if idx := strings.Index(token, "-"); idx >= 0 {
			hiStr := token[idx+1:]
			if hiStr == "" {
				return nil, &ParseError{
					Token:  token,
					Reason: fmt.Sprintf("expecting number following '-' in '%s'", token),
				}
			}
			if lo, err = parseCPU(token[:idx]); err != nil {
				return nil, err
			}
			if hi, err = parseCPU(hiStr); err != nil {
				return nil, err
			}
			if hi < lo {
				return nil, &ParseError{
					Token:  token,
					Reason: fmt.Sprintf("invalid range in '%s' (end value must be larger than start value)", token),
				}
			}
		} else {
			if lo, err = parseCPU(token); err != nil {
				return nil, err
			}
			hi = lo
		}

		if err := checkRange(maxCPUs, lo); err != nil {
			return nil, err
		}
		if err := checkRange(maxCPUs, hi); err != nil {
			return nil, err
		}
		for i := lo; i <= hi; i++ {
			set[i] = struct{}{}
		}
	}

	cpus := make([]int, 0, len(set))
	for i := range set {
		cpus = append(cpus, i)
	}
	sort.Ints(cpus)
	return cpus, nil
}

// parseCPU parses one decimal CPU index token. No whitespace, no signs
// hidden in the middle; strconv is exactly as strict as we want.
func parseCPU(token string) (int, error) {
	val, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, &ParseError{
			Token:  token,
			Reason: fmt.Sprintf("invalid number '%s'", token),
		}
	}
	return int(val), nil
}

func checkRange(maxCPUs int32, cpuIdx int) error {
	if cpuIdx < 0 || (maxCPUs != -1 && cpuIdx >= int(maxCPUs)) {
		return &ParseError{
			Token: strconv.Itoa(cpuIdx),
			Reason: fmt.Sprintf("invalid range, %d is not allowed, allowed range: 0 to %d",
				cpuIdx, maxCPUs-1),
		}
	}
	return nil
}

// FormatList renders sorted CPU indices back into the list syntax the
// parser accepts, collapsing consecutive runs into ranges.
func FormatList(cpus []int) string {
	if len(cpus) == 0 {
		return ""
	}

	var parts []string
	lo, hi := cpus[0], cpus[0]
	flush := func() {
		if lo == hi {
			parts = append(parts, strconv.Itoa(lo))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", lo, hi))
		}
	}
	for _, c := range cpus[1:] {
		if c == hi+1 {
			hi = c
			continue
		}
		flush()
		lo, hi = c, c
	}
	flush()
	return strings.Join(parts, ",")
}
