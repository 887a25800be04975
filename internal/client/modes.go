package client

import "sort"

// Mode tables are fixed by the device firmware. They are never mutated;
// the exported accessors hand out copies.
var (
	whiteBalanceModes = map[string]int{
		"Auto":             0,
		"Incandescent":     1,
		"Warm Fluorescent": 2,
		"Twilight":         3,
		"Fluorescent":      4,
		"Daylight":         5,
		"Cloudy Daylight":  6,
		"Shade":            7,
	}

	autoFocusModes = map[string]int{
		"Manual (tap)":       0,
		"Manual Macro (tap)": 1,
		"Continuous":         2,
		"Infinity":           3,
	}
)

func WhiteBalanceModes() map[string]int { return copyModes(whiteBalanceModes) }

func AutoFocusModes() map[string]int { return copyModes(autoFocusModes) }

// ModeNames returns the names of a mode table ordered by code.
func ModeNames(modes map[string]int) []string {
	names := make([]string, 0, len(modes))
	for name := range modes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return modes[names[i]] < modes[names[j]] })
	return names
}

// ModeName is the reverse lookup used when printing a snapshot.
func ModeName(modes map[string]int, code int) (string, bool) {
	for name, c := range modes {
		if c == code {
			return name, true
		}
	}
	return "", false
}

func copyModes(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
