package ui

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	ansiBold  = "\x1b[1m"
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"
)

// HighlightID emphasizes the shortest unique prefix of an id so users
// can see how much of it they need to type. When color output is off
// the id passes through unchanged.
func HighlightID(id string, prefixLen int) string {
	if id == "" || prefixLen <= 0 || prefixLen > len(id) {
		return id
	}
	if !ansiEnabled() {
		return id
	}
	return ansiBold + ansiCyan + id[:prefixLen] + ansiReset + id[prefixLen:]
}

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// PrefixLength looks up the unique prefix length for an id,
// case-insensitively. Unknown ids report 0.
func PrefixLength(lengths map[string]int, id string) int {
	if len(lengths) == 0 || id == "" {
		return 0
	}
	return lengths[strings.ToLower(id)]
}

// UniqueIDPrefixLengths computes, for every distinct id, the shortest
// prefix that no other id shares. Ids are compared lowercased; the
// returned map is keyed by the lowercased id.
func UniqueIDPrefixLengths(ids []string) map[string]int {
	distinct := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		lower := strings.ToLower(id)
		if lower == "" || seen[lower] {
			continue
		}
		seen[lower] = true
		distinct = append(distinct, lower)
	}

	lengths := make(map[string]int, len(distinct))
	for _, id := range distinct {
		shared := 0
		for _, other := range distinct {
			if other == id {
				continue
			}
			if n := commonPrefixLen(id, other); n > shared {
				shared = n
			}
		}
		// One character past the longest shared prefix disambiguates,
		// unless the id is exhausted first.
		lengths[id] = min(shared+1, len(id))
	}
	return lengths
}

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
