package client

import "strings"

// SplitList parses a comma-separated flag value into the list form the
// API expects. Whitespace around items is trimmed and empty items are
// dropped, so "a, ,b," becomes ["a" "b"].
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList renders a list field for display.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
