package matching

import "strings"

// Normalize lowercases and trims a single skill name.
func Normalize(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// NormalizeAll normalizes a list of skill names, preserving order.
// Empty entries are dropped.
func NormalizeAll(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		n := Normalize(s)
		if n == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}
