package matching

import "strings"

// Normalize lower-cases and trims a skill label. Matching is plain string
// equality after normalization, so "JS" and "JavaScript" stay distinct.
func Normalize(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

func NormalizeSet(skills []string) map[string]struct{} {
	out := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		n := Normalize(s)
		if n == "" {
			continue
		}
		out[n] = struct{}{}
	}
	return out
}
