package sanitize

import (
	"regexp"
	"strings"
)

var (
	angleBrackets = regexp.MustCompile(`[<>]`)
	jsProtocol    = regexp.MustCompile(`(?i)javascript:`)
	eventHandler  = regexp.MustCompile(`(?i)on\w+\s*=`)

	xssPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<script.*?</script>`),
		jsProtocol,
		eventHandler,
		regexp.MustCompile(`(?i)<iframe`),
		regexp.MustCompile(`(?i)<object`),
		regexp.MustCompile(`(?i)<embed`),
	}
)

// Input strips angle brackets, javascript: URLs and inline event handlers,
// then trims. It is a best-effort scrub for free text, not an HTML sanitizer.
func Input(s string) string {
	if s == "" {
		return ""
	}
	s = angleBrackets.ReplaceAllString(s, "")
	s = jsProtocol.ReplaceAllString(s, "")
	s = eventHandler.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func HasXSSPattern(s string) bool {
	for _, p := range xssPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// Strings sanitizes every element and drops the ones that end up empty.
func Strings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if v := Input(s); v != "" {
			out = append(out, v)
		}
	}
	return out
}
