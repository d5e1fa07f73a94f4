package formatter

import (
	"regexp"
	"strings"
)

var (
	separatorRun = regexp.MustCompile(`[\s_]+`)
	camelBound   = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	invalidChars = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRun    = regexp.MustCompile(`-{2,}`)
)

// Sanitize converts a rule name into a file name stem shared by every
// formatter: "NextJs Prompt" becomes "next-js-prompt".
func Sanitize(name string) string {
	s := strings.TrimSpace(name)
	s = separatorRun.ReplaceAllString(s, "-")
	s = camelBound.ReplaceAllString(s, "$1-$2")
	s = strings.ToLower(s)
	s = invalidChars.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// FileName returns the sanitized stem of name, falling back to "rule" when
// nothing survives sanitizing.
func FileName(name string) string {
	if s := Sanitize(name); s != "" {
		return s
	}
	return "rule"
}
