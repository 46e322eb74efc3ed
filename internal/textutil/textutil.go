// Package textutil cleans raw LLM output before parsing. Model responses
// arrive wrapped in markdown code fences or carrying stray control
// characters; both corrupt the text-based grammars downstream.
package textutil

import (
	"regexp"
	"strings"
)

var (
	openFenceRe     = regexp.MustCompile("(?i)^```[ \t]*[a-z0-9_-]*[ \t]*\r?\n?")
	closeFenceRe    = regexp.MustCompile("\r?\n?[ \t]*```[ \t]*$")
	embeddedFenceRe = regexp.MustCompile("(?is)```[ \t]*[a-z0-9_-]*[ \t]*\r?\n(.*?)\r?\n?[ \t]*```")
	controlRe       = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]")
)

// StripCodeFence removes surrounding markdown code fences, including an
// optional language tag on the opening fence (```json, ```mermaid, ...),
// and trims whitespace. Fences are stripped to a fixpoint, so a fence
// pair enclosing another opening fence cannot leave a bare fence behind.
// Idempotent and never fails; empty input yields "".
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	for {
		next := stripFenceOnce(s)
		if next == s {
			return next
		}
		s = next
	}
}

func stripFenceOnce(s string) string {
	if strings.HasPrefix(s, "```") {
		s = openFenceRe.ReplaceAllString(s, "")
		s = closeFenceRe.ReplaceAllString(s, "")
	}
	return strings.TrimSpace(s)
}

// FencedBlock returns the content of the first complete code fence
// found anywhere in s, for responses that bury the payload in prose
// ("Here is the JSON: ```json ... ```"). Reports false when s carries
// no complete fence pair.
func FencedBlock(s string) (string, bool) {
	m := embeddedFenceRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// StripControlChars removes C0 control characters (keeping tab and
// newline) and DEL. Idempotent.
func StripControlChars(s string) string {
	return controlRe.ReplaceAllString(s, "")
}
