// Package mermaid rewrites model-generated diagram text into a
// constrained subset of the Mermaid graph grammar that is guaranteed to
// parse. Node labels coming out of a model routinely contain quotes,
// colons and nested brackets, any of which break the renderer.
package mermaid

import (
	"regexp"
	"strings"

	"github.com/thinkflow/thinkflow/internal/textutil"
)

// DefaultHeader is prepended when the text carries no diagram-type line.
const DefaultHeader = "graph TD"

// PlaceholderLabel replaces a label that is empty after cleaning.
const PlaceholderLabel = "Item"

var (
	headerRe = regexp.MustCompile(`(?i)^\s*(graph|flowchart)\s+(TD|TB|LR|RL|BT)\b|^\s*mindmap\b`)

	parenLabelRe = regexp.MustCompile(`\(([^()]*)\)`)

	nestedDelimRe = regexp.MustCompile(`[\[\]{}()]`)
	spaceRunRe    = regexp.MustCompile(`\s+`)
)

// Sanitize cleans raw diagram text so it parses under the graph grammar.
// The result either starts with a recognized header line or is empty.
// Never fails; unparseable fragments degrade to cleaned text.
func Sanitize(raw string) string {
	s := textutil.StripCodeFence(raw)
	s = textutil.StripControlChars(s)
	if strings.TrimSpace(s) == "" {
		return ""
	}

	s = rewriteBracketLabels(s)
	s = parenLabelRe.ReplaceAllStringFunc(s, func(m string) string {
		inner := m[1 : len(m)-1]
		return "(" + strings.ReplaceAll(inner, `"`, "'") + ")"
	})

	if !headerRe.MatchString(s) {
		s = DefaultHeader + "\n" + s
	}
	return s
}

// rewriteBracketLabels rewrites every bracket label on every line,
// pairing each opening bracket with the close that balances it so a
// nested bracket stays inside one label and gets cleaned with it. An
// opening bracket with no balancing close on its line takes the rest
// of the line as its label.
func rewriteBracketLabels(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '[' {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := closingBracket(s, i)
		if j < 0 {
			end := len(s)
			if nl := strings.IndexByte(s[i:], '\n'); nl >= 0 {
				end = i + nl
			}
			b.WriteString("[" + cleanLabel(s[i+1:end]) + "]")
			i = end
			continue
		}
		b.WriteString("[" + cleanLabel(s[i+1:j]) + "]")
		i = j + 1
	}
	return b.String()
}

// closingBracket returns the index of the bracket balancing the opener
// at open, or -1 when the line ends first.
func closingBracket(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		case '\n':
			return -1
		}
	}
	return -1
}

// cleanLabel rewrites one bracket-label interior so that no character
// reserved by the grammar survives.
func cleanLabel(inner string) string {
	s := strings.ReplaceAll(inner, `"`, "'")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, ";", ",")
	s = nestedDelimRe.ReplaceAllString(s, " ")
	s = spaceRunRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return PlaceholderLabel
	}
	// "end" closes subgraph blocks; a node labeled with it breaks the parse.
	if strings.EqualFold(s, "end") {
		return "Finish"
	}
	return s
}

// Plausible reports whether sanitized diagram text looks renderable: it
// must start with a recognized header and, for the graph family, carry
// content beyond the header line. Callers showing an implausible diagram
// should fall back to the raw unsanitized text so the user still sees
// something readable.
func Plausible(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if !headerRe.MatchString(s) {
		return false
	}
	if strings.HasPrefix(strings.ToLower(s), "mindmap") {
		return true
	}
	rest := ""
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		rest = strings.TrimSpace(s[i+1:])
	}
	return rest != ""
}
