// Package jsonrepair coerces free-form language-model output into text the
// JSON parser will accept. The model is prompted for single-line, ASCII-only
// JSON with no spaces inside keys or values; every rule here assumes those
// conventions when deciding what is noise and what is content.
package jsonrepair

import (
	"regexp"
	"strings"

	"voyago/pkg/utils"
)

var (
	codeFenceRe     = regexp.MustCompile("```(?:json|JSON)?\n?")
	doubledQuoteRe  = regexp.MustCompile(`"{2,}([^"]+)"{2,}`)
	escapedQuoteRe  = regexp.MustCompile(`\\+"`)
	quotedStringRe  = regexp.MustCompile(`"([^"]+)"`)
	bareKeyRe       = regexp.MustCompile(`([{,])\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*:`)
	hourShorthandRe = regexp.MustCompile(`"(\d{1,2})h"`)
	compactTimeRe   = regexp.MustCompile(`"(\d{1,2})(\d{2})"`)
)

// Sanitize runs the full repair sequence over raw model output and returns a
// best-effort JSON string. The result is not guaranteed to parse; callers
// attempt a parse and fall back to RepairUnbalanced when it fails.
// Returns utils.ErrNoJSONFound when no {...} span exists in the text.
func Sanitize(raw string) (string, error) {
	text := StripCodeFences(raw)
	text, err := ExtractObjectSpan(text)
	if err != nil {
		return "", err
	}
	text = CollapseDoubledQuotes(text)
	text = StripSpacesInStrings(text)
	text = QuoteBareKeys(text)
	text = NormalizeTimeTokens(text)
	text = NormalizeQuoteStyle(text)
	text = StripNonASCII(text)
	return strings.TrimSpace(text), nil
}

// StripCodeFences drops Markdown fence markers, with or without a language tag.
func StripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	text = codeFenceRe.ReplaceAllString(text, "")
	return strings.ReplaceAll(text, "```", "")
}

// ExtractObjectSpan slices the text to the first '{' through the last '}'.
func ExtractObjectSpan(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", utils.ErrNoJSONFound
	}
	return text[start : end+1], nil
}

// CollapseDoubledQuotes reduces runs of two or more quotes around a token to a
// single pair and collapses backslash runs before a quote into a bare quote.
func CollapseDoubledQuotes(text string) string {
	text = doubledQuoteRe.ReplaceAllString(text, `"$1"`)
	return escapedQuoteRe.ReplaceAllString(text, `"`)
}

// StripSpacesInStrings removes spaces inside every quoted string. The prompt
// forbids spaces in values, so any captured space is model noise rather than
// intentional content. This is a deliberate lossy normalization: a place name
// that genuinely contains a space does not survive it.
func StripSpacesInStrings(text string) string {
	return quotedStringRe.ReplaceAllStringFunc(text, func(m string) string {
		return strings.ReplaceAll(m, " ", "")
	})
}

// QuoteBareKeys wraps unquoted object keys in double quotes.
func QuoteBareKeys(text string) string {
	return bareKeyRe.ReplaceAllString(text, `$1"$2":`)
}

// NormalizeTimeTokens rewrites shorthand time values: "9h" becomes "9:00" and
// a colonless 3-4 digit token like "930" becomes "9:30".
func NormalizeTimeTokens(text string) string {
	text = hourShorthandRe.ReplaceAllString(text, `"$1:00"`)
	return compactTimeRe.ReplaceAllString(text, `"$1:$2"`)
}

// NormalizeQuoteStyle replaces single quotes with double quotes and removes
// stray ellipsis markers the model sometimes leaves behind.
func NormalizeQuoteStyle(text string) string {
	text = strings.ReplaceAll(text, "'", `"`)
	return strings.ReplaceAll(text, "...", "")
}

// StripNonASCII drops every byte outside the ASCII range.
func StripNonASCII(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] < 0x80 {
			b.WriteByte(text[i])
		}
	}
	return b.String()
}
