package utils

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// PreviewLength is the hard cap applied to snippet previews carried in
	// reported outcomes.
	PreviewLength = 120
	// DefaultMaxStringLength is the default maximum length for truncated
	// diagnostic strings.
	DefaultMaxStringLength = 500
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// JSONToString serialises object to its JSON representation and returns it as
// a string. When the optional indent argument is true the output is
// pretty-printed with two-space indentation. On marshalling failure it returns
// a JSON-formatted error string rather than panicking, so the result is always
// safe to use in log output.
func JSONToString(object interface{}, indent ...bool) string {
	var encoded []byte
	var err error
	if len(indent) > 0 && indent[0] {
		encoded, err = json.MarshalIndent(object, "", "  ")
	} else {
		encoded, err = json.Marshal(object)
	}
	if err != nil {
		return "{\"error\": \"failed to marshal to JSON: " + err.Error() + "\"}"
	}
	return string(encoded)
}

// Truncate shortens s to at most maxLen bytes. The result is a plain hard
// cap with no omission marker: callers rely on the length bound. The cut
// never lands inside a multi-byte rune, so the result stays valid UTF-8.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// CollapseWhitespace replaces every run of whitespace in s with a single
// space and trims leading and trailing whitespace.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// Preview returns a one-line preview of s: whitespace runs collapsed to a
// single space, hard-capped at [PreviewLength] bytes.
func Preview(s string) string {
	return Truncate(CollapseWhitespace(s), PreviewLength)
}

// EdgePreview returns a short head...tail excerpt of s for diagnostics,
// keeping at most edge bytes from each end. Strings short enough to fit are
// returned unchanged. Both cuts are backed off to rune boundaries.
func EdgePreview(s string, edge int) string {
	if edge <= 0 || len(s) <= 2*edge+3 {
		return s
	}
	head := edge
	for head > 0 && !utf8.RuneStart(s[head]) {
		head--
	}
	tail := len(s) - edge
	for tail < len(s) && !utf8.RuneStart(s[tail]) {
		tail++
	}
	return s[:head] + "..." + s[tail:]
}
