package utils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// TestJSONToString_Compact verifies that JSONToString produces compact JSON by default.
func TestJSONToString_Compact(t *testing.T) {
	input := map[string]int{"a": 1, "b": 2}
	result := JSONToString(input)

	// Must be valid JSON and must not contain a newline (compact mode).
	if strings.Contains(result, "\n") {
		t.Errorf("JSONToString() compact mode should not contain newlines, got: %q", result)
	}
	if !strings.Contains(result, `"a"`) {
		t.Errorf("JSONToString() result missing key 'a': %q", result)
	}
}

// TestJSONToString_Indented verifies that passing indent=true produces
// pretty-printed JSON with newlines.
func TestJSONToString_Indented(t *testing.T) {
	input := map[string]int{"x": 42}
	result := JSONToString(input, true)

	if !strings.Contains(result, "\n") {
		t.Errorf("JSONToString(indent=true) should contain newlines, got: %q", result)
	}
	if !strings.Contains(result, "  ") {
		t.Errorf("JSONToString(indent=true) should contain two-space indentation, got: %q", result)
	}
}

// TestJSONToString_MarshalError verifies that JSONToString returns an error
// sentinel string rather than panicking when the value cannot be marshaled.
func TestJSONToString_MarshalError(t *testing.T) {
	// Channels cannot be marshaled to JSON.
	input := make(chan int)
	result := JSONToString(input)

	if !strings.HasPrefix(result, `{"error":`) {
		t.Errorf("JSONToString() on unmarshalable value should return error JSON, got: %q", result)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "shorter than cap",
			input:  "abc",
			maxLen: 10,
			want:   "abc",
		},
		{
			name:   "exactly at cap",
			input:  "abcde",
			maxLen: 5,
			want:   "abcde",
		},
		{
			name:   "longer than cap",
			input:  "abcdefgh",
			maxLen: 5,
			want:   "abcde",
		},
		{
			name:   "zero cap falls back to default",
			input:  "abc",
			maxLen: 0,
			want:   "abc",
		},
		{
			name:   "cap inside a two-byte rune backs off",
			input:  "ééééé",
			maxLen: 5,
			want:   "éé",
		},
		{
			name:   "cap on a rune boundary keeps the rune",
			input:  "ééééé",
			maxLen: 4,
			want:   "éé",
		},
		{
			name:   "cap inside a four-byte rune backs off",
			input:  "a😀b",
			maxLen: 3,
			want:   "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "runs collapsed to single spaces",
			input: "a  b\t\tc\n\nd",
			want:  "a b c d",
		},
		{
			name:  "leading and trailing trimmed",
			input: "  hello  ",
			want:  "hello",
		},
		{
			name:  "already collapsed",
			input: "a b",
			want:  "a b",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollapseWhitespace(tt.input); got != tt.want {
				t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	long := strings.Repeat("word ", 60)

	got := Preview(long)
	if len(got) > PreviewLength {
		t.Errorf("Preview() length = %d, want at most %d", len(got), PreviewLength)
	}
	if strings.Contains(got, "  ") {
		t.Errorf("Preview() contains a double space: %q", got)
	}
}

func TestPreview_MultibyteInput(t *testing.T) {
	long := strings.Repeat("é", 200)

	got := Preview(long)
	if len(got) > PreviewLength {
		t.Errorf("Preview() length = %d, want at most %d", len(got), PreviewLength)
	}
	if !utf8.ValidString(got) {
		t.Errorf("Preview() returned invalid UTF-8: %q", got)
	}
}

func TestEdgePreview(t *testing.T) {
	tests := []struct {
		name  string
		input string
		edge  int
		want  string
	}{
		{
			name:  "short string unchanged",
			input: "abc",
			edge:  10,
			want:  "abc",
		},
		{
			name:  "long string keeps edges",
			input: "0123456789abcdef",
			edge:  4,
			want:  "0123...cdef",
		},
		{
			name:  "zero edge unchanged",
			input: "0123456789",
			edge:  0,
			want:  "0123456789",
		},
		{
			name:  "multi-byte runes kept whole at both edges",
			input: "éééééééé",
			edge:  5,
			want:  "éé...éé",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EdgePreview(tt.input, tt.edge); got != tt.want {
				t.Errorf("EdgePreview(%q, %d) = %q, want %q", tt.input, tt.edge, got, tt.want)
			}
		})
	}
}
