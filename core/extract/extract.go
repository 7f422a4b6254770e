package extract

import "strings"

// DefaultToken is the invocation prefix of the serialization calls emitted
// into server-rendered documents by the framework's streaming renderer.
const DefaultToken = "self.__next_f.push("

// NotFound is returned by [MatchBracket] when the bracket never closes.
const NotFound = -1

// MatchBracket returns the index of the ']' matching the '[' at open, or
// [NotFound] when the depth never returns to zero before the end of text.
//
// Bracket characters inside single-, double-, or backtick-quoted string
// literals are ignored; inside a literal a backslash unconditionally skips
// the following character. The routine tracks nothing beyond bracket and
// quote balance, so it is safe on arbitrary, malformed input.
func MatchBracket(text string, open int) int {
	depth := 0
	inString := false
	var quote byte
	escaped := false

	for i := open; i < len(text); i++ {
		c := text[i]

		if escaped {
			escaped = false
			continue
		}

		if inString {
			switch c {
			case '\\':
				escaped = true
			case quote:
				inString = false
			}
			continue
		}

		switch c {
		case '"', '\'', '`':
			inString = true
			quote = c
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return NotFound
}

// ExtractCalls returns every complete invocation of token found in text, in
// document order. Each snippet runs from the token through the closing ')',
// including a trailing ';' when present.
//
// A token occurrence whose next non-whitespace character is not '[', whose
// argument list never closes, or whose argument list is not followed by ')'
// is a false positive: scanning resumes just past the occurrence and no
// error is raised. Text without the token yields an empty slice.
func ExtractCalls(text, token string) []string {
	if token == "" {
		token = DefaultToken
	}

	var calls []string
	cursor := 0
	for {
		hit := strings.Index(text[cursor:], token)
		if hit < 0 {
			return calls
		}
		start := cursor + hit
		afterToken := start + len(token)

		// Resume here whenever the occurrence turns out not to be a call.
		cursor = afterToken

		open := skipWhitespace(text, afterToken)
		if open >= len(text) || text[open] != '[' {
			continue
		}

		closing := MatchBracket(text, open)
		if closing == NotFound {
			continue
		}

		paren := skipWhitespace(text, closing+1)
		if paren >= len(text) || text[paren] != ')' {
			continue
		}

		end := paren + 1
		if end < len(text) && text[end] == ';' {
			end++
		}

		calls = append(calls, text[start:end])
		cursor = end
	}
}

func skipWhitespace(text string, i int) int {
	for i < len(text) {
		switch text[i] {
		case ' ', '\t', '\n', '\r':
			i++
		default:
			return i
		}
	}
	return i
}
