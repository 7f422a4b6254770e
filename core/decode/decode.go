package decode

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/flightparse/flightparse/core/extract"
	"github.com/flightparse/flightparse/internal/utils"
)

// closingMarker ends the array literal of a well-formed call snippet.
const closingMarker = "])"

// diagnosticEdge is the number of bytes kept from each end of offending
// text in [FormatError.Preview].
const diagnosticEdge = 40

// Payload is the typed intermediate between snippet decoding and tree
// building. Exactly one of Raw and Value is meaningful: when IsRaw is true
// the payload arrived as a string still awaiting classification and a second
// decode; otherwise Value holds the already-structured payload.
type Payload struct {
	ID    any
	Raw   string
	Value any
	IsRaw bool
}

// DecodeCall extracts and decodes the array-literal argument of one call
// snippet. The snippet is assumed pre-validated by the extractor, so a
// single prefix/closing-marker pair is expected.
//
// Decoding locates the prefix token ("<token>["), the last occurrence of
// the closing marker after it, strips the trailing escaped-newline artifact
// the streaming renderer appends to payload strings, and decodes the inner
// text as a JSON array. A strict decode failure is retried once through
// jsonrepair before being surfaced as a [FormatError].
//
// On success the decoded value is a sequence of at least two elements: the
// call identifier and the payload (a string, or an already-structured
// value).
func DecodeCall(snippet, token string) (*Payload, error) {
	if token == "" {
		token = extract.DefaultToken
	}
	start := strings.Index(snippet, token)
	if start < 0 {
		return nil, &FormatError{
			Kind:    KindMissingPrefix,
			Detail:  "expected " + token + "[",
			Preview: utils.EdgePreview(snippet, diagnosticEdge),
		}
	}

	// The extractor tolerates whitespace between the token and the array
	// literal; accept the same shape here.
	open := start + len(token)
	for open < len(snippet) && isSpace(snippet[open]) {
		open++
	}
	if open >= len(snippet) || snippet[open] != '[' {
		return nil, &FormatError{
			Kind:    KindMissingPrefix,
			Detail:  "expected " + token + "[",
			Preview: utils.EdgePreview(snippet, diagnosticEdge),
		}
	}
	innerStart := open + 1

	end := strings.LastIndex(snippet, closingMarker)
	if end < innerStart {
		// Whitespace may separate the bracket from the paren; the last ']'
		// in an extractor-accepted snippet is always the argument's closer.
		end = strings.LastIndex(snippet, "]")
	}
	if end < innerStart {
		return nil, &FormatError{
			Kind:    KindMismatchedBrackets,
			Detail:  "no closing marker after prefix",
			Preview: utils.EdgePreview(snippet, diagnosticEdge),
		}
	}

	inner := stripTrailingEscape(snippet[innerStart:end])
	wrapped := "[" + inner + "]"

	value, err := unmarshalLenient(wrapped)
	if err != nil {
		return nil, &FormatError{
			Kind:    KindInvalidJSON,
			Detail:  err.Error(),
			Preview: utils.EdgePreview(wrapped, diagnosticEdge),
		}
	}

	seq, ok := value.([]any)
	if !ok || len(seq) < 2 {
		return nil, &FormatError{
			Kind:    KindUnexpectedShape,
			Detail:  "expected a sequence of at least two elements",
			Preview: utils.EdgePreview(wrapped, diagnosticEdge),
		}
	}

	payload := &Payload{ID: seq[0]}
	if raw, isString := seq[1].(string); isString {
		payload.Raw = raw
		payload.IsRaw = true
	} else {
		payload.Value = seq[1]
	}
	return payload, nil
}

// DecodeComponentData decodes the component portion of a payload string
// classified as component data. Text after the first colon is decoded when
// a colon is present; otherwise the string is decoded whole as a second
// parse attempt.
//
// Unlike the outer call array, the component body is decoded strictly:
// repair here would mask genuinely damaged payloads that callers need
// surfaced as failures.
func DecodeComponentData(raw string) (any, error) {
	body := raw
	if colon := strings.Index(raw, ":"); colon >= 0 {
		body = raw[colon+1:]
	}

	var value any
	if err := json.Unmarshal([]byte(body), &value); err != nil {
		return nil, &FormatError{
			Kind:    KindInvalidJSON,
			Detail:  err.Error(),
			Preview: utils.EdgePreview(body, diagnosticEdge),
		}
	}
	return value, nil
}

// stripTrailingEscape removes the escaped-newline artifact the renderer
// leaves at the end of payload text: a literal `\n` immediately before the
// closing quote, or at the very end of the inner text.
func stripTrailingEscape(inner string) string {
	if strings.HasSuffix(inner, `\n"`) {
		return inner[:len(inner)-3] + `"`
	}
	if strings.HasSuffix(inner, `\n`) {
		return inner[:len(inner)-2]
	}
	return inner
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// unmarshalLenient decodes text as JSON, retrying once through jsonrepair
// when the strict decode fails. The strict decode's error is returned when
// repair does not help, since it describes the original input.
func unmarshalLenient(text string) (any, error) {
	var value any
	strictErr := json.Unmarshal([]byte(text), &value)
	if strictErr == nil {
		return value, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(text)
	if repairErr != nil {
		return nil, strictErr
	}
	var repairedValue any
	if err := json.Unmarshal([]byte(repaired), &repairedValue); err != nil {
		return nil, strictErr
	}
	return repairedValue, nil
}
