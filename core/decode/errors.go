package decode

// Kind identifies the format defect a [FormatError] reports. Every kind is
// localized to a single call: a format error never aborts processing of the
// remaining calls in a document.
type Kind int

const (
	// KindMissingPrefix: the snippet does not contain the invocation's
	// array-literal prefix.
	KindMissingPrefix Kind = iota
	// KindMismatchedBrackets: the closing marker of the array literal
	// cannot be located after the prefix.
	KindMismatchedBrackets
	// KindInvalidJSON: the payload text is not decodable as JSON, even
	// after repair.
	KindInvalidJSON
	// KindUnexpectedShape: the decoded value is not a sequence of at
	// least two elements.
	KindUnexpectedShape
)

// String returns the short human-readable form used in error messages.
func (k Kind) String() string {
	switch k {
	case KindMissingPrefix:
		return "missing prefix"
	case KindMismatchedBrackets:
		return "mismatched brackets"
	case KindInvalidJSON:
		return "invalid JSON"
	case KindUnexpectedShape:
		return "unexpected shape"
	default:
		return "unknown format error"
	}
}

// FormatError describes a defect in one call's payload format. Detail
// carries the underlying parser message when there is one; Preview carries a
// short excerpt of the offending text for diagnostics.
type FormatError struct {
	Kind    Kind
	Detail  string
	Preview string
}

func (e *FormatError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Detail
}
