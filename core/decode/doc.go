// Package decode turns an extracted serialization call snippet into a typed
// payload. Because the embedded payload text is frequently almost-JSON —
// carrying a stray trailing escape or minor quoting damage — decoding
// applies a layered recovery strategy: artifact repair, strict JSON
// decoding, then automatic repair with github.com/kaptinlin/jsonrepair
// before falling back to a typed [FormatError].
//
// The main entry points are [DecodeCall], which produces a [Payload] from a
// snippet, [Classify], which sorts payload text into component data versus
// module-loading metadata, and [DecodeComponentData], which decodes the
// component portion of a classified payload string.
package decode
