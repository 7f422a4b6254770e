// Package tree defines the typed node model produced by payload decoding
// and the builder that reconstructs it from decoded JSON values.
//
// A [Node] is either a [Text] leaf holding plain string content, or an
// [Element] carrying a tag name, a property map, and an ordered child list.
// The builder interprets the tagged-array encoding used by serialized
// component payloads: a sequence whose first element is the "$" marker
// describes a single element, everything else is flattened recursively.
//
// The main entry point is [Build], which is pure and total over any
// JSON-shaped value.
package tree
