// Package flightparse extracts embedded serialization calls of the form
// `self.__next_f.push([id, "<payload>"])` from raw text, decodes each
// payload under a restricted JSON/array grammar, and reconstructs a tree of
// typed nodes: elements with a tag, properties, and children, or plain text
// leaves.
//
// The primary entry point is [ParseDocument] (or [Parser.ParseDocument]
// when options are needed), which never fails: per-call format defects are
// reported as data inside the returned [AggregateResult], and text without
// any call yields an empty result rather than an error. [ToJSONText],
// [ToMarkupText], and [ToMarkdownText] render a node sequence for export.
package flightparse

import (
	"context"

	"github.com/flightparse/flightparse/core/render"
	"github.com/flightparse/flightparse/core/tree"
)

// Node is the typed tree node produced by parsing; see [tree.Node].
type Node = tree.Node

// Text is the plain-content leaf variant of [Node].
type Text = tree.Text

// Element is the tagged variant of [Node], carrying properties and children.
type Element = tree.Element

// ParseDocument parses text with a default [Parser]: the standard
// invocation token, sequential per-call processing, and the process-wide
// slog logger.
func ParseDocument(text string) *AggregateResult {
	return New().ParseDocument(context.Background(), text)
}

// ToJSONText serialises nodes as stable, two-space-indented JSON. The
// output round-trips through [FromJSONText].
func ToJSONText(nodes []Node) (string, error) {
	return render.ToJSONText(nodes)
}

// FromJSONText decodes [ToJSONText] output back into an equivalent node
// sequence.
func FromJSONText(text string) ([]Node, error) {
	return render.FromJSONText(text)
}

// ToMarkupText renders nodes as indented, JSX-like markup text.
func ToMarkupText(nodes []Node) string {
	return render.ToMarkupText(nodes)
}

// ToMarkdownText renders nodes as Markdown via an HTML intermediate.
func ToMarkdownText(nodes []Node) (string, error) {
	return render.ToMarkdownText(nodes)
}
