package render

import (
	"encoding/json"
	"fmt"

	"github.com/flightparse/flightparse/core/tree"
)

// ToJSONText serialises the node sequence as pretty-printed JSON with
// two-space indentation. The output round-trips: [FromJSONText] reproduces
// an equivalent node sequence, field for field.
func ToJSONText(nodes []tree.Node) (string, error) {
	if nodes == nil {
		nodes = []tree.Node{}
	}
	encoded, err := json.MarshalIndent(nodes, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialise nodes: %w", err)
	}
	return string(encoded), nil
}

// FromJSONText decodes [ToJSONText] output back into a node sequence.
func FromJSONText(text string) ([]tree.Node, error) {
	return tree.DecodeNodes([]byte(text))
}
