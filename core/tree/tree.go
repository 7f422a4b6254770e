package tree

import (
	"encoding/json"
	"fmt"
)

// Node is the closed sum of node shapes a decoded payload can produce.
// The two implementations are [Text] and [Element]; no other type
// satisfies the interface.
type Node interface {
	isNode()
}

// Text is a leaf node holding plain string content.
type Text struct {
	Content string
}

func (*Text) isNode() {}

// Element is a tagged node with a property map and an ordered child list.
// The Tag is always non-empty. Props never contains a "children" key:
// that entry is consumed into Children when the element is built.
type Element struct {
	Tag      string
	Props    map[string]any
	Children []Node
}

func (*Element) isNode() {}

// textWire and elementWire are the JSON shapes the node types serialise to.
// An element is recognised on decode by the presence of a "tag" key.
type textWire struct {
	Content string `json:"content"`
}

type elementWire struct {
	Tag      string         `json:"tag"`
	Props    map[string]any `json:"props"`
	Children []Node         `json:"children"`
}

// MarshalJSON encodes the text node as {"content": ...}.
func (t *Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(textWire{Content: t.Content})
}

// UnmarshalJSON decodes the {"content": ...} shape.
func (t *Text) UnmarshalJSON(data []byte) error {
	var wire textWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	t.Content = wire.Content
	return nil
}

// MarshalJSON encodes the element as {"tag": ..., "props": ..., "children": ...}.
// Nil maps and slices are normalised to empty ones so the output round-trips
// without null-vs-empty drift.
func (e *Element) MarshalJSON() ([]byte, error) {
	wire := elementWire{
		Tag:      e.Tag,
		Props:    e.Props,
		Children: e.Children,
	}
	if wire.Props == nil {
		wire.Props = map[string]any{}
	}
	if wire.Children == nil {
		wire.Children = []Node{}
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes the element wire shape, dispatching each child to
// [DecodeNode].
func (e *Element) UnmarshalJSON(data []byte) error {
	var wire struct {
		Tag      string            `json:"tag"`
		Props    map[string]any    `json:"props"`
		Children []json.RawMessage `json:"children"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Tag == "" {
		return fmt.Errorf("element is missing a tag")
	}
	e.Tag = wire.Tag
	e.Props = wire.Props
	if e.Props == nil {
		e.Props = map[string]any{}
	}
	e.Children = make([]Node, 0, len(wire.Children))
	for _, raw := range wire.Children {
		child, err := DecodeNode(raw)
		if err != nil {
			return err
		}
		e.Children = append(e.Children, child)
	}
	return nil
}

// DecodeNode decodes a single serialised node, distinguishing elements from
// text leaves by the presence of a "tag" key.
func DecodeNode(data []byte) (Node, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("node is not a JSON object: %w", err)
	}
	if _, hasTag := probe["tag"]; hasTag {
		element := &Element{}
		if err := json.Unmarshal(data, element); err != nil {
			return nil, err
		}
		return element, nil
	}
	if _, hasContent := probe["content"]; hasContent {
		text := &Text{}
		if err := json.Unmarshal(data, text); err != nil {
			return nil, err
		}
		return text, nil
	}
	return nil, fmt.Errorf("node object has neither a tag nor content")
}

// DecodeNodes decodes a serialised node sequence, as produced by marshalling
// a []Node.
func DecodeNodes(data []byte) ([]Node, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("node sequence is not a JSON array: %w", err)
	}
	nodes := make([]Node, 0, len(raws))
	for _, raw := range raws {
		node, err := DecodeNode(raw)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}
