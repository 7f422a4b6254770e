package tree

// elementMarker opens a tagged element descriptor: ["$", tag, key, props].
const elementMarker = "$"

// Build interprets a decoded JSON value as a node sequence.
//
// A string becomes a single [Text] node. A sequence whose first element is
// the "$" marker is treated as one element descriptor and yields at most one
// node. Any other sequence is flattened element by element: strings become
// text leaves, sequences are tried as element descriptors before being
// expanded recursively, and everything else is expanded recursively (scalars
// contribute nothing). Values outside those shapes yield an empty sequence.
//
// Build is pure: it never fails, and malformed descriptors simply produce
// no node.
func Build(value any) []Node {
	switch v := value.(type) {
	case string:
		return []Node{&Text{Content: v}}
	case []any:
		if isDescriptor(v) {
			if element, ok := buildElement(v); ok {
				return []Node{element}
			}
			return nil
		}
		var nodes []Node
		for _, item := range v {
			switch it := item.(type) {
			case string:
				nodes = append(nodes, &Text{Content: it})
			case []any:
				if element, ok := buildElement(it); ok {
					nodes = append(nodes, element)
					continue
				}
				nodes = append(nodes, Build(it)...)
			default:
				nodes = append(nodes, Build(item)...)
			}
		}
		return nodes
	default:
		return nil
	}
}

// isDescriptor reports whether the sequence opens with the element marker.
// It deliberately ignores length so that a malformed marker-led sequence is
// routed to descriptor parsing (and dropped) rather than flattened.
func isDescriptor(seq []any) bool {
	if len(seq) == 0 {
		return false
	}
	marker, ok := seq[0].(string)
	return ok && marker == elementMarker
}

// buildElement parses a tagged element descriptor ["$", tag, key, props].
// The sequence qualifies only when it has at least three elements, opens
// with the marker, and carries a non-empty string tag. The key slot is
// ignored. A "children" entry in the property map is removed and expanded
// into the child node sequence.
func buildElement(seq []any) (*Element, bool) {
	if len(seq) < 3 || !isDescriptor(seq) {
		return nil, false
	}
	tag, ok := seq[1].(string)
	if !ok || tag == "" {
		return nil, false
	}

	props := map[string]any{}
	if len(seq) >= 4 {
		if m, ok := seq[3].(map[string]any); ok {
			// Copy so consuming "children" never mutates the decoded value.
			for key, val := range m {
				props[key] = val
			}
		}
	}

	var children []Node
	if rawChildren, ok := props["children"]; ok {
		delete(props, "children")
		children = Build(rawChildren)
	}

	return &Element{Tag: tag, Props: props, Children: children}, true
}
