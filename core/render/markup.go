package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/flightparse/flightparse/core/tree"
)

const indentUnit = "  "

// ToMarkupText renders the node sequence as an indented, markup-like text
// representation. Each top-level node starts at indentation zero. Text
// nodes render as their quoted content. An element with no children renders
// as a self-closing tag; an element with children renders as an open/close
// tag pair with one line per child, indented one level deeper.
//
// String property values render as attr="value"; structured values render
// as attr={<json>}; remaining scalars render as attr={value}. Properties
// whose value is null are omitted.
func ToMarkupText(nodes []tree.Node) string {
	var builder strings.Builder
	for _, node := range nodes {
		writeNode(&builder, node, 0)
	}
	return builder.String()
}

func writeNode(builder *strings.Builder, node tree.Node, depth int) {
	indent := strings.Repeat(indentUnit, depth)

	switch n := node.(type) {
	case *tree.Text:
		builder.WriteString(indent + strconv.Quote(n.Content) + "\n")
	case *tree.Element:
		attrs := formatAttrs(n.Props)
		if len(n.Children) == 0 {
			builder.WriteString(indent + "<" + n.Tag + attrs + " />\n")
			return
		}
		builder.WriteString(indent + "<" + n.Tag + attrs + ">\n")
		for _, child := range n.Children {
			writeNode(builder, child, depth+1)
		}
		builder.WriteString(indent + "</" + n.Tag + ">\n")
	}
}

// formatAttrs renders the property map as attribute text, keys sorted so
// output is stable. The leading space is included when any attribute is
// emitted.
func formatAttrs(props map[string]any) string {
	if len(props) == 0 {
		return ""
	}
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for _, key := range keys {
		value := props[key]
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok {
			builder.WriteString(fmt.Sprintf(" %s=%q", key, s))
			continue
		}
		// Structured and scalar values share the braced JSON form.
		builder.WriteString(" " + key + "={" + compactJSON(value) + "}")
	}
	return builder.String()
}

func compactJSON(value any) string {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(encoded)
}
