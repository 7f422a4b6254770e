package render

import (
	"fmt"
	"html"
	"sort"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/flightparse/flightparse/core/tree"
)

// ToMarkdownText renders the node sequence as Markdown by emitting an HTML
// rendition of the tree and converting it with the html-to-markdown
// library. Structured property values have no HTML attribute form and are
// dropped from the intermediate rendition; element structure, string
// attributes, and text content are preserved.
func ToMarkdownText(nodes []tree.Node) (string, error) {
	var builder strings.Builder
	for _, node := range nodes {
		writeHTML(&builder, node)
	}

	markdown, err := htmltomarkdown.ConvertString(builder.String())
	if err != nil {
		return "", fmt.Errorf("failed to convert rendered tree to markdown: %w", err)
	}
	return markdown, nil
}

func writeHTML(builder *strings.Builder, node tree.Node) {
	switch n := node.(type) {
	case *tree.Text:
		builder.WriteString(html.EscapeString(n.Content))
	case *tree.Element:
		builder.WriteString("<" + n.Tag + formatHTMLAttrs(n.Props) + ">")
		for _, child := range n.Children {
			writeHTML(builder, child)
		}
		builder.WriteString("</" + n.Tag + ">")
	}
}

// formatHTMLAttrs renders only the string-valued properties, since those
// are the only ones with a faithful HTML attribute encoding.
func formatHTMLAttrs(props map[string]any) string {
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
		if value, ok := props[key].(string); ok {
			builder.WriteString(" " + key + `="` + html.EscapeString(value) + `"`)
		}
	}
	return builder.String()
}
