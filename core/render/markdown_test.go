package render

import (
	"strings"
	"testing"

	"github.com/flightparse/flightparse/core/tree"
)

func TestToMarkdownText(t *testing.T) {
	nodes := []tree.Node{
		&tree.Element{
			Tag:      "h1",
			Props:    map[string]any{},
			Children: []tree.Node{&tree.Text{Content: "Title"}},
		},
		&tree.Element{
			Tag:      "p",
			Props:    map[string]any{},
			Children: []tree.Node{&tree.Text{Content: "Some body text."}},
		},
	}

	markdown, err := ToMarkdownText(nodes)
	if err != nil {
		t.Fatalf("ToMarkdownText() error = %v", err)
	}
	if !strings.Contains(markdown, "# Title") {
		t.Errorf("ToMarkdownText() = %q, want a level-1 heading", markdown)
	}
	if !strings.Contains(markdown, "Some body text.") {
		t.Errorf("ToMarkdownText() = %q, want the paragraph text", markdown)
	}
}

func TestToMarkdownText_Link(t *testing.T) {
	nodes := []tree.Node{
		&tree.Element{
			Tag:      "a",
			Props:    map[string]any{"href": "https://example.com"},
			Children: []tree.Node{&tree.Text{Content: "example"}},
		},
	}

	markdown, err := ToMarkdownText(nodes)
	if err != nil {
		t.Fatalf("ToMarkdownText() error = %v", err)
	}
	if !strings.Contains(markdown, "[example](https://example.com)") {
		t.Errorf("ToMarkdownText() = %q, want a markdown link", markdown)
	}
}

func TestToMarkdownText_Empty(t *testing.T) {
	markdown, err := ToMarkdownText(nil)
	if err != nil {
		t.Fatalf("ToMarkdownText() error = %v", err)
	}
	if strings.TrimSpace(markdown) != "" {
		t.Errorf("ToMarkdownText(nil) = %q, want empty output", markdown)
	}
}
