package render

import (
	"testing"

	"github.com/flightparse/flightparse/core/tree"
)

func TestToMarkupText(t *testing.T) {
	tests := []struct {
		name  string
		nodes []tree.Node
		want  string
	}{
		{
			name:  "text node quoted",
			nodes: []tree.Node{&tree.Text{Content: "hello"}},
			want:  "\"hello\"\n",
		},
		{
			name: "childless element self-closes",
			nodes: []tree.Node{&tree.Element{
				Tag:   "img",
				Props: map[string]any{"src": "a.png"},
			}},
			want: "<img src=\"a.png\" />\n",
		},
		{
			name: "element with text child indents one level",
			nodes: []tree.Node{&tree.Element{
				Tag:      "div",
				Props:    map[string]any{"className": "a"},
				Children: []tree.Node{&tree.Text{Content: "hi"}},
			}},
			want: "<div className=\"a\">\n  \"hi\"\n</div>\n",
		},
		{
			name: "structured and scalar values brace-wrapped, null omitted",
			nodes: []tree.Node{&tree.Element{
				Tag: "div",
				Props: map[string]any{
					"count":  float64(3),
					"live":   true,
					"style":  map[string]any{"color": "red"},
					"unused": nil,
				},
			}},
			want: "<div count={3} live={true} style={{\"color\":\"red\"}} />\n",
		},
		{
			name: "attributes sorted for stable output",
			nodes: []tree.Node{&tree.Element{
				Tag:   "a",
				Props: map[string]any{"href": "/x", "className": "b"},
			}},
			want: "<a className=\"b\" href=\"/x\" />\n",
		},
		{
			name: "nested elements indent per level",
			nodes: []tree.Node{&tree.Element{
				Tag:   "ul",
				Props: map[string]any{},
				Children: []tree.Node{
					&tree.Element{
						Tag:      "li",
						Props:    map[string]any{},
						Children: []tree.Node{&tree.Text{Content: "one"}},
					},
				},
			}},
			want: "<ul>\n  <li>\n    \"one\"\n  </li>\n</ul>\n",
		},
		{
			name: "multiple top-level nodes start at indent zero",
			nodes: []tree.Node{
				&tree.Text{Content: "a"},
				&tree.Element{Tag: "hr"},
			},
			want: "\"a\"\n<hr />\n",
		},
		{
			name:  "empty sequence",
			nodes: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToMarkupText(tt.nodes); got != tt.want {
				t.Errorf("ToMarkupText() = %q, want %q", got, tt.want)
			}
		})
	}
}
