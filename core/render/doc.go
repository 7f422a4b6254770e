// Package render provides the pure, order-preserving serializers over a
// node sequence: canonical indented JSON ([ToJSONText], with
// [FromJSONText] as its inverse), a JSX-like indented markup rendition
// ([ToMarkupText]), and a Markdown export ([ToMarkdownText]) built on
// github.com/JohannesKaufmann/html-to-markdown.
package render
