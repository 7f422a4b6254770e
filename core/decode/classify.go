package decode

import (
	"regexp"
	"strings"
)

// Classification sorts a payload string by what it describes.
type Classification int

const (
	// Unknown: the payload matches neither recognised shape.
	Unknown Classification = iota
	// ComponentData: the payload carries rendered component content.
	ComponentData
	// ModuleLoading: the payload carries asset/chunk metadata and
	// contributes nothing to the node tree.
	ModuleLoading
)

func (c Classification) String() string {
	switch c {
	case ComponentData:
		return "component-data"
	case ModuleLoading:
		return "module-loading"
	default:
		return "unknown"
	}
}

var (
	// moduleRefPattern matches a hex key followed by the import marker,
	// e.g. `1f:I["static/chunks/123.js",...]`.
	moduleRefPattern = regexp.MustCompile(`^[0-9a-f]+:I\[`)
	// componentPattern matches an alphanumeric key, a colon, then an
	// array literal, e.g. `4c:["$","div",...]`.
	componentPattern = regexp.MustCompile(`(?i)^[0-9a-z]+:\[`)
)

// Classify inspects the string form of a decoded payload. Rules are checked
// in order: module-loading shapes first (import-marker key or a chunk path
// anywhere in the text), then the keyed array literal of component data,
// else [Unknown]. Payloads that arrive already structured skip
// classification entirely and are treated as component data.
func Classify(payload string) Classification {
	if moduleRefPattern.MatchString(payload) || strings.Contains(payload, "static/chunks/") {
		return ModuleLoading
	}
	if componentPattern.MatchString(payload) {
		return ComponentData
	}
	return Unknown
}
