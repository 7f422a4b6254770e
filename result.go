package flightparse

import (
	"github.com/flightparse/flightparse/core/decode"
	"github.com/flightparse/flightparse/core/tree"
)

// IndexedOutcome reports the result of one call's decode pipeline, tagged
// with its 0-based position among the calls found in the document and a
// whitespace-collapsed preview of its source snippet (at most 120
// characters). The preview is for reporting only, never re-parsed.
//
// A successful outcome carries a Kind of "component-data" or
// "module-loading"; module-loading successes hold an empty node sequence by
// contract. A failed outcome carries the error message and an optional
// diagnostic excerpt of the offending input.
type IndexedOutcome struct {
	Index      int         `json:"index"`
	Preview    string      `json:"preview"`
	Kind       string      `json:"kind,omitempty"`
	Nodes      []tree.Node `json:"nodes,omitempty"`
	Err        string      `json:"error,omitempty"`
	Diagnostic string      `json:"diagnostic,omitempty"`
}

// Success reports whether the call decoded without a failure.
func (o IndexedOutcome) Success() bool {
	return o.Err == ""
}

// AggregateResult is the document-level roll-up: every per-call outcome in
// call order, the combined nodes of all component-data successes, and the
// summary counts. Counts are derived from the outcome sequence in
// [newAggregateResult] and are never tracked independently.
type AggregateResult struct {
	TotalCalls     int              `json:"total_calls"`
	ComponentCalls int              `json:"component_calls"`
	ModuleCalls    int              `json:"module_calls"`
	FailedCalls    int              `json:"failed_calls"`
	Outcomes       []IndexedOutcome `json:"outcomes"`
	CombinedNodes  []tree.Node      `json:"combined_nodes"`
}

// newAggregateResult derives the summary counts and the combined node
// sequence from the ordered outcomes. Nodes are concatenated in call order
// from component-data successes only; module-loading and failed outcomes
// contribute nothing.
func newAggregateResult(outcomes []IndexedOutcome) *AggregateResult {
	result := &AggregateResult{
		TotalCalls:    len(outcomes),
		Outcomes:      outcomes,
		CombinedNodes: []tree.Node{},
	}
	if result.Outcomes == nil {
		result.Outcomes = []IndexedOutcome{}
	}

	for _, outcome := range outcomes {
		switch {
		case !outcome.Success():
			result.FailedCalls++
		case outcome.Kind == decode.ModuleLoading.String():
			result.ModuleCalls++
		default:
			result.ComponentCalls++
			result.CombinedNodes = append(result.CombinedNodes, outcome.Nodes...)
		}
	}
	return result
}
