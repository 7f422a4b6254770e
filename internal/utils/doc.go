// Package utils provides shared low-level string helpers used throughout
// the flightparse internals: whitespace-collapsed snippet previews,
// hard-capped truncation for diagnostics, and safe JSON stringification
// for log output.
//
// Key entry points: [Preview] for outcome previews, [EdgePreview] for
// head/tail diagnostic excerpts, and [JSONToString] for log-safe JSON.
package utils
