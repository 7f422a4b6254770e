// Package extract scans raw text for embedded serialization calls of the
// form `self.__next_f.push([...])` and returns each call verbatim.
//
// The scanner makes no assumption that the surrounding text is well-formed
// code: it only tracks bracket and quote balance. Occurrences of the
// invocation token that are not followed by a complete, balanced argument
// list are skipped as false positives rather than reported as errors.
package extract
