// Package json implements incremental construction of JSON documents.
//
// A Writer appends JSON tokens directly to an output buffer while tracking
// container nesting on an explicit frame stack, so a document is emitted in
// a single forward pass without building an intermediate tree. The package
// only encodes; it performs no JSON parsing.
//
// A Writer serializes exactly one top-level value per session. Use Finish to
// verify that every opened container was closed and that no operation was
// misused. Writers are not safe for concurrent use.
package json
