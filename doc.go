// Package spath implements SPath, a JSONPath-like query language (in the
// style of RFC 9535) that runs over more than one underlying data format.
//
//   - parsing a query string into a compiled query: [Parse], [Compile]
//   - running a compiled query against a document: [SPath.Query],
//     [SPath.QueryLocated]
//   - the document itself can come from more than one backend: see
//     backend/json and backend/toml, which both produce the variant.Value
//     trees the evaluator walks.
//
// A minimal pipeline looks like:
//
//	doc, err := json.Decode(r)
//	sp, err := spath.Parse("$.store.book[?@.price < 10].title")
//	results := sp.Query(doc)
//
// Results come back either as a bare NodeList (just the matched values) or
// as a LocatedNodeList (each value alongside its normalized path from the
// document root, e.g. $['store']['book'][0]['title']).
//
// The function extension registry (length, count, value, match, search) is
// pluggable: [NewDefaultRegistry] returns the RFC 9535 built-ins, and
// [Compile] accepts a custom *registry.Registry for callers that need to
// add their own functions.
//
// The CLI utility is in the directory cmd/spath. Install it with
//
//	go install github.com/arnodel/spath/cmd/spath
package spath
