// Package fastjson is a small lax-JSON value library: an aliasing tagged
// union value model, a destructive single-pass reader, and a writer for the
// same dialect.
//
// The dialect is a superset of JSON and deliberately not RFC conformant:
//
//   - // line comments
//   - the null token is spelled NULL
//   - a trailing u on a number selects an unsigned integer, a trailing d
//     forces a real
//   - object keys may be bare (unquoted) tokens
//   - the writer emits a trailing comma after every object member and array
//     element
//   - \u escapes are not supported and are rejected
//
// See the reader and writer packages for the grammar, and the value package
// for the in-memory model.
package fastjson

// Version of the library.
const Version = "v0.2.0"
