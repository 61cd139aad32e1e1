// Package query builds injection-safe SQL text and resolves the backend's
// time expressions.
//
// The backend dialect cannot parameterize identifiers, so every caller
// supplied column or stream name is validated against a strict word-character
// pattern before it touches SQL text, and filter values have their single
// quotes doubled. WhereClause is the single choke point where untrusted
// filter input becomes SQL; everything else is assembled from internally
// controlled literals.
//
// Time expressions follow the backend's own grammar so both sides resolve
// them identically: "-<N><unit>" with unit in s/m/h/d, the literal "now",
// or an already-absolute microsecond integer that passes through unchanged.
//
// All failures are *ValidationError values surfaced before any network call.
package query
