// Package openobserve implements the HTTP client for an OpenObserve-style
// log search backend.
//
// The client exposes exactly the two collaborator contracts the tailing
// engine depends on: a bounded search call (Search) returning a hit list,
// and a chunked streaming search (OpenStream) returning raw byte frames.
// Records are schema-agnostic Entry maps; the only field the client ever
// interprets is the microsecond _timestamp.
//
// Time bounds on requests are forwarded untouched, so callers may pass
// either absolute microsecond integers or the backend's relative time
// strings and let the backend resolve them.
//
// The client is stateless apart from its configuration and is safe to share
// across concurrent pollers, one call at a time each.
package openobserve
