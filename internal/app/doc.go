// Package app wires configuration, the search client, and the tail engine
// into a single entry point shared by the TUI and plain-output modes.
package app
