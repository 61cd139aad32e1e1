// Package ui implements the Bubble Tea TUI for follow mode.
//
// The view is a single scrollback viewport fed by a tail.Stream. Each
// arriving entry is formatted once (timestamp, level, message, remaining
// fields) and appended to a capped line buffer; when follow is on the
// viewport pins to the bottom, and any manual scroll away from the bottom
// suspends it. Stream termination is shown in the status bar: a clean end
// as "stream ended", a failure with its cause, which also becomes the
// process exit error after the alternate screen is restored.
//
// The model never touches the network; producing entries is entirely the
// tail package's business, which keeps this package trivially testable.
package ui
