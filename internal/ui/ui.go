package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/oxtail/internal/tail"
)

// Options configure the TUI runtime.
type Options struct {
	Context    context.Context
	Stream     *tail.Stream
	StreamName string
	Follow     bool
	ThemeName  string
	PrefsPath  string
}

// Run blocks until the user quits, the stream fails, or ctx is cancelled.
func Run(opts Options) error {
	if opts.Stream == nil {
		return fmt.Errorf("ui requires a stream")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	program := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}

	// Surface a stream failure as the command's exit error once the
	// alternate screen is torn down.
	if m, ok := final.(Model); ok && m.streamErr != nil {
		return m.streamErr
	}
	return nil
}
