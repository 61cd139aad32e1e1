package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/five82/oxtail/internal/config"
	"github.com/five82/oxtail/internal/openobserve"
	"github.com/five82/oxtail/internal/prefs"
	"github.com/five82/oxtail/internal/tail"
	"github.com/five82/oxtail/internal/ui"
)

// Options configure one tail invocation.
type Options struct {
	Config    config.Config
	PrefsPath string // empty uses the default ~/.config/oxtail/prefs.toml

	Stream  string // empty falls back to the configured default stream
	Filters map[string]string
	Follow  bool
	Lines   int
	Plain   bool // line output instead of the TUI

	Out    io.Writer
	Logger *slog.Logger
}

// Run tails a stream until the context is cancelled, the stream ends, or
// the follow loop fails.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config

	streamName := opts.Stream
	if streamName == "" {
		streamName = cfg.Stream
	}

	client, err := openobserve.NewClient(cfg.URL, cfg.Org, cfg.Token)
	if err != nil {
		return fmt.Errorf("init client: %w", err)
	}

	coordinator := tail.NewCoordinator(client, tail.Config{
		Interval:     cfg.PollInterval,
		PageSize:     cfg.PageSize,
		PruneHorizon: cfg.PruneHorizon,
	})

	// The stream is cancelled when this function returns, whichever
	// surface consumed it.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger.Debug("starting tail",
		"stream", streamName,
		"follow", opts.Follow,
		"interval", cfg.PollInterval,
		"prune_horizon", cfg.PruneHorizon)

	stream, err := coordinator.Tail(ctx, tail.Options{
		Stream:  streamName,
		Filters: opts.Filters,
		Follow:  opts.Follow,
		Lines:   opts.Lines,
	})
	if err != nil {
		return err
	}

	if opts.Plain {
		return drain(stream, opts.Out)
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	return ui.Run(ui.Options{
		Context:    ctx,
		Stream:     stream,
		StreamName: streamName,
		Follow:     opts.Follow,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	})
}

// drain prints each entry as a single line, tail(1) style.
func drain(stream *tail.Stream, out io.Writer) error {
	for entry := range stream.Entries() {
		fmt.Fprintln(out, ui.FormatPlain(entry))
	}
	return stream.Err()
}
