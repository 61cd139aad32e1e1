package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/oxtail/internal/app"
)

func newTailCommand(ctx *commandContext) *cobra.Command {
	var (
		follow      bool
		lines       int
		filterFlags []string
		interval    time.Duration
		plain       bool
	)

	cmd := &cobra.Command{
		Use:   "tail [stream]",
		Short: "Show the last lines of a stream, optionally following new entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if interval > 0 {
				cfg.PollInterval = interval
			}

			filters, err := parseFilters(filterFlags)
			if err != nil {
				return err
			}

			var stream string
			if len(args) == 1 {
				stream = args[0]
			}

			usePlain := plain || !isatty.IsTerminal(os.Stdout.Fd())

			return app.Run(cmd.Context(), app.Options{
				Config:  cfg,
				Stream:  stream,
				Filters: filters,
				Follow:  follow,
				Lines:   lines,
				Plain:   usePlain,
				Out:     cmd.OutOrStdout(),
				Logger:  ctx.logger(),
			})
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "keep polling for new entries")
	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "initial history depth (default 100)")
	cmd.Flags().StringArrayVar(&filterFlags, "filter", nil, "field=value equality filter (repeatable)")
	cmd.Flags().DurationVar(&interval, "interval", 0, "follow poll interval (default from config)")
	cmd.Flags().BoolVar(&plain, "plain", false, "line output even on a terminal")

	return cmd
}

// parseFilters turns repeated field=value flags into the filter map the
// tail engine validates.
func parseFilters(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	filters := make(map[string]string, len(raw))
	for _, pair := range raw {
		field, value, ok := strings.Cut(pair, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid --filter %q: expected field=value", pair)
		}
		filters[field] = value
	}
	return filters, nil
}
