package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/oxtail/internal/openobserve"
	"github.com/five82/oxtail/internal/query"
	"github.com/five82/oxtail/internal/ui"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var (
		startFlag string
		endFlag   string
		limit     int
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "search <sql>",
		Short: "Run a one-shot SQL search against the backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := resolveTimeFlag("start", startFlag)
			if err != nil {
				return err
			}
			end, err := resolveTimeFlag("end", endFlag)
			if err != nil {
				return err
			}

			client, err := ctx.newClient()
			if err != nil {
				return err
			}

			resp, err := client.Search(cmd.Context(), openobserve.SearchRequest{
				SQL:   args[0],
				Start: start,
				End:   end,
				Size:  limit,
			})
			if err != nil {
				return err
			}

			ctx.logger().Debug("search finished",
				"hits", len(resp.Hits),
				"total", resp.Total,
				"took_ms", resp.Took)

			out := cmd.OutOrStdout()
			if jsonOut || !isatty.IsTerminal(os.Stdout.Fd()) {
				enc := json.NewEncoder(out)
				for _, entry := range resp.Hits {
					if err := enc.Encode(entry); err != nil {
						return err
					}
				}
				return nil
			}

			fmt.Fprintln(out, renderEntryTable(resp.Hits))
			fmt.Fprintf(out, "%d of %d hits in %dms\n", len(resp.Hits), resp.Total, resp.Took)
			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "-1h", "window start: microseconds or relative (\"-15m\")")
	cmd.Flags().StringVar(&endFlag, "end", "now", "window end: microseconds, relative, or \"now\"")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum hits to return")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "NDJSON output even on a terminal")

	return cmd
}

// resolveTimeFlag accepts either an absolute microsecond integer or a
// relative expression, resolving the latter locally so flag typos fail
// before the network call.
func resolveTimeFlag(name, value string) (int64, error) {
	if micros, err := strconv.ParseInt(value, 10, 64); err == nil {
		return micros, nil
	}
	micros, err := query.ResolveTime(value, "now")
	if err != nil {
		return 0, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return micros, nil
}

func renderEntryTable(entries []openobserve.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		ts, level, msg, fields := ui.Columns(entry)
		rows = append(rows, []string{ts, level, msg, fields})
	}
	return renderTable([]string{"Timestamp", "Level", "Message", "Fields"}, rows)
}
