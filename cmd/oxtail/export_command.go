package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/five82/oxtail/internal/export"
	"github.com/five82/oxtail/internal/openobserve"
	"github.com/five82/oxtail/internal/query"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var (
		startFlag string
		endFlag   string
		limit     int
		output    string
	)

	cmd := &cobra.Command{
		Use:   "export <stream>",
		Short: "Save a window of a stream as a zstd-compressed NDJSON archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := query.ValidateIdent("stream", args[0]); err != nil {
				return err
			}
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
				SQL:   query.SelectSQL(args[0], "", query.OrderAsc, limit),
				Start: start,
				End:   end,
				Size:  limit,
			})
			if err != nil {
				return err
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create archive: %w", err)
			}
			defer file.Close()

			if err := export.Write(file, resp.Hits); err != nil {
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("close archive: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d entries to %s\n", len(resp.Hits), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "-1h", "window start: microseconds or relative (\"-15m\")")
	cmd.Flags().StringVar(&endFlag, "end", "now", "window end: microseconds, relative, or \"now\"")
	cmd.Flags().IntVar(&limit, "limit", 1000, "maximum entries to export")
	cmd.Flags().StringVarP(&output, "output", "o", "export.ndjson.zst", "archive path")

	return cmd
}
