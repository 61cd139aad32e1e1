package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/oxtail/internal/openobserve"
	"github.com/five82/oxtail/internal/query"
	"github.com/five82/oxtail/internal/tail"
	"github.com/five82/oxtail/internal/ui"
)

func newStreamCommand(ctx *commandContext) *cobra.Command {
	var (
		startFlag string
		endFlag   string
	)

	cmd := &cobra.Command{
		Use:   "stream <stream>",
		Short: "Read a window of a stream over the chunked streaming endpoint",
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

			handle, err := client.OpenStream(cmd.Context(), openobserve.SearchRequest{
				SQL:   query.SelectSQL(args[0], "", query.OrderAsc, 0),
				Start: start,
				End:   end,
			})
			if err != nil {
				return err
			}
			defer handle.Close()

			out := cmd.OutOrStdout()
			entries := tail.DecodeChunks(cmd.Context(), handle)
			for entry := range entries.Entries() {
				fmt.Fprintln(out, ui.FormatPlain(entry))
			}
			return entries.Err()
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "-1h", "window start: microseconds or relative (\"-15m\")")
	cmd.Flags().StringVar(&endFlag, "end", "now", "window end: microseconds, relative, or \"now\"")

	return cmd
}
