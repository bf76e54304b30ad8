package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bookmanager/internal/bookinfo"
)

func (c *cli) listCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored ISBNs ordered by row id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withService(func(svc *bookinfo.Service) error {
				ctx, cancel := c.context()
				defer cancel()
				records, total, err := svc.List(ctx, limit, offset)
				if err != nil {
					return fmt.Errorf("list isbns: %w", err)
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tRECORD_ID\tISBN")
				for _, rec := range records {
					fmt.Fprintf(tw, "%d\t%d\t%s\n", rec.ID, rec.RecordID, rec.ISBN)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d of %d rows\n", len(records), total)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Rows per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "Rows to skip")
	return cmd
}
