package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookmanager/internal/bookinfo"
)

func (c *cli) initDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create the books_info table if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context()
			defer cancel()
			repo, closeFn, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			if err := repo.CreateTable(ctx); err != nil {
				return fmt.Errorf("create %s: %w", bookinfo.TableName, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s ready (%s)\n", bookinfo.TableName, c.cfg.DBDriver)
			return nil
		},
	}
}
