package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookmanager/internal/isbn"
)

func (c *cli) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <isbn>...",
		Short: "Check ISBN-10/ISBN-13 checksums",
		Long: `Prints the normalized form and kind of every argument. Hyphens and spaces
are ignored. Exits non-zero when any argument is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			invalid := 0
			for _, raw := range args {
				normalized, ok := isbn.NormalizeAndValidate(raw)
				status := isbn.KindOf(normalized).String()
				if !ok {
					status = "invalid"
					invalid++
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", raw, normalized, status)
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d values are not valid ISBNs", invalid, len(args))
			}
			return nil
		},
	}
}
