package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bookmanager/internal/lookup"
	"bookmanager/internal/platform/openlibrary"
)

func (c *cli) lookupCmd() *cobra.Command {
	var baseURL string
	cmd := &cobra.Command{
		Use:   "lookup <isbn>",
		Short: "Find the edition for an ISBN on Open Library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := openlibrary.NewClient("bookctl/1.0", c.cfg.OpenLibraryRPS, 2,
				openlibrary.WithBaseURL(baseURL), openlibrary.WithLogger(c.log))

			ctx, cancel := c.context()
			defer cancel()
			res, err := lookup.NewService(client).Check(ctx, args[0], true)
			if err != nil {
				return fmt.Errorf("lookup %s: %w", res.Normalized, err)
			}
			if !res.Valid {
				return errors.New("not a valid ISBN-10 or ISBN-13")
			}

			out := cmd.OutOrStdout()
			if res.Edition == nil {
				fmt.Fprintf(out, "%s: no edition found\n", res.Normalized)
				return nil
			}
			ed := res.Edition
			fmt.Fprintf(out, "ISBN:       %s (%s)\n", res.Normalized, res.Kind)
			fmt.Fprintf(out, "Title:      %s\n", ed.Title)
			fmt.Fprintf(out, "Authors:    %s\n", strings.Join(ed.AuthorNames(), ", "))
			fmt.Fprintf(out, "Publishers: %s\n", strings.Join(ed.PublisherNames(), ", "))
			if ed.PublishDate != "" {
				fmt.Fprintf(out, "Published:  %s\n", ed.PublishDate)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "openlibrary-url", "https://openlibrary.org", "Open Library base URL")
	return cmd
}
