package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bookmanager/internal/bookinfo"
	"bookmanager/internal/metabox"
)

func (c *cli) isbnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "isbn",
		Short: "Read or change the ISBN stored for a record",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <record-id>",
			Short: "Print the stored ISBN",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseRecordID(args[0])
				if err != nil {
					return err
				}
				return c.withService(func(svc *bookinfo.Service) error {
					ctx, cancel := c.context()
					defer cancel()
					if v := svc.Get(ctx, id); v != "" {
						fmt.Fprintln(cmd.OutOrStdout(), v)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "set <record-id> <isbn>",
			Short: "Validate and store an ISBN; an empty value clears it",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseRecordID(args[0])
				if err != nil {
					return err
				}
				return c.withService(func(svc *bookinfo.Service) error {
					ctx, cancel := c.context()
					defer cancel()
					switch out := metabox.NewService(svc, c.log).Save(ctx, id, args[1]); out {
					case metabox.OutcomeIgnored:
						return fmt.Errorf("%q is not a valid ISBN-10 or ISBN-13", args[1])
					case metabox.OutcomeFailed:
						return fmt.Errorf("could not store isbn for record %d", id)
					default:
						fmt.Fprintf(cmd.OutOrStdout(), "record %d: %s\n", id, out)
						return nil
					}
				})
			},
		},
		&cobra.Command{
			Use:   "delete <record-id>",
			Short: "Remove the stored ISBN",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseRecordID(args[0])
				if err != nil {
					return err
				}
				return c.withService(func(svc *bookinfo.Service) error {
					ctx, cancel := c.context()
					defer cancel()
					if svc.Delete(ctx, id) {
						fmt.Fprintf(cmd.OutOrStdout(), "record %d: deleted\n", id)
					} else {
						fmt.Fprintf(cmd.OutOrStdout(), "record %d: nothing to delete\n", id)
					}
					return nil
				})
			},
		},
	)
	return cmd
}

func (c *cli) withService(fn func(svc *bookinfo.Service) error) error {
	ctx, cancel := c.context()
	defer cancel()
	repo, closeFn, err := c.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(bookinfo.NewService(repo, c.log))
}

func parseRecordID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("record id must be a positive integer, got %q", s)
	}
	return id, nil
}
