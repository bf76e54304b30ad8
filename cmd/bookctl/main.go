// Command bookctl validates ISBNs and manages the books_info table from the shell.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bookmanager/internal/config"
	"bookmanager/internal/logging"
)

type cli struct {
	cfg     config.Config
	log     *zap.Logger
	driver  string
	dsn     string
	verbose bool
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "bookctl",
		Short:         "Book manager ISBN tool",
		Long:          `bookctl validates ISBN-10 and ISBN-13 values and reads or writes the ISBN stored for a book record.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(false)
			if err != nil {
				return err
			}
			if c.driver != "" {
				cfg.DBDriver = c.driver
			}
			if c.dsn != "" {
				cfg.DBDSN = c.dsn
			}
			c.cfg = cfg

			level := "warn"
			if c.verbose {
				level = "debug"
			}
			c.log, err = logging.New("console", level)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&c.driver, "driver", "", "Database driver: postgres, sqlite, mysql (default from DB_DRIVER)")
	root.PersistentFlags().StringVar(&c.dsn, "dsn", "", "Database DSN (default from DB_DSN)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 30*time.Second, "Operation timeout")

	root.AddCommand(
		c.validateCmd(),
		c.isbnCmd(),
		c.listCmd(),
		c.lookupCmd(),
		c.initDBCmd(),
	)
	return root
}

func main() {
	config.LoadEnvFiles()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
