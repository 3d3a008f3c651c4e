// Command bootstrap drops and recreates the movie, picture and
// movie_picture tables.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mickamy/sqlbase/config"
	"github.com/mickamy/sqlbase/example/model"
	"github.com/mickamy/sqlbase/internal/logging"
	"github.com/mickamy/sqlbase/orm"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1) //nolint:gocritic // stop already called
	}
}

type options struct {
	config   string
	logLevel string
	pretty   bool
}

func newRootCmd() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Drop and recreate the movie schema",
		Long: `Connects with the settings in the config resource, then drops and
recreates movie, picture and movie_picture in that order.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", config.DefaultName, "config resource (.properties, .ini, .yaml, .yml or .toml)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", true, "human-readable log output")

	return cmd
}

func run(ctx context.Context, opts options) (err error) {
	logger := logging.NewWithComponent(logging.Config{
		Level:  opts.logLevel,
		Pretty: opts.pretty,
		Output: os.Stderr,
	}, "bootstrap")

	m, err := orm.NewManager(opts.config, orm.WithLogger(logger))
	if err != nil {
		return err //nolint:wrapcheck // already wrapped
	}

	if err := m.Open(ctx); err != nil {
		return err //nolint:wrapcheck // already wrapped
	}
	defer func() {
		if cerr := m.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for _, entity := range []any{model.Movie{}, model.Picture{}, model.MoviePicture{}} {
		if err := m.CreateTable(ctx, entity); err != nil {
			return err //nolint:wrapcheck // pass through
		}
	}

	logger.Info().Msg("schema created")
	return nil
}
