// Command pokedex browses the creature catalog and manages the local
// favorites and team from the terminal.
//
// Usage:
//
//	pokedex browse --category fuego --pages 2
//	pokedex search pikachu
//	pokedex detail 6
//	pokedex types
//	pokedex favorites add 25
//	pokedex team add 7 --evict 3
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/pokedex-data/internal/app"
	"github.com/albapepper/pokedex-data/internal/config"
	"github.com/albapepper/pokedex-data/internal/notify"
)

var (
	jsonOutput bool
	verbose    bool
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pokedex",
		Short:         "Browse the creature catalog and manage favorites and team",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON instead of tables")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log catalog traffic to stderr")

	root.AddCommand(browseCmd())
	root.AddCommand(searchCmd())
	root.AddCommand(detailCmd())
	root.AddCommand(typesCmd())
	root.AddCommand(favoritesCmd())
	root.AddCommand(teamCmd())
	return root
}

// run loads configuration, assembles the services and hands them to fn.
func run(cmd *cobra.Command, fn func(ctx context.Context, svc *app.Services) error) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// The CLI never serves /metrics.
	cfg.MetricsEnabled = false

	level := slog.LevelWarn
	if verbose || cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	svc, err := app.New(ctx, cfg, app.Options{
		Logger: logger,
		Sink:   printSink{w: cmd.ErrOrStderr()},
	})
	if err != nil {
		return err
	}
	defer svc.Close()

	return fn(ctx, svc)
}

// printSink shows collection events as one-line notices.
type printSink struct {
	w io.Writer
}

func (p printSink) Notify(_ context.Context, ev notify.Event) {
	if ev.ID != 0 {
		fmt.Fprintf(p.w, "%s (#%d)\n", ev.Message(), ev.ID)
		return
	}
	fmt.Fprintln(p.w, ev.Message())
}
