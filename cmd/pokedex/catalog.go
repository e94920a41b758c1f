package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/albapepper/pokedex-data/internal/app"
	"github.com/albapepper/pokedex-data/internal/catalog"
	"github.com/albapepper/pokedex-data/internal/pagination"
)

func browseCmd() *cobra.Command {
	var (
		category string
		limit    int
		pages    int
	)
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List the catalog page by page",
		Long:  "Loads the first page and keeps loading more until --pages pages are shown or the listing is exhausted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Services) error {
				if limit <= 0 {
					limit = svc.Config.PageLimit
				}
				ctrl := pagination.NewController(svc.Engine, catalog.Query{Category: category, Limit: limit}, svc.Logger)
				state, err := browse(ctx, ctrl, pages, cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				if err := writeEntities(cmd.OutOrStdout(), state.Items, false); err != nil {
					return err
				}
				if !jsonOutput && state.HasMore {
					fmt.Fprintf(cmd.OutOrStdout(), "\nMore available: rerun with --pages %d\n", pages+1)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by category (English or Spanish name)")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "page size (default PAGE_LIMIT)")
	cmd.Flags().IntVarP(&pages, "pages", "p", 1, "number of pages to load")
	return cmd
}

// browse drives the controller through the first page and up to pages-1
// load-mores. It stops early once the lineage is exhausted.
func browse(ctx context.Context, ctrl *pagination.Controller, pages int, warn io.Writer) (pagination.State, error) {
	state := ctrl.Load(ctx, 0)
	for loaded := 1; loaded < pages && state.Status != pagination.Errored; loaded++ {
		next, issued := ctrl.LoadMore(ctx)
		if !issued {
			break
		}
		state = next
	}
	if state.Status == pagination.Errored {
		if len(state.Items) == 0 {
			return state, fmt.Errorf("browse: %s", state.Error)
		}
		// Keep what loaded; report the failed page.
		fmt.Fprintf(warn, "warning: stopped early: %s\n", state.Error)
	}
	return state, nil
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <id-or-name>",
		Short: "Look up one entity by exact id or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Services) error {
				page, err := svc.Engine.Fetch(ctx, catalog.Query{SearchText: args[0], Limit: svc.Config.PageLimit})
				if err != nil {
					return err
				}
				if len(page.Items) == 0 && !jsonOutput {
					fmt.Fprintf(cmd.OutOrStdout(), "No match for %q\n", args[0])
					return nil
				}
				return writeEntities(cmd.OutOrStdout(), page.Items, false)
			})
		},
	}
}

func detailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detail <id-or-name>",
		Short: "Show stats, evolution line and matchups of one entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Services) error {
				view, err := svc.Details.View(ctx, args[0])
				if err != nil {
					return err
				}
				return writeDetail(cmd.OutOrStdout(), view)
			})
		},
	}
}

func typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the categories usable with browse --category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Services) error {
				options, err := catalog.Categories(ctx, svc.Client)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd.OutOrStdout(), options)
				}
				for _, o := range options {
					fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", o.Name, o.EnglishName)
				}
				return nil
			})
		},
	}
}
