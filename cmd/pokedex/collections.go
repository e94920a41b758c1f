package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/albapepper/pokedex-data/internal/app"
	"github.com/albapepper/pokedex-data/internal/collection"
)

// resolveID accepts a numeric id as-is and looks names up in the catalog.
func resolveID(ctx context.Context, svc *app.Services, arg string) (int, error) {
	if id, err := strconv.Atoi(arg); err == nil {
		if id <= 0 {
			return 0, fmt.Errorf("id must be positive, got %d", id)
		}
		return id, nil
	}
	e, err := svc.Client.GetByID(ctx, strings.ToLower(strings.TrimSpace(arg)))
	if err != nil {
		return 0, fmt.Errorf("resolve %q: %w", arg, err)
	}
	return e.ID, nil
}

// idCmd builds a subcommand that takes one id-or-name argument.
func idCmd(use, short string, fn func(ctx context.Context, cmd *cobra.Command, svc *app.Services, id int) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id-or-name>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Services) error {
				id, err := resolveID(ctx, svc, args[0])
				if err != nil {
					return err
				}
				return fn(ctx, cmd, svc, id)
			})
		},
	}
}

// --------------------------------------------------------------------------
// favorites
// --------------------------------------------------------------------------

func favoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage favorites",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show favorites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Services) error {
				items, err := svc.Hydrator().HydrateIDs(ctx, svc.Favorites.IDs())
				if err != nil {
					return err
				}
				return writeEntities(cmd.OutOrStdout(), items, false)
			})
		},
	})
	cmd.AddCommand(idCmd("add", "Mark as favorite", func(ctx context.Context, _ *cobra.Command, svc *app.Services, id int) error {
		return svc.Favorites.Add(ctx, id)
	}))
	cmd.AddCommand(idCmd("remove", "Unmark a favorite", func(ctx context.Context, _ *cobra.Command, svc *app.Services, id int) error {
		return svc.Favorites.Remove(ctx, id)
	}))
	cmd.AddCommand(idCmd("toggle", "Flip favorite membership", func(ctx context.Context, _ *cobra.Command, svc *app.Services, id int) error {
		_, err := svc.Favorites.Toggle(ctx, id)
		return err
	}))
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every favorite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Services) error {
				return svc.Favorites.Clear(ctx)
			})
		},
	})
	return cmd
}

// --------------------------------------------------------------------------
// team
// --------------------------------------------------------------------------

func teamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage the six-slot team",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show the team with its average attack and types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Services) error {
				summary, err := collection.TeamView(ctx, svc.Team, svc.Hydrator())
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd.OutOrStdout(), summary)
				}
				if err := writeEntities(cmd.OutOrStdout(), summary.Members, true); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d/%d slots  average attack %d  types %s\n",
					len(summary.Members), collection.MaxTeamSize, summary.AverageAttack,
					orNone(displayCategories(summary.UniqueCategories)))
				return nil
			})
		},
	})
	cmd.AddCommand(teamAddCmd())
	cmd.AddCommand(idCmd("remove", "Free the slot held by an entity", func(ctx context.Context, _ *cobra.Command, svc *app.Services, id int) error {
		return svc.Team.Remove(ctx, id)
	}))
	cmd.AddCommand(&cobra.Command{
		Use:   "replace <old-id-or-name> <new-id-or-name>",
		Short: "Put a new entity in the slot of a current member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Services) error {
				oldID, err := resolveID(ctx, svc, args[0])
				if err != nil {
					return err
				}
				newID, err := resolveID(ctx, svc, args[1])
				if err != nil {
					return err
				}
				return collection.NewConflictResolver(svc.Team, svc.Hydrator()).Resolve(ctx, oldID, newID)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty the team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, svc *app.Services) error {
				return svc.Team.Clear(ctx)
			})
		},
	})
	return cmd
}

func teamAddCmd() *cobra.Command {
	var evict string
	cmd := idCmd("add", "Add to the team, choosing a member to replace when full",
		func(ctx context.Context, cmd *cobra.Command, svc *app.Services, id int) error {
			resolver := collection.NewConflictResolver(svc.Team, svc.Hydrator())
			conflict, err := resolver.Add(ctx, id)
			if err != nil || conflict == nil {
				return err
			}

			var evictID int
			if evict != "" {
				if evictID, err = resolveID(ctx, svc, evict); err != nil {
					return err
				}
			} else {
				var ok bool
				evictID, ok, err = chooseEviction(cmd.InOrStdin(), cmd.OutOrStdout(), conflict)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled, team unchanged")
					return nil
				}
			}
			return resolver.Resolve(ctx, evictID, id)
		})
	cmd.Flags().StringVar(&evict, "evict", "", "member to replace when the team is full")
	return cmd
}

// errNoChoice is returned when input ends before a valid slot is chosen.
var errNoChoice = errors.New("no slot chosen")

// chooseEviction shows the full team and asks for the slot to free. An
// empty answer cancels.
func chooseEviction(in io.Reader, out io.Writer, c *collection.Conflict) (int, bool, error) {
	fmt.Fprintf(out, "Team is full. Choose a member to replace with #%d:\n", c.Pending)
	if err := writeEntities(out, c.Members, true); err != nil {
		return 0, false, err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "Slot (1-%d, empty to cancel): ", len(c.Members))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, false, err
			}
			return 0, false, errNoChoice
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			return 0, false, nil
		}
		slot, err := strconv.Atoi(answer)
		if err != nil || slot < 1 || slot > len(c.Members) {
			fmt.Fprintf(out, "Not a slot: %q\n", answer)
			continue
		}
		return c.Members[slot-1].ID, true, nil
	}
}
