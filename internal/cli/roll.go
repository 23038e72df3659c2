package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/casseroll/internal/conversation"
	"github.com/hammamikhairi/casseroll/internal/display"
	"github.com/hammamikhairi/casseroll/internal/domain"
	"github.com/hammamikhairi/casseroll/internal/engine"
)

// RollOptions holds flags for the roll command.
type RollOptions struct {
	Cuisine string
	Chaos   bool
	Count   int
}

// NewRollCommand creates the roll command.
func NewRollCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RollOptions{}

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Roll one or more casseroles and print them",
		Long: `Roll random casseroles without the interactive table.

--cuisine forces a profile (fuzzy names like "ital" or "euro" work),
--chaos draws every slot from the whole catalog. With --seed the output is
reproducible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoll(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Cuisine, "cuisine", "c", "", "cuisine profile (default: random)")
	cmd.Flags().BoolVar(&opts.Chaos, "chaos", false, "chaos mode: ignore cuisine tags")
	cmd.Flags().IntVarP(&opts.Count, "count", "n", 1, "number of casseroles to roll")

	return cmd
}

func runRoll(rootOpts *RootOptions, opts *RollOptions, cmd *cobra.Command) error {
	if opts.Count < 1 {
		return NewExitError(ExitUsage, fmt.Sprintf("--count must be at least 1, got %d", opts.Count))
	}
	start, err := startOptions(rootOpts, opts.Cuisine, opts.Chaos, cmd.Flags().Changed("chaos"))
	if err != nil {
		return err
	}

	rt, err := rootOpts.newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	ctx := cmd.Context()
	views := make([]display.RecipeView, 0, opts.Count)
	var tables []*domain.Table
	for i := 0; i < opts.Count; i++ {
		t, err := rt.engine.Start(ctx, start)
		if err != nil {
			return WrapExitError(ExitFailure, "rolling", err)
		}
		tables = append(tables, t)
		views = append(views, display.NewRecipeView(t, rt.engine.StatsFor(t)))
	}

	out := cmd.OutOrStdout()
	if rootOpts.Format == "json" {
		if opts.Count == 1 {
			return writeJSON(out, views[0])
		}
		return writeJSON(out, views)
	}
	return writeRecipes(out, rt.engine, tables)
}

func writeRecipes(w io.Writer, eng *engine.Engine, tables []*domain.Table) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, display.FormatRecipe(t, eng.StatsFor(t))); err != nil {
			return err
		}
	}
	return nil
}

// startOptions resolves the cuisine and chaos flags. The chaos flag wins
// over CASSEROLL_CHAOS only when it was passed.
func startOptions(rootOpts *RootOptions, cuisine string, chaos, chaosSet bool) (engine.StartOptions, error) {
	var start engine.StartOptions
	start.Chaos = rootOpts.cfg.Chaos
	if chaosSet {
		start.Chaos = chaos
	}
	if cuisine != "" {
		p, ok := conversation.ResolveProfile(cuisine)
		if !ok {
			return start, WrapExitError(ExitUsage, fmt.Sprintf("cuisine %q", cuisine), domain.ErrUnknownProfile)
		}
		start.Profile = p
	}
	return start, nil
}
