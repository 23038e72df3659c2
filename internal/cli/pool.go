package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/casseroll/internal/conversation"
	"github.com/hammamikhairi/casseroll/internal/domain"
	"github.com/hammamikhairi/casseroll/internal/selection"
)

// PoolOptions holds flags for the pool command.
type PoolOptions struct {
	Cuisine string
	Chaos   bool
}

// PoolResult is the JSON shape of the pool command.
type PoolResult struct {
	Category    domain.Category     `json:"category"`
	Profile     domain.Profile      `json:"profile"`
	Chaos       bool                `json:"chaos"`
	Fallback    bool                `json:"fallback"`
	Ingredients []domain.Ingredient `json:"ingredients"`
}

// NewPoolCommand creates the pool command.
func NewPoolCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PoolOptions{}

	cmd := &cobra.Command{
		Use:   "pool <category>",
		Short: "List the candidates a category draws from",
		Long: `List the ingredients a roll of <category> can land on for a cuisine.

Without --cuisine the comfort profile is used. A cuisine with no tagged
ingredients in the category falls back to the whole list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPool(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Cuisine, "cuisine", "c", string(domain.ProfileComfort), "cuisine profile")
	cmd.Flags().BoolVar(&opts.Chaos, "chaos", false, "chaos mode: the whole category")

	return cmd
}

func runPool(rootOpts *RootOptions, opts *PoolOptions, word string, cmd *cobra.Command) error {
	cat, ok := conversation.ResolveCategory(word)
	if !ok {
		return WrapExitError(ExitUsage, fmt.Sprintf("category %q", word), domain.ErrUnknownCategory)
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

	profile := start.Profile
	if start.Chaos {
		profile = domain.ProfileChaos
	}
	pool := selection.New(rt.catalog, nil).ResolvePool(cat, profile, start.Chaos)

	res := PoolResult{
		Category:    cat,
		Profile:     profile,
		Chaos:       start.Chaos,
		Ingredients: pool,
	}
	if !start.Chaos {
		res.Fallback = true
		for _, ing := range pool {
			if ing.HasTag(profile) {
				res.Fallback = false
				break
			}
		}
	}

	out := cmd.OutOrStdout()
	if rootOpts.Format == "json" {
		return writeJSON(out, res)
	}

	fmt.Fprintf(out, "%s for %s", cat.Label(), profile.Label())
	if res.Fallback {
		fmt.Fprint(out, " (no tagged ingredients, full list)")
	}
	fmt.Fprintln(out)
	for i, ing := range pool {
		fmt.Fprintf(out, "%3d. %s\n", i+1, ing.Name)
	}
	return nil
}
