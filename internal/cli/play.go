package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/casseroll/internal/conversation"
	"github.com/hammamikhairi/casseroll/internal/display"
)

// PlayOptions holds flags for the play command.
type PlayOptions struct {
	Cuisine string
	Chaos   bool
}

// NewPlayCommand creates the interactive table command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the interactive casserole table",
		Long: `Open the interactive table: roll, lock the keepers, reroll the rest,
add or drop slots, switch cuisines or go full chaos. Type 'help' at the
prompt for the command list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Cuisine, "cuisine", "c", "", "cuisine of the first roll (default: random)")
	cmd.Flags().BoolVar(&opts.Chaos, "chaos", false, "start in chaos mode")

	return cmd
}

func runPlay(rootOpts *RootOptions, opts *PlayOptions, cmd *cobra.Command) error {
	start, err := startOptions(rootOpts, opts.Cuisine, opts.Chaos, cmd.Flags().Changed("chaos"))
	if err != nil {
		return err
	}

	rt, err := rootOpts.newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	// Cancelled when the UI quits.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	ui := display.NewUI(rt.store)
	app := &playApp{
		engine:   rt.engine,
		parser:   conversation.NewKeywordParser(rt.log),
		notifier: conversation.NewCLINotifier(rt.log, ui.Printf),
		log:      rt.log,
		out:      ui,
	}

	fmt.Fprintln(cmd.OutOrStdout(), display.RenderBanner())
	fmt.Fprintln(cmd.OutOrStdout(), display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Fprintln(cmd.OutOrStdout())

	// Run the table loop in the background.
	go func() {
		ui.WaitReady()
		if err := app.begin(ctx, start); err != nil {
			rt.log.Error("starting table: %v", err)
			ui.PrintUrgent(err.Error())
		} else {
			app.run(ctx, ui.InputChan())
		}
		ui.Quit()
	}()

	// Bubble Tea owns the terminal; blocks until quit.
	if err := ui.Run(); err != nil {
		return WrapExitError(ExitFailure, "display", err)
	}
	cancel()
	return nil
}
