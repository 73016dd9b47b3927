package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the global flags shared by every command.
type options struct {
	configPath string
	backend    string
	user       string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "widgetdeck",
		Short: "Back-office console with a customizable dashboard",
		Long: `widgetdeck opens the console dashboard in the terminal.

Press e to enter Edit mode, then drag panels with the mouse or move them
with K/J. Show, hide and resize panels with v and s. SPC opens the leader
menu. The arrangement is saved after every change.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(commandContext(cmd), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $WIDGETDECK_CONFIG or ~/.widgetdeck/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.backend, "backend", "", "storage backend override: memory, file, sqlite, redis")
	cmd.PersistentFlags().StringVar(&opts.user, "user", "", "whose layout to load (overrides config)")

	cmd.AddCommand(layoutCmd(opts))
	return cmd
}
