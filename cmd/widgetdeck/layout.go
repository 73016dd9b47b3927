package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"widgetdeck/internal/console"
	"widgetdeck/internal/layout"
	"widgetdeck/internal/widget"
)

func layoutCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Inspect or reset the saved dashboard layout",
	}
	cmd.AddCommand(layoutShowCmd(opts), layoutResetCmd(opts))
	return cmd
}

func layoutShowCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the layout the dashboard would open with",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			e, err := openEnv(ctx, opts)
			if err != nil {
				return err
			}
			defer e.Close(context.Background())

			l := e.store.GetAll()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(l)
			}
			return printLayout(cmd.OutOrStdout(), l)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the stored JSON record instead of a table")
	return cmd
}

func layoutResetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace the saved layout with the default panels",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			e, err := openEnv(ctx, opts)
			if err != nil {
				return err
			}
			defer e.Close(context.Background())

			if err := e.store.ReplaceAll(ctx, layout.ResetToDefault(console.DefaultSet())); err != nil {
				return fmt.Errorf("reset layout: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "layout %s reset to defaults\n", e.adapter.Key())
			return nil
		},
	}
}

func printLayout(w io.Writer, l widget.Layout) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tID\tTITLE\tSIZE\tVISIBLE")
	for _, c := range l.Sorted() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%v\n", c.Order, c.ID, c.Title, c.Size, c.Visible)
	}
	return tw.Flush()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
