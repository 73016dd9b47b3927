package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"widgetdeck/internal/console"
	"widgetdeck/internal/ui"
)

func runTUI(ctx context.Context, opts *options) error {
	e, err := openEnv(ctx, opts)
	if err != nil {
		return err
	}
	defer e.Close(context.Background())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if addr := e.cfg.Metrics.Addr; addr != "" {
		go func() {
			if err := e.metrics.Serve(ctx, addr, e.log); err != nil {
				e.log.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}

	app := ui.NewAppModel(e.store, console.DefaultSet(), console.Slots(console.SampleSnapshot()), e.log)
	defer app.Close()

	p := tea.NewProgram(app.AsTeaModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err = p.Run()
	return err
}
