package main

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"widgetdeck/internal/config"
	"widgetdeck/internal/console"
	"widgetdeck/internal/kvstore"
	"widgetdeck/internal/logging"
	"widgetdeck/internal/persist"
	"widgetdeck/internal/store"
	"widgetdeck/internal/telemetry"
)

// env is everything a command needs to read or write the layout.
type env struct {
	cfg     config.Config
	log     zerolog.Logger
	kv      kvstore.Store
	adapter *persist.Adapter
	store   *store.Store
	metrics *telemetry.Metrics
	tracing *telemetry.Tracing

	closers []io.Closer
}

// openEnv loads config, applies flag overrides and bootstraps the store.
func openEnv(ctx context.Context, opts *options) (*env, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.backend != "" {
		cfg.Storage.Backend = opts.backend
	}
	if opts.user != "" {
		cfg.User = opts.user
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &env{cfg: cfg}
	log, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	e.log = log
	e.closers = append(e.closers, logCloser)

	e.tracing, err = telemetry.NewTracing(ctx, cfg.Tracing)
	if err != nil {
		e.Close(ctx)
		return nil, err
	}
	e.metrics = telemetry.NewMetrics()

	e.kv, err = kvstore.Open(cfg.Storage)
	if err != nil {
		e.Close(ctx)
		return nil, err
	}
	e.closers = append(e.closers, e.kv)

	e.adapter = persist.New(e.kv, cfg.LayoutKey(), persist.WithLogger(log))
	e.store = store.Bootstrap(ctx, e.adapter, console.DefaultSet(),
		store.WithLogger(log),
		store.WithMetrics(e.metrics),
		store.WithTracer(e.tracing.Tracer()),
	)
	log.Info().
		Str("backend", cfg.Storage.Backend).
		Str("key", e.adapter.Key()).
		Bool("tracing", e.tracing.Enabled()).
		Msg("environment ready")
	return e, nil
}

// Close flushes spans and closes the backend and log file, newest first.
func (e *env) Close(ctx context.Context) error {
	var errs []error
	if e.tracing != nil {
		errs = append(errs, e.tracing.Shutdown(ctx))
	}
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i].Close())
	}
	return errors.Join(errs...)
}
