// Package store holds the current dashboard layout and is the only place
// stored state changes. Every write validates, swaps, persists and then
// notifies subscribers, in that order.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"widgetdeck/internal/telemetry"
	"widgetdeck/internal/widget"
)

// Persister saves and loads a layout. *persist.Adapter implements it.
type Persister interface {
	Load(ctx context.Context) widget.Layout
	Save(ctx context.Context, l widget.Layout) error
}

// Store is the single source of truth for the current layout.
type Store struct {
	mu          sync.RWMutex
	layout      widget.Layout
	persister   Persister
	subscribers map[int]func(widget.Layout)
	nextSubID   int

	log     zerolog.Logger
	metrics *telemetry.Metrics
	tracer  oteltrace.Tracer
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithMetrics records writes on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithTracer emits a span per write.
func WithTracer(t oteltrace.Tracer) Option {
	return func(s *Store) { s.tracer = t }
}

// New creates a store holding initial. initial is not validated; use
// Bootstrap to start from persisted state.
func New(p Persister, initial widget.Layout, opts ...Option) *Store {
	s := &Store{
		layout:      widget.Normalize(initial),
		persister:   p,
		subscribers: make(map[int]func(widget.Layout)),
		log:         zerolog.Nop(),
		tracer:      noop.NewTracerProvider().Tracer(telemetry.InstrumentationName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bootstrap loads the persisted layout, falling back to a copy of defaults
// when nothing usable is stored.
func Bootstrap(ctx context.Context, p Persister, defaults widget.Layout, opts ...Option) *Store {
	s := New(p, nil, opts...)
	ctx, span := s.tracer.Start(ctx, "layout.bootstrap")
	defer span.End()

	loaded := p.Load(ctx)
	source := "persisted"
	if loaded != nil {
		if err := widget.Validate(widget.Normalize(loaded)); err != nil {
			s.log.Warn().Err(err).Msg("persisted layout invalid")
			loaded = nil
		}
	}
	if loaded == nil {
		loaded = defaults.Clone()
		source = "default"
		if s.metrics != nil {
			s.metrics.LoadFallbacks.Inc()
		}
	}
	s.layout = widget.Normalize(loaded)
	span.SetAttributes(
		attribute.String("layout.source", source),
		attribute.Int("layout.widgets", len(s.layout)),
	)
	s.log.Info().Str("source", source).Int("widgets", len(s.layout)).Msg("layout loaded")
	return s
}

// GetAll returns a copy of the current layout.
func (s *Store) GetAll() widget.Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layout.Clone()
}

// ReplaceAll swaps in next, persists it and notifies subscribers.
// Duplicate or empty ids and unknown sizes are refused (widget.ErrDuplicateID,
// widget.ErrEmptyID, widget.ErrInvalidSize) and nothing changes.
// A persistence failure is returned, but the in-memory swap stands.
func (s *Store) ReplaceAll(ctx context.Context, next widget.Layout) error {
	return s.replace(ctx, "replace", next)
}

// Mutate applies fn to the current layout and writes the result.
// op labels the write in metrics and traces ("reorder", "toggle", ...).
func (s *Store) Mutate(ctx context.Context, op string, fn func(widget.Layout) widget.Layout) error {
	return s.replace(ctx, op, fn(s.GetAll()))
}

func (s *Store) replace(ctx context.Context, op string, next widget.Layout) error {
	ctx, span := s.tracer.Start(ctx, "layout.replace_all", oteltrace.WithAttributes(
		attribute.String("layout.op", op),
		attribute.Int("layout.widgets", len(next)),
	))
	defer span.End()

	normalized := widget.Normalize(next)
	if err := widget.Validate(normalized); err != nil {
		if s.metrics != nil {
			s.metrics.Rejected.Inc()
		}
		s.log.Error().Err(err).Str("op", op).Msg("layout write rejected")
		span.SetStatus(codes.Error, "rejected")
		return err
	}

	s.mu.Lock()
	s.layout = normalized
	subs := s.subscriberList()
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.Mutations.WithLabelValues(op).Inc()
	}

	var saveErr error
	if s.persister != nil {
		if err := s.persister.Save(ctx, normalized.Clone()); err != nil {
			if s.metrics != nil {
				s.metrics.SaveErrors.Inc()
			}
			s.log.Error().Err(err).Str("op", op).Msg("layout save failed")
			span.RecordError(err)
			saveErr = fmt.Errorf("persist layout: %w", err)
		}
	}

	for _, fn := range subs {
		fn(normalized.Clone())
	}
	return saveErr
}

// Subscribe registers fn to run after every accepted write.
// The returned func removes the subscription.
func (s *Store) Subscribe(fn func(widget.Layout)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// subscriberList returns subscribers in registration order.
// Must be called with s.mu held.
func (s *Store) subscriberList() []func(widget.Layout) {
	out := make([]func(widget.Layout), 0, len(s.subscribers))
	for id := 0; id < s.nextSubID; id++ {
		if fn, ok := s.subscribers[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}
