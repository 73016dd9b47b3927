// Package persist loads and saves a dashboard layout through a kvstore.Store.
//
// Load never fails from the caller's point of view: a missing, unreadable or
// corrupt record is logged and reported as nil so bootstrap falls back to the
// default set.
package persist

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"widgetdeck/internal/kvstore"
	"widgetdeck/internal/widget"
)

// Adapter persists one layout under a fixed key.
type Adapter struct {
	kv  kvstore.Store
	key string
	log zerolog.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger sets the logger used for load failures.
func WithLogger(log zerolog.Logger) Option {
	return func(a *Adapter) {
		a.log = log
	}
}

// New creates an adapter storing the layout under key.
func New(kv kvstore.Store, key string, opts ...Option) *Adapter {
	a := &Adapter{kv: kv, key: key, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Key returns the storage key.
func (a *Adapter) Key() string {
	return a.key
}

// Load returns the persisted layout, or nil when there is none or it
// cannot be used.
func (a *Adapter) Load(ctx context.Context) widget.Layout {
	data, err := a.kv.Load(ctx, a.key)
	if err != nil {
		a.log.Warn().Err(err).Str("key", a.key).Msg("layout load failed")
		return nil
	}
	if data == nil {
		return nil
	}
	l, err := Decode(data)
	if err != nil {
		a.log.Warn().Err(err).Str("key", a.key).Int("bytes", len(data)).Msg("corrupt layout record")
		return nil
	}
	return l
}

// Save writes l under the adapter's key.
func (a *Adapter) Save(ctx context.Context, l widget.Layout) error {
	data, err := Encode(l)
	if err != nil {
		return err
	}
	if err := a.kv.Save(ctx, a.key, data); err != nil {
		return fmt.Errorf("save layout %q: %w", a.key, err)
	}
	return nil
}
