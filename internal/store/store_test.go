package store

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"widgetdeck/internal/kvstore"
	"widgetdeck/internal/layout"
	"widgetdeck/internal/persist"
	"widgetdeck/internal/telemetry"
	"widgetdeck/internal/widget"
)

func defaults() widget.Layout {
	return widget.Layout{
		{ID: "a", Title: "A", Visible: true, Order: 1, Size: widget.SizeNarrow},
		{ID: "b", Title: "B", Visible: true, Order: 2, Size: widget.SizeMedium},
	}
}

// recordingPersister counts saves and can be told to fail.
type recordingPersister struct {
	loaded  widget.Layout
	saved   []widget.Layout
	saveErr error
}

func (r *recordingPersister) Load(context.Context) widget.Layout { return r.loaded }

func (r *recordingPersister) Save(_ context.Context, l widget.Layout) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, l)
	return nil
}

func TestBootstrap_FallsBackToDefaults(t *testing.T) {
	m := telemetry.NewMetrics()
	s := Bootstrap(context.Background(), &recordingPersister{}, defaults(), WithMetrics(m))
	assert.Equal(t, defaults(), s.GetAll())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoadFallbacks))
}

func TestBootstrap_UsesPersistedLayout(t *testing.T) {
	ctx := context.Background()
	adapter := persist.New(kvstore.NewMemoryStore(), "layout:t")
	stored := layout.Reorder(defaults(), 0, 1)
	require.NoError(t, adapter.Save(ctx, stored))

	s := Bootstrap(ctx, adapter, defaults())
	assert.Equal(t, []string{"b", "a"}, s.GetAll().IDs())
}

func TestBootstrap_InvalidPersistedLayoutFallsBack(t *testing.T) {
	p := &recordingPersister{loaded: widget.Layout{
		{ID: "a", Order: 1, Size: widget.SizeWide},
		{ID: "a", Order: 2, Size: widget.SizeWide},
	}}
	s := Bootstrap(context.Background(), p, defaults())
	assert.Equal(t, defaults(), s.GetAll())
}

func TestBootstrap_CorruptRecordFallsBack(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kv.Save(ctx, "layout:t", []byte("not json at all")))

	s := Bootstrap(ctx, persist.New(kv, "layout:t"), defaults())
	assert.Equal(t, defaults(), s.GetAll())
}

func TestGetAll_ReturnsCopy(t *testing.T) {
	s := New(nil, defaults())
	got := s.GetAll()
	got[0].Visible = false
	assert.True(t, s.GetAll()[0].Visible)
}

func TestReplaceAll_PersistsThenNotifies(t *testing.T) {
	p := &recordingPersister{}
	s := New(p, defaults())

	var events []string
	s.Subscribe(func(l widget.Layout) {
		events = append(events, "first:"+l[0].ID)
		assert.Len(t, p.saved, 1, "save must happen before notification")
	})
	s.Subscribe(func(l widget.Layout) { events = append(events, "second:"+l[0].ID) })

	next := layout.Reorder(s.GetAll(), 0, 1)
	require.NoError(t, s.ReplaceAll(context.Background(), next))

	assert.Equal(t, []string{"b", "a"}, s.GetAll().IDs())
	require.Len(t, p.saved, 1)
	assert.Equal(t, next, p.saved[0])
	assert.Equal(t, []string{"first:b", "second:b"}, events)
}

func TestReplaceAll_RejectsDuplicateIDs(t *testing.T) {
	p := &recordingPersister{}
	m := telemetry.NewMetrics()
	s := New(p, defaults(), WithMetrics(m))
	notified := false
	s.Subscribe(func(widget.Layout) { notified = true })

	bad := defaults()
	bad[1].ID = "a"
	err := s.ReplaceAll(context.Background(), bad)

	assert.True(t, errors.Is(err, widget.ErrDuplicateID))
	assert.Equal(t, defaults(), s.GetAll(), "prior state retained")
	assert.Empty(t, p.saved, "nothing persisted")
	assert.False(t, notified)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejected))
}

func TestReplaceAll_RejectsUnloadableWidgets(t *testing.T) {
	for name, tc := range map[string]struct {
		bad  widget.Layout
		want error
	}{
		"unknown size": {
			bad: widget.Layout{
				{ID: "b", Order: 1, Size: widget.SizeWide},
				{ID: "a", Order: 2, Size: "huge", Visible: true},
			},
			want: widget.ErrInvalidSize,
		},
		"empty id": {
			bad: widget.Layout{
				{ID: "a", Order: 1, Size: widget.SizeNarrow},
				{ID: "", Order: 2, Size: widget.SizeMedium},
			},
			want: widget.ErrEmptyID,
		},
	} {
		t.Run(name, func(t *testing.T) {
			p := &recordingPersister{}
			m := telemetry.NewMetrics()
			s := New(p, defaults(), WithMetrics(m))

			err := s.ReplaceAll(context.Background(), tc.bad)

			assert.True(t, errors.Is(err, tc.want), "err = %v", err)
			assert.Equal(t, defaults(), s.GetAll())
			assert.Empty(t, p.saved)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejected))
		})
	}
}

func TestReplaceAll_RejectedWriteSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	custom := layout.ToggleVisibility(defaults(), "a")

	s := Bootstrap(ctx, persist.New(kv, "layout:t"), defaults())
	require.NoError(t, s.ReplaceAll(ctx, custom))
	require.Error(t, s.ReplaceAll(ctx, widget.Layout{
		{ID: "b", Order: 1, Size: widget.SizeWide},
		{ID: "a", Order: 2, Size: "huge"},
	}))

	reloaded := Bootstrap(ctx, persist.New(kv, "layout:t"), defaults())
	assert.Equal(t, custom, reloaded.GetAll())
}

func TestReplaceAll_SaveFailureKeepsSwap(t *testing.T) {
	p := &recordingPersister{saveErr: errors.New("disk full")}
	m := telemetry.NewMetrics()
	s := New(p, defaults(), WithMetrics(m))

	err := s.Mutate(context.Background(), "toggle", func(l widget.Layout) widget.Layout {
		return layout.ToggleVisibility(l, "a")
	})
	assert.ErrorContains(t, err, "disk full")
	assert.False(t, s.GetAll()[0].Visible)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SaveErrors))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mutations.WithLabelValues("toggle")))
}

func TestReplaceAll_NormalizesOrder(t *testing.T) {
	s := New(nil, defaults())
	require.NoError(t, s.ReplaceAll(context.Background(), widget.Layout{
		{ID: "b", Order: 2, Size: widget.SizeWide},
		{ID: "a", Order: 1, Size: widget.SizeWide},
	}))
	assert.Equal(t, []string{"a", "b"}, s.GetAll().IDs())
	assert.NoError(t, widget.Validate(s.GetAll()))
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	s := New(nil, defaults())
	calls := 0
	unsubscribe := s.Subscribe(func(widget.Layout) { calls++ })

	require.NoError(t, s.ReplaceAll(context.Background(), defaults()))
	unsubscribe()
	require.NoError(t, s.ReplaceAll(context.Background(), defaults()))
	assert.Equal(t, 1, calls)
}

func TestStores_AreIndependent(t *testing.T) {
	s1 := New(nil, defaults())
	s2 := New(nil, defaults())
	require.NoError(t, s1.Mutate(context.Background(), "show_all", func(l widget.Layout) widget.Layout {
		return layout.ToggleVisibility(l, "b")
	}))
	assert.False(t, s1.GetAll()[1].Visible)
	assert.True(t, s2.GetAll()[1].Visible)
}

func TestReplaceAll_EmitsSpan(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	s := New(nil, defaults(), WithTracer(tp.Tracer("test")))

	require.NoError(t, s.Mutate(context.Background(), "resize", func(l widget.Layout) widget.Layout {
		return layout.SetSize(l, "a", widget.SizeWide)
	}))

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "layout.replace_all", spans[0].Name())
	found := false
	for _, kv := range spans[0].Attributes() {
		if string(kv.Key) == "layout.op" && kv.Value.AsString() == "resize" {
			found = true
		}
	}
	assert.True(t, found, "expected layout.op=resize attribute")
}

// Persistence round trip through the full stack.
func TestStore_PersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	adapter := persist.New(kv, "layout:rt")

	s := Bootstrap(ctx, adapter, defaults())
	require.NoError(t, s.Mutate(ctx, "resize", func(l widget.Layout) widget.Layout {
		return layout.SetSize(l, "b", widget.SizeWide)
	}))
	require.NoError(t, s.Mutate(ctx, "toggle", func(l widget.Layout) widget.Layout {
		return layout.ToggleVisibility(l, "a")
	}))

	again := Bootstrap(ctx, persist.New(kv, "layout:rt"), defaults())
	assert.Equal(t, s.GetAll(), again.GetAll())
}
