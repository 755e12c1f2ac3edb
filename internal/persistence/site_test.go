package persistence_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	"github.com/punnatorn6420/Nokair-Platform/internal/layout"
	"github.com/punnatorn6420/Nokair-Platform/internal/metrics"
	"github.com/punnatorn6420/Nokair-Platform/internal/persistence"
	"github.com/punnatorn6420/Nokair-Platform/internal/schema"
)

func TestPublicSource_SiteLayout(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.docs["nokair"] = []byte(`{"footer":{"copyright":"© Nok Air"}}`)
	src := persistence.NewPublicSource(api, "nokair", logger.NewNop(), nil)

	got := src.SiteLayout(context.Background())
	assert.Equal(t, "© Nok Air", got.Footer.Copyright)
	assert.Equal(t, layout.Default().Header, got.Header)
}

func TestPublicSource_SiteLayoutFallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		api    func() *fakeAPI
		reason string
	}{
		{
			name:   "unconfigured",
			api:    func() *fakeAPI { return &fakeAPI{} },
			reason: metrics.ReasonUnconfigured,
		},
		{
			name: "fetch error",
			api: func() *fakeAPI {
				a := newFakeAPI()
				a.getErr = errors.New("dial tcp: connection refused")
				return a
			},
			reason: metrics.ReasonFetchFailed,
		},
		{
			name: "not an object",
			api: func() *fakeAPI {
				a := newFakeAPI()
				a.docs["nokair"] = []byte(`[1,2]`)
				return a
			},
			reason: metrics.ReasonMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := metrics.New(prometheus.NewRegistry())
			src := persistence.NewPublicSource(tt.api(), "nokair", logger.NewNop(), m)

			assert.Equal(t, layout.Default(), src.SiteLayout(context.Background()))
			assert.InDelta(t, 1, testutil.ToFloat64(m.Fallbacks.WithLabelValues(tt.reason)), 0)
		})
	}
}

func TestPublicSource_PageSchema(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.docs["promo"] = []byte(`{"route":"elsewhere","layout":"section","components":[]}`)
	src := persistence.NewPublicSource(api, "nokair", logger.NewNop(), nil)

	got := src.PageSchema(context.Background(), "promo")
	assert.Equal(t, "promo", got.Route)
	assert.Equal(t, schema.LayoutSection, got.Layout)
	assert.Empty(t, got.Components)

	fallback := src.PageSchema(context.Background(), "missing")
	assert.Equal(t, schema.DefaultSchema("missing"), fallback)
}

func TestAdminLayoutStore(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	store := persistence.NewAdminLayoutStore(api, "nokair", logger.NewNop())
	ctx := context.Background()

	_, err := store.Fetch(ctx)
	require.Error(t, err)

	cfg := layout.Default()
	cfg.SetCopyright("© 2026 Nok Air")
	require.NoError(t, store.Save(ctx, cfg))

	api.docs["nokair"] = api.puts["nokair"]
	got, err := store.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "© 2026 Nok Air", got.Footer.Copyright)
	assert.Equal(t, cfg.Homepage.Sections, got.Homepage.Sections)
}

func TestAdminLayoutStore_Unconfigured(t *testing.T) {
	t.Parallel()

	store := persistence.NewAdminLayoutStore(&fakeAPI{}, "nokair", logger.NewNop())
	_, err := store.Fetch(context.Background())
	require.Error(t, err)
}
