package persistence

import (
	"context"
	"errors"

	infraerrors "github.com/punnatorn6420/Nokair-Platform/infrastructure/errors"
	"github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	"github.com/punnatorn6420/Nokair-Platform/internal/client"
	"github.com/punnatorn6420/Nokair-Platform/internal/layout"
	"github.com/punnatorn6420/Nokair-Platform/internal/metrics"
	"github.com/punnatorn6420/Nokair-Platform/internal/schema"
)

// PublicAPI is the subset of client.Client the website uses.
type PublicAPI interface {
	Configured() bool
	GetPublicLayout(ctx context.Context, slug string) ([]byte, error)
}

var _ PublicAPI = (*client.Client)(nil)

// PublicSource serves the website's documents from the public API. It never
// fails: every problem falls back to the built-in defaults.
type PublicSource struct {
	api     PublicAPI
	slug    string
	log     logger.Logger
	metrics *metrics.Metrics
}

// NewPublicSource reads the site layout stored under slug.
func NewPublicSource(api PublicAPI, slug string, log logger.Logger, m *metrics.Metrics) *PublicSource {
	return &PublicSource{api: api, slug: slug, log: log, metrics: m}
}

// SiteLayout returns the normalized site layout or layout.Default().
func (p *PublicSource) SiteLayout(ctx context.Context) layout.SiteLayoutConfig {
	v, ok := p.fetch(ctx, p.slug, "site layout")
	if !ok {
		return layout.Default()
	}
	return layout.NormalizeValue(v, p.log)
}

// PageSchema returns the normalized schema for route or
// schema.DefaultSchema(route). The route is always route.
func (p *PublicSource) PageSchema(ctx context.Context, route string) schema.PageSchema {
	v, ok := p.fetch(ctx, route, "page schema")
	if !ok {
		return schema.DefaultSchema(route)
	}
	return schema.NormalizeValue(v, route, p.log)
}

func (p *PublicSource) fetch(ctx context.Context, slug, what string) (map[string]any, bool) {
	if p.api == nil || !p.api.Configured() {
		p.log.Warn("WEB_API_URL is not set, using default "+what, logger.String("slug", slug))
		p.metrics.Fallback(metrics.ReasonUnconfigured)
		return nil, false
	}

	raw, err := p.api.GetPublicLayout(ctx, slug)
	if err != nil {
		reason := metrics.ReasonFetchFailed
		switch {
		case errors.Is(err, client.ErrNotConfigured):
			reason = metrics.ReasonUnconfigured
		case infraerrors.IsNotFound(err):
			reason = metrics.ReasonNotFound
		}
		p.log.Warn("Failed to fetch "+what+", using default",
			logger.String("slug", slug),
			logger.Error(err),
		)
		p.metrics.Fallback(reason)
		return nil, false
	}

	v, ok := decodeObject(raw)
	if !ok {
		p.log.Warn("Malformed "+what+" from API, using default", logger.String("slug", slug))
		p.metrics.Fallback(metrics.ReasonMalformed)
		return nil, false
	}
	return v, true
}
