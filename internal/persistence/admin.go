package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	"github.com/punnatorn6420/Nokair-Platform/internal/layout"
)

// AdminLayoutStore loads and saves the site layout through the CMS API.
type AdminLayoutStore struct {
	api  SchemaAPI
	slug string
	log  logger.Logger
}

// NewAdminLayoutStore edits the layout stored under slug.
func NewAdminLayoutStore(api SchemaAPI, slug string, log logger.Logger) *AdminLayoutStore {
	return &AdminLayoutStore{api: api, slug: slug, log: log}
}

// Fetch returns the normalized site layout. Any failure, including an
// unconfigured API, is returned as an error.
func (a *AdminLayoutStore) Fetch(ctx context.Context) (layout.SiteLayoutConfig, error) {
	raw, err := a.api.GetAdminLayout(ctx, a.slug)
	if err != nil {
		return layout.SiteLayoutConfig{}, fmt.Errorf("fetch site layout: %w", err)
	}
	return layout.Normalize(raw, a.log), nil
}

// Save replaces the stored site layout.
func (a *AdminLayoutStore) Save(ctx context.Context, cfg layout.SiteLayoutConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal site layout: %w", err)
	}
	if err := a.api.PutAdminLayout(ctx, a.slug, data); err != nil {
		return fmt.Errorf("save site layout: %w", err)
	}
	return nil
}
