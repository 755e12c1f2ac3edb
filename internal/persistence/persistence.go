// Package persistence moves page schemas and site layouts between the
// editors, the backend APIs and the admin's local store. Everything read is
// normalized before it is handed out.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	"github.com/punnatorn6420/Nokair-Platform/internal/client"
	"github.com/punnatorn6420/Nokair-Platform/internal/metrics"
	"github.com/punnatorn6420/Nokair-Platform/internal/schema"
	"github.com/punnatorn6420/Nokair-Platform/internal/storage"
)

// Target names where a save landed.
type Target string

const (
	TargetLocal Target = "local"
	TargetAPI   Target = "api"
)

// LocalStore is the subset of storage.LocalStore the schema store uses.
type LocalStore interface {
	Get(ctx context.Context, route string) ([]byte, error)
	Put(ctx context.Context, route string, value []byte) error
	Delete(ctx context.Context, route string) error
	Routes(ctx context.Context) ([]string, error)
}

var _ LocalStore = (*storage.LocalStore)(nil)

// SchemaAPI is the subset of client.Client the schema store uses.
type SchemaAPI interface {
	Configured() bool
	GetAdminLayout(ctx context.Context, slug string) ([]byte, error)
	PutAdminLayout(ctx context.Context, slug string, data []byte) error
}

var _ SchemaAPI = (*client.Client)(nil)

// SchemaStore loads and saves page schemas for the builder: the CMS API
// first, the local store as the fallback.
type SchemaStore struct {
	api     SchemaAPI
	local   LocalStore
	log     logger.Logger
	metrics *metrics.Metrics
}

// NewSchemaStore wires a schema store. api may be unconfigured.
func NewSchemaStore(api SchemaAPI, local LocalStore, log logger.Logger, m *metrics.Metrics) *SchemaStore {
	return &SchemaStore{api: api, local: local, log: log, metrics: m}
}

// Load returns the stored schema for route. found is false when neither the
// API nor the local store holds a usable document; err is only set when the
// context ended.
func (s *SchemaStore) Load(ctx context.Context, route string) (schema.PageSchema, bool, error) {
	if s.api != nil && s.api.Configured() {
		raw, err := s.api.GetAdminLayout(ctx, route)
		switch {
		case err == nil:
			if v, ok := decodeObject(raw); ok {
				return schema.NormalizeValue(v, route, s.log), true, nil
			}
			s.log.Warn("Page schema from API is not a JSON object", logger.String("route", route))
		case ctx.Err() != nil:
			return schema.PageSchema{}, false, ctx.Err()
		default:
			s.log.Warn("Failed to load page schema from API",
				logger.String("route", route),
				logger.Error(err),
			)
		}
	}

	if s.local == nil {
		return schema.PageSchema{}, false, nil
	}

	raw, err := s.local.Get(ctx, route)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return schema.PageSchema{}, false, nil
	case err != nil:
		if ctx.Err() != nil {
			return schema.PageSchema{}, false, ctx.Err()
		}
		s.log.Warn("Failed to read local page schema",
			logger.String("route", route),
			logger.Error(err),
		)
		return schema.PageSchema{}, false, nil
	}

	v, ok := decodeObject(raw)
	if !ok {
		s.log.Warn("Malformed local page schema, ignoring", logger.String("route", route))
		return schema.PageSchema{}, false, nil
	}
	return schema.NormalizeValue(v, route, s.log), true, nil
}

// Persist writes the schema to the local store, then to the API when one is
// configured. An API failure is returned; the local copy stays.
func (s *SchemaStore) Persist(ctx context.Context, route string, ps schema.PageSchema) (Target, error) {
	ps = schema.EnsureRoute(ps, route)
	data, err := json.Marshal(ps)
	if err != nil {
		return "", fmt.Errorf("marshal page schema: %w", err)
	}

	if s.local != nil {
		if err := s.local.Put(ctx, route, data); err != nil {
			return "", fmt.Errorf("save local page schema: %w", err)
		}
	}

	if s.api == nil || !s.api.Configured() {
		s.metrics.SchemaSave(string(TargetLocal))
		return TargetLocal, nil
	}

	if err := s.api.PutAdminLayout(ctx, route, data); err != nil {
		return "", fmt.Errorf("save page schema to api: %w", err)
	}
	s.metrics.SchemaSave(string(TargetAPI))
	return TargetAPI, nil
}

// Drafts lists the routes with a copy in the local store.
func (s *SchemaStore) Drafts(ctx context.Context) ([]string, error) {
	if s.local == nil {
		return nil, nil
	}
	return s.local.Routes(ctx)
}

// DiscardDraft deletes the local copy of route. The API copy is kept.
func (s *SchemaStore) DiscardDraft(ctx context.Context, route string) error {
	if s.local == nil {
		return nil
	}
	if err := s.local.Delete(ctx, route); err != nil {
		return err
	}
	s.log.Info("Discarded local page schema", logger.String("route", route))
	return nil
}

// decodeObject parses raw and reports whether it is a JSON object.
func decodeObject(raw []byte) (map[string]any, bool) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}
	obj, ok := v.(map[string]any)
	return obj, ok
}
