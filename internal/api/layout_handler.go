// Package api serves the layout documents over JSON: the admin endpoints of
// the CMS backend and the public read endpoint of the web backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	infraevents "github.com/punnatorn6420/Nokair-Platform/infrastructure/events"
	infralogger "github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	"github.com/punnatorn6420/Nokair-Platform/internal/events"
	"github.com/punnatorn6420/Nokair-Platform/internal/metrics"
	"github.com/punnatorn6420/Nokair-Platform/internal/storage"
)

// MaxBodySize bounds a PUT body.
const MaxBodySize = 1 << 20

// Error messages returned in {"error": ...} bodies.
const (
	ErrMsgMissingSlug = "missing slug"
	ErrMsgNotFound    = "site layout not found"
	ErrMsgLoadFailed  = "failed to load layout"
	ErrMsgReadBody    = "failed to read body"
	ErrMsgInvalidJSON = "invalid JSON body"
	ErrMsgSaveFailed  = "failed to save layout"
)

// EventPublisher publishes layout events. *events.Publisher satisfies it,
// including when nil.
type EventPublisher interface {
	PublishAsync(event infraevents.LayoutEvent)
}

// CacheInvalidator drops a slug from the read cache.
type CacheInvalidator func(ctx context.Context, slug string) error

// LayoutHandler serves stored layout documents.
type LayoutHandler struct {
	reader     storage.LayoutReader
	writer     storage.LayoutWriter
	invalidate CacheInvalidator
	publisher  EventPublisher
	metrics    *metrics.Metrics
	logger     infralogger.Logger
}

// HandlerOption configures a LayoutHandler.
type HandlerOption func(*LayoutHandler)

// WithWriter enables Put.
func WithWriter(w storage.LayoutWriter) HandlerOption {
	return func(h *LayoutHandler) { h.writer = w }
}

// WithCacheInvalidator drops the public cache entry after a write.
func WithCacheInvalidator(fn CacheInvalidator) HandlerOption {
	return func(h *LayoutHandler) { h.invalidate = fn }
}

// WithPublisher announces writes as layout.updated events.
func WithPublisher(p EventPublisher) HandlerOption {
	return func(h *LayoutHandler) { h.publisher = p }
}

// WithMetrics records reads and writes.
func WithMetrics(m *metrics.Metrics) HandlerOption {
	return func(h *LayoutHandler) { h.metrics = m }
}

// NewLayoutHandler returns a handler reading from reader.
func NewLayoutHandler(reader storage.LayoutReader, log infralogger.Logger, opts ...HandlerOption) *LayoutHandler {
	h := &LayoutHandler{reader: reader, logger: log}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Get returns the stored document verbatim.
func (h *LayoutHandler) Get(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrMsgMissingSlug})
		return
	}

	data, err := h.reader.Get(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.logger.Debug("Site layout not found", infralogger.String("slug", slug))
			c.JSON(http.StatusNotFound, gin.H{"error": ErrMsgNotFound})
			return
		}
		h.logger.Error("Failed to load site layout",
			infralogger.String("slug", slug),
			infralogger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": ErrMsgLoadFailed})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// Put replaces the document for the slug. The body must be a JSON object.
func (h *LayoutHandler) Put(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrMsgMissingSlug})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodySize))
	if err != nil {
		h.logger.Debug("Failed to read request body",
			infralogger.String("slug", slug),
			infralogger.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrMsgReadBody})
		return
	}

	data, ok := compactObject(body)
	if !ok {
		h.metrics.LayoutWrite(metrics.ResultInvalid)
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrMsgInvalidJSON})
		return
	}

	ctx := c.Request.Context()
	if err := h.writer.Upsert(ctx, slug, data); err != nil {
		h.metrics.LayoutWrite(metrics.ResultError)
		h.logger.Error("Failed to save site layout",
			infralogger.String("slug", slug),
			infralogger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": ErrMsgSaveFailed})
		return
	}
	h.metrics.LayoutWrite(metrics.ResultOK)

	if h.invalidate != nil {
		if err := h.invalidate(ctx, slug); err != nil {
			h.logger.Warn("Failed to invalidate layout cache",
				infralogger.String("slug", slug),
				infralogger.Error(err),
			)
		}
	}
	if h.publisher != nil {
		h.publisher.PublishAsync(events.LayoutUpdated(slug))
	}

	h.logger.Info("Site layout saved",
		infralogger.String("slug", slug),
		infralogger.Int("bytes", len(data)),
	)
	c.Status(http.StatusNoContent)
}

// compactObject reports whether body is a JSON object and returns it
// without insignificant whitespace.
func compactObject(body []byte) ([]byte, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
		return nil, false
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}
