// Package site serves the public marketing website: the homepage built from
// the site layout and one page per published page schema.
package site

import (
	"bytes"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	infralogger "github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	"github.com/punnatorn6420/Nokair-Platform/internal/layout"
	"github.com/punnatorn6420/Nokair-Platform/internal/render"
	"github.com/punnatorn6420/Nokair-Platform/internal/schema"
)

// SiteLayoutSource returns the site layout. It never fails.
type SiteLayoutSource interface {
	SiteLayout(ctx context.Context) layout.SiteLayoutConfig
}

// PageSchemaSource returns the page schema for a route. It never fails.
type PageSchemaSource interface {
	PageSchema(ctx context.Context, route string) schema.PageSchema
}

// Handler renders the website.
type Handler struct {
	layouts  SiteLayoutSource
	pages    PageSchemaSource
	renderer *render.Renderer
	logger   infralogger.Logger
}

// NewHandler builds the website handler.
func NewHandler(layouts SiteLayoutSource, pages PageSchemaSource, renderer *render.Renderer, log infralogger.Logger) *Handler {
	return &Handler{layouts: layouts, pages: pages, renderer: renderer, logger: log}
}

// RegisterRoutes mounts / and /:publicRoute.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Home)
	router.GET("/:publicRoute", h.Page)
}

// Home renders the homepage.
func (h *Handler) Home(c *gin.Context) {
	cfg := h.layouts.SiteLayout(c.Request.Context())

	var buf bytes.Buffer
	if err := h.renderer.RenderHomeDocument(&buf, cfg); err != nil {
		h.fail(c, "/", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Page renders the page schema published under the route.
func (h *Handler) Page(c *gin.Context) {
	route := c.Param("publicRoute")
	ctx := c.Request.Context()

	cfg := h.layouts.SiteLayout(ctx)
	page := h.pages.PageSchema(ctx, route)

	var buf bytes.Buffer
	if err := h.renderer.RenderPublicPage(&buf, cfg, page); err != nil {
		h.fail(c, route, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) fail(c *gin.Context, route string, err error) {
	h.logger.Error("Failed to render page",
		infralogger.String("route", route),
		infralogger.Error(err),
	)
	c.String(http.StatusInternalServerError, "Internal server error")
}
