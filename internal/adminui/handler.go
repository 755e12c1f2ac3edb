// Package adminui serves the server-rendered admin: the page builder, the
// published-page preview and the site-layout settings. Every edit is a form
// POST answered with a redirect back to the page.
package adminui

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	infralogger "github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	"github.com/punnatorn6420/Nokair-Platform/internal/editor"
	"github.com/punnatorn6420/Nokair-Platform/internal/layout"
	"github.com/punnatorn6420/Nokair-Platform/internal/render"
	"github.com/punnatorn6420/Nokair-Platform/internal/schema"
)

//go:embed templates/*.html
var templateFS embed.FS

// propPrefix marks property inputs in the properties form.
const propPrefix = "prop."

// SchemaSource loads stored page schemas for the preview and manages the
// local drafts.
type SchemaSource interface {
	Load(ctx context.Context, route string) (schema.PageSchema, bool, error)
	Drafts(ctx context.Context) ([]string, error)
	DiscardDraft(ctx context.Context, route string) error
}

// Handler serves the admin UI.
type Handler struct {
	workspace *editor.Workspace
	schemas   SchemaSource
	renderer  *render.Renderer
	tmpl      *template.Template
	logger    infralogger.Logger
}

// NewHandler parses the embedded templates.
func NewHandler(ws *editor.Workspace, schemas SchemaSource, renderer *render.Renderer, log infralogger.Logger) (*Handler, error) {
	tmpl, err := template.New("adminui").
		Funcs(template.FuncMap{"segment": url.PathEscape}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{
		workspace: ws,
		schemas:   schemas,
		renderer:  renderer,
		tmpl:      tmpl,
		logger:    log,
	}, nil
}

// RegisterRoutes mounts the admin pages.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/builder/home") })

	builder := router.Group("/builder/:route")
	builder.GET("", h.Builder)
	builder.POST("/components", h.AddComponent)
	builder.POST("/components/:id", h.UpdateComponent)
	builder.POST("/components/:id/preset", h.ApplyPreset)
	builder.POST("/components/:id/delete", h.RemoveComponent)
	builder.POST("/components/:id/move", h.MoveComponent)
	builder.POST("/background", h.SetBackground)
	builder.POST("/save", h.SaveSchema)

	router.GET("/pages/:route", h.Preview)

	router.GET("/drafts", h.Drafts)
	router.POST("/drafts/:route/discard", h.DiscardDraft)

	lay := router.Group("/layout")
	lay.GET("", h.Layout)
	lay.POST("/sections", h.AddSection)
	lay.POST("/sections/:id", h.UpdateSection)
	lay.POST("/sections/:id/delete", h.RemoveSection)
	lay.POST("/sections/:id/move", h.MoveSection)
	lay.POST("/header", h.UpdateHeader)
	lay.POST("/footer", h.UpdateFooter)
	lay.POST("/save", h.SaveLayout)
}

func (h *Handler) html(c *gin.Context, name string, data any) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("Failed to render admin page",
			infralogger.String("template", name),
			infralogger.Error(err),
		)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// respond redirects after a successful edit and maps editing errors to
// status codes.
func (h *Handler) respond(c *gin.Context, target string, err error) {
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, target)
	case errors.Is(err, editor.ErrComponentNotFound), errors.Is(err, layout.ErrSectionNotFound):
		c.String(http.StatusNotFound, err.Error())
	case errors.Is(err, layout.ErrInvalidContent):
		// Shown next to the section.
		c.Redirect(http.StatusSeeOther, target)
	case errors.Is(err, layout.ErrUnknownTemplate), errors.Is(err, errBadRequest):
		c.String(http.StatusBadRequest, err.Error())
	case errors.Is(err, editor.ErrLayoutNotLoaded):
		c.String(http.StatusConflict, err.Error())
	default:
		h.logger.Error("Admin request failed",
			infralogger.String("path", c.Request.URL.Path),
			infralogger.Error(err),
		)
		c.String(http.StatusInternalServerError, "Internal server error")
	}
}

var errBadRequest = errors.New("bad request")

func formIndex(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(c.PostForm("index")))
	if err != nil {
		return 0, errBadRequest
	}
	return index, nil
}
