package adminui

import (
	"github.com/gin-gonic/gin"

	infralogger "github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	"github.com/punnatorn6420/Nokair-Platform/internal/editor"
	"github.com/punnatorn6420/Nokair-Platform/internal/layout"
)

const layoutTarget = "/layout"

type layoutView struct {
	Loaded    bool
	Error     string
	Success   string
	CTALabel  string
	CTAHref   string
	Copyright string
	Kinds     []string
	Sections  []sectionView
}

type sectionView struct {
	ID           string
	Type         string
	Variant      string
	Content      string
	ContentError string
	Up           int
	Down         int
}

// Layout renders the site-layout settings.
func (h *Handler) Layout(c *gin.Context) {
	var view layoutView
	err := h.workspace.WithLayout(c.Request.Context(), func(e *editor.LayoutEditor) error {
		view = newLayoutView(e)
		return nil
	})
	if err != nil {
		h.respond(c, "", err)
		return
	}
	h.html(c, "layout", view)
}

func newLayoutView(e *editor.LayoutEditor) layoutView {
	errMsg, success := e.Status()
	view := layoutView{Error: errMsg, Success: success, Kinds: layout.TemplateKinds}

	cfg, ok := e.Layout()
	if !ok {
		return view
	}
	view.Loaded = true
	if cfg.Header.CTA != nil {
		view.CTALabel = cfg.Header.CTA.Label
		view.CTAHref = cfg.Header.CTA.Href
	}
	view.Copyright = cfg.Footer.Copyright
	for i, s := range cfg.Homepage.Sections {
		view.Sections = append(view.Sections, sectionView{
			ID:           s.ID,
			Type:         s.Type,
			Variant:      s.Variant,
			Content:      layout.FormatContent(s.Content),
			ContentError: e.ContentError(s.ID),
			Up:           max(i-1, 0),
			Down:         i + 1,
		})
	}
	return view
}

// AddSection appends a section from a template.
func (h *Handler) AddSection(c *gin.Context) {
	kind := c.PostForm("kind")
	err := h.workspace.WithLayout(c.Request.Context(), func(e *editor.LayoutEditor) error {
		_, err := e.AddSection(kind)
		return err
	})
	h.respond(c, layoutTarget, err)
}

// UpdateSection applies the type, variant and JSON content of a section.
// Invalid JSON leaves the section as it was.
func (h *Handler) UpdateSection(c *gin.Context) {
	id := c.Param("id")
	err := h.workspace.WithLayout(c.Request.Context(), func(e *editor.LayoutEditor) error {
		if content, ok := c.GetPostForm("content"); ok {
			if err := e.ApplySectionContent(id, content); err != nil {
				return err
			}
		}
		return e.SetSectionMeta(id, c.PostForm("type"), c.PostForm("variant"))
	})
	h.respond(c, layoutTarget, err)
}

// RemoveSection deletes a section.
func (h *Handler) RemoveSection(c *gin.Context) {
	id := c.Param("id")
	err := h.workspace.WithLayout(c.Request.Context(), func(e *editor.LayoutEditor) error {
		return e.RemoveSection(id)
	})
	h.respond(c, layoutTarget, err)
}

// MoveSection reorders a section to the posted index.
func (h *Handler) MoveSection(c *gin.Context) {
	id := c.Param("id")
	index, err := formIndex(c)
	if err != nil {
		h.respond(c, "", err)
		return
	}
	err = h.workspace.WithLayout(c.Request.Context(), func(e *editor.LayoutEditor) error {
		return e.MoveSection(id, index)
	})
	h.respond(c, layoutTarget, err)
}

// UpdateHeader sets the header CTA.
func (h *Handler) UpdateHeader(c *gin.Context) {
	err := h.workspace.WithLayout(c.Request.Context(), func(e *editor.LayoutEditor) error {
		return e.SetCTA(c.PostForm("label"), c.PostForm("href"))
	})
	h.respond(c, layoutTarget, err)
}

// UpdateFooter sets the footer copyright.
func (h *Handler) UpdateFooter(c *gin.Context) {
	err := h.workspace.WithLayout(c.Request.Context(), func(e *editor.LayoutEditor) error {
		return e.SetCopyright(c.PostForm("copyright"))
	})
	h.respond(c, layoutTarget, err)
}

// SaveLayout stores the layout. The outcome is shown on the page.
func (h *Handler) SaveLayout(c *gin.Context) {
	err := h.workspace.WithLayout(c.Request.Context(), func(e *editor.LayoutEditor) error {
		if err := e.Save(c.Request.Context()); err != nil {
			h.logger.Warn("Failed to save site layout", infralogger.Error(err))
		}
		return nil
	})
	h.respond(c, layoutTarget, err)
}
