package adminui

import (
	"fmt"
	"html/template"
	"net/url"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	infralogger "github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	"github.com/punnatorn6420/Nokair-Platform/internal/editor"
	"github.com/punnatorn6420/Nokair-Platform/internal/render"
	"github.com/punnatorn6420/Nokair-Platform/internal/schema"
)

// propOrder is the order of known keys in the properties form.
var propOrder = []string{
	schema.PropTitle,
	schema.PropDescription,
	schema.PropLabel,
	schema.PropHref,
	schema.PropVariant,
	schema.PropSize,
	schema.PropClassName,
}

type builderView struct {
	Route             string
	Library           []schema.LibraryEntry
	Components        []canvasItem
	Selected          *propertiesView
	SelectedID        string
	ClassPresets      []schema.StylePreset
	BackgroundPresets []schema.StylePreset
	Background        string
	PageClass         string
	EmptyMessage      string
	SaveState         editor.SaveState
	SaveMessage       string
}

type canvasItem struct {
	ID       string
	Type     schema.ComponentType
	HTML     template.HTML
	Selected bool
	Up       int
	Down     int
}

type propertiesView struct {
	ID     string
	Type   schema.ComponentType
	Fields []propField
}

type propField struct {
	Key   string
	Value string
}

func builderTarget(route string) string {
	return "/builder/" + url.PathEscape(route)
}

func selectedTarget(route, id string) string {
	return builderTarget(route) + "?" + url.Values{"selected": {id}}.Encode()
}

// Builder renders the page builder for the route.
func (h *Handler) Builder(c *gin.Context) {
	route := c.Param("route")
	var view builderView

	err := h.workspace.WithBuilder(c.Request.Context(), route, func(b *editor.Builder) error {
		if id := c.Query("selected"); id != "" {
			if err := b.Select(id); err != nil {
				return err
			}
		}
		var err error
		view, err = h.builderView(b)
		return err
	})
	if err != nil {
		h.respond(c, "", err)
		return
	}
	h.html(c, "builder", view)
}

func (h *Handler) builderView(b *editor.Builder) (builderView, error) {
	s := b.Schema()
	state, msg := b.State()
	view := builderView{
		Route:             b.Route(),
		Library:           schema.Library(),
		ClassPresets:      schema.ClassPresets,
		BackgroundPresets: schema.BackgroundPresets,
		Background:        s.BackgroundOrDefault(),
		PageClass:         render.ClassNames("flex min-h-[420px] flex-col gap-4 rounded-xl border p-4", s.BackgroundOrDefault()),
		EmptyMessage:      render.EmptyPageMessage,
		SaveState:         state,
		SaveMessage:       msg,
	}

	sel, hasSel := b.Selected()
	for i, inst := range s.Components {
		html, err := h.renderer.ComponentHTML(inst)
		if err != nil {
			return builderView{}, fmt.Errorf("render component %s: %w", inst.ID, err)
		}
		view.Components = append(view.Components, canvasItem{
			ID:       inst.ID,
			Type:     inst.Type,
			HTML:     html,
			Selected: hasSel && sel.ID == inst.ID,
			Up:       max(i-1, 0),
			Down:     i + 1,
		})
	}

	if hasSel {
		view.SelectedID = sel.ID
		view.Selected = &propertiesView{ID: sel.ID, Type: sel.Type, Fields: propFields(sel)}
	}
	return view, nil
}

// propFields lists the library keys of the type, then any other keys the
// instance carries.
func propFields(inst schema.ComponentInstance) []propField {
	keys := map[string]bool{}
	if entry, ok := schema.LibraryItem(inst.Type); ok {
		for k := range entry.Defaults {
			keys[k] = true
		}
	}
	for k := range inst.Props {
		keys[k] = true
	}

	var fields []propField
	for _, k := range propOrder {
		if keys[k] {
			fields = append(fields, propField{Key: k, Value: inst.Props[k]})
			delete(keys, k)
		}
	}
	extra := make([]string, 0, len(keys))
	for k := range keys {
		extra = append(extra, k)
	}
	sort.Strings(extra)
	for _, k := range extra {
		fields = append(fields, propField{Key: k, Value: inst.Props[k]})
	}
	return fields
}

// AddComponent appends a library component.
func (h *Handler) AddComponent(c *gin.Context) {
	route := c.Param("route")
	t := schema.ComponentType(c.PostForm("type"))
	if !t.Known() {
		h.respond(c, "", fmt.Errorf("%w: unknown component type %q", errBadRequest, t))
		return
	}

	var id string
	err := h.workspace.WithBuilder(c.Request.Context(), route, func(b *editor.Builder) error {
		id = b.Add(t).ID
		return nil
	})
	h.respond(c, selectedTarget(route, id), err)
}

// UpdateComponent replaces the props of a component with the prop.* form
// fields. Empty fields are dropped.
func (h *Handler) UpdateComponent(c *gin.Context) {
	route, id := c.Param("route"), c.Param("id")
	if err := c.Request.ParseForm(); err != nil {
		h.respond(c, "", errBadRequest)
		return
	}

	props := schema.Props{}
	for key, values := range c.Request.PostForm {
		name, ok := strings.CutPrefix(key, propPrefix)
		if !ok || name == "" || len(values) == 0 {
			continue
		}
		if v := strings.TrimSpace(values[0]); v != "" {
			props[name] = v
		}
	}

	err := h.workspace.WithBuilder(c.Request.Context(), route, func(b *editor.Builder) error {
		return b.UpdateProps(id, props)
	})
	h.respond(c, selectedTarget(route, id), err)
}

// ApplyPreset merges a class preset into a component.
func (h *Handler) ApplyPreset(c *gin.Context) {
	route, id := c.Param("route"), c.Param("id")
	tokens := c.PostForm("tokens")

	err := h.workspace.WithBuilder(c.Request.Context(), route, func(b *editor.Builder) error {
		return b.ApplyClassPreset(id, tokens)
	})
	h.respond(c, selectedTarget(route, id), err)
}

// RemoveComponent deletes a component.
func (h *Handler) RemoveComponent(c *gin.Context) {
	route, id := c.Param("route"), c.Param("id")
	err := h.workspace.WithBuilder(c.Request.Context(), route, func(b *editor.Builder) error {
		return b.Remove(id)
	})
	h.respond(c, builderTarget(route), err)
}

// MoveComponent reorders a component to the posted index.
func (h *Handler) MoveComponent(c *gin.Context) {
	route, id := c.Param("route"), c.Param("id")
	index, err := formIndex(c)
	if err != nil {
		h.respond(c, "", err)
		return
	}
	err = h.workspace.WithBuilder(c.Request.Context(), route, func(b *editor.Builder) error {
		return b.Move(id, index)
	})
	h.respond(c, selectedTarget(route, id), err)
}

// SetBackground sets the page background token.
func (h *Handler) SetBackground(c *gin.Context) {
	route := c.Param("route")
	token := c.PostForm("background")
	err := h.workspace.WithBuilder(c.Request.Context(), route, func(b *editor.Builder) error {
		b.SetBackground(token)
		return nil
	})
	h.respond(c, builderTarget(route), err)
}

// SaveSchema persists the canvas. The outcome is shown as the save badge.
func (h *Handler) SaveSchema(c *gin.Context) {
	route := c.Param("route")
	err := h.workspace.WithBuilder(c.Request.Context(), route, func(b *editor.Builder) error {
		if err := b.Save(c.Request.Context()); err != nil {
			h.logger.Warn("Failed to save page schema",
				infralogger.String("route", route),
				infralogger.Error(err),
			)
		}
		return nil
	})
	h.respond(c, builderTarget(route), err)
}

type previewView struct {
	Route  string
	Stored bool
	Source string
	Page   template.HTML
}

// Preview renders the published schema for the route, or its preset when
// nothing is stored.
func (h *Handler) Preview(c *gin.Context) {
	route := c.Param("route")

	s, found, err := h.schemas.Load(c.Request.Context(), route)
	if err != nil {
		h.respond(c, "", err)
		return
	}
	source := "stored"
	if !found {
		s = schema.Preset(route)
		source = "preset"
	}

	page, err := h.renderer.PageHTML(schema.EnsureRoute(s, route))
	if err != nil {
		h.respond(c, "", err)
		return
	}
	h.html(c, "preview", previewView{Route: route, Stored: found, Source: source, Page: page})
}
