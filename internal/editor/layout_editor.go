package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/punnatorn6420/Nokair-Platform/internal/layout"
)

// Layout editor messages.
const (
	MsgLayoutLoadFailed = "โหลด layout ไม่สำเร็จ"
	MsgLayoutSaved      = "บันทึกสำเร็จ"
	MsgLayoutSaveFailed = "บันทึกไม่สำเร็จ"
)

// LayoutStore fetches and saves the site layout.
type LayoutStore interface {
	Fetch(ctx context.Context) (layout.SiteLayoutConfig, error)
	Save(ctx context.Context, cfg layout.SiteLayoutConfig) error
}

// LayoutEditor is a site-layout settings session. Nothing can be edited
// until Load succeeds.
type LayoutEditor struct {
	store   LayoutStore
	layout  *layout.SiteLayoutConfig
	err     string
	success string
	// contentErrors holds the last parse failure per section id.
	contentErrors map[string]string
}

// NewLayoutEditor opens a session backed by store.
func NewLayoutEditor(store LayoutStore) *LayoutEditor {
	return &LayoutEditor{store: store, contentErrors: map[string]string{}}
}

// ErrLayoutNotLoaded is returned by edits before a successful Load.
var ErrLayoutNotLoaded = errors.New("site layout not loaded")

// Load fetches the layout. On failure the editor shows the load error and
// keeps whatever it had before.
func (e *LayoutEditor) Load(ctx context.Context) error {
	cfg, err := e.store.Fetch(ctx)
	if err != nil {
		if ctx.Err() == nil {
			e.err = MsgLayoutLoadFailed
		}
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	e.layout = &cfg
	e.err = ""
	e.contentErrors = map[string]string{}
	return nil
}

// Layout returns a copy of the edited layout; ok is false before Load.
func (e *LayoutEditor) Layout() (layout.SiteLayoutConfig, bool) {
	if e.layout == nil {
		return layout.SiteLayoutConfig{}, false
	}
	return layout.Clone(*e.layout), true
}

// Status returns the current error and success messages.
func (e *LayoutEditor) Status() (errMsg, success string) {
	return e.err, e.success
}

// ContentError returns the last content parse error for section id.
func (e *LayoutEditor) ContentError(id string) string {
	return e.contentErrors[id]
}

// AddSection appends a section built from the template kind.
func (e *LayoutEditor) AddSection(kind string) (layout.Section, error) {
	if e.layout == nil {
		return layout.Section{}, ErrLayoutNotLoaded
	}
	s, err := layout.NewSection(kind)
	if err != nil {
		return layout.Section{}, err
	}
	e.layout.Homepage.AddSection(s)
	return s, nil
}

// ApplySectionContent parses text as the new content of section id. On a
// parse error the section is left unchanged and the error is remembered for
// display.
func (e *LayoutEditor) ApplySectionContent(id, text string) error {
	if e.layout == nil {
		return ErrLayoutNotLoaded
	}
	s, ok := e.layout.Homepage.Find(id)
	if !ok {
		return fmt.Errorf("%w: %s", layout.ErrSectionNotFound, id)
	}
	content, err := layout.ParseContent(text)
	if err != nil {
		e.contentErrors[id] = layout.ErrInvalidContent.Error()
		return err
	}
	delete(e.contentErrors, id)
	s.Content = content
	return e.layout.Homepage.UpdateSection(id, s)
}

// SetSectionMeta sets the type and variant of section id. An empty variant
// is dropped.
func (e *LayoutEditor) SetSectionMeta(id, sectionType, variant string) error {
	if e.layout == nil {
		return ErrLayoutNotLoaded
	}
	s, ok := e.layout.Homepage.Find(id)
	if !ok {
		return fmt.Errorf("%w: %s", layout.ErrSectionNotFound, id)
	}
	s.Type = sectionType
	s.Variant = variant
	return e.layout.Homepage.UpdateSection(id, s)
}

// RemoveSection deletes section id.
func (e *LayoutEditor) RemoveSection(id string) error {
	if e.layout == nil {
		return ErrLayoutNotLoaded
	}
	if err := e.layout.Homepage.RemoveSection(id); err != nil {
		return err
	}
	delete(e.contentErrors, id)
	return nil
}

// MoveSection reorders section id to index.
func (e *LayoutEditor) MoveSection(id string, index int) error {
	if e.layout == nil {
		return ErrLayoutNotLoaded
	}
	return e.layout.Homepage.MoveSection(id, index)
}

// SetCTA sets the header button.
func (e *LayoutEditor) SetCTA(label, href string) error {
	if e.layout == nil {
		return ErrLayoutNotLoaded
	}
	e.layout.SetCTA(label, href)
	return nil
}

// SetCopyright sets the footer copyright line.
func (e *LayoutEditor) SetCopyright(text string) error {
	if e.layout == nil {
		return ErrLayoutNotLoaded
	}
	e.layout.SetCopyright(text)
	return nil
}

// Save stores the layout. Messages are cleared first and one of them is
// set by the outcome.
func (e *LayoutEditor) Save(ctx context.Context) error {
	if e.layout == nil {
		return ErrLayoutNotLoaded
	}
	e.err, e.success = "", ""
	if err := e.store.Save(ctx, *e.layout); err != nil {
		e.err = MsgLayoutSaveFailed
		return err
	}
	e.success = MsgLayoutSaved
	return nil
}
