// Package editor holds the admin's editing sessions: the page builder for
// page schemas and the settings editor for the site layout. Sessions are
// not safe for concurrent use; Workspace serializes access.
package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/punnatorn6420/Nokair-Platform/internal/persistence"
	"github.com/punnatorn6420/Nokair-Platform/internal/schema"
)

// ErrComponentNotFound is returned when no component has the requested id.
var ErrComponentNotFound = errors.New("component not found")

// SaveState tracks the last save of a session.
type SaveState string

const (
	SaveIdle    SaveState = "idle"
	SaveSaving  SaveState = "saving"
	SaveSuccess SaveState = "success"
	SaveError   SaveState = "error"
)

// Builder save messages.
const (
	MsgSavedAPI   = "บันทึกเรียบร้อยแล้ว (backend)"
	MsgSavedLocal = "บันทึกลง local storage แล้ว"
	MsgSaveFailed = "บันทึกไม่สำเร็จ ลองใหม่อีกครั้ง"
)

// SchemaPersister loads and saves page schemas.
type SchemaPersister interface {
	Load(ctx context.Context, route string) (schema.PageSchema, bool, error)
	Persist(ctx context.Context, route string, s schema.PageSchema) (persistence.Target, error)
}

// Builder is a page-builder session for one route. It starts from the
// route's preset until Load replaces it.
type Builder struct {
	route    string
	store    SchemaPersister
	schema   schema.PageSchema
	selected string
	loaded   bool
	state    SaveState
	message  string
}

// NewBuilder opens a session for route.
func NewBuilder(route string, store SchemaPersister) *Builder {
	b := &Builder{route: route, store: store, state: SaveIdle}
	b.reset(schema.Preset(route))
	return b
}

func (b *Builder) reset(s schema.PageSchema) {
	b.schema = schema.EnsureRoute(s, b.route)
	b.selected = ""
	if len(b.schema.Components) > 0 {
		b.selected = b.schema.Components[0].ID
	}
}

// Load replaces the canvas with the stored schema, or the preset when
// nothing is stored. A result arriving after ctx is done is discarded.
func (b *Builder) Load(ctx context.Context) error {
	s, found, err := b.store.Load(ctx, b.route)
	if err != nil {
		return fmt.Errorf("load page schema %s: %w", b.route, err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if !found {
		s = schema.Preset(b.route)
	}
	b.reset(s)
	b.loaded = true
	return nil
}

// Loaded reports whether Load completed.
func (b *Builder) Loaded() bool { return b.loaded }

// Route returns the session route.
func (b *Builder) Route() string { return b.route }

// Schema returns a copy of the canvas.
func (b *Builder) Schema() schema.PageSchema { return schema.Clone(b.schema) }

// Component returns the component with id.
func (b *Builder) Component(id string) (schema.ComponentInstance, bool) {
	inst, ok := b.schema.Find(id)
	inst.Props = inst.Props.Clone()
	return inst, ok
}

// State returns the save state and its message.
func (b *Builder) State() (SaveState, string) { return b.state, b.message }

// Add appends a new instance of t and selects it.
func (b *Builder) Add(t schema.ComponentType) schema.ComponentInstance {
	inst := schema.NewInstance(t)
	b.schema.Append(inst)
	b.selected = inst.ID
	return inst
}

// UpdateProps replaces the props of id.
func (b *Builder) UpdateProps(id string, props schema.Props) error {
	if !b.schema.UpdateProps(id, props) {
		return fmt.Errorf("%w: %s", ErrComponentNotFound, id)
	}
	return nil
}

// ApplyClassPreset merges tokens into the className of id.
func (b *Builder) ApplyClassPreset(id, tokens string) error {
	inst, ok := b.schema.Find(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrComponentNotFound, id)
	}
	props := inst.Props.Clone()
	props[schema.PropClassName] = schema.MergeClassNames(props[schema.PropClassName], tokens)
	b.schema.UpdateProps(id, props)
	return nil
}

// Remove deletes id and clears the selection when it pointed at id.
func (b *Builder) Remove(id string) error {
	if !b.schema.Remove(id) {
		return fmt.Errorf("%w: %s", ErrComponentNotFound, id)
	}
	if b.selected == id {
		b.selected = ""
	}
	return nil
}

// Move reorders id to index.
func (b *Builder) Move(id string, index int) error {
	if !b.schema.Move(id, index) {
		return fmt.Errorf("%w: %s", ErrComponentNotFound, id)
	}
	return nil
}

// SetBackground sets the page background token.
func (b *Builder) SetBackground(token string) {
	b.schema.SetBackground(token)
}

// Select marks id as the component shown in the properties panel. An empty
// id clears the selection.
func (b *Builder) Select(id string) error {
	if id == "" {
		b.selected = ""
		return nil
	}
	if _, ok := b.schema.Find(id); !ok {
		return fmt.Errorf("%w: %s", ErrComponentNotFound, id)
	}
	b.selected = id
	return nil
}

// Selected returns the selected component.
func (b *Builder) Selected() (schema.ComponentInstance, bool) {
	if b.selected == "" {
		return schema.ComponentInstance{}, false
	}
	return b.schema.Find(b.selected)
}

// Save persists the canvas and records the outcome in State.
func (b *Builder) Save(ctx context.Context) error {
	b.state, b.message = SaveSaving, ""

	target, err := b.store.Persist(ctx, b.route, schema.EnsureRoute(b.schema, b.route))
	if err != nil {
		b.state, b.message = SaveError, MsgSaveFailed
		return err
	}

	b.state = SaveSuccess
	if target == persistence.TargetAPI {
		b.message = MsgSavedAPI
	} else {
		b.message = MsgSavedLocal
	}
	return nil
}
