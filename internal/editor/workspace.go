package editor

import (
	"context"
	"sync"
)

// Workspace keeps the admin's open sessions: one builder per route and one
// layout editor. The workspace lock only guards the session table; each
// session has its own lock, held across its loads and saves, so a slow API
// call stalls requests for that session alone.
type Workspace struct {
	mu       sync.Mutex
	schemas  SchemaPersister
	layouts  LayoutStore
	builders map[string]*builderSession
	layout   *layoutSession
}

type builderSession struct {
	mu sync.Mutex
	b  *Builder
}

type layoutSession struct {
	mu sync.Mutex
	e  *LayoutEditor
}

// NewWorkspace returns an empty workspace.
func NewWorkspace(schemas SchemaPersister, layouts LayoutStore) *Workspace {
	return &Workspace{
		schemas:  schemas,
		layouts:  layouts,
		builders: make(map[string]*builderSession),
		layout:   &layoutSession{e: NewLayoutEditor(layouts)},
	}
}

func (w *Workspace) session(route string) *builderSession {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, ok := w.builders[route]
	if !ok {
		s = &builderSession{b: NewBuilder(route, w.schemas)}
		w.builders[route] = s
	}
	return s
}

// WithBuilder runs fn with the builder for route, loading it on first use.
// A failed load is retried on the next call; fn still runs on the preset.
func (w *Workspace) WithBuilder(ctx context.Context, route string, fn func(*Builder) error) error {
	s := w.session(route)
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.b.Loaded() {
		if err := s.b.Load(ctx); err != nil && ctx.Err() != nil {
			return err
		}
	}
	return fn(s.b)
}

// WithLayout runs fn with the layout editor, loading it when it has no
// layout yet. The load error is left in the editor's status for fn to show.
func (w *Workspace) WithLayout(ctx context.Context, fn func(*LayoutEditor) error) error {
	s := w.layout
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, loaded := s.e.Layout(); !loaded {
		if err := s.e.Load(ctx); err != nil && ctx.Err() != nil {
			return err
		}
	}
	return fn(s.e)
}

// Discard drops the builder for route so the next access reloads it. A
// request already holding the old session finishes on it.
func (w *Workspace) Discard(route string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.builders, route)
}
