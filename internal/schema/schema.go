// Package schema defines the page schema edited by the page builder and
// rendered by the public website: an ordered list of typed component
// instances, each with a string property bag.
package schema

// ComponentType identifies which renderer draws an instance.
type ComponentType string

const (
	TypeHero       ComponentType = "hero"
	TypeCard       ComponentType = "card"
	TypeButton     ComponentType = "button"
	TypeBadge      ComponentType = "badge"
	TypeNavigation ComponentType = "navigation"
)

// Types lists the known component types in library order.
var Types = []ComponentType{TypeHero, TypeCard, TypeButton, TypeBadge, TypeNavigation}

// Known reports whether t is one of the closed set of component types.
// Unknown types survive normalization but render nothing.
func (t ComponentType) Known() bool {
	for _, k := range Types {
		if t == k {
			return true
		}
	}
	return false
}

// LayoutHint is a display hint for the page container.
type LayoutHint string

const (
	LayoutStack   LayoutHint = "stack"
	LayoutSection LayoutHint = "section"
)

// Property keys read by the renderers. Other keys are carried through.
const (
	PropTitle       = "title"
	PropDescription = "description"
	PropLabel       = "label"
	PropHref        = "href"
	PropVariant     = "variant"
	PropSize        = "size"
	PropClassName   = "className"
)

// DefaultBackground is used when a schema has no background token.
const DefaultBackground = "bg-muted/30"

// Props is a component's property bag.
type Props map[string]string

// Get returns the value for key, or fallback when the key is absent. An
// explicit empty string is kept.
func (p Props) Get(key, fallback string) string {
	if v, ok := p[key]; ok {
		return v
	}
	return fallback
}

// Clone returns a copy of p. A nil bag clones to an empty one.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// ComponentInstance is one placed component.
type ComponentInstance struct {
	ID    string        `json:"id"`
	Type  ComponentType `json:"type"`
	Props Props         `json:"props"`
}

// PageSchema is the stored document for one route.
type PageSchema struct {
	Route      string              `json:"route"`
	Layout     LayoutHint          `json:"layout"`
	Background string              `json:"background,omitempty"`
	Components []ComponentInstance `json:"components"`
}

// BackgroundOrDefault returns the background token or DefaultBackground.
func (s *PageSchema) BackgroundOrDefault() string {
	if s.Background == "" {
		return DefaultBackground
	}
	return s.Background
}

// Clone returns a deep copy of s.
func Clone(s PageSchema) PageSchema {
	out := s
	out.Components = make([]ComponentInstance, len(s.Components))
	for i, c := range s.Components {
		out.Components[i] = ComponentInstance{ID: c.ID, Type: c.Type, Props: c.Props.Clone()}
	}
	return out
}

// EnsureRoute returns a copy of s whose route is route.
func EnsureRoute(s PageSchema, route string) PageSchema {
	out := Clone(s)
	out.Route = route
	return out
}
