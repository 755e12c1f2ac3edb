// Package render turns page schemas and site layouts into HTML. Component
// and section renderers are looked up by type; unknown types render nothing.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday"

	"github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	"github.com/punnatorn6420/Nokair-Platform/internal/layout"
	"github.com/punnatorn6420/Nokair-Platform/internal/schema"
)

//go:embed templates/*.html
var templateFS embed.FS

// Fallback text used when a component prop is missing.
const (
	FallbackHeroLabel       = "Hero"
	FallbackHeroTitle       = "Hero Title"
	FallbackHeroDescription = "Hero description"
	FallbackHeroCTA         = "Learn more"
	FallbackCardTitle       = "Card Title"
	FallbackCardDescription = "รายละเอียดของการ์ด"
	FallbackButtonLabel     = "Button"
	FallbackBadgeLabel      = "Badge"
	FallbackNavLabel        = "เมนูหลัก"
	FallbackNavHref         = "#"

	// EmptyPageMessage is shown for a page without components.
	EmptyPageMessage = "ยังไม่มี component ในหน้านี้"
)

const (
	heroBaseClass       = "relative overflow-hidden rounded-3xl border bg-gradient-to-br from-yellow-50 via-white to-sky-50"
	heroBadgeClass      = "inline-flex items-center rounded-full border border-yellow-300 px-2.5 py-0.5 text-xs font-semibold text-yellow-800"
	cardBaseClass       = "flex flex-col gap-6 rounded-xl border bg-card py-6 text-card-foreground shadow-sm"
	navigationBaseClass = "w-full justify-start"
	pageBaseClass       = "flex min-h-[420px] flex-col gap-6 rounded-xl border bg-background/70 p-4 md:p-6"
	sectionBaseClass    = "w-full"
)

type componentFunc func(w io.Writer, inst schema.ComponentInstance) error

type sectionFunc func(w io.Writer, s layout.Section) error

// Renderer is safe for concurrent use once built.
type Renderer struct {
	tmpl       *template.Template
	components map[schema.ComponentType]componentFunc
	sections   map[string]sectionFunc
	sanitizer  *bluemonday.Policy
	log        logger.Logger
	onSkip     func(kind string)
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for skipped types.
func WithLogger(log logger.Logger) Option {
	return func(r *Renderer) { r.log = log }
}

// WithSkipHook is called with the type of every component or section that
// has no renderer.
func WithSkipHook(fn func(kind string)) Option {
	return func(r *Renderer) { r.onSkip = fn }
}

// New parses the embedded templates and builds the dispatch tables.
func New(opts ...Option) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse render templates: %w", err)
	}

	r := &Renderer{
		tmpl:      tmpl,
		sanitizer: bluemonday.UGCPolicy(),
		log:       logger.NewNop(),
		onSkip:    func(string) {},
	}
	for _, opt := range opts {
		opt(r)
	}

	r.components = map[schema.ComponentType]componentFunc{
		schema.TypeHero:       r.hero,
		schema.TypeCard:       r.card,
		schema.TypeButton:     r.button,
		schema.TypeBadge:      r.badge,
		schema.TypeNavigation: r.navigation,
	}
	r.sections = map[string]sectionFunc{
		layout.SectionHero:      r.heroSection,
		layout.SectionPromoGrid: r.promoGridSection,
		layout.SectionRichText:  r.richTextSection,
	}
	return r, nil
}

// Must is New that panics; for package-level setup in tests and mains.
func Must(opts ...Option) *Renderer {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// RenderComponent writes inst. An unknown type writes nothing and returns
// nil.
func (r *Renderer) RenderComponent(w io.Writer, inst schema.ComponentInstance) error {
	fn, ok := r.components[inst.Type]
	if !ok {
		r.skip("component", string(inst.Type))
		return nil
	}
	return fn(w, inst)
}

// ComponentHTML renders inst to a string-backed fragment.
func (r *Renderer) ComponentHTML(inst schema.ComponentInstance) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.RenderComponent(&buf, inst); err != nil {
		return "", err
	}
	//nolint:gosec // produced by html/template
	return template.HTML(buf.String()), nil
}

type pageView struct {
	ClassName string
	Layout    schema.LayoutHint
	Route     string
	Empty     bool
	Items     []template.HTML
}

// RenderPage writes the page container and every component in order.
func (r *Renderer) RenderPage(w io.Writer, s schema.PageSchema) error {
	html, err := r.PageHTML(s)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, string(html))
	return err
}

// PageHTML renders s to a fragment.
func (r *Renderer) PageHTML(s schema.PageSchema) (template.HTML, error) {
	view := pageView{
		ClassName: ClassNames(pageBaseClass, s.BackgroundOrDefault()),
		Layout:    s.Layout,
		Route:     s.Route,
		Empty:     len(s.Components) == 0,
	}
	for _, inst := range s.Components {
		html, err := r.ComponentHTML(inst)
		if err != nil {
			return "", fmt.Errorf("render component %s: %w", inst.ID, err)
		}
		if html == "" {
			continue
		}
		view.Items = append(view.Items, html)
	}
	return r.execute("page", view)
}

type heroView struct {
	ID, ClassName, BadgeClass, Label, Title, Description string
	CTA, CTAClass, Href                                  string
}

func (r *Renderer) hero(w io.Writer, inst schema.ComponentInstance) error {
	p := inst.Props
	return r.tmpl.ExecuteTemplate(w, "hero", heroView{
		ID:          inst.ID,
		ClassName:   ClassNames(heroBaseClass, p[schema.PropClassName]),
		BadgeClass:  heroBadgeClass,
		Label:       p.Get(schema.PropLabel, FallbackHeroLabel),
		Title:       p.Get(schema.PropTitle, FallbackHeroTitle),
		Description: p.Get(schema.PropDescription, FallbackHeroDescription),
		CTA:         p.Get(schema.PropLabel, FallbackHeroCTA),
		CTAClass:    ButtonClasses("default", "default", "inline-flex"),
		Href:        p[schema.PropHref],
	})
}

type cardView struct {
	ID, ClassName, Title, Description string
}

func (r *Renderer) card(w io.Writer, inst schema.ComponentInstance) error {
	p := inst.Props
	return r.tmpl.ExecuteTemplate(w, "card", cardView{
		ID:          inst.ID,
		ClassName:   ClassNames(cardBaseClass, p[schema.PropClassName]),
		Title:       p.Get(schema.PropTitle, FallbackCardTitle),
		Description: p.Get(schema.PropDescription, FallbackCardDescription),
	})
}

type buttonView struct {
	ID, ClassName, Label, Href, Variant, Size string
}

func (r *Renderer) button(w io.Writer, inst schema.ComponentInstance) error {
	p := inst.Props
	variant := p.Get(schema.PropVariant, "default")
	size := p.Get(schema.PropSize, "default")
	return r.tmpl.ExecuteTemplate(w, "button", buttonView{
		ID:        inst.ID,
		ClassName: ButtonClasses(variant, size, p[schema.PropClassName]),
		Label:     p.Get(schema.PropLabel, FallbackButtonLabel),
		Href:      p[schema.PropHref],
		Variant:   variant,
		Size:      size,
	})
}

type badgeView struct {
	ID, ClassName, Label, Variant string
}

func (r *Renderer) badge(w io.Writer, inst schema.ComponentInstance) error {
	p := inst.Props
	variant := BadgeVariant(p[schema.PropVariant])
	return r.tmpl.ExecuteTemplate(w, "badge", badgeView{
		ID:        inst.ID,
		ClassName: BadgeClasses(variant, p[schema.PropClassName]),
		Label:     p.Get(schema.PropLabel, FallbackBadgeLabel),
		Variant:   variant,
	})
}

type navigationView struct {
	ID, ClassName, Label, Href string
}

func (r *Renderer) navigation(w io.Writer, inst schema.ComponentInstance) error {
	p := inst.Props
	return r.tmpl.ExecuteTemplate(w, "navigation", navigationView{
		ID:        inst.ID,
		ClassName: ClassNames(navigationBaseClass, p[schema.PropClassName]),
		Label:     p.Get(schema.PropLabel, FallbackNavLabel),
		Href:      p.Get(schema.PropHref, FallbackNavHref),
	})
}

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute %s template: %w", name, err)
	}
	//nolint:gosec // produced by html/template
	return template.HTML(buf.String()), nil
}

func (r *Renderer) skip(kind, typ string) {
	r.log.Debug("No renderer for type, skipping",
		logger.String("kind", kind),
		logger.String("type", typ),
	)
	r.onSkip(typ)
}

// sanitize converts rich text to safe HTML. Markdown is converted first.
func (r *Renderer) sanitize(body, format string) template.HTML {
	b := []byte(body)
	if format == "markdown" {
		b = blackfriday.MarkdownCommon(b)
	}
	//nolint:gosec // sanitized by bluemonday
	return template.HTML(r.sanitizer.SanitizeBytes(b))
}
