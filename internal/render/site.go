package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/punnatorn6420/Nokair-Platform/internal/layout"
	"github.com/punnatorn6420/Nokair-Platform/internal/schema"
)

// Default document title.
const SiteTitle = "Nok Air"

// RenderSiteHeader writes the site header.
func (r *Renderer) RenderSiteHeader(w io.Writer, h layout.HeaderConfig) error {
	return r.tmpl.ExecuteTemplate(w, "site_header", h)
}

// RenderSiteFooter writes the site footer.
func (r *Renderer) RenderSiteFooter(w io.Writer, f layout.FooterConfig) error {
	return r.tmpl.ExecuteTemplate(w, "site_footer", f)
}

// RenderSection writes one homepage section. Unknown section types write
// nothing and return nil.
func (r *Renderer) RenderSection(w io.Writer, s layout.Section) error {
	fn, ok := r.sections[s.Type]
	if !ok {
		r.skip("section", s.Type)
		return nil
	}
	return fn(w, s)
}

// RenderHomepage writes every section in order.
func (r *Renderer) RenderHomepage(w io.Writer, sections []layout.Section) error {
	html, err := r.homepageHTML(sections)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, string(html))
	return err
}

func (r *Renderer) homepageHTML(sections []layout.Section) (template.HTML, error) {
	items := make([]template.HTML, 0, len(sections))
	for _, s := range sections {
		html, err := r.sectionHTML(s)
		if err != nil {
			return "", fmt.Errorf("render section %s: %w", s.ID, err)
		}
		if html != "" {
			items = append(items, html)
		}
	}
	return r.execute("homepage", items)
}

func (r *Renderer) sectionHTML(s layout.Section) (template.HTML, error) {
	fn, ok := r.sections[s.Type]
	if !ok {
		r.skip("section", s.Type)
		return "", nil
	}
	var buf bytes.Buffer
	if err := fn(&buf, s); err != nil {
		return "", err
	}
	//nolint:gosec // produced by html/template
	return template.HTML(buf.String()), nil
}

func sectionClass(s layout.Section) string {
	variant := ""
	if s.Variant != "" {
		variant = "section-" + s.Variant
	}
	return ClassNames(sectionBaseClass, variant)
}

type heroSectionView struct {
	layout.HeroContent
	ID, ClassName string
}

func (r *Renderer) heroSection(w io.Writer, s layout.Section) error {
	return r.tmpl.ExecuteTemplate(w, "section_hero", heroSectionView{
		HeroContent: s.Hero(),
		ID:          s.ID,
		ClassName:   sectionClass(s),
	})
}

type promoGridView struct {
	layout.PromoGridContent
	ID, ClassName string
}

func (r *Renderer) promoGridSection(w io.Writer, s layout.Section) error {
	return r.tmpl.ExecuteTemplate(w, "section_promo_grid", promoGridView{
		PromoGridContent: s.PromoGrid(),
		ID:               s.ID,
		ClassName:        sectionClass(s),
	})
}

type richTextView struct {
	ID, ClassName, Title string
	Body                 template.HTML
}

func (r *Renderer) richTextSection(w io.Writer, s layout.Section) error {
	c := s.RichText()
	return r.tmpl.ExecuteTemplate(w, "section_rich_text", richTextView{
		ID:        s.ID,
		ClassName: sectionClass(s),
		Title:     c.Title,
		Body:      r.sanitize(c.Body, c.Format),
	})
}

type documentView struct {
	Title     string
	Heading   string
	Header    template.HTML
	Footer    template.HTML
	Main      template.HTML
	MainClass string
}

// RenderHomeDocument writes the full homepage document.
func (r *Renderer) RenderHomeDocument(w io.Writer, site layout.SiteLayoutConfig) error {
	main, err := r.homepageHTML(site.Homepage.Sections)
	if err != nil {
		return err
	}
	return r.document(w, site, SiteTitle, "", main)
}

// RenderPublicPage writes a full document for a page schema, framed by the
// site header and footer. The route is shown as the page heading.
func (r *Renderer) RenderPublicPage(w io.Writer, site layout.SiteLayoutConfig, page schema.PageSchema) error {
	main, err := r.PageHTML(page)
	if err != nil {
		return err
	}
	return r.document(w, site, page.Route+" | "+SiteTitle, page.Route, main)
}

func (r *Renderer) document(w io.Writer, site layout.SiteLayoutConfig, title, heading string, main template.HTML) error {
	header, err := r.execute("site_header", site.Header)
	if err != nil {
		return err
	}
	footer, err := r.execute("site_footer", site.Footer)
	if err != nil {
		return err
	}
	mainClass := ""
	if heading != "" {
		mainClass = "mx-auto max-w-6xl px-4 pb-12 pt-6 md:px-6 md:pt-8"
	}
	return r.tmpl.ExecuteTemplate(w, "document", documentView{
		Title:     title,
		Heading:   heading,
		Header:    header,
		Footer:    footer,
		Main:      main,
		MainClass: mainClass,
	})
}
