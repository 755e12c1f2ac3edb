// Package layout models the site-wide layout: header navigation, footer
// link columns and the homepage's list of typed sections.
package layout

// SiteSlug is the only site the platform serves.
const SiteSlug = "nokair"

// CTA defaults used when only one half of the header button is set.
const (
	DefaultCTALabel = "เข้าสู่ระบบ"
	DefaultCTAHref  = "/login"
)

type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type CTA struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type HeaderConfig struct {
	LogoSrc  string    `json:"logoSrc"`
	LogoAlt  string    `json:"logoAlt"`
	NavItems []NavItem `json:"navItems"`
	CTA      *CTA      `json:"cta,omitempty"`
}

type FooterLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type FooterColumn struct {
	Title string       `json:"title"`
	Links []FooterLink `json:"links"`
}

type FooterConfig struct {
	Columns   []FooterColumn `json:"columns"`
	Copyright string         `json:"copyright"`
}

// Section is one homepage block. Content is free-form JSON interpreted by
// the renderer for the section type.
type Section struct {
	ID      string         `json:"id"`
	Type    string         `json:"type"`
	Variant string         `json:"variant,omitempty"`
	Content map[string]any `json:"content"`
}

type HomepageConfig struct {
	Sections []Section `json:"sections"`
}

// SiteLayoutConfig is the document stored under the site slug.
type SiteLayoutConfig struct {
	Header   HeaderConfig   `json:"header"`
	Footer   FooterConfig   `json:"footer"`
	Homepage HomepageConfig `json:"homepage"`
}

// Legacy homepage defaults. They seed the default hero section.
const (
	defaultHeroTitle    = "บินสบายไปกับนกแอร์"
	defaultHeroSubtitle = "จองง่าย ราคาคุ้มค่า พร้อมบริการด้วยรอยยิ้ม"
	defaultHeroImage    = "/images/home-hero.png"
)

func defaultHeader() HeaderConfig {
	return HeaderConfig{
		LogoSrc:  "/images/nokair-logo.svg",
		LogoAlt:  "Nok Air",
		NavItems: defaultNavItems(),
		CTA:      &CTA{Label: DefaultCTALabel, Href: DefaultCTAHref},
	}
}

func defaultNavItems() []NavItem {
	return []NavItem{
		{Label: "จองตั๋วเครื่องบิน", Href: "/booking"},
		{Label: "โปรโมชั่น", Href: "/promo"},
		{Label: "เช็คอินออนไลน์", Href: "/check-in"},
	}
}

func defaultFooter() FooterConfig {
	return FooterConfig{
		Columns:   defaultColumns(),
		Copyright: defaultCopyright,
	}
}

const defaultCopyright = "© 2025 Nok Air. All rights reserved."

func defaultColumns() []FooterColumn {
	return []FooterColumn{
		{
			Title: "เกี่ยวกับนกแอร์",
			Links: []FooterLink{
				{Label: "เกี่ยวกับเรา", Href: "/about"},
				{Label: "ข่าวประชาสัมพันธ์", Href: "/news"},
			},
		},
		{
			Title: "บริการลูกค้า",
			Links: []FooterLink{
				{Label: "ศูนย์ช่วยเหลือ", Href: "/support"},
				{Label: "ติดต่อเรา", Href: "/contact"},
			},
		},
	}
}

func defaultSections() []Section {
	return []Section{
		{
			ID:   "home-hero",
			Type: SectionHero,
			Content: map[string]any{
				"title":    defaultHeroTitle,
				"subtitle": defaultHeroSubtitle,
				"image":    defaultHeroImage,
				"actions": []any{
					map[string]any{"label": "จองเที่ยวบิน", "href": "/booking"},
					map[string]any{"label": "ดูโปรโมชั่น", "href": "/promo"},
				},
			},
		},
	}
}

// Default returns the built-in layout used when nothing is stored or the
// API is unreachable.
func Default() SiteLayoutConfig {
	return SiteLayoutConfig{
		Header:   defaultHeader(),
		Footer:   defaultFooter(),
		Homepage: HomepageConfig{Sections: defaultSections()},
	}
}

// Clone returns a deep copy of l.
func Clone(l SiteLayoutConfig) SiteLayoutConfig {
	out := l
	out.Header.NavItems = append([]NavItem(nil), l.Header.NavItems...)
	if l.Header.CTA != nil {
		cta := *l.Header.CTA
		out.Header.CTA = &cta
	}
	out.Footer.Columns = make([]FooterColumn, len(l.Footer.Columns))
	for i, c := range l.Footer.Columns {
		out.Footer.Columns[i] = FooterColumn{Title: c.Title, Links: append([]FooterLink(nil), c.Links...)}
	}
	out.Homepage.Sections = make([]Section, len(l.Homepage.Sections))
	for i, s := range l.Homepage.Sections {
		s.Content = cloneContent(s.Content)
		out.Homepage.Sections[i] = s
	}
	return out
}

func cloneContent(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneContent(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
