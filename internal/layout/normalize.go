package layout

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
)

// Normalize decodes raw and reconciles it into a complete SiteLayoutConfig.
// Every missing or wrong-shaped field falls back to its default. It never
// fails.
func Normalize(raw []byte, log logger.Logger) SiteLayoutConfig {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Default()
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn("Malformed site layout JSON, using default layout", logger.Error(err))
		return Default()
	}
	return NormalizeValue(v, log)
}

// NormalizeValue reconciles an already decoded JSON value.
func NormalizeValue(v any, log logger.Logger) SiteLayoutConfig {
	obj, ok := v.(map[string]any)
	if !ok {
		if v != nil {
			log.Warn("Site layout is not an object, using default layout")
		}
		return Default()
	}

	return SiteLayoutConfig{
		Header:   normalizeHeader(obj["header"]),
		Footer:   normalizeFooter(obj["footer"]),
		Homepage: normalizeHomepage(obj["homepage"], log),
	}
}

func normalizeHeader(v any) HeaderConfig {
	obj, ok := v.(map[string]any)
	if !ok {
		return defaultHeader()
	}

	def := defaultHeader()
	out := HeaderConfig{
		LogoSrc:  stringOr(obj["logoSrc"], def.LogoSrc),
		LogoAlt:  stringOr(obj["logoAlt"], def.LogoAlt),
		NavItems: def.NavItems,
	}
	if items, isArray := obj["navItems"].([]any); isArray {
		out.NavItems = make([]NavItem, 0, len(items))
		for _, l := range linkPairs(items) {
			out.NavItems = append(out.NavItems, NavItem(l))
		}
	}
	if cta, isObject := obj["cta"].(map[string]any); isObject {
		label, labelOK := cta["label"].(string)
		href, hrefOK := cta["href"].(string)
		if labelOK && hrefOK {
			out.CTA = &CTA{Label: label, Href: href}
		}
	}
	return out
}

func normalizeFooter(v any) FooterConfig {
	obj, ok := v.(map[string]any)
	if !ok {
		return defaultFooter()
	}

	out := FooterConfig{
		Columns:   defaultColumns(),
		Copyright: stringOr(obj["copyright"], defaultCopyright),
	}
	if cols, isArray := obj["columns"].([]any); isArray {
		out.Columns = make([]FooterColumn, 0, len(cols))
		for _, c := range cols {
			col, isObject := c.(map[string]any)
			if !isObject {
				continue
			}
			title, hasTitle := col["title"].(string)
			if !hasTitle {
				continue
			}
			linkItems, _ := col["links"].([]any)
			column := FooterColumn{Title: title, Links: make([]FooterLink, 0, len(linkItems))}
			for _, l := range linkPairs(linkItems) {
				column.Links = append(column.Links, FooterLink(l))
			}
			out.Columns = append(out.Columns, column)
		}
	}
	return out
}

// normalizeHomepage applies, in order: a sections array with at least one
// valid section; the legacy flat hero fields; an explicitly present sections
// array (kept empty); defaults.
func normalizeHomepage(v any, log logger.Logger) HomepageConfig {
	obj, ok := v.(map[string]any)
	if !ok {
		return HomepageConfig{Sections: defaultSections()}
	}

	rawSections, hasSections := obj["sections"].([]any)
	if hasSections && len(rawSections) > 0 {
		if sections := normalizeSections(rawSections, log); len(sections) > 0 {
			return HomepageConfig{Sections: sections}
		}
	}

	if legacy, isLegacy := legacyHero(obj); isLegacy {
		log.Debug("Upgrading legacy homepage hero fields to sections")
		return HomepageConfig{Sections: []Section{legacy}}
	}

	if hasSections {
		return HomepageConfig{Sections: []Section{}}
	}

	return HomepageConfig{Sections: defaultSections()}
}

func legacyHero(obj map[string]any) (Section, bool) {
	title, hasTitle := obj["heroTitle"].(string)
	subtitle, hasSubtitle := obj["heroSubtitle"].(string)
	image, hasImage := obj["heroImage"].(string)
	if !hasTitle && !hasSubtitle && !hasImage {
		return Section{}, false
	}
	return Section{
		ID:   uuid.NewString(),
		Type: SectionHero,
		Content: map[string]any{
			"title":    title,
			"subtitle": subtitle,
			"image":    image,
		},
	}, true
}

func normalizeSections(items []any, log logger.Logger) []Section {
	seen := make(map[string]bool, len(items))
	out := make([]Section, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			log.Warn("Dropping homepage section that is not an object", logger.Int("index", i))
			continue
		}
		typ, _ := obj["type"].(string)
		if typ == "" {
			log.Warn("Dropping homepage section without type", logger.Int("index", i))
			continue
		}

		id, _ := obj["id"].(string)
		if id == "" || seen[id] {
			id = uuid.NewString()
		}
		seen[id] = true

		content, isObject := obj["content"].(map[string]any)
		if !isObject {
			content = map[string]any{}
		}
		variant, _ := obj["variant"].(string)

		out = append(out, Section{ID: id, Type: typ, Variant: variant, Content: content})
	}
	return out
}

// linkPairs keeps objects whose label and href are both strings.
func linkPairs(items []any) []Link {
	out := make([]Link, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		label, labelOK := obj["label"].(string)
		href, hrefOK := obj["href"].(string)
		if !labelOK || !hrefOK {
			continue
		}
		out = append(out, Link{Label: label, Href: href})
	}
	return out
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}
