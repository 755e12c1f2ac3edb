package layout

// Link is a label/href pair inside section content.
type Link struct {
	Label string
	Href  string
}

// HeroContent is the typed view of a hero section.
type HeroContent struct {
	Title    string
	Subtitle string
	Image    string
	Actions  []Link
}

// PromoItem is one card of a promo grid.
type PromoItem struct {
	Title       string
	Description string
	Badge       string
	Image       string
	Href        string
}

// PromoGridContent is the typed view of a promo_grid section.
type PromoGridContent struct {
	Title       string
	Description string
	Items       []PromoItem
}

// RichTextContent is the typed view of a rich_text section. Format is
// "html" (default) or "markdown".
type RichTextContent struct {
	Title  string
	Body   string
	Format string
}

// Hero reads s.Content as a hero section. Wrong-typed fields read as empty.
func (s Section) Hero() HeroContent {
	return HeroContent{
		Title:    str(s.Content, "title"),
		Subtitle: str(s.Content, "subtitle"),
		Image:    str(s.Content, "image"),
		Actions:  links(s.Content["actions"]),
	}
}

// PromoGrid reads s.Content as a promo grid.
func (s Section) PromoGrid() PromoGridContent {
	out := PromoGridContent{
		Title:       str(s.Content, "title"),
		Description: str(s.Content, "description"),
	}
	items, _ := s.Content["items"].([]any)
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out.Items = append(out.Items, PromoItem{
			Title:       str(obj, "title"),
			Description: str(obj, "description"),
			Badge:       str(obj, "badge"),
			Image:       str(obj, "image"),
			Href:        str(obj, "href"),
		})
	}
	return out
}

// RichText reads s.Content as a rich text block.
func (s Section) RichText() RichTextContent {
	format := str(s.Content, "format")
	if format == "" {
		format = "html"
	}
	return RichTextContent{
		Title:  str(s.Content, "title"),
		Body:   str(s.Content, "body"),
		Format: format,
	}
}

func str(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}

func links(v any) []Link {
	items, _ := v.([]any)
	out := make([]Link, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		label := str(obj, "label")
		if label == "" {
			continue
		}
		out = append(out, Link{Label: label, Href: str(obj, "href")})
	}
	return out
}
