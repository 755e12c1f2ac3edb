package layout

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Section types understood by the homepage renderer.
const (
	SectionHero      = "hero"
	SectionPromoGrid = "promo_grid"
	SectionRichText  = "rich_text"
)

// ErrUnknownTemplate is returned by NewSection for an unregistered kind.
var ErrUnknownTemplate = errors.New("unknown section template")

// TemplateKinds lists the section templates in the order the editor
// offers them.
var TemplateKinds = []string{SectionHero, SectionPromoGrid, SectionRichText}

var templates = map[string]func() map[string]any{
	SectionHero: func() map[string]any {
		return map[string]any{
			"title":    "หัวข้อ Hero",
			"subtitle": "คำอธิบายสั้น ๆ",
			"image":    "",
			"actions": []any{
				map[string]any{"label": "จองเที่ยวบิน", "href": "/booking"},
				map[string]any{"label": "ดูโปรโมชั่น", "href": "/promo"},
			},
		}
	},
	SectionPromoGrid: func() map[string]any {
		return map[string]any{
			"title":       "โปรโมชั่น",
			"description": "คำอธิบาย",
			"items": []any{
				map[string]any{"title": "ตัวอย่าง", "description": "รายละเอียดโปรโมชั่น", "badge": "ใหม่"},
			},
		}
	},
	SectionRichText: func() map[string]any {
		return map[string]any{
			"title": "เนื้อหา",
			"body":  "<p>เนื้อหาที่ต้องการแสดงผล</p>",
		}
	},
}

// Templates returns a fresh section for every template kind.
func Templates() []Section {
	out := make([]Section, 0, len(TemplateKinds))
	for _, kind := range TemplateKinds {
		s, _ := NewSection(kind)
		out = append(out, s)
	}
	return out
}

// NewSection builds a section from the template for kind with a random id.
func NewSection(kind string) (Section, error) {
	tmpl, ok := templates[kind]
	if !ok {
		return Section{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, kind)
	}
	return Section{
		ID:      uuid.NewString(),
		Type:    kind,
		Content: tmpl(),
	}, nil
}
