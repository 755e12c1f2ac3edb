package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrSectionNotFound is returned when no section has the requested id.
var ErrSectionNotFound = errors.New("section not found")

// ErrInvalidContent wraps a section content parse failure. Its message is
// what the layout editor shows.
var ErrInvalidContent = errors.New("JSON ไม่ถูกต้อง ตรวจสอบรูปแบบอีกครั้ง")

// AddSection appends s.
func (h *HomepageConfig) AddSection(s Section) {
	if s.Content == nil {
		s.Content = map[string]any{}
	}
	h.Sections = append(h.Sections, s)
}

// Find returns the section with id.
func (h *HomepageConfig) Find(id string) (Section, bool) {
	for _, s := range h.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// UpdateSection replaces the section with id. The id itself is kept.
func (h *HomepageConfig) UpdateSection(id string, s Section) error {
	for i := range h.Sections {
		if h.Sections[i].ID == id {
			s.ID = id
			if s.Content == nil {
				s.Content = map[string]any{}
			}
			h.Sections[i] = s
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrSectionNotFound, id)
}

// RemoveSection filters out id, keeping the order of everything else.
func (h *HomepageConfig) RemoveSection(id string) error {
	kept := make([]Section, 0, len(h.Sections))
	for _, s := range h.Sections {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(h.Sections) {
		return fmt.Errorf("%w: %s", ErrSectionNotFound, id)
	}
	h.Sections = kept
	return nil
}

// MoveSection places id at index, clamped to the valid range.
func (h *HomepageConfig) MoveSection(id string, index int) error {
	from := -1
	for i, s := range h.Sections {
		if s.ID == id {
			from = i
			break
		}
	}
	if from < 0 {
		return fmt.Errorf("%w: %s", ErrSectionNotFound, id)
	}

	moved := h.Sections[from]
	rest := make([]Section, 0, len(h.Sections))
	rest = append(rest, h.Sections[:from]...)
	rest = append(rest, h.Sections[from+1:]...)
	index = max(0, min(index, len(rest)))

	out := make([]Section, 0, len(h.Sections))
	out = append(out, rest[:index]...)
	out = append(out, moved)
	out = append(out, rest[index:]...)
	h.Sections = out
	return nil
}

// SetCTA sets the header button. An empty label or href falls back to the
// default for that half.
func (l *SiteLayoutConfig) SetCTA(label, href string) {
	cta := CTA{Label: label, Href: href}
	if cta.Label == "" {
		cta.Label = DefaultCTALabel
	}
	if cta.Href == "" {
		cta.Href = DefaultCTAHref
	}
	l.Header.CTA = &cta
}

// SetCopyright sets the footer copyright line.
func (l *SiteLayoutConfig) SetCopyright(text string) {
	l.Footer.Copyright = text
}

// ParseContent decodes section content edited as JSON text. Anything other
// than a JSON object fails with ErrInvalidContent.
func ParseContent(text string) (map[string]any, error) {
	var content map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &content); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	if content == nil {
		return nil, ErrInvalidContent
	}
	return content, nil
}

// FormatContent renders content as indented JSON for editing.
func FormatContent(content map[string]any) string {
	if content == nil {
		content = map[string]any{}
	}
	b, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
