package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punnatorn6420/Nokair-Platform/internal/layout"
)

func sectionIDs(h layout.HomepageConfig) []string {
	out := make([]string, len(h.Sections))
	for i, s := range h.Sections {
		out[i] = s.ID
	}
	return out
}

func threeSections() layout.HomepageConfig {
	return layout.HomepageConfig{Sections: []layout.Section{
		{ID: "a", Type: layout.SectionHero, Content: map[string]any{}},
		{ID: "b", Type: layout.SectionPromoGrid, Content: map[string]any{}},
		{ID: "c", Type: layout.SectionRichText, Content: map[string]any{}},
	}}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	l := layout.Default()

	assert.Equal(t, "/images/nokair-logo.svg", l.Header.LogoSrc)
	assert.Equal(t, "Nok Air", l.Header.LogoAlt)
	require.Len(t, l.Header.NavItems, 3)
	assert.Equal(t, layout.NavItem{Label: "เช็คอินออนไลน์", Href: "/check-in"}, l.Header.NavItems[2])
	require.NotNil(t, l.Header.CTA)
	assert.Equal(t, "/login", l.Header.CTA.Href)
	require.Len(t, l.Footer.Columns, 2)
	assert.Equal(t, "บริการลูกค้า", l.Footer.Columns[1].Title)
	assert.Equal(t, "© 2025 Nok Air. All rights reserved.", l.Footer.Copyright)
	require.Len(t, l.Homepage.Sections, 1)
	hero := l.Homepage.Sections[0].Hero()
	assert.Equal(t, "บินสบายไปกับนกแอร์", hero.Title)
	assert.Equal(t, "/images/home-hero.png", hero.Image)
}

func TestClone_IsDeep(t *testing.T) {
	t.Parallel()

	a := layout.Default()
	b := layout.Clone(a)

	b.Header.NavItems[0].Label = "x"
	b.Header.CTA.Label = "x"
	b.Footer.Columns[0].Links[0].Label = "x"
	b.Homepage.Sections[0].Content["title"] = "x"
	b.Homepage.Sections[0].Content["actions"].([]any)[0].(map[string]any)["label"] = "x"

	assert.Equal(t, layout.Default(), a)
}

func TestNewSection(t *testing.T) {
	t.Parallel()

	for _, kind := range layout.TemplateKinds {
		s, err := layout.NewSection(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, s.Type)
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Content)
	}

	hero, _ := layout.NewSection(layout.SectionHero)
	assert.Equal(t, []layout.Link{
		{Label: "จองเที่ยวบิน", Href: "/booking"},
		{Label: "ดูโปรโมชั่น", Href: "/promo"},
	}, hero.Hero().Actions)

	promo, _ := layout.NewSection(layout.SectionPromoGrid)
	require.Len(t, promo.PromoGrid().Items, 1)
	assert.Equal(t, "ใหม่", promo.PromoGrid().Items[0].Badge)

	text, _ := layout.NewSection(layout.SectionRichText)
	assert.Equal(t, "<p>เนื้อหาที่ต้องการแสดงผล</p>", text.RichText().Body)
	assert.Equal(t, "html", text.RichText().Format)

	_, err := layout.NewSection("carousel")
	require.ErrorIs(t, err, layout.ErrUnknownTemplate)
}

func TestTemplates_FreshIDs(t *testing.T) {
	t.Parallel()

	a := layout.Templates()
	b := layout.Templates()

	require.Len(t, a, 3)
	for i := range a {
		assert.NotEqual(t, a[i].ID, b[i].ID)
	}
}

func TestAddSection_AppendsAtEnd(t *testing.T) {
	t.Parallel()

	h := threeSections()
	s, _ := layout.NewSection(layout.SectionHero)

	h.AddSection(s)

	assert.Equal(t, []string{"a", "b", "c", s.ID}, sectionIDs(h))
}

func TestRemoveSection_KeepsOrder(t *testing.T) {
	t.Parallel()

	h := threeSections()

	require.NoError(t, h.RemoveSection("b"))
	assert.Equal(t, []string{"a", "c"}, sectionIDs(h))
	require.ErrorIs(t, h.RemoveSection("b"), layout.ErrSectionNotFound)
	assert.Equal(t, []string{"a", "c"}, sectionIDs(h))
}

func TestUpdateSection(t *testing.T) {
	t.Parallel()

	h := threeSections()

	err := h.UpdateSection("b", layout.Section{ID: "ignored", Type: "promo_grid", Variant: "dark"})
	require.NoError(t, err)

	got, ok := h.Find("b")
	require.True(t, ok)
	assert.Equal(t, "dark", got.Variant)
	assert.NotNil(t, got.Content)
	assert.Equal(t, []string{"a", "b", "c"}, sectionIDs(h))

	require.ErrorIs(t, h.UpdateSection("zzz", layout.Section{}), layout.ErrSectionNotFound)
}

func TestMoveSection(t *testing.T) {
	t.Parallel()

	h := threeSections()

	require.NoError(t, h.MoveSection("c", 0))
	assert.Equal(t, []string{"c", "a", "b"}, sectionIDs(h))
	require.NoError(t, h.MoveSection("c", 10))
	assert.Equal(t, []string{"a", "b", "c"}, sectionIDs(h))
	require.ErrorIs(t, h.MoveSection("z", 0), layout.ErrSectionNotFound)
}

func TestSetCTA_DefaultsMissingHalf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label, href string
		want        layout.CTA
	}{
		{"Sign in", "/signin", layout.CTA{Label: "Sign in", Href: "/signin"}},
		{"Sign in", "", layout.CTA{Label: "Sign in", Href: "/login"}},
		{"", "/signin", layout.CTA{Label: "เข้าสู่ระบบ", Href: "/signin"}},
	}

	for _, tt := range tests {
		l := layout.Default()
		l.Header.CTA = nil
		l.SetCTA(tt.label, tt.href)
		require.NotNil(t, l.Header.CTA)
		assert.Equal(t, tt.want, *l.Header.CTA)
	}
}

func TestParseContent(t *testing.T) {
	t.Parallel()

	content, err := layout.ParseContent(`{"title":"x","items":[1]}`)
	require.NoError(t, err)
	assert.Equal(t, "x", content["title"])

	for _, bad := range []string{"", "{", "[1,2]", "null", `"s"`} {
		_, err := layout.ParseContent(bad)
		require.ErrorIs(t, err, layout.ErrInvalidContent, "input %q", bad)
	}
	assert.Equal(t, "JSON ไม่ถูกต้อง ตรวจสอบรูปแบบอีกครั้ง", layout.ErrInvalidContent.Error())
}

func TestFormatContent_RoundTrips(t *testing.T) {
	t.Parallel()

	s, _ := layout.NewSection(layout.SectionPromoGrid)

	parsed, err := layout.ParseContent(layout.FormatContent(s.Content))
	require.NoError(t, err)
	assert.Equal(t, s.Content, parsed)
	assert.Equal(t, "{}", layout.FormatContent(nil))
}

func TestSectionContent_WrongTypesReadEmpty(t *testing.T) {
	t.Parallel()

	s := layout.Section{Type: layout.SectionHero, Content: map[string]any{
		"title":   12,
		"actions": []any{"x", map[string]any{"href": "/no-label"}, map[string]any{"label": "ok"}},
	}}

	hero := s.Hero()
	assert.Empty(t, hero.Title)
	assert.Equal(t, []layout.Link{{Label: "ok"}}, hero.Actions)
}
