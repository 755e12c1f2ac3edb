package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punnatorn6420/Nokair-Platform/internal/schema"
)

func ids(s schema.PageSchema) []string {
	out := make([]string, len(s.Components))
	for i, c := range s.Components {
		out[i] = c.ID
	}
	return out
}

func threeComponents() schema.PageSchema {
	s := schema.DefaultSchema("promo")
	s.Components = []schema.ComponentInstance{
		{ID: "a", Type: schema.TypeHero, Props: schema.Props{}},
		{ID: "b", Type: schema.TypeCard, Props: schema.Props{}},
		{ID: "c", Type: schema.TypeButton, Props: schema.Props{}},
	}
	return s
}

func TestDefaultSchema(t *testing.T) {
	t.Parallel()

	s := schema.DefaultSchema("about")

	assert.Equal(t, "about", s.Route)
	assert.Equal(t, schema.LayoutStack, s.Layout)
	assert.Equal(t, "bg-muted/30", s.Background)
	require.Len(t, s.Components, 1)
	assert.Equal(t, "hero", s.Components[0].ID)
	assert.Equal(t, schema.TypeHero, s.Components[0].Type)
	assert.Equal(t, "สร้าง Landing Page ได้ทันที", s.Components[0].Props[schema.PropTitle])
	assert.Equal(t, "bg-white", s.Components[0].Props[schema.PropClassName])
}

func TestPreset_ReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	a := schema.Preset("home")
	a.Components[0].Props[schema.PropLabel] = "changed"
	a.Components = a.Components[:1]

	b := schema.Preset("home")
	assert.Len(t, b.Components, 3)
	assert.Equal(t, "เมนูหลัก", b.Components[0].Props[schema.PropLabel])
	assert.True(t, schema.HasPreset("promo"))
	assert.False(t, schema.HasPreset("unknown"))
	assert.Equal(t, schema.DefaultSchema("unknown"), schema.Preset("unknown"))
}

func TestNewInstance_UsesLibraryDefaults(t *testing.T) {
	t.Parallel()

	for _, typ := range schema.Types {
		t.Run(string(typ), func(t *testing.T) {
			t.Parallel()

			entry, ok := schema.LibraryItem(typ)
			require.True(t, ok)

			inst := schema.NewInstance(typ)
			assert.NotEmpty(t, inst.ID)
			assert.Equal(t, typ, inst.Type)
			assert.Equal(t, entry.Defaults, inst.Props)

			inst.Props[schema.PropLabel] = "mutated"
			again, _ := schema.LibraryItem(typ)
			assert.NotEqual(t, "mutated", again.Defaults[schema.PropLabel])
		})
	}
}

func TestNewInstance_UnknownTypeHasEmptyProps(t *testing.T) {
	t.Parallel()

	inst := schema.NewInstance("carousel")

	assert.NotEmpty(t, inst.ID)
	assert.Empty(t, inst.Props)
	assert.NotNil(t, inst.Props)
}

func TestAppend_AddsAtEndWithUniqueID(t *testing.T) {
	t.Parallel()

	s := schema.DefaultSchema("home")
	before := ids(s)

	inst := schema.NewInstance(schema.TypeBadge)
	s.Append(inst)

	require.Len(t, s.Components, len(before)+1)
	assert.Equal(t, before, ids(s)[:len(before)])
	last := s.Components[len(s.Components)-1]
	assert.Equal(t, inst.ID, last.ID)
	assert.NotContains(t, before, last.ID)
	assert.Equal(t, "New", last.Props[schema.PropLabel])
}

func TestRemove_KeepsOrder(t *testing.T) {
	t.Parallel()

	s := threeComponents()

	assert.True(t, s.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, ids(s))
	assert.False(t, s.Remove("missing"))
	assert.Equal(t, []string{"a", "c"}, ids(s))
}

func TestRemove_DoesNotAliasOriginal(t *testing.T) {
	t.Parallel()

	s := threeComponents()
	snapshot := s.Components

	s.Remove("a")

	assert.Equal(t, "a", snapshot[0].ID)
}

func TestUpdateProps_ReplacesWholeBag(t *testing.T) {
	t.Parallel()

	s := threeComponents()
	s.Components[1].Props = schema.Props{schema.PropTitle: "old", schema.PropDescription: "old"}

	ok := s.UpdateProps("b", schema.Props{schema.PropTitle: "new"})

	require.True(t, ok)
	got, _ := s.Find("b")
	assert.Equal(t, schema.Props{schema.PropTitle: "new"}, got.Props)
	assert.False(t, s.UpdateProps("missing", schema.Props{}))
}

func TestMove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		id    string
		index int
		want  []string
		ok    bool
	}{
		{name: "to front", id: "c", index: 0, want: []string{"c", "a", "b"}, ok: true},
		{name: "to end", id: "a", index: 2, want: []string{"b", "c", "a"}, ok: true},
		{name: "clamped high", id: "a", index: 99, want: []string{"b", "c", "a"}, ok: true},
		{name: "clamped low", id: "b", index: -3, want: []string{"b", "a", "c"}, ok: true},
		{name: "missing", id: "z", index: 0, want: []string{"a", "b", "c"}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := threeComponents()
			assert.Equal(t, tt.ok, s.Move(tt.id, tt.index))
			assert.Equal(t, tt.want, ids(s))
		})
	}
}

func TestMergeClassNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base, additions, want string
	}{
		{"", "bg-white", "bg-white"},
		{"rounded border", "border border-slate-200", "rounded border border-slate-200"},
		{"  p-4  ", "  ", "p-4"},
		{"a", "b b a c", "a b c"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, schema.MergeClassNames(tt.base, tt.additions))
	}
}

func TestEnsureRoute(t *testing.T) {
	t.Parallel()

	s := schema.DefaultSchema("x")
	out := schema.EnsureRoute(s, "y")

	assert.Equal(t, "y", out.Route)
	assert.Equal(t, "x", s.Route)
}

func TestPageSchema_JSONShape(t *testing.T) {
	t.Parallel()

	s := schema.DefaultSchema("home")
	s.Background = ""

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "background")
	assert.Contains(t, string(raw), `"layout":"stack"`)
	assert.Contains(t, string(raw), `"components":[`)
}

func TestProps_Get(t *testing.T) {
	t.Parallel()

	p := schema.Props{schema.PropLabel: "", schema.PropTitle: "บินสบาย"}

	assert.Equal(t, "บินสบาย", p.Get(schema.PropTitle, "x"))
	assert.Empty(t, p.Get(schema.PropLabel, "Button"))
	assert.Equal(t, "Button", p.Get(schema.PropHref, "Button"))
	assert.Equal(t, "Button", schema.Props(nil).Get(schema.PropLabel, "Button"))
}
