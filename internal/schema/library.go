package schema

import "github.com/google/uuid"

// Default class tokens applied by the component library.
const (
	ButtonDefaultClassName     = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium bg-primary text-primary-foreground hover:bg-primary/90 h-9 px-4 py-2"
	BadgeDefaultClassName      = "inline-flex items-center rounded-full border px-2.5 py-0.5 text-xs font-semibold border-transparent bg-primary text-primary-foreground"
	CardDefaultClassName       = "rounded-xl border bg-card text-card-foreground shadow"
	NavigationDefaultClassName = "relative z-10 flex justify-center"
	HeroDefaultClassName       = "bg-gradient-to-r from-yellow-100 to-white"
)

// LibraryEntry is one draggable item in the builder's component library.
type LibraryEntry struct {
	Type        ComponentType
	Label       string
	Description string
	Defaults    Props
}

var library = []LibraryEntry{
	{
		Type:        TypeHero,
		Label:       "Hero",
		Description: "หัวเรื่องพร้อมคำอธิบายสำหรับหน้าหลัก",
		Defaults: Props{
			PropTitle:       "สร้าง Landing Page ได้ทันที",
			PropDescription: "ลากวาง component แล้วดู preview จริงแบบ realtime",
			PropLabel:       "เริ่มต้น",
			PropClassName:   HeroDefaultClassName,
		},
	},
	{
		Type:        TypeCard,
		Label:       "Card",
		Description: "บัตรข้อมูลพร้อมหัวข้อและรายละเอียด",
		Defaults: Props{
			PropTitle:       "การ์ดใหม่",
			PropDescription: "เนื้อหารายละเอียด หรือคำอธิบายสั้น ๆ",
			PropClassName:   CardDefaultClassName,
		},
	},
	{
		Type:        TypeButton,
		Label:       "Button",
		Description: "ปุ่มกดแอคชัน",
		Defaults: Props{
			PropLabel:     "Action",
			PropVariant:   "default",
			PropSize:      "default",
			PropClassName: ButtonDefaultClassName,
		},
	},
	{
		Type:        TypeBadge,
		Label:       "Badge",
		Description: "แสดงสถานะหรือหมวดหมู่",
		Defaults: Props{
			PropLabel:     "New",
			PropVariant:   "default",
			PropClassName: BadgeDefaultClassName,
		},
	},
	{
		Type:        TypeNavigation,
		Label:       "Navigation",
		Description: "เมนูนำทางอย่างง่าย",
		Defaults: Props{
			PropLabel:     "เมนูหลัก",
			PropHref:      "#",
			PropClassName: NavigationDefaultClassName,
		},
	},
}

// Library returns the component library. Callers get their own copy of
// every default bag.
func Library() []LibraryEntry {
	out := make([]LibraryEntry, len(library))
	for i, e := range library {
		e.Defaults = e.Defaults.Clone()
		out[i] = e
	}
	return out
}

// LibraryItem looks up the library entry for t.
func LibraryItem(t ComponentType) (LibraryEntry, bool) {
	for _, e := range library {
		if e.Type == t {
			e.Defaults = e.Defaults.Clone()
			return e, true
		}
	}
	return LibraryEntry{}, false
}

// NewInstance creates an instance of t with a fresh id and a copy of the
// library defaults. Unknown types get an empty property bag.
func NewInstance(t ComponentType) ComponentInstance {
	props := Props{}
	if e, ok := LibraryItem(t); ok {
		props = e.Defaults
	}
	return ComponentInstance{
		ID:    uuid.NewString(),
		Type:  t,
		Props: props,
	}
}

// StylePreset is a named group of class tokens offered by the properties
// panel.
type StylePreset struct {
	Label   string
	Options []StyleOption
}

// StyleOption is one selectable token set.
type StyleOption struct {
	Label string
	Value string
}

// ClassPresets are merged into a component's className.
var ClassPresets = []StylePreset{
	{
		Label: "พื้นหลัง (bg-*)",
		Options: []StyleOption{
			{"White", "bg-white"},
			{"Muted", "bg-muted"},
			{"Yellow 50", "bg-yellow-50"},
			{"Sky 50", "bg-sky-50"},
			{"Slate 100", "bg-slate-100"},
			{"Yellow 400", "bg-yellow-400"},
		},
	},
	{
		Label: "ตัวอักษร (text-*)",
		Options: []StyleOption{
			{"Foreground", "text-foreground"},
			{"Muted", "text-muted-foreground"},
			{"Slate 900", "text-slate-900"},
			{"Yellow 700", "text-yellow-700"},
			{"Sky 600", "text-sky-600"},
			{"White", "text-white"},
		},
	},
	{
		Label: "เส้นขอบ (border-*)",
		Options: []StyleOption{
			{"Border default", "border"},
			{"Border Slate 200", "border border-slate-200"},
			{"Border Slate 300", "border border-slate-300"},
			{"Border Yellow 300", "border border-yellow-300"},
			{"Dotted Slate", "border border-dashed border-slate-200"},
			{"Transparent", "border border-transparent"},
		},
	},
}

// BackgroundPresets are page background tokens offered by the builder.
var BackgroundPresets = []StylePreset{
	{
		Label: "Tailwind colors",
		Options: []StyleOption{
			{"Muted", "bg-muted/30"},
			{"White", "bg-white"},
			{"Slate 50", "bg-slate-50"},
			{"Zinc 100", "bg-zinc-100"},
		},
	},
	{
		Label: "Gradients",
		Options: []StyleOption{
			{"Sunrise", "bg-gradient-to-b from-yellow-50 via-white to-sky-50"},
			{"Skyline", "bg-gradient-to-br from-sky-50 via-white to-blue-50"},
			{"Warm glow", "bg-gradient-to-br from-amber-50 via-white to-orange-50"},
			{"Muted glass", "bg-gradient-to-b from-muted/50 via-white to-muted/40"},
		},
	},
}
