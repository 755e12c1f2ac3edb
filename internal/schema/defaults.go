package schema

// DefaultSchema is the document used when nothing is stored for route.
func DefaultSchema(route string) PageSchema {
	return PageSchema{
		Route:      route,
		Layout:     LayoutStack,
		Background: DefaultBackground,
		Components: []ComponentInstance{
			{
				ID:   "hero",
				Type: TypeHero,
				Props: Props{
					PropTitle:       "สร้าง Landing Page ได้ทันที",
					PropDescription: "ลากวาง component แล้วดู preview จริงแบบ realtime",
					PropLabel:       "เริ่มต้น",
					PropClassName:   "bg-white",
				},
			},
		},
	}
}

var presets = map[string]PageSchema{
	"home": {
		Route:      "home",
		Layout:     LayoutStack,
		Background: "bg-gradient-to-b from-yellow-50 via-white to-sky-50",
		Components: []ComponentInstance{
			{
				ID:   "home-nav",
				Type: TypeNavigation,
				Props: Props{
					PropLabel:     "เมนูหลัก",
					PropHref:      "#",
					PropClassName: NavigationDefaultClassName,
				},
			},
			{
				ID:   "home-hero",
				Type: TypeHero,
				Props: Props{
					PropTitle:       "บินสบายไปกับนกแอร์",
					PropDescription: "จองง่าย ราคาคุ้มค่า พร้อมบริการด้วยรอยยิ้ม",
					PropLabel:       "จองเที่ยวบิน",
					PropHref:        "/booking",
					PropClassName:   HeroDefaultClassName,
				},
			},
			{
				ID:   "home-card",
				Type: TypeCard,
				Props: Props{
					PropTitle:       "เช็คอินออนไลน์",
					PropDescription: "เช็คอินล่วงหน้าได้ก่อนเดินทาง",
					PropClassName:   CardDefaultClassName,
				},
			},
		},
	},
	"promo": {
		Route:      "promo",
		Layout:     LayoutSection,
		Background: "bg-gradient-to-br from-amber-50 via-white to-orange-50",
		Components: []ComponentInstance{
			{
				ID:   "promo-badge",
				Type: TypeBadge,
				Props: Props{
					PropLabel:     "โปรโมชั่น",
					PropVariant:   "secondary",
					PropClassName: BadgeDefaultClassName,
				},
			},
			{
				ID:   "promo-card",
				Type: TypeCard,
				Props: Props{
					PropTitle:       "ตั๋วราคาพิเศษ",
					PropDescription: "ราคาพิเศษสำหรับเส้นทางในประเทศ",
					PropClassName:   CardDefaultClassName,
				},
			},
			{
				ID:   "promo-button",
				Type: TypeButton,
				Props: Props{
					PropLabel:     "ดูโปรโมชั่น",
					PropHref:      "/promo",
					PropVariant:   "default",
					PropSize:      "lg",
					PropClassName: ButtonDefaultClassName,
				},
			},
		},
	},
}

// Preset returns the built-in schema for route, or DefaultSchema. The
// result is always a fresh copy.
func Preset(route string) PageSchema {
	if p, ok := presets[route]; ok {
		return EnsureRoute(p, route)
	}
	return DefaultSchema(route)
}

// HasPreset reports whether route has a built-in schema.
func HasPreset(route string) bool {
	_, ok := presets[route]
	return ok
}
