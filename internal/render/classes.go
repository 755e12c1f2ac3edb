package render

import "strings"

// ClassNames joins style tokens, skipping empty ones.
func ClassNames(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

const buttonBase = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-all disabled:pointer-events-none disabled:opacity-50 shrink-0 outline-none focus-visible:ring-2 focus-visible:ring-ring/50"

var buttonVariants = map[string]string{
	"default":     "bg-primary text-primary-foreground hover:bg-primary/90",
	"destructive": "bg-destructive text-white hover:bg-destructive/90",
	"outline":     "border bg-background shadow-xs hover:bg-accent hover:text-accent-foreground",
	"secondary":   "bg-secondary text-secondary-foreground hover:bg-secondary/80",
	"ghost":       "hover:bg-accent hover:text-accent-foreground",
	"link":        "text-primary underline-offset-4 hover:underline",
}

var buttonSizes = map[string]string{
	"default": "h-9 px-4 py-2",
	"sm":      "h-8 rounded-md gap-1.5 px-3",
	"lg":      "h-10 rounded-md px-6",
	"icon":    "size-9",
	"icon-sm": "size-8",
	"icon-lg": "size-10",
}

// ButtonClasses resolves a button's variant and size to class tokens.
// Unknown values use the default style.
func ButtonClasses(variant, size, className string) string {
	v, ok := buttonVariants[variant]
	if !ok {
		v = buttonVariants["default"]
	}
	s, ok := buttonSizes[size]
	if !ok {
		s = buttonSizes["default"]
	}
	return ClassNames(buttonBase, v, s, className)
}

const badgeBase = "inline-flex items-center rounded-full border px-2.5 py-0.5 text-xs font-semibold transition-colors"

var badgeVariants = map[string]string{
	"default":     "border-transparent bg-primary text-primary-foreground hover:bg-primary/80",
	"secondary":   "border-transparent bg-secondary text-secondary-foreground hover:bg-secondary/80",
	"destructive": "border-transparent bg-destructive text-destructive-foreground hover:bg-destructive/80",
	"outline":     "text-foreground",
}

// BadgeVariant coerces v to one of the badge variants.
func BadgeVariant(v string) string {
	if _, ok := badgeVariants[v]; ok {
		return v
	}
	return "default"
}

// BadgeClasses resolves a badge variant to class tokens.
func BadgeClasses(variant, className string) string {
	return ClassNames(badgeBase, badgeVariants[BadgeVariant(variant)], className)
}
