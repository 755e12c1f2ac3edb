package schema

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
)

// Container node types of the older tree-shaped schema. Their children are
// flattened into the component list.
var legacyContainers = map[string]bool{"section": true, "stack": true}

// Normalize decodes raw and reconciles it into a complete PageSchema for
// route. It never fails: empty or malformed input yields Preset(route).
func Normalize(raw []byte, route string, log logger.Logger) PageSchema {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Preset(route)
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn("Malformed page schema JSON, using preset",
			logger.String("route", route),
			logger.Error(err),
		)
		return Preset(route)
	}
	return NormalizeValue(v, route, log)
}

// NormalizeValue reconciles an already decoded JSON value. The route is
// always forced to route.
func NormalizeValue(v any, route string, log logger.Logger) PageSchema {
	obj, ok := v.(map[string]any)
	if !ok {
		if v != nil {
			log.Warn("Page schema is not an object, using preset",
				logger.String("route", route),
			)
		}
		return Preset(route)
	}

	out := PageSchema{
		Route:  route,
		Layout: LayoutStack,
	}
	if l, _ := obj["layout"].(string); LayoutHint(l) == LayoutSection {
		out.Layout = LayoutSection
	}
	if bg, isString := obj["background"].(string); isString {
		out.Background = bg
	}

	n := &normalizer{route: route, log: log, seen: map[string]bool{}}

	switch comps := obj["components"].(type) {
	case []any:
		out.Components = n.components(comps)
	default:
		if children, isArray := obj["children"].([]any); isArray {
			out.Components = n.legacyChildren(children)
			break
		}
		if _, present := obj["components"]; present {
			log.Warn("Page schema components is not an array, using preset components",
				logger.String("route", route),
			)
		}
		out.Components = Preset(route).Components
	}

	return out
}

type normalizer struct {
	route string
	log   logger.Logger
	seen  map[string]bool
}

func (n *normalizer) components(items []any) []ComponentInstance {
	out := make([]ComponentInstance, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			n.drop(i, "not an object")
			continue
		}
		typ, _ := obj["type"].(string)
		if typ == "" {
			n.drop(i, "missing type")
			continue
		}
		out = append(out, ComponentInstance{
			ID:    n.id(obj["id"]),
			Type:  ComponentType(typ),
			Props: stringProps(obj["props"]),
		})
	}
	return out
}

// legacyChildren flattens the older {children: [{type, props, className,
// children}]} tree. A node-level className is merged into props.className.
func (n *normalizer) legacyChildren(items []any) []ComponentInstance {
	out := make([]ComponentInstance, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			n.drop(i, "not an object")
			continue
		}
		typ, _ := obj["type"].(string)
		if typ == "" {
			n.drop(i, "missing type")
			continue
		}
		if legacyContainers[typ] {
			children, _ := obj["children"].([]any)
			out = append(out, n.legacyChildren(children)...)
			continue
		}

		props := stringProps(obj["props"])
		nodeClass, _ := obj["className"].(string)
		if className := MergeClassNames(props[PropClassName], nodeClass); className != "" {
			props[PropClassName] = className
		}
		out = append(out, ComponentInstance{
			ID:    n.id(obj["id"]),
			Type:  ComponentType(typ),
			Props: props,
		})
	}
	return out
}

func (n *normalizer) id(v any) string {
	id, _ := v.(string)
	if id == "" || n.seen[id] {
		id = uuid.NewString()
	}
	n.seen[id] = true
	return id
}

func (n *normalizer) drop(index int, reason string) {
	n.log.Warn("Dropping invalid component",
		logger.String("route", n.route),
		logger.Int("index", index),
		logger.String("reason", reason),
	)
}

// stringProps keeps string values only. Unknown keys are carried through.
func stringProps(v any) Props {
	out := Props{}
	obj, ok := v.(map[string]any)
	if !ok {
		return out
	}
	for k, val := range obj {
		if s, isString := val.(string); isString {
			out[k] = s
		}
	}
	return out
}
