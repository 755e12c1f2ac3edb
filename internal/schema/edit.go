package schema

import "strings"

// Append adds inst at the end of the page.
func (s *PageSchema) Append(inst ComponentInstance) {
	s.Components = append(s.Components, inst)
}

// Find returns the instance with id.
func (s *PageSchema) Find(id string) (ComponentInstance, bool) {
	for _, c := range s.Components {
		if c.ID == id {
			return c, true
		}
	}
	return ComponentInstance{}, false
}

// UpdateProps replaces the whole property bag of id. It reports false when
// no instance has that id.
func (s *PageSchema) UpdateProps(id string, props Props) bool {
	for i := range s.Components {
		if s.Components[i].ID == id {
			s.Components[i].Props = props.Clone()
			return true
		}
	}
	return false
}

// Remove filters out id, keeping the order of everything else.
func (s *PageSchema) Remove(id string) bool {
	kept := s.Components[:0:0]
	removed := false
	for _, c := range s.Components {
		if c.ID == id {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	s.Components = kept
	return removed
}

// Move places id at index, clamped to the valid range.
func (s *PageSchema) Move(id string, index int) bool {
	from := -1
	for i, c := range s.Components {
		if c.ID == id {
			from = i
			break
		}
	}
	if from < 0 {
		return false
	}

	inst := s.Components[from]
	rest := make([]ComponentInstance, 0, len(s.Components))
	rest = append(rest, s.Components[:from]...)
	rest = append(rest, s.Components[from+1:]...)

	if index < 0 {
		index = 0
	}
	if index > len(rest) {
		index = len(rest)
	}

	out := make([]ComponentInstance, 0, len(s.Components))
	out = append(out, rest[:index]...)
	out = append(out, inst)
	out = append(out, rest[index:]...)
	s.Components = out
	return true
}

// SetBackground sets the page background. An empty token clears it.
func (s *PageSchema) SetBackground(token string) {
	s.Background = strings.TrimSpace(token)
}

// MergeClassNames appends the tokens of additions to base, skipping tokens
// already present. Order is first-seen.
func MergeClassNames(base, additions string) string {
	merged := strings.Fields(base)
	seen := make(map[string]struct{}, len(merged))
	for _, tok := range merged {
		seen[tok] = struct{}{}
	}
	for _, tok := range strings.Fields(additions) {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		merged = append(merged, tok)
	}
	return strings.Join(merged, " ")
}
