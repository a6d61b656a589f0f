package logging

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Spec is a base level plus per-component overrides, written as
// "<base>[,<component>=<level>]...", for example
// "warn,commit=debug,vlan=trace".
type Spec struct {
	BaseLevel  Level
	Components map[string]Level
}

// ParseSpec parses a log spec. The empty string means info with no
// overrides. A bare level is only accepted as the first element.
func ParseSpec(s string) (Spec, error) {
	spec := Spec{
		BaseLevel:  LevelInfo,
		Components: make(map[string]Level),
	}

	for i, part := range strings.Split(strings.TrimSpace(s), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		component, levelStr, isOverride := strings.Cut(part, "=")
		if !isOverride {
			if i != 0 {
				return spec, fmt.Errorf("base level %q must be first in spec", part)
			}
			level, err := ParseLevel(part)
			if err != nil {
				return spec, err
			}
			spec.BaseLevel = level
			continue
		}

		component = strings.TrimSpace(component)
		if component == "" {
			return spec, fmt.Errorf("empty component name in %q", part)
		}
		level, err := ParseLevel(levelStr)
		if err != nil {
			return spec, fmt.Errorf("invalid level for component %q: %w", component, err)
		}
		spec.Components[component] = level
	}

	return spec, nil
}

// LevelFor returns the level for component, falling back to the base
// level.
func (s *Spec) LevelFor(component string) Level {
	if level, ok := s.Components[component]; ok {
		return level
	}
	return s.BaseLevel
}

// String renders the spec in parseable form with components sorted.
func (s *Spec) String() string {
	parts := []string{s.BaseLevel.String()}
	for _, component := range slices.Sorted(maps.Keys(s.Components)) {
		parts = append(parts, component+"="+s.Components[component].String())
	}
	return strings.Join(parts, ",")
}

// WithComponents returns the spec string base followed by one
// override per entry of components. It merges the [logging.components]
// table of the config file into a single spec.
func WithComponents(base string, components map[string]string) string {
	parts := []string{}
	if b := strings.TrimSpace(base); b != "" {
		parts = append(parts, b)
	}
	for _, c := range slices.Sorted(maps.Keys(components)) {
		parts = append(parts, c+"="+components[c])
	}
	return strings.Join(parts, ",")
}
