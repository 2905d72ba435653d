package fragility

import (
	"fmt"
	"slices"
)

// Scale is an immutable ordinal mapping from a discrete domain of levels onto a range of colours of the same length.
// Every Scale is a bijection: NewOrdinal refuses duplicate levels or colours.
// A Scale is safe for concurrent use since nothing mutates it after construction.
type Scale struct {
	domain  []Level
	rng     []Color
	byLevel map[Level]int
	byColor map[Color]int
}

// Binding pairs a level with its colour, in the order used for legends.
type Binding struct {
	Level Level `json:"level"`
	Color Color `json:"color"`
}

// NewOrdinal binds domain[i] to rng[i] for every i. Both slices are copied, so later changes to the arguments do not
// affect the returned Scale.
func NewOrdinal(domain []Level, rng []Color) (*Scale, error) {
	if len(domain) != len(rng) {
		return nil, fmt.Errorf("%w: %d levels, %d colours", ErrScaleMismatch, len(domain), len(rng))
	}

	s := &Scale{
		domain:  slices.Clone(domain),
		rng:     slices.Clone(rng),
		byLevel: make(map[Level]int, len(domain)),
		byColor: make(map[Color]int, len(rng)),
	}

	for i := range s.domain {
		if _, exists := s.byLevel[s.domain[i]]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLevel, s.domain[i])
		}

		if _, exists := s.byColor[s.rng[i]]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColor, s.rng[i])
		}

		s.byLevel[s.domain[i]] = i
		s.byColor[s.rng[i]] = i
	}

	return s, nil
}

func mustOrdinal(domain []Level, rng []Color) *Scale {
	s, err := NewOrdinal(domain, rng)
	if err != nil {
		panic(fmt.Sprintf("fragility: invalid built-in scale: %v", err))
	}

	return s
}

// ColorOf returns the colour bound to level, or an error wrapping ErrUnknownLevel.
func (s *Scale) ColorOf(level Level) (Color, error) {
	i, ok := s.byLevel[level]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}

	return s.rng[i], nil
}

// LevelOf returns the level bound to color, or an error wrapping ErrUnknownColor.
func (s *Scale) LevelOf(color Color) (Level, error) {
	i, ok := s.byColor[color]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownColor, color)
	}

	return s.domain[i], nil
}

// Domain returns a copy of the scale's levels in declared order.
func (s *Scale) Domain() []Level {
	return slices.Clone(s.domain)
}

// Range returns a copy of the scale's colours; Range()[i] is the colour of Domain()[i].
func (s *Scale) Range() []Color {
	return slices.Clone(s.rng)
}

// Bindings returns every (level, colour) pair in domain order.
func (s *Scale) Bindings() []Binding {
	out := make([]Binding, len(s.domain))
	for i := range s.domain {
		out[i] = Binding{Level: s.domain[i], Color: s.rng[i]}
	}

	return out
}

// Len returns the number of levels in the scale.
func (s *Scale) Len() int {
	return len(s.domain)
}
