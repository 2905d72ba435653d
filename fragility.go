// Package fragility provides the constants behind the energy and state fragility visualisation: the coarse labels,
// the eleven ordered fragility levels, the diverging colour palette and the ordinal scale binding each level to a
// colour.
//
// All exported collections are returned as fresh copies, so nothing a caller does to a returned slice can reach the
// tables the scale was built from.
package fragility

import "slices"

// Labels returns the four coarse category labels in display order.
func Labels() []Label {
	return slices.Clone(labels[:])
}

// Levels returns the eleven fragility levels, most sustainable first.
func Levels() []Level {
	return slices.Clone(levels[:])
}

// Colors returns the palette in the order it was authored: darkest red ("Very high alert" end) first, through white,
// to near-black. This is the raw palette, not the level-aligned range - use DefaultScale().Range() for that.
func Colors() []Color {
	return slices.Clone(palette[:])
}

// ScaleColor returns the colour bound to level by the default scale.
// An unrecognised level returns an error wrapping ErrUnknownLevel and an empty Color.
func ScaleColor(level Level) (Color, error) {
	return defaultScale.ColorOf(level)
}

// DefaultScale returns the process-wide level to colour scale.
func DefaultScale() *Scale {
	return defaultScale
}

// defaultScale is built once during package initialisation and never written to again.
var defaultScale = mustOrdinal(levels[:], reversed(palette[:]))
