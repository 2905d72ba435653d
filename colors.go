package fragility

import (
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
)

// Color is a six hex digit sRGB colour code such as "#ffffff".
type Color string

// palette is the RdGy diverging scheme as authored, from the "Very high alert" red through white to near-black.
var palette = [...]Color{
	"#67001f",
	"#b2182b",
	"#d6604d",
	"#f4a582",
	"#fddbc7",
	"#ffffff",
	"#e0e0e0",
	"#bababa",
	"#878787",
	"#4d4d4d",
	"#1a1a1a",
}

// ParseColor validates a "#rrggbb" colour code and returns it in lower case.
func ParseColor(code string) (Color, error) {
	if len(code) != 7 || code[0] != '#' {
		return "", fmt.Errorf("%w: %q is not in #rrggbb form", ErrInvalidColor, code)
	}

	if _, err := hex.DecodeString(code[1:]); err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidColor, code, err)
	}

	return Color(strings.ToLower(code)), nil
}

// RGB returns the red, green and blue components of c. A malformed colour yields zeros.
func (c Color) RGB() (r, g, b uint8) {
	if len(c) != 7 || c[0] != '#' {
		return 0, 0, 0
	}

	raw, err := hex.DecodeString(string(c[1:]))
	if err != nil {
		return 0, 0, 0
	}

	return raw[0], raw[1], raw[2]
}

func (c Color) String() string {
	return string(c)
}

// reversed returns a reversed copy of colors, leaving colors untouched.
func reversed(colors []Color) []Color {
	out := slices.Clone(colors)
	slices.Reverse(out)

	return out
}
