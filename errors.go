package fragility

import "errors"

// ErrUnknownLevel is returned when a lookup key is not one of the declared levels. Callers decide whether to render a
// placeholder or fail; the scale never substitutes a colour.
var ErrUnknownLevel = errors.New("unknown fragility level")

// ErrUnknownColor is returned by an inverse lookup for a colour outside the scale's range.
var ErrUnknownColor = errors.New("colour not in scale range")

// ErrUnknownLabel is returned when parsing a label that is not one of the four declared labels.
var ErrUnknownLabel = errors.New("unknown fragility label")

// ErrInvalidColor is returned for a colour code that is not "#rrggbb".
var ErrInvalidColor = errors.New("invalid colour code")

// ErrScaleMismatch is returned when an ordinal scale's domain and range differ in length.
var ErrScaleMismatch = errors.New("scale domain and range lengths differ")

// ErrDuplicateLevel is returned when a level appears more than once in a scale's domain.
var ErrDuplicateLevel = errors.New("duplicate level in scale domain")

// ErrDuplicateColor is returned when a colour appears more than once in a scale's range.
var ErrDuplicateColor = errors.New("duplicate colour in scale range")
