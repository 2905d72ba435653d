package fragility

import (
	"fmt"
	"slices"
)

// Level is one of the eleven ordered fragility states.
type Level string

const (
	LevelVerySustainable Level = "Very sustainable" // LevelVerySustainable is the most sustainable state
	LevelSustainable     Level = "Sustainable"      // LevelSustainable represents a sustainable state
	LevelMoreStable      Level = "More stable"      // LevelMoreStable represents a more than stable state
	LevelStable          Level = "Stable"           // LevelStable represents a stable state
	LevelLessStable      Level = "Less stable"      // LevelLessStable represents a less than stable state
	LevelWarning         Level = "Warning"          // LevelWarning represents the first warning state
	LevelElevatedWarning Level = "Elevated warning" // LevelElevatedWarning represents an elevated warning state
	LevelHighWarning     Level = "High warning"     // LevelHighWarning represents a high warning state
	LevelAlert           Level = "Alert"            // LevelAlert represents the first alert state
	LevelHighAlert       Level = "High alert"       // LevelHighAlert represents a high alert state
	LevelVeryHighAlert   Level = "Very high alert"  // LevelVeryHighAlert is the most severe state
)

var levels = [...]Level{
	LevelVerySustainable,
	LevelSustainable,
	LevelMoreStable,
	LevelStable,
	LevelLessStable,
	LevelWarning,
	LevelElevatedWarning,
	LevelHighWarning,
	LevelAlert,
	LevelHighAlert,
	LevelVeryHighAlert,
}

// ParseLevel maps a level name from external data onto a Level.
// Matching is exact: "stable" is not "Stable", and a near miss is reported rather than guessed at.
func ParseLevel(name string) (Level, error) {
	l := Level(name)
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}

	return l, nil
}

// Valid reports whether l is one of the eleven declared levels.
func (l Level) Valid() bool {
	return l.Index() >= 0
}

// Index returns the position of l on the severity axis, 0 being "Very sustainable", or -1 for an unknown level.
func (l Level) Index() int {
	return slices.Index(levels[:], l)
}

func (l Level) String() string {
	return string(l)
}
