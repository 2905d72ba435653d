package fragility

import "fmt"

// Label is a coarse grouping shown alongside the scale. Labels have no defined relationship to Levels.
type Label string

const (
	LabelAlert       Label = "ALERT"
	LabelWarning     Label = "WARNING"
	LabelStable      Label = "STABLE"
	LabelSustainable Label = "SUSTAINABLE"
)

var labels = [...]Label{
	LabelAlert,
	LabelWarning,
	LabelStable,
	LabelSustainable,
}

// ParseLabel maps an exact label name onto a Label.
func ParseLabel(name string) (Label, error) {
	for _, l := range labels {
		if string(l) == name {
			return l, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLabel, name)
}

func (l Label) String() string {
	return string(l)
}
