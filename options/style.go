package options

import "fmt"

// OutputStyle is the formatting mode for generated CSS. The ordinals match
// the SASS_STYLE_* constants of libsass.
type OutputStyle int

const (
	Nested OutputStyle = iota
	Expanded
	Compact
	Compressed
)

var styleLabels = []struct {
	label string
	value OutputStyle
}{
	{"nested", Nested},
	{"expanded", Expanded},
	{"compact", Compact},
	{"compressed", Compressed},
}

// Styles returns the known output style labels in ordinal order.
func Styles() []string {
	labels := make([]string, 0, len(styleLabels))
	for _, s := range styleLabels {
		labels = append(labels, s.label)
	}
	return labels
}

// ParseOutputStyle maps a label to its output style. The match is exact:
// "nest" or "Nested" are rejected.
func ParseOutputStyle(label string) (OutputStyle, error) {
	for _, s := range styleLabels {
		if s.label == label {
			return s.value, nil
		}
	}
	return 0, fmt.Errorf("%w: invalid output_style %q", ErrInvalidOption, label)
}

// Label returns the canonical label of the style, or ErrInvariantViolation
// when the value has no label.
func (s OutputStyle) Label() (string, error) {
	for _, l := range styleLabels {
		if l.value == s {
			return l.label, nil
		}
	}
	return "", fmt.Errorf("%w: output_style is invalid (%d)", ErrInvariantViolation, int(s))
}

func (s OutputStyle) String() string {
	label, err := s.Label()
	if err != nil {
		return fmt.Sprintf("OutputStyle(%d)", int(s))
	}
	return label
}
