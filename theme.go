package rwui

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that marshals to and from YAML as a
// time.ParseDuration string ("200ms", "1.5s").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("decode duration: %w", err)
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Theme holds the visual defaults applied to widgets at construction time.
// Geometry animates over MoveDuration; the highlight overlay animates over the
// shorter FadeDuration so hover and press feedback feels snappier than
// positional moves.
type Theme struct {
	// Background colour for widgets that do not specify one.
	BackColour Color `yaml:"backColour"`
	// Colour of widget label text.
	LabelColour Color `yaml:"labelColour"`
	// Amount added to (or removed from) the overlay intensity target on each
	// hover or press transition.
	OverlayStep float64 `yaml:"overlayStep"`
	// Animation duration for position and size changes.
	MoveDuration Duration `yaml:"moveDuration"`
	// Animation duration for overlay intensity changes.
	FadeDuration Duration `yaml:"fadeDuration"`
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() *Theme {
	return &Theme{
		BackColour:   Color{R: 0.25, G: 0.25, B: 0.3, A: 1},
		LabelColour:  Color{R: 0.78, G: 0, B: 0.78, A: 1},
		OverlayStep:  0.1,
		MoveDuration: Duration(200 * time.Millisecond),
		FadeDuration: Duration(100 * time.Millisecond),
	}
}

// LoadTheme parses YAML theme data. Omitted keys keep their default values.
func LoadTheme(data []byte) (*Theme, error) {
	theme := DefaultTheme()
	if err := yaml.Unmarshal(data, theme); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	return theme, nil
}
