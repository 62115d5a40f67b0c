package document

import (
	"regexp"

	"github.com/lucidkit/lucidkit/pkg/errors"
)

var (
	// colorPattern matches #RGB and #RRGGBB hexadecimal color codes.
	colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)

	// idPattern matches valid entity identifiers: 1-36 characters,
	// alphanumeric plus '-', '_', '.', '~'.
	idPattern = regexp.MustCompile(`^[a-zA-Z0-9\-_.~]{1,36}$`)
)

// ValidateColor checks that c is a #RGB or #RRGGBB hexadecimal color code.
func ValidateColor(c string) error {
	if !colorPattern.MatchString(c) {
		return errors.New(errors.ErrCodeFormatViolation, "invalid color format: %q", c)
	}
	return nil
}

// ValidateID checks that id matches the identifier pattern: 1-36
// alphanumeric characters plus '-', '_', '.', '~'.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return errors.New(errors.ErrCodeFormatViolation, "invalid identifier format: %q", id)
	}
	return nil
}

// StrokeStyle is the dash pattern of a stroke.
type StrokeStyle string

// Stroke dash patterns.
const (
	StrokeSolid  StrokeStyle = "solid"
	StrokeDashed StrokeStyle = "dashed"
	StrokeDotted StrokeStyle = "dotted"
)

// Stroke defines the look of a line or a shape border.
// Zero-valued fields are omitted from serialization; an explicit zero
// width must be set through the Width pointer to survive the round trip.
type Stroke struct {
	Color string      `json:"color,omitempty"`
	Width *int        `json:"width,omitempty"`
	Style StrokeStyle `json:"style,omitempty"`
}

// DefaultStroke returns the default stroke: solid black, width 1.
func DefaultStroke() Stroke {
	return Stroke{Color: "#000000", Width: Int(1), Style: StrokeSolid}
}

// Validate checks the color format and dash pattern.
func (s Stroke) Validate() error {
	if s.Color != "" {
		if err := ValidateColor(s.Color); err != nil {
			return err
		}
	}
	switch s.Style {
	case "", StrokeSolid, StrokeDashed, StrokeDotted:
		return nil
	default:
		return errors.New(errors.ErrCodeSchemaViolation, "unknown stroke style: %q", s.Style)
	}
}

// Fill describes how a shape's interior is painted. The only fill type
// the import format currently defines is a solid color.
type Fill struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

// SolidFill returns a solid color fill.
func SolidFill(color string) Fill {
	return Fill{Type: "color", Color: color}
}

// Validate checks the fill color format.
func (f Fill) Validate() error {
	if f.Type != "color" {
		return errors.New(errors.ErrCodeSchemaViolation, "unknown fill type: %q", f.Type)
	}
	return ValidateColor(f.Color)
}

// Style defines the look of a shape: fill, border stroke, and optional
// corner rounding.
type Style struct {
	Fill     Fill    `json:"fill"`
	Stroke   *Stroke `json:"stroke,omitempty"`
	Rounding *int    `json:"rounding,omitempty"`
}

// DefaultStyle returns the default shape style: white fill with a solid
// black border.
func DefaultStyle() Style {
	stroke := DefaultStroke()
	return Style{Fill: SolidFill("#ffffff"), Stroke: &stroke}
}

// Validate checks the fill and stroke.
func (s Style) Validate() error {
	if err := s.Fill.Validate(); err != nil {
		return err
	}
	if s.Stroke != nil {
		return s.Stroke.Validate()
	}
	return nil
}
