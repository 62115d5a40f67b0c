package document

import (
	"github.com/lucidkit/lucidkit/pkg/errors"
)

// ShapeType identifies a shape variant. The set is closed; the wire
// strings follow the import format exactly, including its spelling of
// "isocolesTriangle".
type ShapeType string

// Shape variants accepted by the import format.
const (
	ShapeRectangle        ShapeType = "rectangle"
	ShapeCircle           ShapeType = "circle"
	ShapeCloud            ShapeType = "cloud"
	ShapeDiamond          ShapeType = "diamond"
	ShapeCross            ShapeType = "cross"
	ShapeHexagon          ShapeType = "hexagon"
	ShapeOctagon          ShapeType = "octagon"
	ShapeIsocolesTriangle ShapeType = "isocolesTriangle"
	ShapeRightTriangle    ShapeType = "rightTriangle"
)

var validShapeTypes = map[ShapeType]bool{
	ShapeRectangle:        true,
	ShapeCircle:           true,
	ShapeCloud:            true,
	ShapeDiamond:          true,
	ShapeCross:            true,
	ShapeHexagon:          true,
	ShapeOctagon:          true,
	ShapeIsocolesTriangle: true,
	ShapeRightTriangle:    true,
}

// Shape is a diagram node. A shape built standalone has a nil ID until it
// is attached to a page, which allocates or registers one.
type Shape struct {
	ID          *string     `json:"id,omitempty"`
	Type        ShapeType   `json:"type"`
	BoundingBox BoundingBox `json:"boundingBox"`
	Text        string      `json:"text"`
	Style       Style       `json:"style"`
	Opacity     *int        `json:"opacity,omitempty"`
	Note        string      `json:"note,omitempty"`

	// X and Y are indent ratios used only by the cross variant, each
	// constrained to [0, 0.5].
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
}

// NewShape builds a shape of the given type. Returns SCHEMA_VIOLATION if
// typ is not one of the closed shape-type set.
func NewShape(typ ShapeType, box BoundingBox, text string) (*Shape, error) {
	if !validShapeTypes[typ] {
		return nil, errors.New(errors.ErrCodeSchemaViolation, "unknown shape type: %q", typ)
	}
	return &Shape{
		Type:        typ,
		BoundingBox: box,
		Text:        text,
		Style:       DefaultStyle(),
	}, nil
}

// NewRectangle builds a rectangle at (x, y) with the given size.
func NewRectangle(x, y, w, h float64, text string) *Shape {
	return mustShape(ShapeRectangle, BoundingBox{X: x, Y: y, W: w, H: h}, text)
}

// NewCircle builds a circle centered in a square box of side 2*radius
// whose top-left corner is (x, y).
func NewCircle(x, y, radius float64, text string) *Shape {
	d := radius * 2
	return mustShape(ShapeCircle, BoundingBox{X: x, Y: y, W: d, H: d}, text)
}

// NewCloud builds a cloud at (x, y) with the given size.
func NewCloud(x, y, w, h float64, text string) *Shape {
	return mustShape(ShapeCloud, BoundingBox{X: x, Y: y, W: w, H: h}, text)
}

// NewDiamond builds a diamond at (x, y) with the given size.
func NewDiamond(x, y, w, h float64, text string) *Shape {
	return mustShape(ShapeDiamond, BoundingBox{X: x, Y: y, W: w, H: h}, text)
}

// NewHexagon builds a hexagon at (x, y) with the given size.
func NewHexagon(x, y, w, h float64, text string) *Shape {
	return mustShape(ShapeHexagon, BoundingBox{X: x, Y: y, W: w, H: h}, text)
}

// NewOctagon builds an octagon at (x, y) with the given size.
func NewOctagon(x, y, w, h float64, text string) *Shape {
	return mustShape(ShapeOctagon, BoundingBox{X: x, Y: y, W: w, H: h}, text)
}

// NewIsocolesTriangle builds an isoceles triangle at (x, y) with the
// given size.
func NewIsocolesTriangle(x, y, w, h float64, text string) *Shape {
	return mustShape(ShapeIsocolesTriangle, BoundingBox{X: x, Y: y, W: w, H: h}, text)
}

// NewRightTriangle builds a right triangle at (x, y) with the given size.
func NewRightTriangle(x, y, w, h float64, text string) *Shape {
	return mustShape(ShapeRightTriangle, BoundingBox{X: x, Y: y, W: w, H: h}, text)
}

// NewCross builds a cross at (x, y) with the given size and indent
// ratios. Returns RANGE_VIOLATION if an indent is outside [0, 0.5].
func NewCross(x, y, w, h float64, text string, indentX, indentY float64) (*Shape, error) {
	s := mustShape(ShapeCross, BoundingBox{X: x, Y: y, W: w, H: h}, text)
	s.X = Float(indentX)
	s.Y = Float(indentY)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// mustShape builds a shape of a type known to be valid.
func mustShape(typ ShapeType, box BoundingBox, text string) *Shape {
	s, err := NewShape(typ, box, text)
	if err != nil {
		panic(err) // unreachable: typ comes from the closed constant set
	}
	return s
}

// MoveTo places the shape's bounding box at (x, y). Size is kept.
func (s *Shape) MoveTo(x, y float64) {
	s.BoundingBox = s.BoundingBox.MovedTo(x, y)
}

// Size returns the shape's width and height.
func (s *Shape) Size() (w, h float64) {
	return s.BoundingBox.W, s.BoundingBox.H
}

// Validate checks the shape's type, identifier format, style, and cross
// indent ratios.
func (s *Shape) Validate() error {
	if !validShapeTypes[s.Type] {
		return errors.New(errors.ErrCodeSchemaViolation, "unknown shape type: %q", s.Type)
	}
	if s.ID != nil {
		if err := ValidateID(*s.ID); err != nil {
			return err
		}
	}
	if err := s.Style.Validate(); err != nil {
		return err
	}
	for name, v := range map[string]*float64{"x": s.X, "y": s.Y} {
		if v != nil && (*v < 0 || *v > 0.5) {
			return errors.New(errors.ErrCodeRangeViolation, "cross indent %s must be between 0.0 and 0.5, got %v", name, *v)
		}
	}
	return nil
}
