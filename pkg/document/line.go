package document

import (
	"encoding/json"

	"github.com/lucidkit/lucidkit/pkg/errors"
)

// LineType is the routing style of a line.
type LineType string

// Line routing styles.
const (
	LineStraight LineType = "straight"
	LineCurved   LineType = "curved"
	LineElbow    LineType = "elbow"
)

// Endpoint discriminator values, serialized in the "type" field.
const (
	endpointTypeShape = "shapeEndpoint"
	endpointTypeLine  = "lineEndpoint"
)

// EndpointStyle is the arrowhead drawn at a line endpoint.
type EndpointStyle string

// Endpoint arrowhead styles accepted by the import format.
const (
	EndpointNone            EndpointStyle = "none"
	EndpointAggregation     EndpointStyle = "aggregation"
	EndpointArrow           EndpointStyle = "arrow"
	EndpointHollowArrow     EndpointStyle = "hollowArrow"
	EndpointOpenArrow       EndpointStyle = "openArrow"
	EndpointAsync1          EndpointStyle = "async1"
	EndpointAsync2          EndpointStyle = "async2"
	EndpointClosedSquare    EndpointStyle = "closedSquare"
	EndpointOpenSquare      EndpointStyle = "openSquare"
	EndpointBPMNConditional EndpointStyle = "bpmnConditional"
	EndpointBPMNDefault     EndpointStyle = "bpmnDefault"
	EndpointClosedCircle    EndpointStyle = "closedCircle"
	EndpointOpenCircle      EndpointStyle = "openCircle"
	EndpointComposition     EndpointStyle = "composition"
	EndpointExactlyOne      EndpointStyle = "exactlyOne"
	EndpointGeneralization  EndpointStyle = "generalization"
	EndpointMany            EndpointStyle = "many"
	EndpointNesting         EndpointStyle = "nesting"
	EndpointOne             EndpointStyle = "one"
	EndpointOneOrMore       EndpointStyle = "oneOrMore"
	EndpointZeroOrMore      EndpointStyle = "zeroOrMore"
	EndpointZeroOrOne       EndpointStyle = "zeroOrOne"
)

var validEndpointStyles = map[EndpointStyle]bool{
	EndpointNone: true, EndpointAggregation: true, EndpointArrow: true,
	EndpointHollowArrow: true, EndpointOpenArrow: true, EndpointAsync1: true,
	EndpointAsync2: true, EndpointClosedSquare: true, EndpointOpenSquare: true,
	EndpointBPMNConditional: true, EndpointBPMNDefault: true,
	EndpointClosedCircle: true, EndpointOpenCircle: true, EndpointComposition: true,
	EndpointExactlyOne: true, EndpointGeneralization: true, EndpointMany: true,
	EndpointNesting: true, EndpointOne: true, EndpointOneOrMore: true,
	EndpointZeroOrMore: true, EndpointZeroOrOne: true,
}

func validateEndpointStyle(s EndpointStyle) error {
	if s != "" && !validEndpointStyles[s] {
		return errors.New(errors.ErrCodeSchemaViolation, "unknown endpoint style: %q", s)
	}
	return nil
}

// Endpoint is a line's connection point: either a [ShapeEndpoint] or a
// [LineEndpoint]. The sum is closed; the "type" discriminator round-trips
// through serialization.
type Endpoint interface {
	// Validate checks the endpoint's reference and position.
	Validate() error

	endpointType() string
}

// ShapeEndpoint attaches a line to a shape at a relative position on the
// shape, with {0.5, 0.5} the shape center.
type ShapeEndpoint struct {
	Type     string        `json:"type"`
	Style    EndpointStyle `json:"style,omitempty"`
	ShapeID  string        `json:"shapeId"`
	Position Position      `json:"position"`
}

// NewShapeEndpoint builds a shape endpoint from ref, which may be a
// *Shape (its ID is taken; it must already be attached) or an identifier
// string. Attachment position defaults to the shape center.
// Returns SHAPE_REFERENCE for any other reference kind and
// FORMAT_VIOLATION for a malformed identifier string.
func NewShapeEndpoint(ref any) (*ShapeEndpoint, error) {
	id, err := shapeIDOf(ref)
	if err != nil {
		return nil, err
	}
	e := &ShapeEndpoint{
		Type:     endpointTypeShape,
		Style:    EndpointArrow,
		ShapeID:  id,
		Position: Position{X: 0.5, Y: 0.5},
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// shapeIDOf resolves a shape reference to its identifier string.
func shapeIDOf(ref any) (string, error) {
	switch r := ref.(type) {
	case string:
		return r, nil
	case *Shape:
		if r == nil || r.ID == nil {
			return "", errors.New(errors.ErrCodeShapeReference, "shape has no identifier; attach it to a page first")
		}
		return *r.ID, nil
	case Shape:
		if r.ID == nil {
			return "", errors.New(errors.ErrCodeShapeReference, "shape has no identifier; attach it to a page first")
		}
		return *r.ID, nil
	default:
		return "", errors.New(errors.ErrCodeShapeReference, "shape reference must be a Shape or identifier string, got %T", ref)
	}
}

func (e *ShapeEndpoint) endpointType() string { return endpointTypeShape }

// Validate checks the shape reference and relative position.
func (e *ShapeEndpoint) Validate() error {
	if err := ValidateID(e.ShapeID); err != nil {
		return err
	}
	if err := validateEndpointStyle(e.Style); err != nil {
		return err
	}
	if e.Position.X < 0 || e.Position.X > 1 || e.Position.Y < 0 || e.Position.Y > 1 {
		return errors.New(errors.ErrCodeRangeViolation,
			"endpoint position must be within [0,1]², got {%v, %v}", e.Position.X, e.Position.Y)
	}
	return nil
}

// LineEndpoint attaches a line to another line at a relative position
// along it, in [0, 1].
type LineEndpoint struct {
	Type     string        `json:"type"`
	Style    EndpointStyle `json:"style,omitempty"`
	LineID   string        `json:"lineId"`
	Position float64       `json:"position"`
}

// NewLineEndpoint builds a line endpoint attached to the line with the
// given identifier at the given relative position.
func NewLineEndpoint(lineID string, position float64) (*LineEndpoint, error) {
	e := &LineEndpoint{
		Type:     endpointTypeLine,
		Style:    EndpointArrow,
		LineID:   lineID,
		Position: position,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *LineEndpoint) endpointType() string { return endpointTypeLine }

// Validate checks the line reference and relative position.
func (e *LineEndpoint) Validate() error {
	if err := ValidateID(e.LineID); err != nil {
		return err
	}
	if err := validateEndpointStyle(e.Style); err != nil {
		return err
	}
	if e.Position < 0 || e.Position > 1 {
		return errors.New(errors.ErrCodeRangeViolation, "endpoint position must be between 0.0 and 1.0, got %v", e.Position)
	}
	return nil
}

// Side is where a label sits relative to its line.
type Side string

// Label sides.
const (
	SideTop    Side = "top"
	SideMiddle Side = "middle"
	SideBottom Side = "bottom"
)

// Text is a label fragment on a line, placed at a relative position along
// the line.
type Text struct {
	Text     string  `json:"text"`
	Position float64 `json:"position"`
	Side     Side    `json:"side"`
}

// NewText returns a label centered on the line: position 0.5, middle side.
func NewText(text string) Text {
	return Text{Text: text, Position: 0.5, Side: SideMiddle}
}

// Validate checks the label position and side.
func (t Text) Validate() error {
	if t.Position < 0 || t.Position > 1 {
		return errors.New(errors.ErrCodeRangeViolation, "text position must be between 0.0 and 1.0, got %v", t.Position)
	}
	switch t.Side {
	case SideTop, SideMiddle, SideBottom:
		return nil
	default:
		return errors.New(errors.ErrCodeSchemaViolation, "unknown text side: %q", t.Side)
	}
}

// Line is a diagram edge. A line built standalone has a nil ID until it
// is attached to a page. Endpoints may be left nil and wired later with
// [Line.Connect].
type Line struct {
	ID        *string  `json:"id,omitempty"`
	LineType  LineType `json:"lineType"`
	Endpoint1 Endpoint `json:"endpoint1,omitempty"`
	Endpoint2 Endpoint `json:"endpoint2,omitempty"`
	Stroke    Stroke   `json:"stroke"`
	Text      []Text   `json:"text"`
}

// NewLine builds an unconnected line. Returns SCHEMA_VIOLATION if typ is
// not straight, curved, or elbow.
func NewLine(typ LineType) (*Line, error) {
	switch typ {
	case LineStraight, LineCurved, LineElbow:
	case "":
		typ = LineStraight
	default:
		return nil, errors.New(errors.ErrCodeSchemaViolation, "unknown line type: %q", typ)
	}
	return &Line{
		LineType: typ,
		Stroke:   DefaultStroke(),
		Text:     []Text{},
	}, nil
}

// NewLineBetween builds a line of the given type already connecting two
// shapes. Both references must resolve to identifiers.
func NewLineBetween(shape1, shape2 any, typ LineType, text string) (*Line, error) {
	l, err := NewLine(typ)
	if err != nil {
		return nil, err
	}
	if err := l.Connect(shape1, shape2, nil, text); err != nil {
		return nil, err
	}
	return l, nil
}

// Connect wires both endpoints of the line to two shapes, overwriting any
// existing endpoints. Each reference may be a *Shape or an identifier
// string; attachment is at the shape center. A non-nil stroke replaces
// the line's stroke. A non-empty text replaces the line's label list with
// a single centered label.
func (l *Line) Connect(shape1, shape2 any, stroke *Stroke, text string) error {
	e1, err := NewShapeEndpoint(shape1)
	if err != nil {
		return err
	}
	e2, err := NewShapeEndpoint(shape2)
	if err != nil {
		return err
	}
	l.Endpoint1 = e1
	l.Endpoint2 = e2
	if stroke != nil {
		l.Stroke = *stroke
	}
	if text != "" {
		l.Text = []Text{NewText(text)}
	}
	return nil
}

// Validate checks the line's type, identifier format, endpoints, stroke,
// and labels.
func (l *Line) Validate() error {
	switch l.LineType {
	case LineStraight, LineCurved, LineElbow:
	default:
		return errors.New(errors.ErrCodeSchemaViolation, "unknown line type: %q", l.LineType)
	}
	if l.ID != nil {
		if err := ValidateID(*l.ID); err != nil {
			return err
		}
	}
	for _, e := range []Endpoint{l.Endpoint1, l.Endpoint2} {
		if e != nil {
			if err := e.Validate(); err != nil {
				return err
			}
		}
	}
	if err := l.Stroke.Validate(); err != nil {
		return err
	}
	for _, t := range l.Text {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalJSON decodes a line, resolving each endpoint's concrete type
// from its "type" discriminator.
func (l *Line) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        *string         `json:"id"`
		LineType  LineType        `json:"lineType"`
		Endpoint1 json.RawMessage `json:"endpoint1"`
		Endpoint2 json.RawMessage `json:"endpoint2"`
		Stroke    Stroke          `json:"stroke"`
		Text      []Text          `json:"text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	l.ID = raw.ID
	l.LineType = raw.LineType
	l.Stroke = raw.Stroke
	l.Text = raw.Text

	var err error
	if l.Endpoint1, err = decodeEndpoint(raw.Endpoint1); err != nil {
		return err
	}
	if l.Endpoint2, err = decodeEndpoint(raw.Endpoint2); err != nil {
		return err
	}
	return nil
}

// decodeEndpoint resolves the endpoint sum from the "type" discriminator.
// Returns a nil endpoint for absent or null input.
func decodeEndpoint(data json.RawMessage) (Endpoint, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, err
	}

	switch tag.Type {
	case endpointTypeShape:
		var e ShapeEndpoint
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return &e, nil
	case endpointTypeLine:
		var e LineEndpoint
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return &e, nil
	default:
		return nil, errors.New(errors.ErrCodeSchemaViolation, "unknown endpoint type: %q", tag.Type)
	}
}
