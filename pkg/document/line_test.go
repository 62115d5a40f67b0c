package document

import (
	"encoding/json"
	"testing"

	"github.com/lucidkit/lucidkit/pkg/errors"
)

func TestNewLine(t *testing.T) {
	tests := []struct {
		name     string
		typ      LineType
		want     LineType
		wantCode errors.Code
	}{
		{"straight", LineStraight, LineStraight, ""},
		{"curved", LineCurved, LineCurved, ""},
		{"elbow", LineElbow, LineElbow, ""},
		{"empty defaults to straight", "", LineStraight, ""},
		{"unknown", "zigzag", "", errors.ErrCodeSchemaViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLine(tt.typ)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("expected %s, got %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewLine: %v", err)
			}
			if l.LineType != tt.want {
				t.Errorf("LineType = %q, want %q", l.LineType, tt.want)
			}
			if l.ID != nil {
				t.Errorf("ID = %v, want nil before page attachment", *l.ID)
			}
			if l.Text == nil {
				t.Error("Text should be initialized to an empty slice")
			}
		})
	}
}

func TestNewShapeEndpoint(t *testing.T) {
	page := NewPage("p")
	attached, err := page.NewShape(ShapeRectangle, DefaultBoundingBox(), "")
	if err != nil {
		t.Fatalf("NewShape: %v", err)
	}

	tests := []struct {
		name     string
		ref      any
		wantID   string
		wantCode errors.Code
	}{
		{"string id", "shape-9", "shape-9", ""},
		{"attached shape", attached, "shape-1", ""},
		{"detached shape", NewRectangle(0, 0, 10, 10, ""), "", errors.ErrCodeShapeReference},
		{"wrong type", 42, "", errors.ErrCodeShapeReference},
		{"malformed id", "shape 1!", "", errors.ErrCodeFormatViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewShapeEndpoint(tt.ref)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("expected %s, got %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewShapeEndpoint: %v", err)
			}
			if e.ShapeID != tt.wantID {
				t.Errorf("ShapeID = %q, want %q", e.ShapeID, tt.wantID)
			}
			if e.Position.X != 0.5 || e.Position.Y != 0.5 {
				t.Errorf("position = {%v, %v}, want shape center", e.Position.X, e.Position.Y)
			}
		})
	}
}

func TestShapeEndpointValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*ShapeEndpoint)
		wantCode errors.Code
	}{
		{"valid", func(e *ShapeEndpoint) {}, ""},
		{"corner position", func(e *ShapeEndpoint) { e.Position = Position{X: 1, Y: 0} }, ""},
		{"position out of range", func(e *ShapeEndpoint) { e.Position.X = 1.5 }, errors.ErrCodeRangeViolation},
		{"negative position", func(e *ShapeEndpoint) { e.Position.Y = -0.1 }, errors.ErrCodeRangeViolation},
		{"bad shape id", func(e *ShapeEndpoint) { e.ShapeID = "no good" }, errors.ErrCodeFormatViolation},
		{"bad style", func(e *ShapeEndpoint) { e.Style = "harpoon" }, errors.ErrCodeSchemaViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewShapeEndpoint("shape-1")
			if err != nil {
				t.Fatalf("NewShapeEndpoint: %v", err)
			}
			tt.mutate(e)
			err = e.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestNewLineEndpoint(t *testing.T) {
	e, err := NewLineEndpoint("line-3", 0.25)
	if err != nil {
		t.Fatalf("NewLineEndpoint: %v", err)
	}
	if e.LineID != "line-3" || e.Position != 0.25 {
		t.Errorf("endpoint = %+v", e)
	}

	if _, err := NewLineEndpoint("line-3", 1.5); !errors.Is(err, errors.ErrCodeRangeViolation) {
		t.Errorf("expected RANGE_VIOLATION for position 1.5, got %v", err)
	}
	if _, err := NewLineEndpoint("", 0.5); !errors.Is(err, errors.ErrCodeFormatViolation) {
		t.Errorf("expected FORMAT_VIOLATION for empty id, got %v", err)
	}
}

func TestTextValidate(t *testing.T) {
	if err := NewText("label").Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	bad := Text{Text: "x", Position: 2, Side: SideMiddle}
	if err := bad.Validate(); !errors.Is(err, errors.ErrCodeRangeViolation) {
		t.Errorf("expected RANGE_VIOLATION, got %v", err)
	}
	bad = Text{Text: "x", Position: 0.5, Side: "left"}
	if err := bad.Validate(); !errors.Is(err, errors.ErrCodeSchemaViolation) {
		t.Errorf("expected SCHEMA_VIOLATION, got %v", err)
	}
}

func TestLineConnect(t *testing.T) {
	page := NewPage("p")
	a, _ := page.NewShape(ShapeRectangle, DefaultBoundingBox(), "a")
	b, _ := page.NewShape(ShapeCircle, DefaultBoundingBox(), "b")

	l, err := page.NewLine(LineElbow)
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}

	dashed := Stroke{Color: "#ff0000", Width: Int(2), Style: StrokeDashed}
	if err := l.Connect(a, b, &dashed, "yes"); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	ep1, ok := l.Endpoint1.(*ShapeEndpoint)
	if !ok || ep1.ShapeID != "shape-1" {
		t.Errorf("Endpoint1 = %+v, want shape endpoint on shape-1", l.Endpoint1)
	}
	ep2, ok := l.Endpoint2.(*ShapeEndpoint)
	if !ok || ep2.ShapeID != "shape-2" {
		t.Errorf("Endpoint2 = %+v, want shape endpoint on shape-2", l.Endpoint2)
	}
	if l.Stroke.Style != StrokeDashed {
		t.Errorf("Stroke.Style = %q, want dashed", l.Stroke.Style)
	}
	if len(l.Text) != 1 || l.Text[0].Text != "yes" {
		t.Errorf("Text = %+v, want single label \"yes\"", l.Text)
	}

	// Reconnecting overwrites both endpoints.
	c, _ := page.NewShape(ShapeDiamond, DefaultBoundingBox(), "c")
	if err := l.Connect(b, c, nil, ""); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if l.Endpoint1.(*ShapeEndpoint).ShapeID != "shape-2" {
		t.Error("Endpoint1 not overwritten")
	}
	if l.Endpoint2.(*ShapeEndpoint).ShapeID != "shape-3" {
		t.Error("Endpoint2 not overwritten")
	}
	// An empty text leaves the existing label alone.
	if len(l.Text) != 1 || l.Text[0].Text != "yes" {
		t.Errorf("Text = %+v, want label preserved", l.Text)
	}
}

func TestNewLineBetween(t *testing.T) {
	l, err := NewLineBetween("shape-1", "shape-2", LineCurved, "flow")
	if err != nil {
		t.Fatalf("NewLineBetween: %v", err)
	}
	if l.LineType != LineCurved {
		t.Errorf("LineType = %q, want curved", l.LineType)
	}
	if l.Endpoint1.(*ShapeEndpoint).ShapeID != "shape-1" {
		t.Errorf("Endpoint1 = %+v", l.Endpoint1)
	}
	if len(l.Text) != 1 || l.Text[0].Text != "flow" {
		t.Errorf("Text = %+v", l.Text)
	}

	if _, err := NewLineBetween(42, "shape-2", LineStraight, ""); !errors.Is(err, errors.ErrCodeShapeReference) {
		t.Errorf("expected SHAPE_REFERENCE, got %v", err)
	}
}

func TestLineUnmarshalJSON(t *testing.T) {
	data := []byte(`{
		"id": "line-1",
		"lineType": "elbow",
		"endpoint1": {"type": "shapeEndpoint", "style": "arrow", "shapeId": "shape-1", "position": {"x": 0.5, "y": 0.5}},
		"endpoint2": {"type": "lineEndpoint", "style": "none", "lineId": "line-2", "position": 0.75},
		"stroke": {"color": "#000000", "width": 1, "style": "solid"},
		"text": [{"text": "maybe", "position": 0.5, "side": "middle"}]
	}`)

	var l Line
	if err := json.Unmarshal(data, &l); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if l.ID == nil || *l.ID != "line-1" {
		t.Errorf("ID = %v, want line-1", l.ID)
	}
	ep1, ok := l.Endpoint1.(*ShapeEndpoint)
	if !ok {
		t.Fatalf("Endpoint1 = %T, want *ShapeEndpoint", l.Endpoint1)
	}
	if ep1.ShapeID != "shape-1" {
		t.Errorf("Endpoint1.ShapeID = %q", ep1.ShapeID)
	}
	ep2, ok := l.Endpoint2.(*LineEndpoint)
	if !ok {
		t.Fatalf("Endpoint2 = %T, want *LineEndpoint", l.Endpoint2)
	}
	if ep2.LineID != "line-2" || ep2.Position != 0.75 {
		t.Errorf("Endpoint2 = %+v", ep2)
	}
	if len(l.Text) != 1 || l.Text[0].Text != "maybe" {
		t.Errorf("Text = %+v", l.Text)
	}
}

func TestLineUnmarshalJSONNilEndpoints(t *testing.T) {
	var l Line
	if err := json.Unmarshal([]byte(`{"id": "line-1", "lineType": "straight"}`), &l); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if l.Endpoint1 != nil || l.Endpoint2 != nil {
		t.Errorf("endpoints = %v, %v, want nil", l.Endpoint1, l.Endpoint2)
	}
}

func TestLineUnmarshalJSONUnknownEndpointType(t *testing.T) {
	data := []byte(`{"lineType": "straight", "endpoint1": {"type": "portalEndpoint"}}`)
	var l Line
	err := json.Unmarshal(data, &l)
	if !errors.Is(err, errors.ErrCodeSchemaViolation) {
		t.Fatalf("expected SCHEMA_VIOLATION, got %v", err)
	}
}

func TestLineValidate(t *testing.T) {
	l, err := NewLineBetween("shape-1", "shape-2", LineStraight, "")
	if err != nil {
		t.Fatalf("NewLineBetween: %v", err)
	}
	if err := l.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	l.Endpoint1.(*ShapeEndpoint).Position.X = 7
	if err := l.Validate(); !errors.Is(err, errors.ErrCodeRangeViolation) {
		t.Errorf("expected RANGE_VIOLATION, got %v", err)
	}
}

func TestLineConnectRejectsMalformedID(t *testing.T) {
	l, err := NewLine(LineStraight)
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	if err := l.Connect("shape 1!", "shape-2", nil, ""); !errors.Is(err, errors.ErrCodeFormatViolation) {
		t.Fatalf("expected FORMAT_VIOLATION, got %v", err)
	}
	if l.Endpoint1 != nil || l.Endpoint2 != nil {
		t.Error("failed connect must leave endpoints unset")
	}
}
