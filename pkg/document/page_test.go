package document

import (
	"testing"

	"github.com/lucidkit/lucidkit/pkg/errors"
)

func TestPageAddShapeAssignsIDs(t *testing.T) {
	page := NewPage("Flow")

	for i, want := range []string{"shape-1", "shape-2", "shape-3"} {
		s, err := page.NewShape(ShapeRectangle, DefaultBoundingBox(), "")
		if err != nil {
			t.Fatalf("NewShape %d: %v", i, err)
		}
		if s.ID == nil || *s.ID != want {
			t.Errorf("shape %d ID = %v, want %s", i, s.ID, want)
		}
	}
	if len(page.Shapes) != 3 {
		t.Errorf("len(Shapes) = %d, want 3", len(page.Shapes))
	}
}

func TestPageAddShapeKeepsExplicitID(t *testing.T) {
	page := NewPage("Flow")

	s := NewRectangle(0, 0, 100, 50, "")
	s.ID = String("entry-point")
	if _, err := page.AddShape(s); err != nil {
		t.Fatalf("AddShape: %v", err)
	}
	if *s.ID != "entry-point" {
		t.Errorf("ID = %q, want entry-point", *s.ID)
	}

	// The explicit ID is now taken; generated IDs keep their own sequence.
	next, err := page.NewShape(ShapeCircle, DefaultBoundingBox(), "")
	if err != nil {
		t.Fatalf("NewShape: %v", err)
	}
	if *next.ID != "shape-1" {
		t.Errorf("next ID = %q, want shape-1", *next.ID)
	}
}

func TestPageAddShapeRejectsInvalid(t *testing.T) {
	page := NewPage("Flow")

	s := NewRectangle(0, 0, 100, 50, "")
	s.Style.Fill.Color = "chartreuse"
	if _, err := page.AddShape(s); !errors.Is(err, errors.ErrCodeFormatViolation) {
		t.Fatalf("expected FORMAT_VIOLATION, got %v", err)
	}
	if len(page.Shapes) != 0 {
		t.Error("invalid shape must not be appended")
	}
}

func TestPagePrePopulatedShapes(t *testing.T) {
	// A page assembled by hand (or decoded from JSON) registers its
	// existing IDs before generating new ones.
	existing1 := NewRectangle(0, 0, 10, 10, "")
	existing1.ID = String("existing-1")
	existing2 := NewRectangle(0, 0, 10, 10, "")
	existing2.ID = String("existing-2")

	page := &Page{Title: "Flow", Shapes: []*Shape{existing1, existing2}}

	s, err := page.NewShape(ShapeCircle, DefaultBoundingBox(), "")
	if err != nil {
		t.Fatalf("NewShape: %v", err)
	}
	if *s.ID != "shape-1" {
		t.Errorf("ID = %q, want shape-1", *s.ID)
	}
}

func TestPagePrePopulatedSequenceCollision(t *testing.T) {
	existing := NewRectangle(0, 0, 10, 10, "")
	existing.ID = String("shape-1")

	page := &Page{Title: "Flow", Shapes: []*Shape{existing}}

	s, err := page.NewShape(ShapeCircle, DefaultBoundingBox(), "")
	if err != nil {
		t.Fatalf("NewShape: %v", err)
	}
	if *s.ID != "shape-2" {
		t.Errorf("ID = %q, want shape-2 (shape-1 is taken)", *s.ID)
	}
}

func TestPageAddLine(t *testing.T) {
	page := NewPage("Flow")

	l, err := page.NewLine(LineStraight)
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	if l.ID == nil || *l.ID != "line-1" {
		t.Errorf("ID = %v, want line-1", l.ID)
	}
}

func TestPageConnectShapes(t *testing.T) {
	page := NewPage("Flow")
	a, _ := page.NewShape(ShapeRectangle, DefaultBoundingBox(), "a")
	b, _ := page.NewShape(ShapeCircle, DefaultBoundingBox(), "b")

	l, err := page.ConnectShapes(a, b, LineElbow, "then")
	if err != nil {
		t.Fatalf("ConnectShapes: %v", err)
	}
	if *l.ID != "line-1" {
		t.Errorf("ID = %q, want line-1", *l.ID)
	}
	if l.Endpoint1.(*ShapeEndpoint).ShapeID != "shape-1" {
		t.Errorf("Endpoint1 = %+v", l.Endpoint1)
	}
	if len(page.Lines) != 1 {
		t.Errorf("len(Lines) = %d, want 1", len(page.Lines))
	}
}

func TestPageValidateWrapsErrors(t *testing.T) {
	page := NewPage("Broken")
	s, _ := page.NewShape(ShapeRectangle, DefaultBoundingBox(), "")
	s.Style.Fill.Color = "nope"

	err := page.Validate()
	if !errors.Is(err, errors.ErrCodeFormatViolation) {
		t.Fatalf("expected FORMAT_VIOLATION, got %v", err)
	}
}
