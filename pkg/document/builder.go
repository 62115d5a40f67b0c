package document

import (
	"github.com/lucidkit/lucidkit/pkg/layout"
)

// PageBuilder assembles a page through method chaining. Every mutating
// method returns the same builder; the first failure sticks and turns the
// remaining calls into no-ops, surfacing from [PageBuilder.Build].
//
//	page, err := document.NewPageBuilder(doc.AddPage("Flow")).
//		AddCircle(0, 0, 30, "Start").
//		AddRectangle(0, 0, 80, 40, "Work").
//		ConnectLastTwo(document.LineStraight, "then").
//		ApplyGridLayout(2, 150, 150, 50, 50).
//		Build()
type PageBuilder struct {
	page *Page
	err  error
}

// NewPageBuilder creates a builder bound to the given page.
func NewPageBuilder(page *Page) *PageBuilder {
	return &PageBuilder{page: page}
}

// AddShape adds a shape of the given type and geometry.
func (b *PageBuilder) AddShape(typ ShapeType, x, y, w, h float64, text string) *PageBuilder {
	if b.err == nil {
		_, b.err = b.page.NewShape(typ, BoundingBox{X: x, Y: y, W: w, H: h}, text)
	}
	return b
}

// AddRectangle adds a rectangle.
func (b *PageBuilder) AddRectangle(x, y, w, h float64, text string) *PageBuilder {
	return b.AddShape(ShapeRectangle, x, y, w, h, text)
}

// AddCircle adds a circle with the given radius.
func (b *PageBuilder) AddCircle(x, y, radius float64, text string) *PageBuilder {
	d := radius * 2
	return b.AddShape(ShapeCircle, x, y, d, d, text)
}

// AddDiamond adds a diamond.
func (b *PageBuilder) AddDiamond(x, y, w, h float64, text string) *PageBuilder {
	return b.AddShape(ShapeDiamond, x, y, w, h, text)
}

// ConnectLastTwo connects the two most recently added shapes with a new
// line. With fewer than two shapes on the page it does nothing.
func (b *PageBuilder) ConnectLastTwo(typ LineType, text string) *PageBuilder {
	if b.err == nil && len(b.page.Shapes) >= 2 {
		n := len(b.page.Shapes)
		_, b.err = b.page.ConnectShapes(b.page.Shapes[n-2], b.page.Shapes[n-1], typ, text)
	}
	return b
}

// ApplyGridLayout arranges all shapes on the page in a grid.
func (b *PageBuilder) ApplyGridLayout(columns int, spacingX, spacingY, startX, startY float64) *PageBuilder {
	if b.err == nil {
		layout.Grid(b.page.Shapes, columns, spacingX, spacingY, startX, startY)
	}
	return b
}

// Err returns the first error encountered in the chain, if any.
func (b *PageBuilder) Err() error {
	return b.err
}

// Build returns the assembled page and the chain's first error. It is
// idempotent and may be called mid-chain without side effects.
func (b *PageBuilder) Build() (*Page, error) {
	return b.page, b.err
}
