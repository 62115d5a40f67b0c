package document

import (
	"github.com/lucidkit/lucidkit/pkg/errors"
	"github.com/lucidkit/lucidkit/pkg/ids"
)

// Page is an ordered container of shapes and lines. Each page owns its
// own identifier allocator, so shape and line IDs are unique within a
// page but not across pages of the same document.
type Page struct {
	ID     *string  `json:"id,omitempty"`
	Title  string   `json:"title"`
	Shapes []*Shape `json:"shapes"`
	Lines  []*Line  `json:"lines"`

	alloc *ids.Allocator
}

// NewPage creates an empty page. The page's allocator starts issuing at
// shape-1 and line-1.
func NewPage(title string) *Page {
	return &Page{
		Title:  title,
		Shapes: []*Shape{},
		Lines:  []*Line{},
	}
}

// allocator returns the page's identifier allocator, creating it on first
// use. Identifiers already present on the page (from literal construction
// or JSON decoding) are registered before any issuance, so pre-supplied
// and generated IDs never collide.
func (p *Page) allocator() *ids.Allocator {
	if p.alloc == nil {
		p.alloc = ids.NewAllocator()
		for _, s := range p.Shapes {
			if s.ID != nil {
				p.alloc.Register(*s.ID)
			}
		}
		for _, l := range p.Lines {
			if l.ID != nil {
				p.alloc.Register(*l.ID)
			}
		}
	}
	return p.alloc
}

// AddShape validates and appends a shape to the page. A shape without an
// identifier is assigned one from the page's allocator; a shape that
// already carries one has it registered instead. Registering an
// identifier that is already in use is deliberately tolerated rather than
// rejected.
//
// Shapes are never re-parented: once attached, a shape stays on its page.
func (p *Page) AddShape(s *Shape) (*Shape, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.ID == nil {
		s.ID = String(p.allocator().Generate(ids.CategoryShape))
	} else {
		p.allocator().Register(*s.ID)
	}
	p.Shapes = append(p.Shapes, s)
	return s, nil
}

// NewShape builds a shape of the given type and attaches it to the page.
func (p *Page) NewShape(typ ShapeType, box BoundingBox, text string) (*Shape, error) {
	s, err := NewShape(typ, box, text)
	if err != nil {
		return nil, err
	}
	return p.AddShape(s)
}

// AddLine validates and appends a line to the page, allocating or
// registering its identifier exactly as [Page.AddShape] does for shapes.
// The line's endpoints may still be unwired.
func (p *Page) AddLine(l *Line) (*Line, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if l.ID == nil {
		l.ID = String(p.allocator().Generate(ids.CategoryLine))
	} else {
		p.allocator().Register(*l.ID)
	}
	p.Lines = append(p.Lines, l)
	return l, nil
}

// NewLine builds an unconnected line of the given type and attaches it to
// the page.
func (p *Page) NewLine(typ LineType) (*Line, error) {
	l, err := NewLine(typ)
	if err != nil {
		return nil, err
	}
	return p.AddLine(l)
}

// ConnectShapes creates a new line between two shapes and attaches it to
// the page. Repeated calls for the same pair produce parallel lines, not
// merged ones. Each shape reference may be a *Shape or an identifier
// string.
func (p *Page) ConnectShapes(shape1, shape2 any, typ LineType, text string) (*Line, error) {
	l, err := NewLineBetween(shape1, shape2, typ, text)
	if err != nil {
		return nil, err
	}
	return p.AddLine(l)
}

// Validate checks the page identifier and every shape and line on it.
func (p *Page) Validate() error {
	if p.ID != nil {
		if err := ValidateID(*p.ID); err != nil {
			return err
		}
	}
	for _, s := range p.Shapes {
		if err := s.Validate(); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "page %q", p.Title)
		}
	}
	for _, l := range p.Lines {
		if err := l.Validate(); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "page %q", p.Title)
		}
	}
	return nil
}
