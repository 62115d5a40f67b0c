package document

import (
	"github.com/lucidkit/lucidkit/pkg/ids"
)

// FormatVersion is the import format version this package produces.
const FormatVersion = 1

// Document is the top-level container: a format version and an ordered
// list of pages. The document's own allocator scopes page identifiers
// only; shape and line identifiers belong to each page's allocator.
type Document struct {
	Version int     `json:"version"`
	Pages   []*Page `json:"pages"`

	alloc *ids.Allocator
}

// NewDocument creates an empty document at the current format version.
func NewDocument() *Document {
	return &Document{
		Version: FormatVersion,
		Pages:   []*Page{},
	}
}

// CreateDocument creates a document with a single page of the given
// title, ready for shapes.
func CreateDocument(title string) *Document {
	d := NewDocument()
	d.AddPage(title)
	return d
}

// allocator returns the document's page-ID allocator, creating it on
// first use and registering any pre-existing page identifiers.
func (d *Document) allocator() *ids.Allocator {
	if d.alloc == nil {
		d.alloc = ids.NewAllocator()
		for _, p := range d.Pages {
			if p.ID != nil {
				d.alloc.Register(*p.ID)
			}
		}
	}
	return d.alloc
}

// AddPage appends a new empty page with the given title, assigning it a
// document-unique page identifier.
func (d *Document) AddPage(title string) *Page {
	p := NewPage(title)
	p.ID = String(d.allocator().Generate(ids.CategoryPage))
	return d.appendPage(p)
}

// AttachPage appends an existing page. A page without an identifier is
// assigned one; a page that carries one has it registered with the
// document's allocator.
func (d *Document) AttachPage(p *Page) *Page {
	if p.ID == nil {
		p.ID = String(d.allocator().Generate(ids.CategoryPage))
	} else {
		d.allocator().Register(*p.ID)
	}
	return d.appendPage(p)
}

func (d *Document) appendPage(p *Page) *Page {
	d.Pages = append(d.Pages, p)
	return p
}

// Validate checks every page in the document.
func (d *Document) Validate() error {
	for _, p := range d.Pages {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}
