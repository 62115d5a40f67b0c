package document

// BoundingBox is the placement and size rectangle owned by a shape.
// It is a value type: layout operations replace the whole box rather than
// mutating it in place, so two shapes never alias the same box.
type BoundingBox struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// DefaultBoundingBox returns the default shape placement: origin, 50×50.
func DefaultBoundingBox() BoundingBox {
	return BoundingBox{X: 0, Y: 0, W: 50, H: 50}
}

// MovedTo returns a copy of the box at the given position. Size is kept.
func (b BoundingBox) MovedTo(x, y float64) BoundingBox {
	b.X, b.Y = x, y
	return b
}

// ResizedTo returns a copy of the box with the given size. Position is kept.
func (b BoundingBox) ResizedTo(w, h float64) BoundingBox {
	b.W, b.H = w, h
	return b
}

// Position is a relative attachment point in [0,1]² coordinates, used by
// shape endpoints. {0.5, 0.5} is the shape center.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
