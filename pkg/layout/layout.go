package layout

// Shape is the minimal surface layout functions need: something with a
// size that can be moved to an absolute position.
type Shape interface {
	// MoveTo places the shape's top-left corner at (x, y). Size is kept.
	MoveTo(x, y float64)

	// Size returns the shape's width and height.
	Size() (w, h float64)
}

// Grid arranges shapes left-to-right, top-to-bottom in a grid of the
// given column count. Shape i lands at
// (startX + (i mod columns)*spacingX, startY + (i div columns)*spacingY).
// A column count below 1 is treated as 1.
func Grid[S Shape](shapes []S, columns int, spacingX, spacingY, startX, startY float64) {
	columns = max(columns, 1)
	for i, s := range shapes {
		col := i % columns
		row := i / columns
		s.MoveTo(startX+float64(col)*spacingX, startY+float64(row)*spacingY)
	}
}

// Horizontal arranges shapes in a row at constant y, spaced evenly from
// startX.
func Horizontal[S Shape](shapes []S, spacing, startX, y float64) {
	for i, s := range shapes {
		s.MoveTo(startX+float64(i)*spacing, y)
	}
}

// Vertical arranges shapes in a column at constant x, spaced evenly from
// startY.
func Vertical[S Shape](shapes []S, spacing, x, startY float64) {
	for i, s := range shapes {
		s.MoveTo(x, startY+float64(i)*spacing)
	}
}

// Center places a shape in the middle of a container. Coordinates go
// negative when the shape is larger than the container; that is accepted,
// not an error.
func Center(s Shape, containerWidth, containerHeight float64) {
	w, h := s.Size()
	s.MoveTo((containerWidth-w)/2, (containerHeight-h)/2)
}
