// Package layout provides pure positioning helpers for groups of shapes.
//
// All functions are stateless arithmetic over an ordered sequence: they
// move shapes by replacing bounding-box positions and never touch sizes
// or identifiers. Empty sequences are valid no-ops. The functions are
// generic over a minimal [Shape] interface, so they work on any type
// that can report its size and be moved.
package layout
