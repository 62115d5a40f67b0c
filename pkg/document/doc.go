// Package document models diagram documents in the Lucid standard import
// format.
//
// A [Document] owns an ordered list of pages; a [Page] owns ordered lists
// of shapes and lines. Lines reference shapes by identifier only, never by
// ownership. Each container carries its own identifier allocator: pages
// allocate shape and line IDs, documents allocate page IDs. Identifiers
// are unique within their container, not across containers.
//
// # Construction
//
// Entities can be built standalone and attached later, or created through
// their container:
//
//	doc := document.NewDocument()
//	page := doc.AddPage("Flow")
//	start, _ := page.NewShape(document.ShapeCircle, document.BoundingBox{W: 50, H: 50}, "Start")
//	end, _ := page.NewShape(document.ShapeRectangle, document.BoundingBox{X: 200, W: 50, H: 50}, "End")
//	page.ConnectShapes(start, end, document.LineStraight, "next")
//
// A standalone shape or line has no identifier until it is attached to a
// page; attachment allocates one, or registers a caller-supplied one.
//
// # Validation
//
// All validation is fail-fast and surfaces structured errors from
// pkg/errors: SCHEMA_VIOLATION for values outside a closed enumeration,
// FORMAT_VIOLATION for malformed identifiers and colors, RANGE_VIOLATION
// for out-of-bound numerics, and SHAPE_REFERENCE for endpoint references
// that are neither a shape nor an identifier string.
//
// # Serialization
//
// [MarshalDocument] and friends produce the exact wire format the Lucid
// import endpoint expects: absent optional fields are omitted, literal
// zeros are kept, and allocator state never appears in the output. See
// [ReadDocument] for the inverse.
//
// The package is not safe for concurrent use; documents are built
// single-threaded and handed off to the transport once complete.
package document
