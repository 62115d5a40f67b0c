// Package pkg provides the core libraries for building Lucidchart documents.
//
// # Overview
//
// Lucidkit assembles diagram documents in the Lucid standard import format
// and uploads them through the Lucid REST API. The pkg directory is
// organized into five main areas:
//
//  1. [document] - The document model (pages, shapes, lines, styles) and
//     its JSON serialization
//  2. [layout] - Geometric arrangement helpers (grid, rows, columns)
//  3. [lucid] - The REST API client for document import
//  4. [ids] - Sequential identifier allocation
//  5. [errors], [httputil] - Shared error taxonomy and HTTP plumbing
//
// # Architecture
//
// The typical data flow through lucidkit:
//
//	[document] package (assemble pages, shapes, lines)
//	         ↓
//	    [layout] package (position shapes)
//	         ↓
//	    [document] serialization (standard import JSON)
//	         ↓
//	    [lucid] client (import into Lucidchart)
//
// # Quick Start
//
//	doc := document.CreateDocument("Release Process")
//	page := doc.Pages[0]
//	start, _ := page.AddShape(document.NewCircle(0, 0, 25, "Start"))
//	work, _ := page.AddShape(document.NewRectangle(0, 0, 100, 50, "Work"))
//	page.ConnectShapes(start, work, document.LineStraight, "")
//	layout.Horizontal(page.Shapes, 150, 50, 50)
//
//	client, _ := lucid.NewClient(apiKey)
//	result, _ := client.CreateDocument(ctx, lucid.CreateDocumentRequest{
//		Title:    "Release Process",
//		Document: doc,
//	})
package pkg
