// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render abstracts the PDF writer behind a small drawing interface
// so the pagination logic can be tested without producing documents.
//
// Coordinates are in points with the origin at the bottom-left of the page,
// matching the cursor arithmetic in the assembly code; the PDF
// implementation converts to its own top-left origin internally.
package render

// Renderer is the drawing surface for one output document. The caller owns
// the call sequence: pages are only ever appended, text is only ever drawn
// on the current page, and Close finalizes the document exactly once.
type Renderer interface {
	// SetFont selects the font for subsequent DrawText and MeasureWidth
	// calls. Style is "" for regular or "B" for bold.
	SetFont(family, style string, size float64)

	// DrawText draws text with its baseline at (x, y), y measured up from
	// the page bottom.
	DrawText(x, y float64, text string)

	// NewPage appends a page and makes it current.
	NewPage()

	// MeasureWidth returns the rendered width of text in the current font.
	MeasureWidth(text string) float64

	// PageSize returns the page width and height in points.
	PageSize() (w, h float64)

	// Err reports the first drawing error, if any. Drawing calls after a
	// failure are no-ops.
	Err() error

	// Close finalizes and writes the document.
	Close() error
}
