// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// PDF renders to a PDF file via fpdf. It implements Renderer.
type PDF struct {
	doc    *fpdf.Fpdf
	path   string
	height float64
}

// NewPDF creates a portrait PDF document of the named page size, with the
// first page already open. The file is written when Close is called.
// fpdf's automatic page breaking is disabled: page breaks are decided by
// the caller's cursor arithmetic, never by the library.
func NewPDF(path, pageSize string) *PDF {
	doc := fpdf.New("P", "pt", pageSize, "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	_, height := doc.GetPageSize()
	return &PDF{doc: doc, path: path, height: height}
}

// SetFont selects the current font.
func (p *PDF) SetFont(family, style string, size float64) {
	p.doc.SetFont(family, style, size)
}

// DrawText draws text with its baseline at (x, y), y measured from the
// page bottom.
func (p *PDF) DrawText(x, y float64, text string) {
	p.doc.Text(x, p.height-y, text)
}

// NewPage appends a page and makes it current.
func (p *PDF) NewPage() {
	p.doc.AddPage()
}

// MeasureWidth returns the width of text in the current font.
func (p *PDF) MeasureWidth(text string) float64 {
	return p.doc.GetStringWidth(text)
}

// PageSize returns the page width and height in points.
func (p *PDF) PageSize() (w, h float64) {
	return p.doc.GetPageSize()
}

// Err reports the first error recorded by the underlying document.
func (p *PDF) Err() error {
	return p.doc.Error()
}

// Close writes the document to its output path and releases it.
func (p *PDF) Close() error {
	if err := p.doc.OutputFileAndClose(p.path); err != nil {
		return fmt.Errorf("writing %s: %w", p.path, err)
	}
	return nil
}
