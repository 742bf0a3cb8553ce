// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package flow drives the vertical cursor that places lines on pages.
//
// The controller has no lookahead: whether a page is exhausted is checked
// only at the moment a line is about to be drawn. The line that triggers a
// break is therefore always the first line of the new page. This is
// deliberate; do not replace it with a break-optimizing paginator, because
// documents produced by earlier versions are the compatibility reference.
package flow

import "github.com/makeorbreakshop/making-it-transcript/internal/render"

// Params fixes the geometry a Controller walks within. All values are in
// points; vertical positions are measured up from the page bottom.
type Params struct {
	// X is the left edge lines are drawn at.
	X float64

	// StartY is the cursor position for the first line on the first page.
	StartY float64

	// ResetY is the cursor position for the first line of each page
	// opened by the controller itself.
	ResetY float64

	// StopY is the exhaustion limit: a page has no room left once the
	// cursor is at or below it.
	StopY float64

	// LineHeight is the vertical advance per emitted line.
	LineHeight float64
}

// Controller emits lines top to bottom, opening a new page whenever the
// current one is exhausted. It holds the only mutable pagination state,
// the cursor.
type Controller struct {
	r render.Renderer
	p Params
	y float64
}

// NewController returns a controller positioned at StartY on the current
// page of r.
func NewController(r render.Renderer, p Params) *Controller {
	return &Controller{r: r, p: p, y: p.StartY}
}

// Emit draws one line at the cursor and advances it. If the current page
// is exhausted, a new page is opened first: the cursor resets to ResetY
// and onNewPage (if non-nil) runs before the line is drawn, so callers can
// redraw per-page decorations such as the running header and footer.
func (c *Controller) Emit(line string, onNewPage func()) {
	if c.y <= c.p.StopY {
		c.r.NewPage()
		c.y = c.p.ResetY
		if onNewPage != nil {
			onNewPage()
		}
	}
	c.r.DrawText(c.p.X, c.y, line)
	c.y -= c.p.LineHeight
}
