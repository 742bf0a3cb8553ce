// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flow

import "testing"

// op records one renderer call for sequence assertions.
type op struct {
	kind string // "text" or "page"
	x, y float64
	text string
}

// fakeRenderer implements render.Renderer and records every call.
type fakeRenderer struct {
	ops []op
	err error
}

func (f *fakeRenderer) SetFont(family, style string, size float64) {}

func (f *fakeRenderer) DrawText(x, y float64, text string) {
	f.ops = append(f.ops, op{kind: "text", x: x, y: y, text: text})
}

func (f *fakeRenderer) NewPage() {
	f.ops = append(f.ops, op{kind: "page"})
}

func (f *fakeRenderer) MeasureWidth(text string) float64 { return float64(len(text)) }
func (f *fakeRenderer) PageSize() (w, h float64)         { return 612, 792 }
func (f *fakeRenderer) Err() error                       { return f.err }
func (f *fakeRenderer) Close() error                     { return nil }

func testParams() Params {
	return Params{X: 50, StartY: 100, ResetY: 200, StopY: 80, LineHeight: 14}
}

func TestEmitAdvancesCursor(t *testing.T) {
	r := &fakeRenderer{}
	c := NewController(r, testParams())

	c.Emit("first", nil)
	c.Emit("second", nil)

	if len(r.ops) != 2 {
		t.Fatalf("got %d renderer calls, want 2", len(r.ops))
	}
	if r.ops[0].y != 100 || r.ops[1].y != 86 {
		t.Errorf("line positions = %v, %v; want 100, 86", r.ops[0].y, r.ops[1].y)
	}
	if r.ops[0].x != 50 || r.ops[1].x != 50 {
		t.Errorf("lines not drawn at the left edge: %v, %v", r.ops[0].x, r.ops[1].x)
	}
}

// TestEmitPageBreak checks the exact-fit edge: with room for two lines, the
// third triggers exactly one page break and lands at the top of the new
// page, after the new-page callback has run.
func TestEmitPageBreak(t *testing.T) {
	r := &fakeRenderer{}
	c := NewController(r, testParams())

	callbackAt := -1
	onNewPage := func() { callbackAt = len(r.ops) }

	for _, line := range []string{"one", "two", "three"} {
		c.Emit(line, onNewPage)
	}

	var pages int
	for _, o := range r.ops {
		if o.kind == "page" {
			pages++
		}
	}
	if pages != 1 {
		t.Fatalf("got %d page breaks, want 1", pages)
	}

	last := r.ops[len(r.ops)-1]
	if last.kind != "text" || last.text != "three" || last.y != 200 {
		t.Errorf("overflow line = %+v, want %q at y=200", last, "three")
	}

	// The callback must run after the break but before the overflow line.
	if callbackAt != 3 {
		t.Errorf("new-page callback ran at call index %d, want 3", callbackAt)
	}
}

func TestEmitNilCallback(t *testing.T) {
	r := &fakeRenderer{}
	p := testParams()
	p.StartY = p.StopY // exhausted before the first line
	c := NewController(r, p)

	c.Emit("line", nil) // must not panic

	if r.ops[0].kind != "page" {
		t.Errorf("expected a page break before the first line, got %+v", r.ops[0])
	}
	if got := r.ops[1].y; got != p.ResetY {
		t.Errorf("line after break at y=%v, want %v", got, p.ResetY)
	}
}

// TestEmitNoLookahead pins the no-lookahead contract: the break happens when
// a line is emitted into an exhausted page, never earlier.
func TestEmitNoLookahead(t *testing.T) {
	r := &fakeRenderer{}
	p := Params{X: 50, StartY: 94, ResetY: 200, StopY: 80, LineHeight: 14}
	c := NewController(r, p)

	// StartY 94 leaves room for exactly one line (94 > 80, then 80 <= 80).
	c.Emit("fits", nil)
	if len(r.ops) != 1 {
		t.Fatalf("premature page break: %+v", r.ops)
	}

	c.Emit("breaks", nil)
	if r.ops[1].kind != "page" {
		t.Errorf("second line should have triggered the break, got %+v", r.ops[1])
	}
}
