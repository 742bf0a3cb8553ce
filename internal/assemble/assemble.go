// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble builds the combined transcript document: an index of
// every episode followed by each unprocessed episode's wrapped body, with
// running headers and footers and an entry in the completion ledger once
// an episode's pages are fully drawn.
package assemble

import (
	"fmt"
	"io"
	"strconv"

	"github.com/makeorbreakshop/making-it-transcript/internal/flow"
	"github.com/makeorbreakshop/making-it-transcript/internal/ledger"
	"github.com/makeorbreakshop/making-it-transcript/internal/render"
	"github.com/makeorbreakshop/making-it-transcript/internal/wrap"
	"github.com/makeorbreakshop/making-it-transcript/pkg/types"
)

const indexHeading = "Index of Episodes"

// Assembler owns the document handle for the duration of one build run.
type Assembler struct {
	r      render.Renderer
	led    ledger.Ledger
	layout types.LayoutConfig
}

// New returns an Assembler drawing to r and recording completions in led.
func New(r render.Renderer, led ledger.Ledger, layout types.LayoutConfig) *Assembler {
	return &Assembler{r: r, led: led, layout: layout}
}

// Summary holds the outcome of one assembly run.
type Summary struct {
	// Emitted lists episode numbers written in this run, in order.
	Emitted []int

	// Skipped lists episode numbers already present in the ledger.
	Skipped []int
}

// Total returns the number of episodes considered.
func (s Summary) Total() int {
	return len(s.Emitted) + len(s.Skipped)
}

// Build assembles all episodes into the document. Episodes already in the
// ledger appear in the index but produce no header, title, or body pages.
// The ledger append for an episode is the last action taken for it, after
// every one of its lines has been drawn, so a failed run never records a
// partially written episode. Progress is reported to w.
func (a *Assembler) Build(episodes []types.Episode, w io.Writer) (Summary, error) {
	width, height := a.r.PageSize()
	topY := height - a.layout.MarginTop - a.layout.TopOffset
	stopY := a.layout.MarginBottom + a.layout.BottomBuffer
	usable := a.layout.UsableWidth(width)
	done := a.led.Completed()

	// Phase 1: the index lists every episode, completed or not. The
	// header drawn at an index page break is keyed to whichever episode
	// is current at the break, as in earlier versions of the tool.
	a.setTitleFont()
	a.r.DrawText(a.layout.MarginLeft, topY, indexHeading)
	a.setBodyFont()

	index := flow.NewController(a.r, flow.Params{
		X:          a.layout.MarginLeft,
		StartY:     topY - a.layout.IndexTitleGap,
		ResetY:     topY,
		StopY:      stopY,
		LineHeight: a.layout.LineHeight,
	})
	for _, ep := range episodes {
		n := ep.Number
		index.Emit(episodeLabel(n), func() { a.headerFooter(n, height) })
	}

	// Body content starts on a fresh page regardless of index fill.
	a.r.NewPage()

	var summary Summary
	for _, ep := range episodes {
		id := strconv.Itoa(ep.Number)
		if done[id] {
			fmt.Fprintf(w, "skipped:  episode %d (already in ledger)\n", ep.Number)
			summary.Skipped = append(summary.Skipped, ep.Number)
			continue
		}

		a.headerFooter(ep.Number, height)
		a.setTitleFont()
		a.r.DrawText(a.layout.MarginLeft, topY, episodeLabel(ep.Number))
		a.setBodyFont()

		lines := wrap.Lines(ep.Text, usable, a.r.MeasureWidth)
		body := flow.NewController(a.r, flow.Params{
			X:          a.layout.MarginLeft,
			StartY:     topY - a.layout.LineHeight,
			ResetY:     topY,
			StopY:      stopY,
			LineHeight: a.layout.LineHeight,
		})
		for _, line := range lines {
			// Continuation pages get the header and footer again, but
			// never the title.
			body.Emit(line, func() { a.headerFooter(ep.Number, height) })
		}

		if err := a.r.Err(); err != nil {
			return summary, fmt.Errorf("drawing episode %d: %w", ep.Number, err)
		}
		if err := a.led.Append(id); err != nil {
			return summary, fmt.Errorf("recording episode %d: %w", ep.Number, err)
		}

		fmt.Fprintf(w, "emitted:  episode %d (%d lines)\n", ep.Number, len(lines))
		summary.Emitted = append(summary.Emitted, ep.Number)

		// Each episode ends with a forced break so the next one starts
		// on a clean page.
		a.r.NewPage()
	}

	fmt.Fprintf(w, "\nAssembly summary: %d emitted, %d skipped (total: %d)\n",
		len(summary.Emitted), len(summary.Skipped), summary.Total())
	return summary, nil
}

// headerFooter draws the running "Episode N" header and footer on the
// current page.
func (a *Assembler) headerFooter(number int, pageHeight float64) {
	label := episodeLabel(number)
	a.r.DrawText(a.layout.MarginLeft, pageHeight-a.layout.MarginTop, label)
	a.r.DrawText(a.layout.MarginLeft, a.layout.MarginBottom, label)
}

func (a *Assembler) setTitleFont() {
	a.r.SetFont(a.layout.TitleFont, a.layout.TitleStyle, a.layout.TitleSize)
}

func (a *Assembler) setBodyFont() {
	a.r.SetFont(a.layout.BodyFont, "", a.layout.BodySize)
}

func episodeLabel(number int) string {
	return fmt.Sprintf("Episode %d", number)
}
