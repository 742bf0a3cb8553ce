// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wrap implements greedy line wrapping against a measured width.
//
// The algorithm reproduces the legacy assembly script exactly, quirks
// included: finished lines keep a trailing space, every input segment
// flushes its final candidate even when empty, and a word wider than the
// limit is never split. Output is compared byte-for-byte against documents
// produced by earlier versions, so none of this is cleaned up.
package wrap

import "strings"

// MeasureFunc returns the rendered width of s in the current body font.
type MeasureFunc func(s string) float64

// Lines wraps text so that no line measures wider than limit, except for a
// single word that alone exceeds it. Input newlines delimit segments;
// a blank segment passes through as-is, preserving paragraph spacing.
func Lines(text string, limit float64, measure MeasureFunc) []string {
	var out []string
	for _, segment := range strings.Split(text, "\n") {
		if strings.TrimSpace(segment) == "" {
			out = append(out, segment)
			continue
		}
		var current string
		for _, word := range strings.Fields(segment) {
			// The candidate is measured without the trailing space the
			// accepted word will carry.
			if measure(current+word) <= limit {
				current += word + " "
			} else {
				out = append(out, current)
				current = word + " "
			}
		}
		// The final candidate is always flushed.
		out = append(out, current)
	}
	return out
}
