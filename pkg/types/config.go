// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LayoutConfig holds the page geometry and text metrics for the generated
// PDF. The defaults reproduce the output of the legacy assembly script:
// US Letter, 50pt margins, Helvetica body text.
type LayoutConfig struct {
	// PageSize is the page size name (e.g. "Letter", "A4").
	PageSize string `json:"page_size" yaml:"page_size"`

	// MarginLeft, MarginTop, MarginRight, MarginBottom are the page
	// margins in points.
	MarginLeft   float64 `json:"margin_left" yaml:"margin_left"`
	MarginTop    float64 `json:"margin_top" yaml:"margin_top"`
	MarginRight  float64 `json:"margin_right" yaml:"margin_right"`
	MarginBottom float64 `json:"margin_bottom" yaml:"margin_bottom"`

	// BodyFont and BodySize set the transcript text font.
	BodyFont string  `json:"body_font" yaml:"body_font"`
	BodySize float64 `json:"body_size" yaml:"body_size"`

	// TitleFont, TitleStyle and TitleSize set the font for the index
	// heading and episode titles.
	TitleFont  string  `json:"title_font" yaml:"title_font"`
	TitleStyle string  `json:"title_style" yaml:"title_style"`
	TitleSize  float64 `json:"title_size" yaml:"title_size"`

	// LineHeight is the vertical advance per body or index line, in points.
	LineHeight float64 `json:"line_height" yaml:"line_height"`

	// IndexTitleGap is the vertical advance after the index heading.
	IndexTitleGap float64 `json:"index_title_gap" yaml:"index_title_gap"`

	// TopOffset is the distance from the top margin down to the first
	// line of a page, reserving room for the running header.
	TopOffset float64 `json:"top_offset" yaml:"top_offset"`

	// BottomBuffer is added to the bottom margin to form the cursor limit
	// that triggers a page break.
	BottomBuffer float64 `json:"bottom_buffer" yaml:"bottom_buffer"`
}

// UsableWidth returns the horizontal budget for a line given the page width.
func (l LayoutConfig) UsableWidth(pageWidth float64) float64 {
	return pageWidth - l.MarginLeft - l.MarginRight
}

// LedgerConfig holds settings for the completion ledger.
type LedgerConfig struct {
	// Backend selects the storage: file or sqlite.
	Backend LedgerBackend `json:"backend" yaml:"backend"`

	// Path is the ledger file (or database file) location.
	Path string `json:"path" yaml:"path"`
}

// BinderConfig groups all settings for one assembly run.
type BinderConfig struct {
	// InputDir is the directory scanned for *.txt transcripts.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputPDF is the path the assembled document is written to.
	OutputPDF string `json:"output_pdf" yaml:"output_pdf"`

	// ManifestPath is where the run manifest is written. Empty disables
	// the manifest.
	ManifestPath string `json:"manifest_path" yaml:"manifest_path"`

	Ledger LedgerConfig `json:"ledger" yaml:"ledger"`
	Layout LayoutConfig `json:"layout" yaml:"layout"`
}

// DefaultLayout returns the layout used by the legacy script: Letter
// pages, 50pt margins, Helvetica 12 body with 14pt line advance.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		PageSize:      "Letter",
		MarginLeft:    50,
		MarginTop:     50,
		MarginRight:   50,
		MarginBottom:  50,
		BodyFont:      "Helvetica",
		BodySize:      12,
		TitleFont:     "Helvetica",
		TitleStyle:    "B",
		TitleSize:     14,
		LineHeight:    14,
		IndexTitleGap: 16,
		TopOffset:     60,
		BottomBuffer:  30,
	}
}
