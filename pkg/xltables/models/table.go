package models

// TableCandidate is a heading cell found while scanning a grid.
type TableCandidate struct {
	// Row is the grid row of the heading cell (0-based).
	Row int `json:"row"`
	// Col is the grid column of the heading cell (0-based).
	Col int `json:"col"`
	// Heading is the trimmed heading text as found.
	Heading string `json:"heading"`
	// Name is the canonical table name resolved from Heading.
	Name string `json:"name"`
}

// Table is one extracted table region.
type Table struct {
	// Name is the canonical table name, unique within a cache.
	Name string `json:"name"`
	// RowHeadings lists row labels in top-to-bottom order.
	RowHeadings []string `json:"row_headings"`
	// Content maps each row label to its normalized values, left to right.
	Content map[string][]string `json:"content"`
	// StartRow is the sheet row of the heading cell (0-based).
	StartRow int `json:"start_row"`
	// StartCol is the sheet column of the heading cell (0-based).
	StartCol int `json:"start_col"`
	// Ref is the A1 reference of the heading cell.
	Ref string `json:"ref,omitempty"`
	// Width is the length of the longest row in Content.
	Width int `json:"width"`
}
