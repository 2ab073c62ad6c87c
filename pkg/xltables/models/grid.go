// Package models defines data structures for spreadsheet table extraction.
package models

// Grid is a rectangular block of trimmed cell strings read from one sheet.
// Absent cells are the empty string. A Grid is never modified after load.
type Grid struct {
	// Cells holds rows of cells; every row has the same length.
	Cells [][]string `json:"cells"`
	// OriginRow is the 0-based sheet row of Cells[0].
	OriginRow int `json:"origin_row"`
	// OriginCol is the 0-based sheet column of Cells[r][0].
	OriginCol int `json:"origin_col"`
}

// NewGrid builds a rectangular Grid from ragged rows, padding short rows with "".
func NewGrid(rows [][]string) Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		cells[i] = padded
	}
	return Grid{Cells: cells}
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g.Cells)
}

// Cols returns the number of columns.
func (g Grid) Cols() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// At returns the cell at (row, col), or "" when out of range.
func (g Grid) At(row, col int) string {
	if row < 0 || row >= len(g.Cells) {
		return ""
	}
	cells := g.Cells[row]
	if col < 0 || col >= len(cells) {
		return ""
	}
	return cells[col]
}

// Row returns the cells of one row. The slice must not be modified.
func (g Grid) Row(row int) []string {
	if row < 0 || row >= len(g.Cells) {
		return nil
	}
	return g.Cells[row]
}

// Crop returns the sub-grid covered by area, clamped to the grid bounds.
// The returned grid shares no cells with g and carries the sheet origin.
func (g Grid) Crop(area Area) Grid {
	r1, c1 := area.R1-1-g.OriginRow, area.C1-1-g.OriginCol
	r2, c2 := area.R2-1-g.OriginRow, area.C2-1-g.OriginCol
	if r1 < 0 {
		r1 = 0
	}
	if c1 < 0 {
		c1 = 0
	}
	if r2 >= g.Rows() {
		r2 = g.Rows() - 1
	}
	if c2 >= g.Cols() {
		c2 = g.Cols() - 1
	}

	out := Grid{OriginRow: g.OriginRow + r1, OriginCol: g.OriginCol + c1}
	if r1 > r2 || c1 > c2 {
		return out
	}
	for r := r1; r <= r2; r++ {
		row := make([]string, c2-c1+1)
		copy(row, g.Cells[r][c1:c2+1])
		out.Cells = append(out.Cells, row)
	}
	return out
}
