package parser

import (
	"github.com/ukaji3/xltables/pkg/xltables/models"
	"github.com/xuri/excelize/v2"
)

// ExtractionParams holds parameters for table extraction.
type ExtractionParams struct {
	// SkipRows is the number of leading rows treated as sheet metadata.
	SkipRows int
}

// DefaultExtractionParams returns default table extraction parameters.
func DefaultExtractionParams() ExtractionParams {
	return ExtractionParams{
		SkipRows: 2,
	}
}

// labelRow is a row label together with the grid row it was found on.
type labelRow struct {
	row   int
	label string
}

// FindCandidates scans grid top to bottom, left to right, and returns every
// heading cell. Rows holding a numeric cell never contain headings.
func FindCandidates(grid models.Grid, c Classifier, params ExtractionParams) []models.TableCandidate {
	var candidates []models.TableCandidate

	for r := max(params.SkipRows, 0); r < grid.Rows(); r++ {
		row := grid.Row(r)
		if RowHasNumericValue(row) {
			continue
		}
		for col, cell := range row {
			if !c.LooksLikeHeading(cell) {
				continue
			}
			candidates = append(candidates, models.TableCandidate{
				Row:     r,
				Col:     col,
				Heading: cell,
				Name:    c.Canonicalize(cell),
			})
		}
	}

	return candidates
}

// ExtractTables extracts every table region of grid in scan order.
// Candidates without data rows are discarded, and only the first table with
// a given canonical name is kept.
func ExtractTables(grid models.Grid, c Classifier, params ExtractionParams) []models.Table {
	var tables []models.Table
	seen := make(map[string]bool)

	for _, cand := range FindCandidates(grid, c, params) {
		if seen[cand.Name] {
			continue
		}
		table, ok := ExtractTable(grid, cand)
		if !ok {
			continue
		}
		seen[table.Name] = true
		tables = append(tables, table)
	}

	return tables
}

// ExtractTable builds the table opened by a single heading candidate.
// It returns false when no row yields any value.
func ExtractTable(grid models.Grid, cand models.TableCandidate) (models.Table, bool) {
	labels := collectRowLabels(grid, cand)
	if len(labels) == 0 {
		return models.Table{}, false
	}

	first, last, ok := dataSpan(grid, labels[0].row, cand.Col)
	if !ok {
		return models.Table{}, false
	}

	table := models.Table{
		Name:     cand.Name,
		Content:  make(map[string][]string),
		StartRow: grid.OriginRow + cand.Row,
		StartCol: grid.OriginCol + cand.Col,
	}
	table.Ref, _ = excelize.CoordinatesToCellName(table.StartCol+1, table.StartRow+1)

	for _, lr := range labels {
		if _, dup := table.Content[lr.label]; dup {
			continue
		}
		var values []string
		for col := first; col <= last; col++ {
			if v := NormalizeValue(grid.At(lr.row, col)); v != "" {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}
		table.RowHeadings = append(table.RowHeadings, lr.label)
		table.Content[lr.label] = values
		table.Width = max(table.Width, len(values))
	}

	if len(table.RowHeadings) == 0 {
		return models.Table{}, false
	}
	return table, true
}

// collectRowLabels walks down from the heading. Blank cells directly below
// the heading are skipped; after that the first row with no usable label
// ends the table.
func collectRowLabels(grid models.Grid, cand models.TableCandidate) []labelRow {
	r := cand.Row + 1
	for r < grid.Rows() && grid.At(r, cand.Col) == "" {
		r++
	}

	var labels []labelRow
	for ; r < grid.Rows(); r++ {
		label, ok := rowLabel(grid, r, cand.Col)
		if !ok {
			break
		}
		labels = append(labels, labelRow{row: r, label: label})
	}
	return labels
}

// rowLabel returns the first non-empty alphabetic cell of row, searching
// leftward from col to the first column.
func rowLabel(grid models.Grid, row, col int) (string, bool) {
	for c := col; c >= 0; c-- {
		if cell := grid.At(row, c); cell != "" && IsAlphabetic(cell) {
			return cell, true
		}
	}
	return "", false
}

// dataSpan returns the column window holding a table's values, using the
// given row only. The window starts right of the heading column and ends at
// the last cell of the first contiguous run of non-empty cells.
func dataSpan(grid models.Grid, row, headingCol int) (first, last int, ok bool) {
	c := headingCol + 1
	for c < grid.Cols() && grid.At(row, c) == "" {
		c++
	}
	if c >= grid.Cols() {
		return 0, 0, false
	}
	for c < grid.Cols() && grid.At(row, c) != "" {
		c++
	}
	return headingCol + 1, c - 1, true
}
