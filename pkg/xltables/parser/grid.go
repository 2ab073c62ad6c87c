// Package parser reads spreadsheet grids and extracts table regions from them.
package parser

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/xltables/pkg/xltables/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// SheetName returns the sheet to read: want when non-empty and present,
// otherwise the first sheet of the workbook.
func SheetName(f *excelize.File, want string) (string, error) {
	sheets := f.GetSheetList()
	if want == "" {
		if len(sheets) == 0 {
			return "", ErrSheetNotFound
		}
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == want {
			return s, nil
		}
	}
	return "", ErrSheetNotFound
}

// ExtractGrid reads every cell of a sheet into a rectangular Grid.
// Raw cell values are used unless formatted is set, so fractions stored with
// a percentage number format come through as "0.25" rather than "25%".
func ExtractGrid(f *excelize.File, sheetName string, formatted bool) (models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: !formatted})
	if err != nil {
		return models.Grid{}, err
	}
	return buildGrid(rows), nil
}

// ReadCSVGrid reads comma separated records into a Grid. Records may have
// differing field counts.
func ReadCSVGrid(r io.Reader) (models.Grid, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return models.Grid{}, err
	}
	return buildGrid(rows), nil
}

// buildGrid normalizes every cell and pads rows to a common width.
func buildGrid(rows [][]string) models.Grid {
	cleaned := make([][]string, len(rows))
	for i, row := range rows {
		out := make([]string, len(row))
		for j, cell := range row {
			out[j] = cleanCell(cell)
		}
		cleaned[i] = out
	}
	return models.NewGrid(cleaned)
}

func cleanCell(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// ParseNumber parses s as a decimal floating-point number after trimming.
// Hexadecimal forms such as "0x1p-2" are rejected.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
