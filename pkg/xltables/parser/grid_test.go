package parser

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractGrid(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "  Report  ")
	f.SetCellValue(sheetName, "A3", "REVENUE")
	f.SetCellValue(sheetName, "A4", "Products")
	f.SetCellValue(sheetName, "B4", 0.25)
	f.SetCellValue(sheetName, "C4", 1200)

	style, err := f.NewStyle(&excelize.Style{NumFmt: 10})
	if err != nil {
		t.Fatalf("Failed to create style: %v", err)
	}
	f.SetCellStyle(sheetName, "B4", "B4", style)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	grid, err := ExtractGrid(f2, sheetName, false)
	if err != nil {
		t.Fatalf("ExtractGrid failed: %v", err)
	}

	if grid.Rows() != 4 {
		t.Errorf("Expected 4 rows, got %d", grid.Rows())
	}
	if grid.Cols() != 3 {
		t.Errorf("Expected 3 columns, got %d", grid.Cols())
	}
	for r, row := range grid.Cells {
		if len(row) != grid.Cols() {
			t.Errorf("Row %d has %d cells, expected %d", r, len(row), grid.Cols())
		}
	}

	if got := grid.At(0, 0); got != "Report" {
		t.Errorf("Expected trimmed 'Report', got %q", got)
	}
	if got := grid.At(1, 2); got != "" {
		t.Errorf("Expected empty cell, got %q", got)
	}
	if got := grid.At(3, 1); got != "0.25" {
		t.Errorf("Expected raw value '0.25', got %q", got)
	}
	if got := grid.At(3, 2); got != "1200" {
		t.Errorf("Expected '1200', got %q", got)
	}

	formatted, err := ExtractGrid(f2, sheetName, true)
	if err != nil {
		t.Fatalf("ExtractGrid failed: %v", err)
	}
	if got := formatted.At(3, 1); got != "25.00%" {
		t.Errorf("Expected formatted value '25.00%%', got %q", got)
	}
}

func TestSheetName(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet("Data"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}

	tests := []struct {
		want     string
		expected string
		wantErr  bool
	}{
		{"", "Sheet1", false},
		{"Data", "Data", false},
		{"Missing", "", true},
	}

	for _, tt := range tests {
		result, err := SheetName(f, tt.want)
		if (err != nil) != tt.wantErr {
			t.Errorf("SheetName(%q) error = %v, wantErr %v", tt.want, err, tt.wantErr)
			continue
		}
		if result != tt.expected {
			t.Errorf("SheetName(%q) = %q, expected %q", tt.want, result, tt.expected)
		}
	}
}

func TestReadCSVGrid(t *testing.T) {
	input := "Report,,\n\nREVENUE\n Products ,0.5,3\n"

	grid, err := ReadCSVGrid(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSVGrid failed: %v", err)
	}

	// encoding/csv skips blank lines
	if grid.Rows() != 3 {
		t.Errorf("Expected 3 rows, got %d", grid.Rows())
	}
	if grid.Cols() != 3 {
		t.Errorf("Expected 3 columns, got %d", grid.Cols())
	}
	if got := grid.At(2, 0); got != "Products" {
		t.Errorf("Expected 'Products', got %q", got)
	}
	if got := grid.At(1, 2); got != "" {
		t.Errorf("Expected padded empty cell, got %q", got)
	}
}

func TestReadCSVGridInvalid(t *testing.T) {
	if _, err := ReadCSVGrid(strings.NewReader("a,b\"c\n")); err == nil {
		t.Error("Expected error for bare quote in unquoted field")
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"123", 123, true},
		{" 123.45 ", 123.45, true},
		{"-100", -100, true},
		{"1e2", 100, true},
		{"50%", 0, false},
		{"hello", 0, false},
		{"0x1p-2", 0, false},
		{"0X10", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		result, ok := ParseNumber(tt.input)
		if ok != tt.ok || result != tt.expected {
			t.Errorf("ParseNumber(%q) = (%v, %v), expected (%v, %v)",
				tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}
