package output

import (
	"strings"
	"testing"

	"github.com/ukaji3/xltables/pkg/xltables/models"
)

func TestToJSON(t *testing.T) {
	wb := &models.WorkbookData{
		BookName:  "report.xlsx",
		SheetName: "Sheet1",
		Tables: []models.Table{{
			Name:        "REVENUE",
			RowHeadings: []string{"Products"},
			Content:     map[string][]string{"Products": {"50%"}},
			StartRow:    2,
			Ref:         "A3",
			Width:       1,
		}},
	}

	compact, err := ToJSON(wb, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	expected := `{"book_name":"report.xlsx","sheet_name":"Sheet1","tables":[{"name":"REVENUE","row_headings":["Products"],"content":{"Products":["50%"]},"start_row":2,"start_col":0,"ref":"A3","width":1}]}`
	if string(compact) != expected {
		t.Errorf("ToJSON = %s, expected %s", compact, expected)
	}

	pretty, err := ToJSON(wb, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  \"book_name\"") {
		t.Errorf("Expected indented output, got %s", pretty)
	}
}

func TestCandidatesToJSONEmpty(t *testing.T) {
	data, err := CandidatesToJSON(nil, false)
	if err != nil {
		t.Fatalf("CandidatesToJSON failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Expected [], got %s", data)
	}
}
