package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xltables/pkg/xltables/models"
	"github.com/xuri/excelize/v2"
)

// ExtractPrintAreas returns the print areas defined in a workbook, keyed by sheet name.
func ExtractPrintAreas(f *excelize.File) map[string][]models.Area {
	result := make(map[string][]models.Area)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheetName, areas := parseAreaReference(dn.RefersTo)
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// ParseRange parses a range such as "B3:H40" or "$B$3:$H$40".
// A single cell reference yields a one-cell area.
func ParseRange(ref string) (models.Area, error) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}

	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.Area{}, fmt.Errorf("invalid range %q", ref)
	}

	c1, r1, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Area{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	c2, r2, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Area{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	if r2 < r1 {
		r1, r2 = r2, r1
	}
	if c2 < c1 {
		c1, c2 = c2, c1
	}
	return models.Area{R1: r1, C1: c1, R2: r2, C2: c2}, nil
}

// parseAreaReference parses a defined-name reference.
// Format: 'Sheet Name'!$A$1:$D$10,'Sheet Name'!$F$1:$H$10
func parseAreaReference(ref string) (string, []models.Area) {
	var (
		sheetName string
		areas     []models.Area
	)

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		if sheetName == "" {
			sheetName = strings.Trim(part[:idx], "'")
		}
		if area, err := ParseRange(part[idx+1:]); err == nil {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}
