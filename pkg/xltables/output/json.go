// Package output serializes extraction results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/xltables/pkg/xltables/models"
)

// ToJSON serializes a workbook extraction result.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// TableToJSON serializes a single table.
func TableToJSON(t *models.Table, pretty bool) ([]byte, error) {
	return marshal(t, pretty)
}

// CandidatesToJSON serializes heading candidates.
func CandidatesToJSON(c []models.TableCandidate, pretty bool) ([]byte, error) {
	if c == nil {
		c = []models.TableCandidate{}
	}
	return marshal(c, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
