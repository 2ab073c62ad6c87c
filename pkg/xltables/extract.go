package xltables

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/xltables/pkg/xltables/cache"
	"github.com/ukaji3/xltables/pkg/xltables/models"
	"github.com/ukaji3/xltables/pkg/xltables/parser"
	"github.com/xuri/excelize/v2"
)

// Extract loads a spreadsheet and returns the cache of tables found in it.
func Extract(path string, opts Options) (*cache.Cache, error) {
	grid, _, err := LoadGrid(path, opts)
	if err != nil {
		return nil, err
	}
	return Build(grid, opts)
}

// ExtractWorkbook loads a spreadsheet and returns its tables with the
// workbook and sheet names.
func ExtractWorkbook(path string, opts Options) (*models.WorkbookData, error) {
	grid, sheet, err := LoadGrid(path, opts)
	if err != nil {
		return nil, err
	}
	c, err := Build(grid, opts)
	if err != nil {
		return nil, err
	}
	return &models.WorkbookData{
		BookName:  filepath.Base(path),
		SheetName: sheet,
		Tables:    c.Tables(),
	}, nil
}

// Build extracts tables from grid and returns them as a Cache.
func Build(grid models.Grid, opts Options) (*cache.Cache, error) {
	log := opts.logger()
	classifier := parser.Classifier{
		Vocabulary: opts.KnownTables,
		Resolver:   opts.Resolver(),
	}

	tables := parser.ExtractTables(grid, classifier, opts.Params())
	for _, t := range tables {
		log.Debug("table extracted",
			"table", t.Name,
			"ref", t.Ref,
			"rows", len(t.RowHeadings),
			"width", t.Width,
		)
	}

	c, err := cache.New(tables)
	if err != nil {
		return nil, fmt.Errorf("building table cache: %w", err)
	}
	log.Info("tables extracted", "count", c.Len(), "rows", grid.Rows(), "cols", grid.Cols())
	return c, nil
}

// Candidates loads a spreadsheet and returns its heading candidates without
// extracting tables. Useful for tuning the vocabulary and threshold.
func Candidates(path string, opts Options) ([]models.TableCandidate, error) {
	grid, _, err := LoadGrid(path, opts)
	if err != nil {
		return nil, err
	}
	classifier := parser.Classifier{
		Vocabulary: opts.KnownTables,
		Resolver:   opts.Resolver(),
	}
	return parser.FindCandidates(grid, classifier, opts.Params()), nil
}

// LoadGrid reads the configured sheet of a spreadsheet into a Grid and
// returns the grid and the sheet name. CSV files have no sheet name.
func LoadGrid(path string, opts Options) (models.Grid, string, error) {
	if _, err := os.Stat(path); err != nil {
		return models.Grid{}, "", unavailable(path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		grid, err := loadCSV(path)
		if err != nil {
			return models.Grid{}, "", err
		}
		grid, err = applyRange(grid, opts.Range)
		if err != nil {
			return models.Grid{}, "", formatInvalid(path, "", err)
		}
		return grid, "", nil
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return loadWorkbook(path, opts)
	default:
		return models.Grid{}, "", formatInvalid(path, "", fmt.Errorf("unsupported file type %q", ext))
	}
}

func loadCSV(path string) (models.Grid, error) {
	fh, err := os.Open(path)
	if err != nil {
		return models.Grid{}, unavailable(path, err)
	}
	defer fh.Close()

	grid, err := parser.ReadCSVGrid(fh)
	if err != nil {
		return models.Grid{}, formatInvalid(path, "", err)
	}
	return grid, nil
}

func loadWorkbook(path string, opts Options) (models.Grid, string, error) {
	f, err := excelize.OpenFile(path, excelize.Options{Password: opts.Password})
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return models.Grid{}, "", unavailable(path, err)
		}
		return models.Grid{}, "", formatInvalid(path, "", err)
	}
	defer f.Close()

	sheet, err := parser.SheetName(f, opts.Sheet)
	if err != nil {
		return models.Grid{}, "", formatInvalid(path, opts.Sheet, err)
	}

	grid, err := parser.ExtractGrid(f, sheet, opts.FormattedValues)
	if err != nil {
		return models.Grid{}, "", formatInvalid(path, sheet, err)
	}

	switch {
	case opts.Range != "":
		grid, err = applyRange(grid, opts.Range)
		if err != nil {
			return models.Grid{}, "", formatInvalid(path, sheet, err)
		}
	case opts.UsePrintArea:
		if areas := parser.ExtractPrintAreas(f)[sheet]; len(areas) > 0 {
			grid = grid.Crop(areas[0])
		} else {
			opts.logger().Warn("sheet has no print area, scanning whole sheet", "sheet", sheet)
		}
	}

	return grid, sheet, nil
}

func applyRange(grid models.Grid, ref string) (models.Grid, error) {
	if ref == "" {
		return grid, nil
	}
	area, err := parser.ParseRange(ref)
	if err != nil {
		return models.Grid{}, err
	}
	return grid.Crop(area), nil
}
