package xltables

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xltables/pkg/xltables/query"
)

// ErrSourceUnavailable indicates the spreadsheet could not be opened.
var ErrSourceUnavailable = errors.New("source unavailable")

// ErrSourceFormatInvalid indicates the spreadsheet could not be read as tabular data.
var ErrSourceFormatInvalid = errors.New("source format invalid")

// ErrTableNotFound indicates no cached table matches a requested name.
var ErrTableNotFound = query.ErrTableNotFound

// ErrRowNotFound indicates a table has no row with a requested label.
var ErrRowNotFound = query.ErrRowNotFound

// SourceError represents a failure to load a spreadsheet.
type SourceError struct {
	Path  string
	Sheet string
	Kind  error // ErrSourceUnavailable or ErrSourceFormatInvalid
	Err   error
}

func (e *SourceError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("%v: %s (sheet %q): %v", e.Kind, e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the error kind and the underlying cause.
func (e *SourceError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func unavailable(path string, err error) *SourceError {
	return &SourceError{Path: path, Kind: ErrSourceUnavailable, Err: err}
}

func formatInvalid(path, sheet string, err error) *SourceError {
	return &SourceError{Path: path, Sheet: sheet, Kind: ErrSourceFormatInvalid, Err: err}
}
