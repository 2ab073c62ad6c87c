// Package xltables extracts heading-labelled tables from loosely structured
// spreadsheets and serves lookups over them.
package xltables

import (
	"log/slog"

	"github.com/ukaji3/xltables/pkg/xltables/fuzzy"
	"github.com/ukaji3/xltables/pkg/xltables/parser"
)

// Options configures loading and extraction.
type Options struct {
	// Sheet is the sheet to read. Empty means the first sheet.
	Sheet string
	// KnownTables is the vocabulary of expected table names.
	KnownTables []string
	// Threshold is the similarity score a fuzzy match must exceed.
	// Zero means fuzzy.DefaultThreshold.
	Threshold int
	// SkipRows is the number of leading metadata rows never scanned for
	// headings. If nil, defaults to 2.
	SkipRows *int
	// Range restricts scanning to a cell range such as "B3:H40".
	Range string
	// UsePrintArea restricts scanning to the sheet's print area, if it has one.
	// Ignored when Range is set.
	UsePrintArea bool
	// FormattedValues reads cells as displayed instead of as stored.
	FormattedValues bool
	// Password opens encrypted workbooks.
	Password string
	// Matcher overrides the similarity algorithm. If nil, fuzzy.WRatio is used.
	Matcher fuzzy.Matcher
	// Logger receives extraction events. If nil, slog.Default is used.
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Threshold: fuzzy.DefaultThreshold,
	}
}

// Resolver returns the name resolver described by the options.
func (o Options) Resolver() *fuzzy.Resolver {
	r := fuzzy.NewResolver()
	if o.Matcher != nil {
		r.Matcher = o.Matcher
	}
	if o.Threshold > 0 {
		r.Threshold = o.Threshold
	}
	return r
}

// Params returns the extraction parameters described by the options.
func (o Options) Params() parser.ExtractionParams {
	p := parser.DefaultExtractionParams()
	if o.SkipRows != nil {
		p.SkipRows = *o.SkipRows
	}
	return p
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
