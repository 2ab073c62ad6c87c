// Package main provides the CLI entry point for xltables.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xltables/internal/config"
	"github.com/ukaji3/xltables/internal/logging"
	"github.com/ukaji3/xltables/pkg/xltables"
	"github.com/ukaji3/xltables/pkg/xltables/query"
)

var (
	envFile     string
	filePath    string
	sheet       string
	knownTables []string
	threshold   int
	skipRows    int
	scanRange   string
	printArea   bool
	formatted   bool
	password    string
	logLevel    string
	seqURL      string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xltables",
		Short: "Extract and query heading-labelled tables in spreadsheets",
		Long: `xltables scans a loosely structured spreadsheet for tables (a heading,
a column of row labels and a block of values) and answers table and row
queries over them, from the command line or over HTTP.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&envFile, "env-file", ".env", "Environment file to load before reading XLTABLES_* variables")
	flags.StringVarP(&filePath, "file", "f", "", "Spreadsheet to read (.xlsx, .xlsm, .csv)")
	flags.StringVar(&sheet, "sheet", "", "Sheet name (default: first sheet)")
	flags.StringSliceVar(&knownTables, "known", nil, "Known table names, repeatable or comma separated")
	flags.IntVar(&threshold, "threshold", 85, "Similarity score a fuzzy match must exceed (1-100)")
	flags.IntVar(&skipRows, "skip-rows", 2, "Leading metadata rows never scanned for headings")
	flags.StringVar(&scanRange, "range", "", "Only scan this cell range, e.g. B3:H40")
	flags.BoolVar(&printArea, "print-area", false, "Only scan the sheet's print area")
	flags.BoolVar(&formatted, "formatted", false, "Read cells as displayed instead of as stored")
	flags.StringVar(&password, "password", "", "Password for encrypted workbooks")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&seqURL, "seq-url", "", "Seq ingestion URL for shipping logs")

	rootCmd.AddCommand(
		newServeCmd(),
		newListCmd(),
		newDetailsCmd(),
		newRowSumCmd(),
		newDumpCmd(),
		newCandidatesCmd(),
	)
	return rootCmd
}

// loadConfig reads the environment and applies any flags set on cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, err
	}

	changed := cmd.Flags().Changed
	if changed("file") {
		cfg.ExcelPath = filePath
	}
	if changed("sheet") {
		cfg.Sheet = sheet
	}
	if changed("known") {
		cfg.KnownTables = knownTables
	}
	if changed("threshold") {
		cfg.Threshold = threshold
	}
	if changed("skip-rows") {
		cfg.SkipRows = skipRows
	}
	if changed("range") {
		cfg.Range = scanRange
	}
	if changed("print-area") {
		cfg.UsePrintArea = printArea
	}
	if changed("formatted") {
		cfg.Formatted = formatted
	}
	if changed("password") {
		cfg.Password = password
	}
	if changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if changed("seq-url") {
		cfg.SeqURL = seqURL
	}
	if changed("addr") {
		cfg.Addr = addr
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// setup loads configuration and installs the process logger.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logger, closeFn := logging.SetupLogger(logging.Options{
		Level:  cfg.LogLevel,
		SeqURL: cfg.SeqURL,
	})
	slog.SetDefault(logger)
	return cfg, logger, closeFn, nil
}

// extractionOptions returns the library options for cfg, logging to logger.
func extractionOptions(cfg config.Config, logger *slog.Logger) xltables.Options {
	opts := cfg.Options()
	opts.Logger = logger
	return opts
}

// newService builds a query service over the configured spreadsheet.
func newService(cfg config.Config, logger *slog.Logger) (*query.Service, error) {
	store, err := loadStore(cfg, logger)
	if err != nil {
		return nil, err
	}
	return query.NewService(store, extractionOptions(cfg, logger).Resolver()), nil
}

func printJSON(cmd *cobra.Command, data []byte) {
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
}
