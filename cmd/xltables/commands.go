package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xltables/pkg/xltables"
	"github.com/ukaji3/xltables/pkg/xltables/models"
	"github.com/ukaji3/xltables/pkg/xltables/output"
)

var (
	outputPath string
	pretty     bool
	tablesDir  string
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the tables found in the spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, closeFn, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			svc, err := newService(cfg, logger)
			if err != nil {
				return err
			}
			for _, name := range svc.ListTables() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newDetailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "details <table>",
		Short: "Show the row names of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, closeFn, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			svc, err := newService(cfg, logger)
			if err != nil {
				return err
			}
			details, err := svc.GetTableDetails(args[0])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(details, "", "  ")
			if err != nil {
				return err
			}
			printJSON(cmd, data)
			return nil
		},
	}
}

func newRowSumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rowsum <table> <row>",
		Short: "Sum the numeric values of a table row",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, closeFn, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			svc, err := newService(cfg, logger)
			if err != nil {
				return err
			}
			sum, err := svc.RowSum(args[0], args[1])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(sum, "", "  ")
			if err != nil {
				return err
			}
			printJSON(cmd, data)
			return nil
		},
	}
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write every extracted table as JSON",
		Args:  cobra.NoArgs,
		RunE:  runDump,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&tablesDir, "tables-dir", "", "Directory for per-table output files")
	return cmd
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, logger, closeFn, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	wb, err := xltables.ExtractWorkbook(cfg.ExcelPath, extractionOptions(cfg, logger))
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonData, err := output.ToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if tablesDir == "" {
		printJSON(cmd, jsonData)
	}

	if tablesDir != "" {
		if err := writeTableFiles(wb, tablesDir); err != nil {
			return fmt.Errorf("failed to write table files: %w", err)
		}
	}

	return nil
}

func newCandidatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "candidates",
		Short: "List heading cells and the names they resolve to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, closeFn, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			candidates, err := xltables.Candidates(cfg.ExcelPath, extractionOptions(cfg, logger))
			if err != nil {
				return err
			}
			data, err := output.CandidatesToJSON(candidates, true)
			if err != nil {
				return err
			}
			printJSON(cmd, data)
			return nil
		},
	}
}

func writeTableFiles(wb *models.WorkbookData, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range wb.Tables {
		table := &wb.Tables[i]
		jsonData, err := output.TableToJSON(table, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, fmt.Sprintf("%02d_%s.json", i+1, fileSafe(table.Name)))
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

// fileSafe replaces characters that are awkward in file names.
func fileSafe(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, name)
}
