package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"timecard/output"
	"timecard/period"
	"timecard/storage"
)

var (
	exportFormat string
	exportMode   string
	exportOutput string
	exportPeriod string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export time entries to CSV, Excel, or SQLite",
	Long: `Export entries from the data file.

Modes:
- raw: export each entry as one row
- daily: export per-day aggregates (start/end, worked hours, break hours)

Output format can be selected explicitly via --format or inferred from the
--output extension.`,
	Example: `
  # Export all entries to CSV
  timecard export --mode raw --output ./entries.csv

  # Export this month's entries to Excel
  timecard export --mode raw --period month --output ./entries.xlsx

  # Export daily summaries to CSV
  timecard export --mode daily --output ./daily-summary.csv

  # Export raw entries into a SQLite database
  timecard export --mode raw --output ./timecard-export.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		data, err := storage.Load(dataFilePath())
		if err != nil {
			return err
		}

		entries := data.TimeEntries
		if strings.TrimSpace(exportPeriod) != "" {
			resolved, err := period.Resolve(exportPeriod, time.Now())
			if err != nil {
				return err
			}
			entries = data.EntriesByPeriod(resolved.Start, resolved.End)
		}

		mode := strings.TrimSpace(strings.ToLower(exportMode))
		switch mode {
		case "", "raw":
			writer, writerErr := output.WriterForFormat(format)
			if writerErr != nil {
				return writerErr
			}
			if err := writer.Write(exportOutput, entries); err != nil {
				return err
			}
			fmt.Printf("Export completed. Rows: %d, Mode: raw, Format: %s, File: %s\n", len(entries), format, exportOutput)
		case "daily":
			summaries := output.BuildDailySummaries(entries)
			if err := output.WriteDailySummaries(exportOutput, format, summaries); err != nil {
				return err
			}
			fmt.Printf("Export completed. Days: %d, Mode: daily, Format: %s, File: %s\n", len(summaries), format, exportOutput)
		default:
			return fmt.Errorf("unsupported export mode: %s (supported: raw, daily)", exportMode)
		}
		return nil
	},
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	case "db", "db3", "sqlite", "sqlite3":
		return "sqlite"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportMode, "mode", "raw", "Export mode: raw|daily")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel|sqlite (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVarP(&exportPeriod, "period", "P", "", "Only export entries in this period (e.g. week, last-month)")

	_ = exportCmd.MarkFlagRequired("output")
}
