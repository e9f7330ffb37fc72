package cmd

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"timecard/config"
	"timecard/output"
	"timecard/period"
	"timecard/storage"
	"timecard/timecard"
)

var (
	reportPeriod  string
	reportProject string
	reportCSV     bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize tracked hours for a period",
	Long: `Report total hours, a per-project breakdown, and detailed entries for a
symbolic period. Periods: today, yesterday, week, this-week, last-week,
month, this-month, last-month.`,
	Example: `
  # Today's report
  timecard report

  # Last month's report for one project
  timecard report --period last-month --project alpha

  # Export this week's report to timecard_report_this_week.csv
  timecard report --period this-week --csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolved, err := period.Resolve(reportPeriod, time.Now())
		if err != nil {
			return err
		}

		data, err := storage.Load(dataFilePath())
		if err != nil {
			return err
		}

		entries := data.EntriesByPeriod(resolved.Start, resolved.End)
		if reportProject != "" {
			filtered := entries[:0]
			for _, entry := range entries {
				if entry.Project != nil && *entry.Project == reportProject {
					filtered = append(filtered, entry)
				}
			}
			entries = filtered
		}

		fmt.Printf("Time Report - %s\n", resolved.Label)
		fmt.Println("==================================================")
		fmt.Printf("Period: %s to %s\n",
			resolved.Start.Format("2006-01-02"),
			resolved.End.Format("2006-01-02"))
		fmt.Println()

		if len(entries) == 0 {
			fmt.Println("No time entries found for this period.")
			return nil
		}

		totalHours := timecard.SumHours(entries)

		fmt.Println("Summary")
		fmt.Printf("Total Hours: %.2f\n", totalHours)
		fmt.Printf("Total Entries: %d\n", len(entries))
		fmt.Println()

		byProject := projectHours(entries)
		if len(byProject) > 1 {
			fmt.Println("Project Breakdown")
			printProjectBreakdown(byProject, totalHours)
			fmt.Println()
		}

		fmt.Println("Detailed Entries")
		for _, entry := range entries {
			hours, _ := entry.Hours()
			fmt.Printf("  %s - %s (%.2fh)\n",
				entry.StartTime.Format("2006-01-02 15:04"),
				projectLabel(entry),
				hours)
			if entry.Description != nil {
				fmt.Printf("    Description: %s\n", *entry.Description)
			}
		}

		if reportCSV {
			outputPath := filepath.Join(
				viper.GetString(config.KeyReportOutputDir),
				csvReportFilename(reportPeriod),
			)
			writer := &output.CSVWriter{}
			if err := writer.Write(outputPath, entries); err != nil {
				return err
			}
			fmt.Println()
			fmt.Printf("CSV exported to: %s\n", outputPath)
		}

		return nil
	},
}

func printProjectBreakdown(totals map[string]float64, totalHours float64) {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		percentage := 0.0
		if totalHours > 0 {
			percentage = totals[name] / totalHours * 100.0
		}
		fmt.Printf("  %s: %.2f hours (%.1f%%)\n", name, totals[name], percentage)
	}
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportPeriod, "period", "P", "today", "Period token: today|yesterday|week|this-week|last-week|month|this-month|last-month")
	reportCmd.Flags().StringVarP(&reportProject, "project", "p", "", "Only report entries for this project")
	reportCmd.Flags().BoolVar(&reportCSV, "csv", false, "Export the report to a CSV file")
}
