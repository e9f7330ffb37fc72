package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"timecard/storage"
	"timecard/timecard"
)

var (
	listProject string
	listLimit   int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List time entries, newest first",
	Example: `
  # List every entry
  timecard list

  # List the last five entries for a project
  timecard list --project alpha --limit 5
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := storage.Load(dataFilePath())
		if err != nil {
			return err
		}

		entries := append([]timecard.TimeEntry(nil), data.TimeEntries...)
		sort.Slice(entries, func(i, j int) bool {
			return entries[j].StartTime.Before(entries[i].StartTime)
		})

		if listProject != "" {
			filtered := entries[:0]
			for _, entry := range entries {
				if entry.Project != nil && *entry.Project == listProject {
					filtered = append(filtered, entry)
				}
			}
			entries = filtered
		}

		if listLimit > 0 && len(entries) > listLimit {
			entries = entries[:listLimit]
		}

		if len(entries) == 0 {
			fmt.Println("No time entries found.")
			return nil
		}

		fmt.Println("Time Entries")
		fmt.Println("================================================================================")

		activeCount := 0
		for _, entry := range entries {
			status := "COMPLETED"
			if entry.IsActive() {
				status = "ACTIVE"
				activeCount++
			}

			hours, _ := entry.Hours()
			fmt.Printf("%s %s - %s (%.2fh)\n",
				status,
				entry.StartTime.Format("2006-01-02 15:04"),
				projectLabel(entry),
				hours)

			if entry.Description != nil {
				fmt.Printf("    Description: %s\n", *entry.Description)
			}
			if entry.EndTime != nil {
				fmt.Printf("    Ended: %s\n", entry.EndTime.Format("2006-01-02 15:04"))
			}
			fmt.Println()
		}

		fmt.Println("Summary")
		fmt.Printf("Total Entries: %d\n", len(entries))
		fmt.Printf("Total Hours: %.2f\n", timecard.SumHours(entries))
		fmt.Printf("Active Entries: %d\n", activeCount)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listProject, "project", "p", "", "Only list entries for this project")
	listCmd.Flags().IntVarP(&listLimit, "limit", "l", 0, "Maximum number of entries to show (0 = all)")
}
