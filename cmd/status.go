package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"timecard/period"
	"timecard/storage"
	"timecard/timecard"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session and today's and this week's totals",
	Example: `
  # Show current status
  timecard status
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := storage.Load(dataFilePath())
		if err != nil {
			return err
		}

		now := time.Now()

		fmt.Println("TimeCard Status")
		fmt.Println("==============================")

		if active := data.ActiveEntry(); active != nil {
			hours := now.Sub(active.StartTime).Seconds() / 3600.0
			fmt.Println("Currently Clocked In")
			fmt.Printf("Started: %s\n", active.StartTime.Format("2006-01-02 15:04:05"))
			fmt.Printf("Duration: %.2f hours\n", hours)
			printEntryDetails(*active)
		} else {
			fmt.Println("Not Clocked In")
		}
		fmt.Println()

		todayEntries := data.EntriesByDate(now)
		fmt.Println("Today's Summary")
		fmt.Printf("Total Hours: %.2f\n", timecard.SumHours(todayEntries))
		fmt.Printf("Entries: %d\n", len(todayEntries))

		week, err := period.Resolve("week", now)
		if err != nil {
			return err
		}
		weekEntries := data.EntriesByPeriod(week.Start, week.End)
		fmt.Println()
		fmt.Println("This Week's Summary")
		fmt.Printf("Total Hours: %.2f\n", timecard.SumHours(weekEntries))
		fmt.Printf("Entries: %d\n", len(weekEntries))

		if len(todayEntries) > 0 {
			fmt.Println()
			fmt.Println("Today's Projects")
			printProjectHours(projectHours(todayEntries))
		}

		return nil
	},
}

func printProjectHours(totals map[string]float64) {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.2f hours\n", name, totals[name])
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
