package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timecard/period"
	"timecard/storage"
	"timecard/timecard"
)

var (
	addProject     string
	addDescription string
	addStart       string
	addEnd         string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a manual time entry with explicit start and end times",
	Long: `Add a completed entry without clocking in and out.

Start and end accept a full datetime, a date (midnight implied), or a time of
day (today implied). The end must be after the start.`,
	Example: `
  # Full datetimes
  timecard add --start "2024-01-15 09:00" --end "2024-01-15 11:30" -p alpha

  # Times of day, today implied
  timecard add --start 09:00 --end 11:30 -m "standup and review"
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		start, err := period.ParseDateTime(addStart, now)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		end, err := period.ParseDateTime(addEnd, now)
		if err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}

		entry, err := timecard.NewManualEntry(optionalString(addProject), optionalString(addDescription), start, end)
		if err != nil {
			return err
		}

		path := dataFilePath()
		data, err := storage.Load(path)
		if err != nil {
			return err
		}
		if err := data.AddTimeEntry(entry); err != nil {
			return err
		}
		if err := storage.Save(path, data); err != nil {
			return err
		}

		hours, _ := entry.Hours()
		fmt.Println("Manual time entry added!")
		fmt.Printf("Start: %s\n", start.Format("2006-01-02 15:04:05"))
		fmt.Printf("End: %s\n", end.Format("2006-01-02 15:04:05"))
		fmt.Printf("Duration: %.2f hours\n", hours)
		printEntryDetails(entry)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addProject, "project", "p", "", "Project label for the entry")
	addCmd.Flags().StringVarP(&addDescription, "message", "m", "", "Description of the entry")
	addCmd.Flags().StringVarP(&addStart, "start", "s", "", "Start time (e.g. \"2024-01-15 09:00\", \"09:00\")")
	addCmd.Flags().StringVarP(&addEnd, "end", "e", "", "End time (e.g. \"2024-01-15 11:30\", \"11:30\")")

	_ = addCmd.MarkFlagRequired("start")
	_ = addCmd.MarkFlagRequired("end")
}
