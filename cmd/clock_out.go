package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timecard/storage"
)

var clockOutDescription string

var clockOutCmd = &cobra.Command{
	Use:   "out",
	Short: "Clock out to stop tracking time",
	Long: `Close the running work session at the current time.

An optional description replaces the one given at clock-in. Clocking out with
no running session is a no-op.`,
	Example: `
  # Clock out
  timecard out

  # Clock out and set the session description
  timecard out -m "finished code review"
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := dataFilePath()
		data, err := storage.Load(path)
		if err != nil {
			return err
		}

		active := data.ActiveEntry()
		if active == nil {
			fmt.Println("Not clocked in!")
			return nil
		}

		end := time.Now()
		if err := active.Close(end); err != nil {
			return fmt.Errorf("clock out: %w", err)
		}
		if description := optionalString(clockOutDescription); description != nil {
			active.SetDescription(*description)
		}
		if err := storage.Save(path, data); err != nil {
			return err
		}

		hours, _ := active.Hours()
		fmt.Println("Clocked out!")
		fmt.Printf("Started: %s\n", active.StartTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Ended: %s\n", end.Format("2006-01-02 15:04:05"))
		fmt.Printf("Duration: %.2f hours\n", hours)
		printEntryDetails(*active)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clockOutCmd)

	clockOutCmd.Flags().StringVarP(&clockOutDescription, "message", "m", "", "Description for the closed session")
}
