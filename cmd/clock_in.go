package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"timecard/storage"
	"timecard/timecard"
)

var (
	clockInProject     string
	clockInDescription string
)

var clockInCmd = &cobra.Command{
	Use:   "in",
	Short: "Clock in to start tracking time",
	Long: `Start a new work session.

Clocking in while another session is running is a no-op: the existing session
is reported and nothing changes.`,
	Example: `
  # Clock in without a project
  timecard in

  # Clock in on a project with a description
  timecard in -p alpha -m "code review"
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := dataFilePath()
		data, err := storage.Load(path)
		if err != nil {
			return err
		}

		if active := data.ActiveEntry(); active != nil {
			fmt.Println("Already clocked in!")
			fmt.Printf("Started: %s\n", active.StartTime.Format("2006-01-02 15:04:05"))
			printEntryDetails(*active)
			return nil
		}

		entry := timecard.NewTimeEntry(optionalString(clockInProject), optionalString(clockInDescription))
		if err := data.AddTimeEntry(entry); err != nil {
			return err
		}
		if err := storage.Save(path, data); err != nil {
			return err
		}

		fmt.Println("Clocked in!")
		fmt.Printf("Started: %s\n", entry.StartTime.Format("2006-01-02 15:04:05"))
		printEntryDetails(entry)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clockInCmd)

	clockInCmd.Flags().StringVarP(&clockInProject, "project", "p", "", "Project label for the session")
	clockInCmd.Flags().StringVarP(&clockInDescription, "message", "m", "", "Description of the session")
}
