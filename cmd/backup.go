package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"timecard/storage"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Copy the data file to a .backup sibling",
	Example: `
  # Back up ./timecard.json to ./timecard.json.backup
  timecard backup
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := dataFilePath()
		backupPath, err := storage.Backup(path)
		if err != nil {
			return err
		}
		if backupPath == "" {
			fmt.Printf("No data file at %s, nothing to back up.\n", path)
			return nil
		}
		fmt.Printf("Backed up %s to %s\n", path, backupPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
}
