package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"timecard/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  timecard config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file in use; showing defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("data_file: %s\n", cfg.DataFile)
		fmt.Printf("report.output_dir: %s\n", cfg.Report.OutputDir)
		fmt.Printf("serve.port: %d\n", cfg.Serve.Port)
		fmt.Printf("serve.open_browser: %t\n", cfg.Serve.OpenBrowser)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
