/*
Copyright © 2026

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"timecard/config"
)

var (
	cfgFile  string
	dataFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "timecard",
	Short: "Track work sessions with clock in/out, reports, and exports.",
	Long: `Simple personal time tracking.

Clock in and out of work sessions, tag them with a project and description,
add manual entries, and report or export tracked hours per period. All data
lives in a single JSON file.`,
	Example: `
  # Clock in on a project
  timecard in -p alpha -m "code review"

  # Clock out
  timecard out

  # Show current status
  timecard status

  # Report this week's hours and export them to CSV
  timecard report --period week --csv

  # Add a manual entry
  timecard add --start "2024-01-15 09:00" --end "2024-01-15 11:30" -p alpha

  # Export all entries to Excel
  timecard export --mode raw --output ./entries.xlsx

  # Start the local web UI
  timecard serve
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.timecard.yaml, then ./.timecard.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "data-file", "d", "", "Path to the JSON data file (default: data_file config value, then ./timecard.json)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".timecard" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".timecard")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// The config file is optional; defaults cover every setting.
	_ = viper.ReadInConfig()
}

// dataFilePath resolves the data file: flag first, then config, then the
// packaged default. The path is threaded explicitly into every operation so
// nothing depends on hidden global state.
func dataFilePath() string {
	if dataFile != "" {
		return dataFile
	}
	if configured := viper.GetString(config.KeyDataFile); configured != "" {
		return configured
	}
	return "timecard.json"
}
