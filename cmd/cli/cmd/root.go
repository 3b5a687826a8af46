// Package cmd provides the CLI commands for adshare.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"adshare/internal/config"
	"adshare/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "adshare",
	Short: "Impression share analysis and bid optimization for Apple Search Ads",
	Long: `adshare analyzes keyword impression share and suggests bid increases.

It fetches an impression share report, joins it with current keyword bids,
and surfaces the keywords with the most room to grow. Suggestions can be
reviewed in a table, applied interactively, or exported to CSV.

Examples:
  adshare analyze --days 14 --country US
  adshare optimize --max-share 30 --dry-run
  adshare report --days 7 --output share_report.csv`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.adshare.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("adshare version 0.1.0")
	},
}

// configCmd writes the active configuration to the config file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write the active configuration to disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.Get().Save(path); err != nil {
			return err
		}
		fmt.Printf("Configuration written to %s\n", path)
		return nil
	},
}
