package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagTimeframe string
	flagCRMDir    string
	flagNews      string
	flagOut       string
	flagConfig    string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Weekly CRM pulse report generator",
	Long:  "pulse turns CRM extracts and a news feed into a weekly executive report: KPIs, ranked news signals, an open-pipeline snapshot and summary charts.",
	RunE:  runReport,
}

func init() {
	rootCmd.Flags().StringVar(&flagTimeframe, "timeframe", "", "reporting window: week or month (default from config)")
	rootCmd.Flags().StringVar(&flagCRMDir, "crm-dir", ".", "directory containing the CRM CSV extracts")
	rootCmd.Flags().StringVar(&flagNews, "news", "", "news feed file (JSON array or RSS/Atom)")
	rootCmd.Flags().StringVar(&flagOut, "out", "", "write the report JSON to this file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(showCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pulse %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
