package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/reportcare/reportcare_backend/cmd/http"
	systemcmd "github.com/reportcare/reportcare_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "reportcare",
	Short: "ReportCare diabetes-risk screening service for diagnostic labs.",
	Long: `ReportCare lets diagnostic labs run ML-backed diabetes risk screenings,
issue verifiable PDF reports to patients, and keep an auditable analysis trail.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
