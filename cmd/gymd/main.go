package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/gymdesk/internal/gym/app"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gymd",
	Short: "Gymdesk gym management API",
	Long: `gymd serves the Gymdesk API: admin and member portals, billing with
receipts, passwordless sign-in, notifications, reports and the supplement store.

Configuration comes from the environment (and a .env file when present).`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, adminCmd, loginLinkCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
