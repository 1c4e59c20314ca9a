package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const appName = "users-server"

// NewRootCmd creates the root command. Without a subcommand it serves.
func NewRootCmd() *cobra.Command {
	serveCmd := newServeCmd()

	rootCmd := &cobra.Command{
		Use:          appName,
		Short:        "Minimal HTTP/1.1 server for user records backed by PostgreSQL",
		Version:      buildVersion,
		SilenceUsage: true,
		RunE:         serveCmd.RunE,
	}
	rootCmd.SetVersionTemplate(versionTemplate())

	rootCmd.AddCommand(serveCmd, newMigrateCmd())

	return rootCmd
}

func versionTemplate() string {
	return fmt.Sprintf(`%s version %s
Build date: %s
Build commit: %s
`, appName, buildVersion, buildDate, buildCommit)
}
