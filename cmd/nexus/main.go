package main

import (
	"os"

	"github.com/spf13/cobra"

	"nexus/internal/interfaces/cli/migrate"
	"nexus/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nexus",
		Short: "Nexus - project management backend",
		Long:  `Nexus is a project-management backend with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
