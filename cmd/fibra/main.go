package main

import (
	"os"

	"github.com/spf13/cobra"

	"fibra/internal/interfaces/cli/dashboard"
	"fibra/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fibra",
		Short: "Fibra - customer self-service portal",
		Long:  `Fibra is the customer self-service portal for the fiber ISP: a portal API server plus a terminal client.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		dashboard.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
