package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "records-api",
		Short:        "Travel and clinic records API",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "path to config file (default: ./config.yaml)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			service, _ := cmd.Flags().GetString("service")
			return runServer(cmd.Context(), configPath, service)
		},
	}
	cmd.Flags().String("service", "", "service to run: travel, clinic or all (overrides server.service)")
	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default doctor and medicament into empty tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return runSeed(cmd.Context(), configPath)
		},
	}
}
