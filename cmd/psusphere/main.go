package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/Chodoro/psusphere/api/swagger"
)

// @title PSUSphere API
// @version 1.0.0
// @description Administration of colleges, programs, students, organizations and memberships.
// @BasePath /api/v1
// @schemes http https

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "psusphere",
		Short:         "Campus organization records service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	cmd.AddCommand(serveCmd(), migrateCmd(), createUserCmd(), seedCmd())
	return cmd
}
